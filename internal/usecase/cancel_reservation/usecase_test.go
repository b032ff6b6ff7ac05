package cancel_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DMR-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	menus        map[int64]*domain.MenuItem
	reservations []*domain.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{menus: map[int64]*domain.MenuItem{}}
}

func (f *fakeStore) SetReserved(_ context.Context, id int64, reserved bool) error {
	m, ok := f.menus[id]
	if !ok {
		return menuRepo.ErrMenuNotFound
	}
	m.Reserved = reserved
	return nil
}

func (f *fakeStore) GetByMenuID(_ context.Context, menuID int64) (*domain.Reservation, error) {
	for _, r := range f.reservations {
		if r.MenuID != nil && *r.MenuID == menuID {
			return r, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeStore) DeleteByMenuAndUser(_ context.Context, menuID, userID int64) (bool, error) {
	for i, r := range f.reservations {
		if r.MenuID != nil && *r.MenuID == menuID && r.UserID == userID {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) DeleteTimeOnlyByUserAndDate(_ context.Context, userID int64, date time.Time) (bool, error) {
	for i, r := range f.reservations {
		if r.MenuID == nil && r.UserID == userID && r.Date.Equal(date) {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

var (
	alice = domain.Identity{UserID: 10, Role: domain.RoleUser}
	bob   = domain.Identity{UserID: 20, Role: domain.RoleUser}
	admin = domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
)

func storeWithMenuReservation(owner domain.Identity) *fakeStore {
	store := newFakeStore()
	store.menus[1] = &domain.MenuItem{ID: 1, Name: "menu", Date: testDate, Reserved: true}
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, MenuID: ptr.Ptr(int64(1)), UserID: owner.UserID, Date: testDate, Time: "18:00", MenuReservation: true,
	})
	return store
}

func newTestUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, store, &serialTxManager{}, nopLogger{})
}

func TestUseCase_Execute_OwnerCancels(t *testing.T) {
	store := storeWithMenuReservation(alice)
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: alice, MenuID: ptr.Ptr(int64(1))})
	require.NoError(t, err)

	assert.Empty(t, store.reservations)
	assert.False(t, store.menus[1].Reserved, "flag is cleared together with the ledger row")
}

func TestUseCase_Execute_AdminCancelsForeign(t *testing.T) {
	store := storeWithMenuReservation(alice)
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: admin, MenuID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	assert.Empty(t, store.reservations)
}

func TestUseCase_Execute_ForeignReservation(t *testing.T) {
	store := storeWithMenuReservation(alice)
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: bob, MenuID: ptr.Ptr(int64(1))})
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.Len(t, store.reservations, 1, "no state change on denied cancel")
	assert.True(t, store.menus[1].Reserved)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := newTestUseCase(newFakeStore())

	err := uc.Execute(context.Background(), &Request{Identity: alice, MenuID: ptr.Ptr(int64(1))})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_MenuRowGone(t *testing.T) {
	store := storeWithMenuReservation(alice)
	delete(store.menus, 1)
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: alice, MenuID: ptr.Ptr(int64(1))})
	require.NoError(t, err, "cancel succeeds even if the menu row was deleted")
	assert.Empty(t, store.reservations)
}

func TestUseCase_Execute_TimeOnly(t *testing.T) {
	store := newFakeStore()
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, UserID: alice.UserID, Date: testDate, Time: "19:00",
	})
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, store.reservations)
}

func TestUseCase_Execute_TimeOnlyNotFound(t *testing.T) {
	store := newFakeStore()
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, UserID: bob.UserID, Date: testDate, Time: "19:00",
	})
	uc := newTestUseCase(store)

	err := uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate})
	assert.ErrorIs(t, err, ErrReservationNotFound, "only the caller's own time-only row is cancelled")
	assert.Len(t, store.reservations, 1)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(newFakeStore())

	err := uc.Execute(context.Background(), &Request{MenuID: ptr.Ptr(int64(1))})
	assert.ErrorIs(t, err, ErrInvalidInput, "identity is required")

	err = uc.Execute(context.Background(), &Request{Identity: alice})
	assert.ErrorIs(t, err, ErrInvalidInput, "date is required for time-only cancel")

	err = uc.Execute(context.Background(), &Request{Identity: alice, MenuID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
