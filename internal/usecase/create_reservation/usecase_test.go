package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DMR-ReservationService/pkg/ptr"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendar struct {
	holiday bool
}

func (f *fakeCalendar) ResolveDay(_ context.Context, date time.Time) (*domain.DaySchedule, error) {
	return &domain.DaySchedule{
		Date:      date,
		Holiday:   f.holiday,
		OpenTime:  "17:00",
		CloseTime: "21:00",
	}, nil
}

// fakeStore объединяет меню и реестр броней, имитируя семантику хранилища:
// замену прежней брони при создании и уникальность брони на позицию
type fakeStore struct {
	mu           sync.Mutex
	menus        map[int64]*domain.MenuItem
	reservations []*domain.Reservation
	nextID       int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{menus: map[int64]*domain.MenuItem{}, nextID: 1}
}

func (f *fakeStore) addMenu(id int64, date time.Time, reserved bool) {
	f.menus[id] = &domain.MenuItem{ID: id, Name: "menu", Date: date, Reserved: reserved}
}

func (f *fakeStore) GetByDate(_ context.Context, date time.Time) ([]*domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.MenuItem, 0)
	for _, m := range f.menus {
		if m.IsOnDate(date) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) SetReserved(_ context.Context, id int64, reserved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.menus[id]
	if !ok {
		return nil
	}
	m.Reserved = reserved
	return nil
}

func (f *fakeStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.reservations[:0]
	for _, r := range f.reservations {
		replaced := false
		if res.MenuID != nil {
			replaced = r.MenuID != nil && *r.MenuID == *res.MenuID && r.UserID == res.UserID
		} else {
			replaced = r.MenuID == nil && r.UserID == res.UserID && r.Date.Equal(res.Date)
		}
		if !replaced {
			kept = append(kept, r)
		}
	}
	f.reservations = kept

	created := *res
	created.ID = f.nextID
	f.nextID++
	created.CreatedAt = time.Now()
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeStore) GetByMenuID(_ context.Context, menuID int64) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.MenuID != nil && *r.MenuID == menuID {
			return r, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

// serialTxManager имитирует сериализуемые транзакции, выполняя функции
// под общим мьютексом
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

	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(store *fakeStore, cal *fakeCalendar) *UseCase {
	return NewUseCase(cal, store, store, &serialTxManager{}, 30, nopLogger{})
}

func TestUseCase_Execute_MenuReservation(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, false)
	uc := newTestUseCase(store, &fakeCalendar{})

	resp, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(1)),
		Time:     "18:30",
	})
	require.NoError(t, err)

	assert.True(t, resp.MenuReservation)
	require.NotNil(t, resp.MenuID)
	assert.Equal(t, int64(1), *resp.MenuID)
	assert.Equal(t, types.TimeString("18:30"), resp.Time)

	assert.True(t, store.menus[1].Reserved, "menu flag is set together with the ledger row")
	assert.Len(t, store.reservations, 1)
}

func TestUseCase_Execute_DayConflict(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, true)
	store.addMenu(2, testDate, false)
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, MenuID: ptr.Ptr(int64(1)), UserID: bob.UserID, Date: testDate, Time: "18:00", MenuReservation: true,
	})
	uc := newTestUseCase(store, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(2)),
		Time:     "18:30",
	})
	assert.ErrorIs(t, err, ErrDayConflict)
	assert.False(t, store.menus[2].Reserved, "losing menu stays free")
}

func TestUseCase_Execute_ChosenMenuTaken(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, true)
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, MenuID: ptr.Ptr(int64(1)), UserID: bob.UserID, Date: testDate, Time: "18:00", MenuReservation: true,
	})
	uc := newTestUseCase(store, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(1)),
		Time:     "18:30",
	})
	assert.ErrorIs(t, err, ErrDayConflict)
}

func TestUseCase_Execute_AlreadyReservedByCaller(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, true)
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, MenuID: ptr.Ptr(int64(1)), UserID: alice.UserID, Date: testDate, Time: "18:00", MenuReservation: true,
	})
	uc := newTestUseCase(store, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(1)),
		Time:     "19:00",
	})
	assert.ErrorIs(t, err, ErrAlreadyReservedByCaller)
}

func TestUseCase_Execute_MenuNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(99)),
		Time:     "18:30",
	})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestUseCase_Execute_Holiday(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, false)
	uc := newTestUseCase(store, &fakeCalendar{holiday: true})

	_, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		MenuID:   ptr.Ptr(int64(1)),
		Time:     "18:30",
	})
	assert.ErrorIs(t, err, ErrHoliday)
}

func TestUseCase_Execute_InvalidSlot(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, false)
	uc := newTestUseCase(store, &fakeCalendar{})

	tests := []struct {
		name string
		time types.TimeString
	}{
		{name: "off grid", time: "18:45"},
		{name: "before opening", time: "16:30"},
		{name: "close time excluded", time: "21:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				Identity: alice,
				Date:     testDate,
				MenuID:   ptr.Ptr(int64(1)),
				Time:     tt.time,
			})
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestUseCase_Execute_TimeOnly(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, true)
	store.reservations = append(store.reservations, &domain.Reservation{
		ID: 1, MenuID: ptr.Ptr(int64(1)), UserID: bob.UserID, Date: testDate, Time: "18:00", MenuReservation: true,
	})
	uc := newTestUseCase(store, &fakeCalendar{})

	resp, err := uc.Execute(context.Background(), &Request{
		Identity: alice,
		Date:     testDate,
		Time:     "19:00",
	})
	require.NoError(t, err, "time-only reservation is allowed on a conflicted day")

	assert.Nil(t, resp.MenuID)
	assert.False(t, resp.MenuReservation)
	assert.Len(t, store.reservations, 2)
}

func TestUseCase_Execute_TimeOnlyReplacement(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate, Time: "18:00"})
	require.NoError(t, err)
	resp, err := uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate, Time: "19:30"})
	require.NoError(t, err)

	require.Len(t, store.reservations, 1, "second create replaces the first")
	assert.Equal(t, resp.ID, store.reservations[0].ID)
	assert.Equal(t, types.TimeString("19:30"), store.reservations[0].Time)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(newFakeStore(), &fakeCalendar{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Time: "18:00"})
	assert.ErrorIs(t, err, ErrInvalidInput, "identity is required")

	_, err = uc.Execute(context.Background(), &Request{Identity: alice, Time: "18:00"})
	assert.ErrorIs(t, err, ErrInvalidInput, "date is required")

	_, err = uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput, "time is required")

	_, err = uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate, Time: "6pm"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Identity: alice, Date: testDate, MenuID: ptr.Ptr(int64(0)), Time: "18:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_ConcurrentCreates(t *testing.T) {
	store := newFakeStore()
	store.addMenu(1, testDate, false)
	store.addMenu(2, testDate, false)
	uc := newTestUseCase(store, &fakeCalendar{})

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.Execute(context.Background(), &Request{
			Identity: alice, Date: testDate, MenuID: ptr.Ptr(int64(1)), Time: "18:00",
		})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.Execute(context.Background(), &Request{
			Identity: bob, Date: testDate, MenuID: ptr.Ptr(int64(2)), Time: "18:30",
		})
	}()
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrDayConflict)
		}
	}

	assert.Equal(t, 1, winners, "exactly one menu reservation wins the date")
	assert.Len(t, store.reservations, 1)

	reservedCount := 0
	for _, m := range store.menus {
		if m.Reserved {
			reservedCount++
		}
	}
	assert.Equal(t, 1, reservedCount)
}
