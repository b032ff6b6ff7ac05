package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DMR-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByMenuID(_ context.Context, menuID int64) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.MenuID != nil && *r.MenuID == menuID {
			return r, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMenuRepo struct {
	menus map[int64]*domain.MenuItem
	err   error
}

func (f *fakeMenuRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]*domain.MenuItem, len(ids))
	for _, id := range ids {
		if m, ok := f.menus[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

var (
	alice = domain.Identity{UserID: 10, Role: domain.RoleUser}
	bob   = domain.Identity{UserID: 20, Role: domain.RoleUser}
	admin = domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
)

func TestService_GetUserReservations(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, MenuID: ptr.Ptr(int64(5)), UserID: alice.UserID, Date: testDate, Time: "18:00", MenuReservation: true},
		{ID: 2, UserID: alice.UserID, Date: testDate.AddDate(0, 0, 1), Time: "19:30"},
		{ID: 3, MenuID: ptr.Ptr(int64(6)), UserID: bob.UserID, Date: testDate, Time: "17:00", MenuReservation: true},
	}}
	menuRepo := &fakeMenuRepo{menus: map[int64]*domain.MenuItem{
		5: {ID: 5, Name: "Soup", Date: testDate},
	}}
	svc := NewService(resRepo, menuRepo, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), alice, alice.UserID)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)

	withMenu := resp.Reservations[0]
	if withMenu.MenuID == nil {
		withMenu = resp.Reservations[1]
	}
	require.NotNil(t, withMenu.MenuName)
	assert.Equal(t, "Soup", *withMenu.MenuName)
}

func TestService_GetUserReservations_Access(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc := NewService(resRepo, &fakeMenuRepo{}, nopLogger{})

	_, err := svc.GetUserReservations(context.Background(), alice, bob.UserID)
	assert.ErrorIs(t, err, ErrAccessDenied, "regular user may only read their own reservations")

	_, err = svc.GetUserReservations(context.Background(), admin, bob.UserID)
	assert.NoError(t, err, "admin may read any user's reservations")

	_, err = svc.GetUserReservations(context.Background(), alice, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetUserReservations_MenuEnrichmentDegrades(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, MenuID: ptr.Ptr(int64(5)), UserID: alice.UserID, Date: testDate, Time: "18:00", MenuReservation: true},
	}}
	menuRepo := &fakeMenuRepo{err: errors.New("connection refused")}
	svc := NewService(resRepo, menuRepo, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), alice, alice.UserID)
	require.NoError(t, err, "menu names are enrichment, their failure does not fail the listing")
	require.Len(t, resp.Reservations, 1)
	assert.Nil(t, resp.Reservations[0].MenuName)
}

func TestService_GetReservationForMenu(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, MenuID: ptr.Ptr(int64(5)), UserID: alice.UserID, Date: testDate, Time: "18:00", MenuReservation: true},
	}}
	svc := NewService(resRepo, &fakeMenuRepo{}, nopLogger{})

	res, err := svc.GetReservationForMenu(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, int64(1), res.ID)

	res, err = svc.GetReservationForMenu(context.Background(), 99)
	require.NoError(t, err, "a free menu is not an error")
	assert.Nil(t, res)

	_, err = svc.GetReservationForMenu(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
