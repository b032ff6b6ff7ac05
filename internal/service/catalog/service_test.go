package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/menu"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeMenuRepo хранит позиции в памяти и отдает сентинелы репозитория
type fakeMenuRepo struct {
	items  map[int64]*domain.MenuItem
	nextID int64
	err    error
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[int64]*domain.MenuItem{}, nextID: 1}
}

func (f *fakeMenuRepo) Create(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *item
	created.ID = f.nextID
	f.nextID++
	f.items[created.ID] = &created
	return &created, nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, menuRepo.ErrMenuNotFound
	}
	return item, nil
}

func (f *fakeMenuRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.MenuItem, 0)
	for _, item := range f.items {
		if item.IsOnDate(date) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return menuRepo.ErrMenuNotFound
	}
	delete(f.items, id)
	return nil
}

var (
	admin   = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	someone = domain.Identity{UserID: 2, Role: domain.RoleUser}

	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
)

func TestService_Add(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	item, err := svc.Add(context.Background(), admin, testDate, "  Fish & Chips  ")
	require.NoError(t, err)

	assert.Equal(t, "Fish &amp; Chips", item.Name, "name is trimmed and escaped before storing")
	assert.False(t, item.Reserved)
	assert.True(t, item.IsOnDate(testDate))
}

func TestService_Add_MaxLengthEscaped(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	item, err := svc.Add(context.Background(), admin, testDate, strings.Repeat("&", 50))
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("&amp;", 50), item.Name, "escaped name is stored whole")
	assert.Equal(t, item.Name, repo.items[item.ID].Name)
}

func TestService_Add_Validation(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), someone, testDate, "Soup")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Add(context.Background(), admin, time.Time{}, "Soup")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Add(context.Background(), admin, testDate, "DROP TABLE menu_tbl")
	assert.ErrorIs(t, err, ErrInvalidMenuName)

	assert.Empty(t, repo.items, "nothing is stored on validation failure")
}

func TestService_Remove(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	item, err := svc.Add(context.Background(), admin, testDate, "Soup")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), admin, item.ID))
	assert.Empty(t, repo.items)
}

func TestService_Remove_Reserved(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	item, err := svc.Add(context.Background(), admin, testDate, "Soup")
	require.NoError(t, err)
	repo.items[item.ID].Reserved = true

	err = svc.Remove(context.Background(), admin, item.ID)
	assert.ErrorIs(t, err, ErrMenuReserved)
	assert.Len(t, repo.items, 1, "reserved item is kept")
}

func TestService_Remove_Errors(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	assert.ErrorIs(t, svc.Remove(context.Background(), someone, 1), ErrAccessDenied)
	assert.ErrorIs(t, svc.Remove(context.Background(), admin, 99), ErrMenuNotFound)

	repo.err = errors.New("connection refused")
	assert.ErrorIs(t, svc.Remove(context.Background(), admin, 1), ErrInternal)
}

func TestService_ListForDate(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), admin, testDate, "Soup")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), admin, testDate.AddDate(0, 0, 1), "Stew")
	require.NoError(t, err)

	items, err := svc.ListForDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soup", items[0].Name)
}
