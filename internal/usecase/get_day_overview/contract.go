package get_day_overview

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	ResolveDay(ctx context.Context, date time.Time) (*domain.DaySchedule, error)
}

// CatalogService интерфейс сервиса каталога меню
type CatalogService interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.MenuItem, error)
}

// LedgerService интерфейс сервиса реестра броней
type LedgerService interface {
	GetDateReservations(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// UserRepository интерфейс репозитория пользователей (для имен владельцев броней)
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
