package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	ResolveDay(ctx context.Context, date time.Time) (*domain.DaySchedule, error)
}

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.MenuItem, error)
	SetReserved(ctx context.Context, id int64, reserved bool) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByMenuID(ctx context.Context, menuID int64) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
