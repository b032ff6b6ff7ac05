package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	SetReserved(ctx context.Context, id int64, reserved bool) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByMenuID(ctx context.Context, menuID int64) (*domain.Reservation, error)
	DeleteByMenuAndUser(ctx context.Context, menuID, userID int64) (bool, error)
	DeleteTimeOnlyByUserAndDate(ctx context.Context, userID int64, date time.Time) (bool, error)
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
