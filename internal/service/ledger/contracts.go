package ledger

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByMenuID(ctx context.Context, menuID int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// MenuRepository интерфейс репозитория меню (для обогащения броней)
type MenuRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.MenuItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
