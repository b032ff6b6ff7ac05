package catalog

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
