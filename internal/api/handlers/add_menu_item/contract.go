package add_menu_item

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

type CatalogService interface {
	Add(ctx context.Context, ident domain.Identity, date time.Time, name string) (*domain.MenuItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
