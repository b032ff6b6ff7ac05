package remove_menu_item

import (
	"context"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

type CatalogService interface {
	Remove(ctx context.Context, ident domain.Identity, menuID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
