package set_business_hours

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

type CalendarService interface {
	SetHours(ctx context.Context, ident domain.Identity, date time.Time, open, close types.TimeString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
