package set_holiday

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

type CalendarService interface {
	SetHoliday(ctx context.Context, ident domain.Identity, date time.Time, holiday bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
