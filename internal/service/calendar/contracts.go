package calendar

import (
	"context"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// CalendarRepository интерфейс репозитория календаря рабочих дней
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.BusinessDay, error)
	UpsertHours(ctx context.Context, date time.Time, open, close types.TimeString) error
	UpsertHoliday(ctx context.Context, date time.Time, holiday bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
