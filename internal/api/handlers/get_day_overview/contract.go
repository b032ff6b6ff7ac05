package get_day_overview

import (
	"context"

	getDayOverview "github.com/m04kA/DMR-ReservationService/internal/usecase/get_day_overview"
)

type GetDayOverviewUseCase interface {
	Execute(ctx context.Context, req *getDayOverview.Request) (*getDayOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
