package get_user_reservations

import (
	"context"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/internal/service/ledger/models"
)

type LedgerService interface {
	GetUserReservations(ctx context.Context, ident domain.Identity, userID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
