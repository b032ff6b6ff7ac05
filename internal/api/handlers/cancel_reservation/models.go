package cancel_reservation

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/DMR-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model.
// menuId задан — снимается бронь позиции меню; без menuId отменяется
// time-only бронь вызывающего на date.
type CancelReservationRequest struct {
	MenuID *int64 `json:"menuId,omitempty"`
	Date   string `json:"date,omitempty"` // "2025-10-15", для time-only отмены
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(ident domain.Identity) (*cancelReservation.Request, error) {
	req := &cancelReservation.Request{
		Identity: ident,
		MenuID:   r.MenuID,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}
