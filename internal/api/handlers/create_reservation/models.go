package create_reservation

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	createReservation "github.com/m04kA/DMR-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model.
// menuId опционален: без него фиксируется только время прибытия.
type CreateReservationRequest struct {
	MenuID *int64 `json:"menuId,omitempty"`
	Date   string `json:"date"`        // "2025-10-15"
	Time   string `json:"arrivalTime"` // "18:30"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	MenuID          *int64 `json:"menuId,omitempty"`
	UserID          int64  `json:"userId"`
	Date            string `json:"date"`
	Time            string `json:"arrivalTime"`
	MenuReservation bool   `json:"menuReservation"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(ident domain.Identity) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	arrivalTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Identity: ident,
		Date:     date,
		MenuID:   r.MenuID,
		Time:     arrivalTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		MenuID:          resp.MenuID,
		UserID:          resp.UserID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		MenuReservation: resp.MenuReservation,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
