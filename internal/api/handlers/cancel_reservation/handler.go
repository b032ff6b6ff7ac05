package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	cancelReservation "github.com/m04kA/DMR-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized        = "не удалось определить пользователя"
	msgReservationNotFound = "бронь не найдена"
	msgAccessDenied        = "отменить бронь может только ее владелец"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ident)
	if err != nil {
		h.logger.Warn("POST /reservations/cancel - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/cancel - Reservation not found: user_id=%d", ident.UserID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations/cancel - Access denied: user_id=%d", ident.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/cancel - Invalid input: user_id=%d, error=%v", ident.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel reservation: user_id=%d, error=%v",
				ident.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservation cancelled: user_id=%d", ident.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
