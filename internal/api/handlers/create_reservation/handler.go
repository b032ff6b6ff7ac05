package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/DMR-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "не удалось определить пользователя"
	msgMenuNotFound       = "позиция меню не найдена на эту дату"
	msgDayConflict        = "на эту дату уже забронировано другое меню"
	msgAlreadyReserved    = "вы уже забронировали эту позицию, сначала отмените бронь"
	msgHoliday            = "в этот день ресторан не работает"
	msgInvalidSlot        = "время прибытия не попадает в доступные слоты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ident)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrDayConflict):
			h.logger.Warn("POST /reservations - Day conflict: user_id=%d, date=%s", ident.UserID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayConflict)

		case errors.Is(err, createReservation.ErrAlreadyReservedByCaller):
			h.logger.Warn("POST /reservations - Already reserved by caller: user_id=%d, date=%s", ident.UserID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReserved)

		case errors.Is(err, createReservation.ErrMenuNotFound):
			h.logger.Warn("POST /reservations - Menu not found: user_id=%d, date=%s", ident.UserID, req.Date)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, createReservation.ErrHoliday):
			h.logger.Warn("POST /reservations - Holiday: user_id=%d, date=%s", ident.UserID, req.Date)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: user_id=%d, date=%s, time=%s", ident.UserID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", ident.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, date=%s, error=%v",
				ident.UserID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, date=%s",
		result.ID, ident.UserID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
