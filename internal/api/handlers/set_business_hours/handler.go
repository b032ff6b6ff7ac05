package set_business_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/internal/service/calendar"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время открытия должно быть раньше времени закрытия"
	msgUnauthorized       = "не удалось определить пользователя"
	msgAccessDenied       = "менять часы работы может только администратор"
)

// SetBusinessHoursRequest HTTP request model
type SetBusinessHoursRequest struct {
	OpenTime  string `json:"openTime"`  // "17:00"
	CloseTime string `json:"closeTime"` // "21:00"
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendar/{date}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PUT /calendar/{date}/hours - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/{date}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		h.logger.Warn("PUT /calendar/{date}/hours - Invalid open time %q: %v", req.OpenTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	close, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		h.logger.Warn("PUT /calendar/{date}/hours - Invalid close time %q: %v", req.CloseTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.SetHours(r.Context(), ident, date, open, close); err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("PUT /calendar/{date}/hours - Access denied: user_id=%d", ident.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, calendar.ErrInvalidTimeRange):
			h.logger.Warn("PUT /calendar/{date}/hours - Invalid time range: user_id=%d, open=%s, close=%s",
				ident.UserID, req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, calendar.ErrInvalidTime):
			h.logger.Warn("PUT /calendar/{date}/hours - Invalid time: user_id=%d, error=%v", ident.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PUT /calendar/{date}/hours - Failed to set hours: user_id=%d, date=%s, error=%v",
				ident.UserID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/{date}/hours - Hours set: user_id=%d, date=%s, open=%s, close=%s",
		ident.UserID, rawDate, req.OpenTime, req.CloseTime)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
