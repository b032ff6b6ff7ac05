package set_holiday

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized       = "не удалось определить пользователя"
	msgAccessDenied       = "менять выходные может только администратор"
)

// SetHolidayRequest HTTP request model
type SetHolidayRequest struct {
	Holiday bool `json:"holiday"`
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

// Handle PUT /api/v1/calendar/{date}/holiday
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PUT /calendar/{date}/holiday - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/{date}/holiday - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetHoliday(r.Context(), ident, date, req.Holiday); err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("PUT /calendar/{date}/holiday - Access denied: user_id=%d", ident.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /calendar/{date}/holiday - Failed to set holiday: user_id=%d, date=%s, error=%v",
				ident.UserID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/{date}/holiday - Holiday set: user_id=%d, date=%s, holiday=%t",
		ident.UserID, rawDate, req.Holiday)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
