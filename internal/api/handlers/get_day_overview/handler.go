package get_day_overview

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/domain"
	getDayOverview "github.com/m04kA/DMR-ReservationService/internal/usecase/get_day_overview"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized = "не удалось определить пользователя"
)

type Handler struct {
	useCase GetDayOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetDayOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /days/{date} - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayOverview.Request{
		Identity: ident,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayOverview.ErrInvalidInput):
			h.logger.Warn("GET /days/{date} - Invalid input: user_id=%d, date=%s", ident.UserID, rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /days/{date} - Failed to build overview: user_id=%d, date=%s, error=%v",
				ident.UserID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date} - Overview served: user_id=%d, date=%s, status=%s",
		ident.UserID, rawDate, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
