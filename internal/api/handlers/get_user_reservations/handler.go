package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/service/ledger"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUnauthorized  = "не удалось определить пользователя"
	msgAccessDenied  = "просмотр чужих броней доступен только администратору"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rawUserID := mux.Vars(r)["userId"]
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{userId}/reservations - Invalid user ID %q", rawUserID)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), ident, userID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/reservations - Access denied: user_id=%d, target=%d", ident.UserID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/reservations - Invalid input: user_id=%d, error=%v", ident.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{userId}/reservations - Failed to get reservations: user_id=%d, target=%d, error=%v",
				ident.UserID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Served %d reservations: user_id=%d, target=%d",
		len(result.Reservations), ident.UserID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
