package add_menu_item

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMenuName    = "некорректное название меню"
	msgUnauthorized       = "не удалось определить пользователя"
	msgAccessDenied       = "добавлять меню может только администратор"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/menus
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req AddMenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /menus - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /menus - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	item, err := h.service.Add(r.Context(), ident, date, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /menus - Access denied: user_id=%d", ident.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrInvalidMenuName):
			h.logger.Warn("POST /menus - Invalid menu name: user_id=%d, error=%v", ident.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidMenuName)

		case errors.Is(err, catalog.ErrInvalidDate):
			h.logger.Warn("POST /menus - Invalid date: user_id=%d, date=%s", ident.UserID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /menus - Failed to add menu item: user_id=%d, date=%s, error=%v",
				ident.UserID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /menus - Menu item created: menu_id=%d, user_id=%d, date=%s", item.ID, ident.UserID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainMenuItem(item))
}
