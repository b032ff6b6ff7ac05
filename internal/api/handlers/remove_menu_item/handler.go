package remove_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/service/catalog"
)

const (
	msgInvalidMenuID = "некорректный ID позиции меню"
	msgUnauthorized  = "не удалось определить пользователя"
	msgMenuNotFound  = "позиция меню не найдена"
	msgMenuReserved  = "позиция забронирована, сначала снимите бронь"
	msgAccessDenied  = "удалять меню может только администратор"
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

// Handle DELETE /api/v1/menus/{menuId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	rawMenuID := mux.Vars(r)["menuId"]
	menuID, err := strconv.ParseInt(rawMenuID, 10, 64)
	if err != nil || menuID <= 0 {
		h.logger.Warn("DELETE /menus/{menuId} - Invalid menu ID %q", rawMenuID)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	if err := h.service.Remove(r.Context(), ident, menuID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrMenuNotFound):
			h.logger.Warn("DELETE /menus/{menuId} - Menu not found: menu_id=%d, user_id=%d", menuID, ident.UserID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, catalog.ErrMenuReserved):
			h.logger.Warn("DELETE /menus/{menuId} - Menu reserved: menu_id=%d, user_id=%d", menuID, ident.UserID)
			handlers.RespondError(w, http.StatusConflict, msgMenuReserved)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("DELETE /menus/{menuId} - Access denied: menu_id=%d, user_id=%d", menuID, ident.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /menus/{menuId} - Failed to remove menu item: menu_id=%d, user_id=%d, error=%v",
				menuID, ident.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /menus/{menuId} - Menu item removed: menu_id=%d, user_id=%d", menuID, ident.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
