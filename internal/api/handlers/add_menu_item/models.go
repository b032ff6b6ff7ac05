package add_menu_item

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// AddMenuItemRequest HTTP request model
type AddMenuItemRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Name string `json:"name"`
}

// MenuItemResponse HTTP response model
type MenuItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Reserved  bool   `json:"reserved"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainMenuItem конвертирует domain модель в HTTP response
func FromDomainMenuItem(item *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Date:      item.Date.Format(domain.DateFormat),
		Reserved:  item.Reserved,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}
