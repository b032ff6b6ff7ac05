package cancel_reservation

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// Request модель запроса на отмену брони.
// MenuID задан — снимается бронь позиции меню (владельцем или админом).
// MenuID == nil — отменяется time-only бронь вызывающего на Date.
type Request struct {
	Identity domain.Identity // Кто отменяет
	MenuID   *int64          // ID позиции меню (опционально)
	Date     time.Time       // Дата time-only брони (для MenuID == nil)
}
