package create_reservation

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// Request модель запроса на создание брони.
// MenuID == nil означает time-only бронь: фиксируется только время
// прибытия, позиция меню не занимается.
type Request struct {
	Identity domain.Identity  // Кто бронирует
	Date     time.Time        // Дата брони (без времени)
	MenuID   *int64           // ID позиции меню (опционально)
	Time     types.TimeString // Время прибытия (например, "18:30")
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              int64            // ID созданной брони
	MenuID          *int64           // ID позиции меню (nil для time-only)
	UserID          int64            // ID пользователя
	Date            time.Time        // Дата брони
	Time            types.TimeString // Время прибытия
	MenuReservation bool             // Бронь занимает позицию меню

	CreatedAt time.Time // Время создания
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:              r.ID,
		MenuID:          r.MenuID,
		UserID:          r.UserID,
		Date:            r.Date,
		Time:            r.Time,
		MenuReservation: r.MenuReservation,
		CreatedAt:       r.CreatedAt,
	}
}
