package get_day_overview

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// Request модель запроса обзора дня
type Request struct {
	Identity domain.Identity // Кто спрашивает (подсказки действий считаются от него)
	Date     time.Time       // Дата (без времени)
}

// MenuOverview позиция меню с подсказками действий для вызывающего
type MenuOverview struct {
	ID           int64   // ID позиции меню
	Name         string  // Название
	Reserved     bool    // Занята ли позиция
	ReservedByMe bool    // Занята вызывающим
	OwnerName    *string // Имя владельца брони (если позиция занята)
	CanReserve   bool    // Вызывающий может забронировать эту позицию
	CanCancel    bool    // Вызывающий может снять бронь с этой позиции
}

// Response модель ответа с обзором дня
type Response struct {
	Date    time.Time        // Дата обзора
	Status  domain.DayStatus // holiday | open | conflict
	Holiday bool             // Дубль статуса для быстрой проверки

	// Пусто при Status == holiday
	OpenTime  types.TimeString   // Начало окна прибытия
	CloseTime types.TimeString   // Конец окна прибытия
	Slots     []types.TimeString // Доступные времена прибытия
	Menus     []MenuOverview     // Позиции меню на дату

	// Бронь вызывающего на эту дату (nil, если брони нет)
	CallerReservation *domain.Reservation
}
