package create_reservation

import "errors"

var (
	// ErrMenuNotFound возвращается, когда выбранная позиция меню не найдена на дату
	ErrMenuNotFound = errors.New("create_reservation: menu item not found")

	// ErrDayConflict возвращается, когда на дату уже занята позиция меню
	ErrDayConflict = errors.New("create_reservation: another menu is already reserved for this date")

	// ErrAlreadyReservedByCaller возвращается, когда вызывающий уже держит бронь этой позиции
	ErrAlreadyReservedByCaller = errors.New("create_reservation: menu is already reserved by the caller")

	// ErrHoliday возвращается при попытке брони на выходной день
	ErrHoliday = errors.New("create_reservation: date is a holiday")

	// ErrInvalidSlot возвращается, когда время прибытия не попадает в сетку слотов дня
	ErrInvalidSlot = errors.New("create_reservation: time is not an available slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
