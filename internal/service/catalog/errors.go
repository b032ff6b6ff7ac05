package catalog

import "errors"

var (
	// ErrMenuNotFound возвращается, когда позиция меню не найдена
	ErrMenuNotFound = errors.New("catalog: menu item not found")

	// ErrMenuReserved возвращается при попытке удалить забронированную позицию
	ErrMenuReserved = errors.New("catalog: menu item has an active reservation")

	// ErrInvalidMenuName возвращается при некорректном названии меню
	ErrInvalidMenuName = errors.New("catalog: invalid menu name")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("catalog: invalid date")

	// ErrAccessDenied возвращается, когда операция требует прав администратора
	ErrAccessDenied = errors.New("catalog: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
