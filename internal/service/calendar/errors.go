package calendar

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("calendar: invalid date")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("calendar: invalid time format")

	// ErrInvalidTimeRange возвращается, когда открытие не раньше закрытия
	ErrInvalidTimeRange = errors.New("calendar: open time must be before close time")

	// ErrAccessDenied возвращается, когда операция требует прав администратора
	ErrAccessDenied = errors.New("calendar: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
