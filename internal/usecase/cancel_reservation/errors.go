package cancel_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда брони для отмены нет
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAccessDenied возвращается при попытке отменить чужую бронь
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
