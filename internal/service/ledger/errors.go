package ledger

import "errors"

var (
	// ErrAccessDenied возвращается при попытке читать чужие брони без прав
	ErrAccessDenied = errors.New("ledger: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ledger: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger: internal error")
)
