package cancel_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Identity.IsValid() {
		return fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}

	if req.MenuID != nil && *req.MenuID <= 0 {
		return fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}

	if req.MenuID == nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is required to cancel a time-only reservation", ErrInvalidInput)
	}

	return nil
}
