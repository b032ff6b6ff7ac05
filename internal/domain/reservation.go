package domain

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// Reservation represents a booking of an arrival time, optionally bound
// to a menu item. A reservation with a nil MenuID is a time-only
// reservation: it books an arrival time without claiming a menu and is
// not subject to the per-date menu exclusivity rule.
type Reservation struct {
	ID              int64
	MenuID          *int64 // nil = time-only reservation
	UserID          int64
	Date            time.Time
	Time            types.TimeString
	MenuReservation bool

	CreatedAt time.Time
}

// IsTimeOnly returns true if the reservation carries no menu reference
func (r *Reservation) IsTimeOnly() bool {
	return r.MenuID == nil
}

// IsOwnedBy returns true if the reservation belongs to the given user
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}
