package domain

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// BusinessDay is the stored open/close hours and holiday status for one
// calendar date. Either time may be nil, in which case the configured
// default applies. Absence of a row for a date means default hours and
// not a holiday.
type BusinessDay struct {
	Date      time.Time
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
	Holiday   bool

	UpdatedAt time.Time
}

// DaySchedule is the resolved view of a calendar date: holiday status
// plus the effective serving window with defaults already applied.
type DaySchedule struct {
	Date      time.Time
	Holiday   bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// DayStatus describes the reservation state of a calendar date
type DayStatus string

const (
	// DayStatusHoliday — the restaurant is closed, no action possible
	DayStatusHoliday DayStatus = "holiday"
	// DayStatusOpen — no menu reserved yet, any menu may be selected
	DayStatusOpen DayStatus = "open"
	// DayStatusConflict — a menu is already reserved; remaining menus are
	// not selectable for reservation, new bookings collapse to time-only
	DayStatusConflict DayStatus = "conflict"
)
