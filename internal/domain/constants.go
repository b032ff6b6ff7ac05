package domain

// Default serving window, applied to dates without a calendar row
const (
	DefaultOpenTime  = "17:00"
	DefaultCloseTime = "21:00"
)

// SlotStepMinutes фиксированный шаг сетки времени прихода
const SlotStepMinutes = 30

// Business validation constants
const (
	MaxMenuNameLength = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
