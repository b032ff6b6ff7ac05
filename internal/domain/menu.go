package domain

import "time"

// MenuItem represents a dish offered on a specific date.
// At most one menu item per date may be reserved at any moment.
type MenuItem struct {
	ID       int64
	Name     string
	Date     time.Time
	Reserved bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnDate returns true if the menu item is offered on the given calendar date
func (m *MenuItem) IsOnDate(date time.Time) bool {
	y1, m1, d1 := m.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
