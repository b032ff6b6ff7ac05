package domain

import (
	"iter"

	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// SlotTimes returns a lazy, finite, restartable sequence of arrival-time
// slots from open (inclusive) up to but excluding close, advancing by
// stepMinutes. If open >= close the sequence is empty.
func SlotTimes(open, close types.TimeString, stepMinutes int) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		if stepMinutes <= 0 {
			return
		}
		current := open
		for current.IsBefore(close) {
			if !yield(current) {
				return
			}
			next, err := current.AddMinutes(stepMinutes)
			if err != nil {
				// переполнение суток, слотов дальше нет
				return
			}
			current = next
		}
	}
}

// SlotList collects SlotTimes into a slice
func SlotList(open, close types.TimeString, stepMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	for slot := range SlotTimes(open, close, stepMinutes) {
		slots = append(slots, slot)
	}
	return slots
}

// IsValidSlot reports whether t is one of the slots generated for the
// given window and step
func IsValidSlot(t, open, close types.TimeString, stepMinutes int) bool {
	for slot := range SlotTimes(open, close, stepMinutes) {
		if slot == t {
			return true
		}
	}
	return false
}
