package dates

import (
	"fmt"
	"strings"
	"time"
)

// SlotsPerDay is the number of hourly slots on a day screen.
const SlotsPerDay = 24

var hourSlots = func() []string {
	slots := make([]string, SlotsPerDay)
	for hour := range slots {
		slots[hour] = fmt.Sprintf("%02d:00", hour)
	}
	return slots
}()

// HourSlots returns the labels "00:00" through "23:00" in display order.
// The returned slice is a copy.
func HourSlots() []string {
	out := make([]string, len(hourSlots))
	copy(out, hourSlots)
	return out
}

// IsHourSlot reports whether label is one of the 24 hour slot labels.
func IsHourSlot(label string) bool {
	for _, s := range hourSlots {
		if s == label {
			return true
		}
	}
	return false
}

// ParseSlotTime extracts hour and minute from an event time label.
// Supports "15:04" and the 12-hour display form "03:04 PM".
func ParseSlotTime(label string) (hour, minute int, err error) {
	label = strings.TrimSpace(label)
	for _, layout := range []string{"15:04", "03:04 PM", "3:04 PM"} {
		t, perr := time.Parse(layout, label)
		if perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("unrecognized time label %q", label)
}
