package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

// ErrOutOfRange is returned when a month is outside 1..12.
var ErrOutOfRange = errors.New("month out of range")

// Locale selects the language used for month names.
type Locale = monday.Locale

const (
	LocaleItalian Locale = monday.LocaleItIT
	LocaleEnglish Locale = monday.LocaleEnUS

	// DefaultLocale matches the Italian labels used across the UI.
	DefaultLocale = LocaleItalian
)

// SupportedLocale reports whether monday knows how to translate into locale.
func SupportedLocale(locale Locale) bool {
	for _, l := range monday.ListLocales() {
		if l == locale {
			return true
		}
	}
	return false
}

// MonthName returns the full localized name of a 1-based month.
func MonthName(month int, locale Locale) (string, error) {
	if err := checkMonth(month); err != nil {
		return "", err
	}
	ref := time.Date(2000, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return monday.Format(ref, "January", locale), nil
}

// DaysInMonth returns the day numbers 1..N of the given month, in grid order.
func DaysInMonth(month, year int) ([]int, error) {
	if err := checkMonth(month); err != nil {
		return nil, err
	}
	n := daysIn(time.Month(month), year)
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days, nil
}

// daysIn relies on time.Date normalizing day 0 of the next month to the last
// day of this one.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, month)
	}
	return nil
}
