package dates

import (
	"fmt"
	"time"
)

// Date is a calendar day without a time of day or time zone.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseDate parses "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Validate checks that the month is in range and the day exists in it.
func (d Date) Validate() error {
	days, err := DaysInMonth(d.Month, d.Year)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > len(days) {
		return fmt.Errorf("day %d not in %04d-%02d", d.Day, d.Year, d.Month)
	}
	return nil
}

// At returns the date at the given hour and minute, in UTC.
func (d Date) At(hour, minute int) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
