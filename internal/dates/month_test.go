package dates

import (
	"errors"
	"testing"
)

func TestMonthName(t *testing.T) {
	tests := []struct {
		name   string
		month  int
		locale Locale
		want   string
	}{
		{"January in English", 1, LocaleEnglish, "January"},
		{"February in English", 2, LocaleEnglish, "February"},
		{"December in English", 12, LocaleEnglish, "December"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthName(tt.month, tt.locale)
			if err != nil {
				t.Fatalf("MonthName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthName_AllMonthsNonEmptyAndDeterministic(t *testing.T) {
	for _, locale := range []Locale{LocaleItalian, LocaleEnglish} {
		seen := make(map[string]bool)
		for month := 1; month <= 12; month++ {
			first, err := MonthName(month, locale)
			if err != nil {
				t.Fatalf("MonthName(%d, %s) error = %v", month, locale, err)
			}
			second, _ := MonthName(month, locale)

			if first == "" {
				t.Errorf("MonthName(%d, %s) returned empty string", month, locale)
			}
			if first != second {
				t.Errorf("MonthName(%d, %s) not deterministic: %q vs %q", month, locale, first, second)
			}
			if seen[first] {
				t.Errorf("MonthName(%d, %s) = %q duplicates another month", month, locale, first)
			}
			seen[first] = true
		}
	}
}

func TestMonthName_ItalianDiffersFromEnglish(t *testing.T) {
	it, _ := MonthName(1, LocaleItalian)
	en, _ := MonthName(1, LocaleEnglish)
	if it == en {
		t.Errorf("expected localized name, got %q for both locales", it)
	}
}

func TestMonthName_OutOfRange(t *testing.T) {
	for _, month := range []int{0, 13, -1, 100} {
		_, err := MonthName(month, DefaultLocale)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("MonthName(%d) error = %v, want ErrOutOfRange", month, err)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		wantLen int
	}{
		{"January", 1, 2023, 31},
		{"April", 4, 2023, 30},
		{"February common year", 2, 2023, 28},
		{"February leap year", 2, 2024, 29},
		{"February century not leap", 2, 1900, 28},
		{"February 400-year leap", 2, 2000, 29},
		{"December", 12, 2030, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysInMonth(tt.month, tt.year)
			if err != nil {
				t.Fatalf("DaysInMonth() error = %v", err)
			}
			if len(days) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(days), tt.wantLen)
			}
		})
	}
}

func TestDaysInMonth_ConsecutiveFromOne(t *testing.T) {
	for year := 1999; year <= 2031; year++ {
		for month := 1; month <= 12; month++ {
			days, err := DaysInMonth(month, year)
			if err != nil {
				t.Fatalf("DaysInMonth(%d, %d) error = %v", month, year, err)
			}
			if len(days) < 28 || len(days) > 31 {
				t.Errorf("DaysInMonth(%d, %d) length %d outside 28..31", month, year, len(days))
			}
			for i, d := range days {
				if d != i+1 {
					t.Fatalf("DaysInMonth(%d, %d)[%d] = %d, want %d", month, year, i, d, i+1)
				}
			}

			leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
			if (len(days) == 29) != (month == 2 && leap) {
				t.Errorf("DaysInMonth(%d, %d) length %d disagrees with leap rule", month, year, len(days))
			}
		}
	}
}

func TestDaysInMonth_OutOfRange(t *testing.T) {
	days, err := DaysInMonth(13, 2024)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
	if days != nil {
		t.Errorf("days = %v, want nil", days)
	}
}

func TestSupportedLocale(t *testing.T) {
	if !SupportedLocale(LocaleItalian) {
		t.Error("expected it_IT to be supported")
	}
	if SupportedLocale("xx_XX") {
		t.Error("expected xx_XX to be unsupported")
	}
}
