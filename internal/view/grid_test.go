package view

import (
	"testing"

	"github.com/pfrederiksen/calendario/internal/dates"
)

func TestBuildGrid(t *testing.T) {
	g, err := BuildGrid(2023, 2030, dates.LocaleEnglish)
	if err != nil {
		t.Fatalf("BuildGrid() error = %v", err)
	}

	if len(g.Years) != 8 {
		t.Fatalf("len(Years) = %d, want 8", len(g.Years))
	}
	if g.Years[0].Year != 2023 || g.Years[7].Year != 2030 {
		t.Errorf("years = %d..%d", g.Years[0].Year, g.Years[7].Year)
	}
	if g.Years[0].Title != "Anno 2023" {
		t.Errorf("Title = %q, want Anno 2023", g.Years[0].Title)
	}

	for _, y := range g.Years {
		if len(y.Months) != 12 {
			t.Fatalf("year %d has %d months", y.Year, len(y.Months))
		}
	}

	jan := g.Years[0].Months[0]
	if jan.Name != "January" || jan.Month != 1 || jan.Year != 2023 {
		t.Errorf("first month = %+v", jan)
	}
}

func TestBuildGrid_InvalidRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
	}{
		{"inverted", 2030, 2023},
		{"zero year", 0, 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildGrid(tt.first, tt.last, dates.DefaultLocale); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuildMonth_Weeks(t *testing.T) {
	tests := []struct {
		name        string
		month, year int
		wantWeeks   int
		wantLastLen int
	}{
		{"February common year", 2, 2023, 4, 7},
		{"February leap year", 2, 2024, 5, 1},
		{"thirty days", 4, 2023, 5, 2},
		{"thirty-one days", 1, 2023, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildMonth(tt.month, tt.year, dates.LocaleEnglish)
			if err != nil {
				t.Fatalf("BuildMonth() error = %v", err)
			}
			if len(m.Weeks) != tt.wantWeeks {
				t.Fatalf("weeks = %d, want %d", len(m.Weeks), tt.wantWeeks)
			}
			if m.Weeks[0][0] != 1 {
				t.Errorf("first cell = %d, want 1", m.Weeks[0][0])
			}
			if got := len(m.Weeks[len(m.Weeks)-1]); got != tt.wantLastLen {
				t.Errorf("last week has %d days, want %d", got, tt.wantLastLen)
			}

			next := 1
			for _, week := range m.Weeks {
				for _, d := range week {
					if d != next {
						t.Fatalf("day %d out of order, want %d", d, next)
					}
					next++
				}
			}
		})
	}
}

func TestBuildMonth_OutOfRange(t *testing.T) {
	if _, err := BuildMonth(13, 2023, dates.DefaultLocale); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestGrid_Year(t *testing.T) {
	g, err := BuildGrid(2023, 2024, dates.DefaultLocale)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Year(2024); !ok {
		t.Error("expected 2024 in grid")
	}
	if _, ok := g.Year(2030); ok {
		t.Error("did not expect 2030 in grid")
	}
}
