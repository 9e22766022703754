package view

import (
	"fmt"

	"github.com/pfrederiksen/calendario/internal/dates"
)

// DaysPerWeek is the number of columns in a month grid.
const DaysPerWeek = 7

// Grid is the scrollable multi-year calendar.
type Grid struct {
	Years []Year `json:"years"`
}

// Year is one section of the grid.
type Year struct {
	Year   int     `json:"year"`
	Title  string  `json:"title"`
	Months []Month `json:"months"`
}

// Month lists its days in rows of DaysPerWeek. The first row always starts
// with day 1; the last row may be short.
type Month struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Name  string  `json:"name"`
	Weeks [][]int `json:"weeks"`
}

// BuildGrid creates the grid for firstYear..lastYear inclusive.
func BuildGrid(firstYear, lastYear int, locale dates.Locale) (*Grid, error) {
	if firstYear <= 0 || lastYear < firstYear {
		return nil, fmt.Errorf("invalid year range %d..%d", firstYear, lastYear)
	}

	g := &Grid{Years: make([]Year, 0, lastYear-firstYear+1)}
	for y := firstYear; y <= lastYear; y++ {
		year := Year{
			Year:   y,
			Title:  fmt.Sprintf("Anno %d", y),
			Months: make([]Month, 0, 12),
		}
		for m := 1; m <= 12; m++ {
			month, err := BuildMonth(m, y, locale)
			if err != nil {
				return nil, err
			}
			year.Months = append(year.Months, month)
		}
		g.Years = append(g.Years, year)
	}
	return g, nil
}

// BuildMonth creates a single month of the grid.
func BuildMonth(month, year int, locale dates.Locale) (Month, error) {
	name, err := dates.MonthName(month, locale)
	if err != nil {
		return Month{}, err
	}
	days, err := dates.DaysInMonth(month, year)
	if err != nil {
		return Month{}, err
	}
	return Month{
		Year:  year,
		Month: month,
		Name:  name,
		Weeks: chunk(days, DaysPerWeek),
	}, nil
}

// Year returns the section for y, if the grid contains it.
func (g *Grid) Year(y int) (Year, bool) {
	for _, year := range g.Years {
		if year.Year == y {
			return year, true
		}
	}
	return Year{}, false
}

func chunk(days []int, size int) [][]int {
	weeks := make([][]int, 0, (len(days)+size-1)/size)
	for start := 0; start < len(days); start += size {
		end := start + size
		if end > len(days) {
			end = len(days)
		}
		weeks = append(weeks, days[start:end])
	}
	return weeks
}
