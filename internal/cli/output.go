package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/view"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// DayResult is the JSON shape of a day screen.
type DayResult struct {
	Date     dates.Date     `json:"date"`
	Title    string         `json:"title"`
	Revision int            `json:"revision"`
	Slots    []view.Slot    `json:"slots"`
	Events   []*event.Event `json:"events"`
}

// WriteGrid writes the month grid in the specified format
func WriteGrid(w io.Writer, g *view.Grid, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, g)
	case FormatText:
		return writeGridText(w, g)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteDay writes the 24 slots of a day screen in the specified format
func WriteDay(w io.Writer, s *view.Screen, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, DayResult{
			Date:     s.Date,
			Title:    s.Title(),
			Revision: s.Revision(),
			Slots:    s.Slots(),
			Events:   s.Events(),
		})
	case FormatText:
		return writeDayText(w, s)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeGridText(w io.Writer, g *view.Grid) error {
	for _, y := range g.Years {
		fmt.Fprintf(w, "%s\n", y.Title)
		for _, m := range y.Months {
			fmt.Fprintf(w, "\n%s\n", m.Name)
			for _, week := range m.Weeks {
				cells := make([]string, len(week))
				for i, d := range week {
					cells[i] = fmt.Sprintf("%2d", d)
				}
				fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  "))
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeDayText(w io.Writer, s *view.Screen) error {
	fmt.Fprintf(w, "%s\n\n", s.Title())
	for _, slot := range s.Slots() {
		if slot.Event != nil {
			fmt.Fprintf(w, "%s  %s\n", slot.Label, slot.Event.Description)
		} else {
			fmt.Fprintf(w, "%s  %s\n", slot.Label, view.EmptySlotLabel)
		}
	}
	return nil
}

// writeEventDetail prints the detail sheet of one event.
func writeEventDetail(w io.Writer, evt *event.Event) {
	fmt.Fprintln(w, "Dettagli evento")
	fmt.Fprintf(w, "Ora: %s\n", evt.Time)
	fmt.Fprintf(w, "Descrizione: %s\n", evt.Description)
}

// writeEventList prints every event in insertion order, including ones no
// slot shows.
func writeEventList(w io.Writer, events []*event.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "Nessun evento")
		return
	}
	for i, evt := range events {
		fmt.Fprintf(w, "%d. %s  %s\n", i, evt.Time, evt.Description)
	}
}
