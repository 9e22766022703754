// Package calendar exports the events of a day screen as iCalendar data.
package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/logger"
)

const (
	ProductID = "-//calendario//calendario//IT"
	UIDDomain = "calendario"

	// EventDuration is the length given to every exported event.
	EventDuration = time.Hour
)

// GenerateICS builds an iCalendar document with one VEVENT per event on the
// given day. Events whose time label cannot be read as a clock time are
// skipped. The returned count is the number of VEVENTs written.
func GenerateICS(day dates.Date, events []*event.Event) (string, int) {
	return generateICS(day, events, time.Now().UTC())
}

func generateICS(day dates.Date, events []*event.Event, now time.Time) (string, int) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	written := 0
	for _, evt := range events {
		hour, minute, err := dates.ParseSlotTime(evt.Time)
		if err != nil {
			logger.Warn("Skipping event with unreadable time", logger.Fields{
				"event_id": evt.ID,
				"time":     evt.Time,
				"date":     day.String(),
			})
			continue
		}

		start := day.At(hour, minute)

		vevent := cal.AddEvent(evt.ID + "@" + UIDDomain)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(EventDuration))
		vevent.SetSummary(evt.Description)
		vevent.SetStatus(ics.ObjectStatusConfirmed)
		written++
	}

	return cal.Serialize(ics.WithNewLineWindows), written
}

// Filename suggests a download name for a day's export.
func Filename(day dates.Date) string {
	return "calendario-" + day.String() + ".ics"
}
