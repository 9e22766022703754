package view

import (
	"fmt"

	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/logger"
)

// EmptySlotLabel is shown for an hour without an event.
const EmptySlotLabel = "Nessun evento"

// Slot is one hour row of the day screen.
type Slot struct {
	Label string       `json:"label"`
	Event *event.Event `json:"event,omitempty"`
}

// Screen is one visit to a day-detail screen. It exclusively owns its store.
type Screen struct {
	ID   string
	Date dates.Date

	locale      dates.Locale
	monthName   string
	store       *event.Store
	revision    int
	unsubscribe func()
}

// NewScreen opens a day screen whose store starts from seed.
func NewScreen(date dates.Date, seed []event.Seed, locale dates.Locale) (*Screen, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	name, err := dates.MonthName(date.Month, locale)
	if err != nil {
		return nil, err
	}

	s := &Screen{
		ID:        event.GenerateID(),
		Date:      date,
		locale:    locale,
		monthName: name,
		store:     event.NewStore(seed),
	}
	s.unsubscribe = s.store.Subscribe(s.onChange)

	logger.IncrCounter("screens.created")
	logger.Debug("Day screen opened", logger.Fields{
		"screen_id": s.ID,
		"date":      date.String(),
		"events":    s.store.Len(),
	})
	return s, nil
}

func (s *Screen) onChange(c event.Change) {
	s.revision++
	logger.IncrCounter("events." + c.Kind.String())
	logger.Debug("Day screen changed", logger.Fields{
		"screen_id": s.ID,
		"change":    c.Kind.String(),
		"event_id":  c.Event.ID,
		"time":      c.Event.Time,
		"position":  c.Position,
		"revision":  s.revision,
	})
}

// Title is the heading of the screen, e.g. "20 novembre 2023".
func (s *Screen) Title() string {
	return fmt.Sprintf("%d %s %d", s.Date.Day, s.monthName, s.Date.Year)
}

// Slots returns the 24 hour rows, each with the first event at that hour.
func (s *Screen) Slots() []Slot {
	labels := dates.HourSlots()
	slots := make([]Slot, len(labels))
	for i, label := range labels {
		slots[i].Label = label
		if evt, ok := s.store.FindByTime(label); ok {
			slots[i].Event = evt
		}
	}
	return slots
}

// Submit validates the add-event form and appends the event.
func (s *Screen) Submit(f AddEventForm) (*event.Event, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.store.Add(f.Time, f.Description), nil
}

// Event looks up an event for the detail sheet.
func (s *Screen) Event(id string) (*event.Event, bool) {
	return s.store.FindByID(id)
}

// Delete removes an event from the detail sheet.
func (s *Screen) Delete(id string) error {
	return s.store.RemoveByID(id)
}

// Events returns all events in insertion order, including ones hidden by a
// duplicate time or by a label that is not an hour slot.
func (s *Screen) Events() []*event.Event {
	return s.store.Events()
}

// Revision counts the store changes seen since the screen opened.
func (s *Screen) Revision() int {
	return s.revision
}

// OnChange registers a renderer callback for store changes. Callbacks run
// after the revision has moved.
func (s *Screen) OnChange(fn event.Listener) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// Close detaches the screen from its store.
func (s *Screen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	logger.Debug("Day screen closed", logger.Fields{"screen_id": s.ID})
}
