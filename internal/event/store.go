package event

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by RemoveAt for a position outside the store.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned by RemoveByID when no event has the identifier.
	ErrNotFound = errors.New("event not found")
)

// ChangeKind tells listeners what happened to the store.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is delivered to listeners after every successful mutation.
// Position is where the event was appended or where it was removed from.
type Change struct {
	Kind     ChangeKind
	Event    *Event
	Position int
}

// Listener receives change notifications.
type Listener func(Change)

// Store is an ordered, in-memory collection of events for one day.
//
// A Store is not safe for concurrent use. It belongs to a single screen and
// is only touched by whoever currently drives that screen.
type Store struct {
	events    []*Event
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store holding one event per seed, in seed order.
func NewStore(seed []Seed) *Store {
	s := &Store{
		events: make([]*Event, 0, len(seed)),
	}
	for _, sd := range seed {
		s.events = append(s.events, NewEvent(sd.Time, sd.Description))
	}
	return s
}

// Add appends a new event and returns it. Neither field is validated here;
// forms reject empty input before calling Add.
func (s *Store) Add(time, description string) *Event {
	evt := NewEvent(time, description)
	s.events = append(s.events, evt)
	s.notify(Change{Kind: Added, Event: evt, Position: len(s.events) - 1})
	return evt
}

// RemoveAt removes the event at a zero-based position in insertion order.
// Later events shift down by one.
func (s *Store) RemoveAt(position int) error {
	if position < 0 || position >= len(s.events) {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, position, len(s.events))
	}
	evt := s.events[position]
	s.events = append(s.events[:position], s.events[position+1:]...)
	s.notify(Change{Kind: Removed, Event: evt, Position: position})
	return nil
}

// RemoveByID removes the event with the given identifier.
func (s *Store) RemoveByID(id string) error {
	pos, ok := s.IndexOf(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.RemoveAt(pos)
}

// FindByTime returns the first event, in insertion order, whose time equals
// the given label.
func (s *Store) FindByTime(time string) (*Event, bool) {
	for _, evt := range s.events {
		if evt.Time == time {
			return evt, true
		}
	}
	return nil, false
}

// FindByID returns the event with the given identifier.
func (s *Store) FindByID(id string) (*Event, bool) {
	pos, ok := s.IndexOf(id)
	if !ok {
		return nil, false
	}
	return s.events[pos], true
}

// IndexOf returns the current position of the event with the given identifier.
func (s *Store) IndexOf(id string) (int, bool) {
	for i, evt := range s.events {
		if evt.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Events returns the events in insertion order. The slice is a copy; the
// events themselves are shared.
func (s *Store) Events() []*Event {
	out := make([]*Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of events.
func (s *Store) Len() int {
	return len(s.events)
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners run synchronously, in subscription order, after each mutation.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	subs := s.listeners
	for _, sub := range subs {
		sub.fn(c)
	}
}
