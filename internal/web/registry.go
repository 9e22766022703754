package web

import (
	"sync"

	"github.com/pfrederiksen/calendario/internal/logger"
	"github.com/pfrederiksen/calendario/internal/view"
)

// screenEntry serializes access to one screen so its store only ever has a
// single caller at a time.
type screenEntry struct {
	mu     sync.Mutex
	screen *view.Screen
}

// screenRegistry keeps the day screens currently open in browsers. When full,
// the oldest screen is closed to make room.
type screenRegistry struct {
	mu      sync.Mutex
	max     int
	entries map[string]*screenEntry
	order   []string
}

func newScreenRegistry(max int) *screenRegistry {
	return &screenRegistry{
		max:     max,
		entries: make(map[string]*screenEntry),
	}
}

func (r *screenRegistry) add(s *view.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		if e, ok := r.entries[oldest]; ok {
			delete(r.entries, oldest)
			e.mu.Lock()
			e.screen.Close()
			e.mu.Unlock()
			logger.Debug("Evicted day screen", logger.Fields{"screen_id": oldest})
		}
	}

	r.entries[s.ID] = &screenEntry{screen: s}
	r.order = append(r.order, s.ID)
	logger.SetGauge("screens.open", float64(len(r.entries)))
}

func (r *screenRegistry) get(id string) (*screenEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	return e, ok
}

func (r *screenRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
