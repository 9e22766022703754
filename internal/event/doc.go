// Package event holds the events shown on a day-detail screen and the
// in-memory store that owns them.
//
// A Store keeps events in insertion order. Positions used by RemoveAt refer to
// that order, and FindByTime returns the first event whose time label matches,
// so two events sharing a slot are both kept while only the earlier one is
// shown. Each event gets a random UUID when it is created. Stores are never
// persisted; a new screen starts from its seed list again.
package event
