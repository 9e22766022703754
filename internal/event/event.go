package event

import "github.com/google/uuid"

// Event is a user-created entry on a day screen.
type Event struct {
	ID          string `json:"id"`
	Time        string `json:"time"` // hour slot label such as "14:00"
	Description string `json:"description"`
}

// Seed describes an event a store starts with.
type Seed struct {
	Time        string `json:"time" yaml:"time"`
	Description string `json:"description" yaml:"description"`
}

// GenerateID returns a fresh random identifier.
func GenerateID() string {
	return uuid.NewString()
}

// NewEvent creates an Event with a generated ID.
func NewEvent(time, description string) *Event {
	return &Event{
		ID:          GenerateID(),
		Time:        time,
		Description: description,
	}
}

// DefaultSeed returns the example events every new day screen shows.
func DefaultSeed() []Seed {
	return []Seed{
		{Time: "10:00", Description: "Meeting"},
		{Time: "14:30", Description: "Lunch"},
		{Time: "18:00", Description: "Gym"},
	}
}
