package events

import (
	"time"

	"github.com/slboard/slboard/pkg/board"
)

type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	EntryID  string `json:"entry_id"`
	SiteName string `json:"site_name"`

	Departure *board.Departure `json:"departure,omitempty"`
	Deviation string           `json:"deviation,omitempty"`
}

type EventType string

const (
	EventTypeDepartureCancelled   EventType = "DepartureCancelled"
	EventTypeStopDeviationCreated           = "StopDeviationCreated"
)
