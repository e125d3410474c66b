package model

import "time"

// EventKind identifies what changed.
type EventKind string

const (
	EventLogAppended EventKind = "log.appended"
	EventLogCleared  EventKind = "log.cleared"
	EventTelemetry   EventKind = "telemetry"
	EventFeedState   EventKind = "feed.state"
	EventCommand     EventKind = "command"
)

// Event is a change notification published whenever dashboard state mutates.
type Event struct {
	Kind      EventKind  `json:"kind"`
	Time      time.Time  `json:"time"`
	Entry     *LogEntry  `json:"entry,omitempty"`
	Evicted   int        `json:"evicted,omitempty"`
	Telemetry *Telemetry `json:"telemetry,omitempty"`
	FeedState string     `json:"feed_state,omitempty"`
	Command   string     `json:"command,omitempty"`
}

// Publisher receives change notifications. Implementations must not block.
type Publisher interface {
	Publish(Event)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Event)

func (f PublisherFunc) Publish(ev Event) { f(ev) }

// Discard drops every event.
var Discard Publisher = PublisherFunc(func(Event) {})
