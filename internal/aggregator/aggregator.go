// Package aggregator keeps running counters over the dashboard event stream.
package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

// Window is the span used for the events-per-second rate.
const Window = 5 * time.Second

// Stats is a point-in-time snapshot of the counters.
type Stats struct {
	Uptime        string                    `json:"uptime"`
	TotalEvents   int64                     `json:"total_events"`
	EPS           float64                   `json:"eps"`
	KindCounts    map[model.EventKind]int64 `json:"kind_counts"`
	LevelCounts   map[model.Level]int64     `json:"level_counts"`
	Evicted       int64                     `json:"evicted"`
	Clears        int64                     `json:"clears"`
	Commands      int64                     `json:"commands"`
	LastCommand   string                    `json:"last_command,omitempty"`
	FeedState     string                    `json:"feed_state,omitempty"`
	DroppedEvents int64                     `json:"dropped_events"`
	Subscribers   int                       `json:"subscribers"`
}

// Source reports hub-side counters.
type Source interface {
	Dropped() int64
	Subscribers() int
}

// Aggregator consumes events from a hub subscription.
type Aggregator struct {
	mu          sync.RWMutex
	startTime   time.Time
	totalEvents int64
	kindCounts  map[model.EventKind]int64
	levelCounts map[model.Level]int64
	evicted     int64
	clears      int64
	commands    int64
	lastCommand string
	feedState   string
	window      []time.Time
	src         Source
	events      <-chan model.Event
	now         func() time.Time
}

// New creates an Aggregator reading events. src may be nil.
func New(events <-chan model.Event, src Source) *Aggregator {
	return &Aggregator{
		startTime:   time.Now(),
		kindCounts:  make(map[model.EventKind]int64),
		levelCounts: make(map[model.Level]int64),
		src:         src,
		events:      events,
		now:         time.Now,
	}
}

// Snapshot returns the current counters.
func (a *Aggregator) Snapshot() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	kinds := make(map[model.EventKind]int64, len(a.kindCounts))
	for k, v := range a.kindCounts {
		kinds[k] = v
	}
	levels := make(map[model.Level]int64, len(a.levelCounts))
	for k, v := range a.levelCounts {
		levels[k] = v
	}

	cutoff := a.now().Add(-Window)
	var recent int
	for _, t := range a.window {
		if t.After(cutoff) {
			recent++
		}
	}

	st := Stats{
		Uptime:      a.now().Sub(a.startTime).Truncate(time.Second).String(),
		TotalEvents: a.totalEvents,
		EPS:         float64(recent) / Window.Seconds(),
		KindCounts:  kinds,
		LevelCounts: levels,
		Evicted:     a.evicted,
		Clears:      a.clears,
		Commands:    a.commands,
		LastCommand: a.lastCommand,
		FeedState:   a.feedState,
	}
	if a.src != nil {
		st.DroppedEvents = a.src.Dropped()
		st.Subscribers = a.src.Subscribers()
	}
	return st
}

// Start consumes events until ctx is cancelled or the channel closes.
func (a *Aggregator) Start(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-a.events:
			if !ok {
				return
			}
			a.record(ev)
		case <-ticker.C:
			a.prune()
		}
	}
}

func (a *Aggregator) record(ev model.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalEvents++
	a.kindCounts[ev.Kind]++
	a.window = append(a.window, a.now())

	switch ev.Kind {
	case model.EventLogAppended:
		if ev.Entry != nil {
			a.levelCounts[ev.Entry.Level]++
		}
		a.evicted += int64(ev.Evicted)
	case model.EventLogCleared:
		a.clears++
	case model.EventCommand:
		a.commands++
		a.lastCommand = ev.Command
	case model.EventFeedState:
		a.feedState = ev.FeedState
	}
}

// prune drops window timestamps older than Window.
func (a *Aggregator) prune() {
	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := a.now().Add(-Window)
	i := 0
	for _, t := range a.window {
		if t.After(cutoff) {
			a.window[i] = t
			i++
		}
	}
	a.window = a.window[:i]
}
