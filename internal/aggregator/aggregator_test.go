package aggregator

import (
	"context"
	"testing"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

type fakeSource struct{}

func (fakeSource) Dropped() int64   { return 7 }
func (fakeSource) Subscribers() int { return 2 }

func appended(level model.Level, evicted int) model.Event {
	return model.Event{Kind: model.EventLogAppended, Entry: &model.LogEntry{Level: level}, Evicted: evicted}
}

func TestEPSCalculation(t *testing.T) {
	ch := make(chan model.Event, 100)
	agg := New(ch, fakeSource{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go agg.Start(ctx)

	for i := 0; i < 10; i++ {
		ch <- appended(model.LevelInfo, 0)
	}
	time.Sleep(200 * time.Millisecond)

	stats := agg.Snapshot()
	if stats.TotalEvents != 10 {
		t.Errorf("expected 10 total events, got %d", stats.TotalEvents)
	}
	if stats.EPS != 2 {
		t.Errorf("expected 2 eps over the window, got %f", stats.EPS)
	}
	if stats.DroppedEvents != 7 || stats.Subscribers != 2 {
		t.Errorf("expected hub counters, got %+v", stats)
	}
}

func TestRecordCounters(t *testing.T) {
	agg := New(nil, nil)

	agg.record(appended(model.LevelInfo, 0))
	agg.record(appended(model.LevelInfo, 1))
	agg.record(appended(model.LevelError, 1))
	agg.record(model.Event{Kind: model.EventLogCleared})
	agg.record(model.Event{Kind: model.EventCommand, Command: "FORWARD"})
	agg.record(model.Event{Kind: model.EventCommand, Command: "WATER"})
	agg.record(model.Event{Kind: model.EventFeedState, FeedState: "PAUSED"})
	agg.record(model.Event{Kind: model.EventTelemetry})

	s := agg.Snapshot()
	if s.LevelCounts[model.LevelInfo] != 2 || s.LevelCounts[model.LevelError] != 1 {
		t.Errorf("unexpected level counts %v", s.LevelCounts)
	}
	if s.Evicted != 2 || s.Clears != 1 {
		t.Errorf("expected 2 evicted and 1 clear, got %d and %d", s.Evicted, s.Clears)
	}
	if s.Commands != 2 || s.LastCommand != "WATER" {
		t.Errorf("expected 2 commands ending in WATER, got %d %q", s.Commands, s.LastCommand)
	}
	if s.FeedState != "PAUSED" {
		t.Errorf("expected PAUSED, got %q", s.FeedState)
	}
	if s.KindCounts[model.EventTelemetry] != 1 || s.TotalEvents != 8 {
		t.Errorf("unexpected kind counts %v", s.KindCounts)
	}
}

func TestPruneDropsOldTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)
	agg := New(nil, nil)
	agg.now = func() time.Time { return now }

	agg.record(appended(model.LevelInfo, 0))
	now = now.Add(10 * time.Second)
	agg.record(appended(model.LevelInfo, 0))
	agg.prune()

	if len(agg.window) != 1 {
		t.Errorf("expected 1 timestamp after prune, got %d", len(agg.window))
	}
	if s := agg.Snapshot(); s.EPS != 0.2 || s.TotalEvents != 2 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestStopsOnClosedChannel(t *testing.T) {
	ch := make(chan model.Event)
	agg := New(ch, nil)
	done := make(chan struct{})
	go func() {
		agg.Start(context.Background())
		close(done)
	}()
	close(ch)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Start to return on closed channel")
	}
}
