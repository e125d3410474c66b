package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

var at = time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	ev := model.Event{
		Kind:  model.EventLogAppended,
		Time:  at,
		Entry: &model.LogEntry{ID: 4, Timestamp: "12:00:00", Level: model.LevelError, Message: "Water tank empty"},
	}
	if err := r.Render(ev); err != nil {
		t.Fatal(err)
	}

	var got model.Event
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}
	if got.Kind != model.EventLogAppended || got.Entry == nil || got.Entry.ID != 4 {
		t.Errorf("unexpected event %+v", got)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("expected newline-delimited output")
	}
}

func TestTextRendererLogLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	err := r.Render(model.Event{
		Kind:  model.EventLogAppended,
		Time:  at,
		Entry: &model.LogEntry{Level: model.LevelWarning, Message: "Low battery warning: 12%"},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"12:00:00", "WARNING", "Low battery warning: 12%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestTextRendererSkipsEmptyEvents(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Render(model.Event{Kind: model.EventLogAppended, Time: at})
	r.Render(model.Event{Kind: model.EventTelemetry, Time: at})
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFormatTelemetry(t *testing.T) {
	line := FormatTelemetry(model.Telemetry{
		MoisturePercent:  63,
		MoistureStatus:   "moderate",
		Distance:         model.Reading{Value: 12},
		ObstacleDetected: true,
		Tank:             model.TankOK,
		ActiveSystems:    2,
	})
	for _, want := range []string{"moisture 63% (moderate)", "distance 12cm", "OBSTACLE", "tank OK", "systems 2/3"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
}

func TestFormatEventKinds(t *testing.T) {
	tests := []struct {
		ev   model.Event
		want string
	}{
		{model.Event{Kind: model.EventLogCleared, Time: at}, "log cleared"},
		{model.Event{Kind: model.EventFeedState, Time: at, FeedState: "PAUSED"}, "feed PAUSED"},
		{model.Event{Kind: model.EventCommand, Time: at, Command: "WATER"}, "WATER"},
	}
	for _, tt := range tests {
		if got := FormatEvent(tt.ev); !strings.Contains(got, tt.want) {
			t.Errorf("%s: expected %q in %q", tt.ev.Kind, tt.want, got)
		}
	}
}
