package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/control"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/logbuf"
	"github.com/atikulmunna/agribot/internal/model"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Port:              8080,
		Locale:            i18n.English,
		LogLevel:          "info",
		LogCapacity:       50,
		FeedInterval:      time.Hour,
		AutoFeed:          true,
		TelemetryInterval: time.Hour,
		ExportDir:         t.TempDir(),
	}
}

// stillTicker never fires.
func stillTicker(time.Duration) (<-chan time.Time, func()) {
	return make(chan time.Time), func() {}
}

func TestStartupLog(t *testing.T) {
	s, err := New(testConfig(t), nil, WithTicker(stillTicker))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	logs := s.Buffer.Snapshot()
	if len(logs) != 5 {
		t.Fatalf("expected 5 startup entries, got %d", len(logs))
	}
	if logs[0].Level != model.LevelSuccess || logs[0].Message != "System initialized successfully" {
		t.Errorf("unexpected first entry %+v", logs[0])
	}
	if logs[4].Level != model.LevelError || logs[4].Message != "Water tank empty - refill required" {
		t.Errorf("unexpected last entry %+v", logs[4])
	}
}

func TestStartupLogFallsBackToKeys(t *testing.T) {
	cfg := testConfig(t)
	cfg.Locale = i18n.Hindi
	s, err := New(cfg, nil, WithTicker(stillTicker))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if got := s.Buffer.Snapshot()[0].Message; got != "logs.systemInit" {
		t.Errorf("expected untranslated key, got %q", got)
	}
}

func TestSeedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "seed.txt")
	os.WriteFile(cfg.SeedFile, []byte("[07:00:00] WARNING: old warning\nplain line\n"), 0o644)

	s, err := New(cfg, nil, WithTicker(stillTicker))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	logs := s.Buffer.Snapshot()
	if len(logs) != 2 {
		t.Fatalf("expected 2 seeded entries, got %d", len(logs))
	}
	if logs[0].Timestamp != "07:00:00" || logs[0].Level != model.LevelWarning {
		t.Errorf("expected restored entry, got %+v", logs[0])
	}

	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestStartAndClose(t *testing.T) {
	s, err := New(testConfig(t), nil, WithTicker(stillTicker))
	if err != nil {
		t.Fatal(err)
	}
	sub := s.Hub.Subscribe()

	s.Start(context.Background())
	s.Start(context.Background()) // no-op

	if s.Feed.State() != logbuf.StateLive {
		t.Errorf("expected LIVE after start, got %s", s.Feed.State())
	}
	if !s.Station.Running() {
		t.Error("expected station running")
	}

	if _, err := s.Controller.Send(control.Water); err != nil {
		t.Fatal(err)
	}
	if s.Buffer.Len() != 6 {
		t.Errorf("expected command log line, got %d entries", s.Buffer.Len())
	}
	if !s.Station.Snapshot().Systems.Pump {
		t.Error("expected pump on after WATER")
	}

	s.Close()
	s.Close()
	if s.Feed.State() != logbuf.StatePaused || s.Station.Running() {
		t.Error("expected timers stopped after Close")
	}

	var kinds []string
	for ev := range sub.Events {
		kinds = append(kinds, string(ev.Kind))
	}
	joined := strings.Join(kinds, ",")
	for _, want := range []string{"feed.state", "telemetry", "log.appended", "command"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %s event, got %v", want, kinds)
		}
	}
}

func TestAutoFeedOff(t *testing.T) {
	cfg := testConfig(t)
	cfg.AutoFeed = false
	s, _ := New(cfg, nil, WithTicker(stillTicker))
	s.Start(context.Background())
	defer s.Close()

	if s.Feed.State() != logbuf.StatePaused {
		t.Errorf("expected PAUSED with auto feed off, got %s", s.Feed.State())
	}
}

func TestLocaleCycle(t *testing.T) {
	s, _ := New(testConfig(t), nil, WithTicker(stillTicker))
	defer s.Close()

	var seen []i18n.Locale
	for range i18n.Supported {
		seen = append(seen, s.NextLocale())
	}
	if seen[len(seen)-1] != i18n.English {
		t.Errorf("expected cycle back to English, got %v", seen)
	}
	s.SetLocale(i18n.Marathi)
	if got := s.Translate(i18n.NavLogs); got != "लॉग्ज" {
		t.Errorf("expected Marathi label, got %q", got)
	}
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	now := time.Date(2026, 2, 17, 9, 0, 0, 0, time.UTC)
	s, _ := New(cfg, nil, WithTicker(stillTicker), WithClock(func() time.Time { return now }))
	defer s.Close()

	path, err := s.Export()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "agribot-logs-2026-02-17.txt" {
		t.Errorf("unexpected path %s", path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != s.Buffer.ExportText() {
		t.Errorf("expected export to match buffer, got %q", data)
	}
	if !strings.HasPrefix(string(data), "[09:00:00] SUCCESS: System initialized successfully") {
		t.Errorf("unexpected export head %q", data)
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := New(testConfig(t), nil, WithTicker(stillTicker))
	defer s.Close()

	snap := s.Snapshot()
	if snap.Locale != i18n.English || len(snap.Logs) != 5 || snap.Capacity != 50 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if len(snap.Telemetry.History) != 20 {
		t.Errorf("expected 20 history points, got %d", len(snap.Telemetry.History))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogCapacity = 0
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for zero capacity")
	}
}
