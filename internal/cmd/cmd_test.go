package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atikulmunna/agribot/internal/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestTranslateCommand(t *testing.T) {
	out := execute(t, "translate", "--env-file", "", "--locale", "en", "nav.dashboard", "no.such.key")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "Dashboard" || lines[1] != "no.such.key" {
		t.Errorf("unexpected output %q", out)
	}

	out = execute(t, "translate", "--env-file", "", "--locale", "hi", "logs.title")
	if strings.TrimSpace(out) != "logs.title" {
		t.Errorf("expected key fallback for hi, got %q", out)
	}
}

func TestTranslateAllLocales(t *testing.T) {
	out := execute(t, "translate", "--env-file", "", "--locale", "en", "--all", "nav.logs")
	for _, want := range []string{"en  Logs", "ml  ലോഗുകൾ"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	translateAll = false
}

func TestPlansCommand(t *testing.T) {
	out := execute(t, "plans", "--env-file", "", "--locale", "en")
	for _, want := range []string{"1499", "15999", "27999", "11%", "7%", "Weather Predictions"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in plans output", want)
		}
	}
}

func TestShouldShow(t *testing.T) {
	warn := model.Event{Kind: model.EventLogAppended, Entry: &model.LogEntry{Level: model.LevelWarning}}
	info := model.Event{Kind: model.EventLogAppended, Entry: &model.LogEntry{Level: model.LevelInfo}}
	tick := model.Event{Kind: model.EventTelemetry}

	levels, err := parseLevelSet("warn, error")
	if err != nil {
		t.Fatal(err)
	}
	none := map[model.EventKind]bool{}

	tests := []struct {
		name   string
		ev     model.Event
		levels map[model.Level]bool
		kinds  map[model.EventKind]bool
		want   bool
	}{
		{"no filters", tick, nil, none, true},
		{"level match", warn, levels, none, true},
		{"level miss", info, levels, none, false},
		{"level hides telemetry", tick, levels, none, false},
		{"kind match", tick, nil, parseKindSet("telemetry"), true},
		{"kind miss", warn, nil, parseKindSet("telemetry,command"), false},
	}
	for _, tt := range tests {
		if got := shouldShow(tt.ev, tt.levels, tt.kinds); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestParseLevelSetRejectsUnknown(t *testing.T) {
	if _, err := parseLevelSet("info,loud"); !errors.Is(err, model.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}
