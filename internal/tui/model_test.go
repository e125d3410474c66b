package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/logbuf"
	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/session"
)

func stillTicker(time.Duration) (<-chan time.Time, func()) {
	return make(chan time.Time), func() {}
}

func newTestModel(t *testing.T) (Model, *session.Session) {
	t.Helper()
	cfg := config.Config{
		Port:              8080,
		Locale:            i18n.English,
		LogLevel:          "info",
		LogCapacity:       50,
		FeedInterval:      time.Hour,
		AutoFeed:          true,
		TelemetryInterval: time.Hour,
		ExportDir:         t.TempDir(),
	}
	sess, err := session.New(cfg, nil, session.WithTicker(stillTicker))
	if err != nil {
		t.Fatal(err)
	}
	sess.Start(context.Background())
	t.Cleanup(sess.Close)
	m := New(sess)
	t.Cleanup(m.Close)
	return m, sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestMovementKeysSendCommands(t *testing.T) {
	m, sess := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := sess.Controller.Last(); got != "FORWARD" {
		t.Errorf("expected FORWARD, got %q", got)
	}
	if !sess.Station.Snapshot().Systems.Motor {
		t.Error("expected motor on after forward")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if sess.Station.Snapshot().Systems.Motor {
		t.Error("expected motor off after stop")
	}

	update(t, m, runes("w"))
	if !sess.Station.Snapshot().Systems.Pump {
		t.Error("expected pump on after water")
	}
	if sess.Buffer.Len() != 8 {
		t.Errorf("expected 8 entries, got %d", sess.Buffer.Len())
	}
}

func TestFeedClearAndLocaleKeys(t *testing.T) {
	m, sess := newTestModel(t)

	m = update(t, m, runes("p"))
	if sess.Feed.State() != logbuf.StatePaused {
		t.Errorf("expected PAUSED, got %s", sess.Feed.State())
	}
	if m.status != "PAUSED" {
		t.Errorf("unexpected status %q", m.status)
	}

	m = update(t, m, runes("c"))
	if sess.Buffer.Len() != 0 {
		t.Errorf("expected empty buffer, got %d", sess.Buffer.Len())
	}

	update(t, m, runes("l"))
	if sess.Locale() != i18n.Hindi {
		t.Errorf("expected hi, got %s", sess.Locale())
	}
}

func TestExportKey(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("e"))
	if !strings.HasPrefix(m.status, "exported ") || !strings.HasSuffix(m.status, ".txt") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestThemeCycles(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 1; i <= len(themes); i++ {
		m = update(t, m, runes("t"))
		if m.themeIdx != i%len(themes) {
			t.Fatalf("step %d: theme %d", i, m.themeIdx)
		}
	}
}

func TestTelemetryEventUpdatesView(t *testing.T) {
	m, _ := newTestModel(t)
	tm := model.Telemetry{
		MoisturePercent: 12,
		MoistureStatus:  "dry",
		Tank:            model.TankEmpty,
		TankFill:        10,
		LastCommand:     "WEED",
	}
	next, cmd := m.Update(eventMsg(model.Event{Kind: model.EventTelemetry, Telemetry: &tm}))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a command waiting for the next event")
	}
	if m.telemetry.MoisturePercent != 12 || m.telemetry.Tank != model.TankEmpty {
		t.Errorf("telemetry not applied: %+v", m.telemetry)
	}

	view := m.View()
	for _, want := range []string{"Grevo Control Panel", "System Log", "EMPTY", "Dry"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyCtrlC}, closedMsg{}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%v: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected QuitMsg", msg)
		}
	}
}

func TestWaitEventCmdReportsClose(t *testing.T) {
	ch := make(chan model.Event, 1)
	ch <- model.Event{Kind: model.EventCommand, Command: "STOP"}
	close(ch)

	if msg, ok := waitEventCmd(ch)().(eventMsg); !ok || msg.Command != "STOP" {
		t.Errorf("unexpected first message %#v", msg)
	}
	if _, ok := waitEventCmd(ch)().(closedMsg); !ok {
		t.Error("expected closedMsg after channel close")
	}
}
