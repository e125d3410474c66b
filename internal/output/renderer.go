// Package output writes dashboard events to a terminal or a pipe.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/atikulmunna/agribot/internal/model"
)

// Renderer writes events to an output stream.
type Renderer interface {
	Render(ev model.Event) error
}

var (
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // blue
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleKind    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleAlert   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true)
)

// LevelStyle returns the colour used for a log level badge.
func LevelStyle(l model.Level) lipgloss.Style {
	switch l {
	case model.LevelSuccess:
		return styleSuccess
	case model.LevelWarning:
		return styleWarning
	case model.LevelError:
		return styleError
	default:
		return styleInfo
	}
}

// LevelTag renders a padded, coloured level tag.
func LevelTag(l model.Level) string {
	return LevelStyle(l).Render(fmt.Sprintf("%-7s", l.Tag()))
}

// TextRenderer prints one coloured line per event.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(ev model.Event) error {
	line := FormatEvent(ev)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// FormatEvent renders ev as a single styled line, or "" for events with
// nothing to show.
func FormatEvent(ev model.Event) string {
	ts := ev.Time.Format("15:04:05")
	kind := styleKind.Render(fmt.Sprintf("%-10s", ev.Kind))

	switch ev.Kind {
	case model.EventLogAppended:
		if ev.Entry == nil {
			return ""
		}
		return fmt.Sprintf("%s %s %s %s", ts, kind, LevelTag(ev.Entry.Level), ev.Entry.Message)
	case model.EventLogCleared:
		return fmt.Sprintf("%s %s log cleared", ts, kind)
	case model.EventFeedState:
		return fmt.Sprintf("%s %s feed %s", ts, kind, ev.FeedState)
	case model.EventCommand:
		return fmt.Sprintf("%s %s %s", ts, kind, ev.Command)
	case model.EventTelemetry:
		if ev.Telemetry == nil {
			return ""
		}
		return fmt.Sprintf("%s %s %s", ts, kind, FormatTelemetry(*ev.Telemetry))
	}
	return ""
}

// FormatTelemetry summarises a telemetry snapshot on one line.
func FormatTelemetry(t model.Telemetry) string {
	obstacle := "clear"
	if t.ObstacleDetected {
		obstacle = styleAlert.Render("OBSTACLE")
	}
	tank := string(t.Tank)
	if t.Tank == model.TankEmpty {
		tank = styleAlert.Render(tank)
	}
	return fmt.Sprintf("moisture %.0f%% (%s) distance %.0fcm %s tank %s systems %d/3",
		t.MoisturePercent, t.MoistureStatus, t.Distance.Value, obstacle, tank, t.ActiveSystems)
}

// JSONRenderer prints each event as one JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(ev model.Event) error {
	return r.enc.Encode(ev)
}
