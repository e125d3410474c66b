// Package control turns manual dashboard commands into robot state changes
// and log lines. Commands never leave the process.
package control

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/model"
)

// ErrUnknownCommand is returned for anything outside Commands.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a manual robot instruction.
type Command string

const (
	Forward  Command = "FORWARD"
	Left     Command = "LEFT"
	Stop     Command = "STOP"
	Right    Command = "RIGHT"
	Backward Command = "BACKWARD"
	Water    Command = "WATER"
	Weed     Command = "WEED"
)

// Commands lists movement commands first, then actions.
var Commands = []Command{Forward, Left, Stop, Right, Backward, Water, Weed}

var labelKeys = map[Command]i18n.Key{
	Forward:  i18n.ControlsForward,
	Left:     i18n.ControlsLeft,
	Stop:     i18n.ControlsStop,
	Right:    i18n.ControlsRight,
	Backward: i18n.ControlsBackward,
	Water:    i18n.ControlsWater,
	Weed:     i18n.ControlsWeed,
}

// ParseCommand is case-insensitive.
func ParseCommand(s string) (Command, error) {
	c := Command(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := labelKeys[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return c, nil
}

// LabelKey is the translation key of the command's button label.
func (c Command) LabelKey() i18n.Key {
	return labelKeys[c]
}

// Movement reports whether c drives the wheels.
func (c Command) Movement() bool {
	switch c {
	case Forward, Left, Right, Backward:
		return true
	}
	return false
}

// Apply updates actuator state for c.
func (c Command) Apply(s *model.Systems) {
	switch {
	case c.Movement():
		s.Motor = true
	case c == Stop:
		s.Motor = false
	case c == Water:
		s.Pump = true
	case c == Weed:
		s.Weeder = true
	}
}

// Robot is the actuator state a Controller drives.
type Robot interface {
	UpdateSystems(command string, fn func(*model.Systems)) model.Telemetry
}

// Appender receives the command log line.
type Appender interface {
	Append(level model.Level, message string) model.LogEntry
}

// Controller dispatches commands.
type Controller struct {
	robot  Robot
	log    Appender
	pub    model.Publisher
	label  func(i18n.Key) string
	now    func() time.Time
	logger *zap.Logger

	mu   sync.Mutex
	last Command
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher routes command events to p.
func WithPublisher(p model.Publisher) Option {
	return func(c *Controller) { c.pub = p }
}

// WithLabels sets how button labels are resolved, usually a catalog bound
// to the session locale.
func WithLabels(fn func(i18n.Key) string) Option {
	return func(c *Controller) { c.label = fn }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller. robot and log are required.
func New(robot Robot, log Appender, opts ...Option) *Controller {
	c := &Controller{
		robot:  robot,
		log:    log,
		pub:    model.Discard,
		label:  func(k i18n.Key) string { return i18n.Default.Translate(i18n.English, k) },
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send applies cmd and returns the log entry it produced.
func (c *Controller) Send(cmd Command) (model.LogEntry, error) {
	if _, ok := labelKeys[cmd]; !ok {
		return model.LogEntry{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	c.mu.Lock()
	c.last = cmd
	c.mu.Unlock()

	c.robot.UpdateSystems(string(cmd), cmd.Apply)
	entry := c.log.Append(model.LevelInfo, c.label(cmd.LabelKey())+" command sent to AgriBot")
	c.pub.Publish(model.Event{Kind: model.EventCommand, Time: c.now(), Command: string(cmd)})

	c.logger.Info("command sent", zap.String("command", string(cmd)))
	return entry, nil
}

// SendString parses and sends s.
func (c *Controller) SendString(s string) (model.LogEntry, error) {
	cmd, err := ParseCommand(s)
	if err != nil {
		return model.LogEntry{}, err
	}
	return c.Send(cmd)
}

// Last returns the most recent command, or "" before any.
func (c *Controller) Last() Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
