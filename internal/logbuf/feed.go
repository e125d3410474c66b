package logbuf

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/schedule"
	"go.uber.org/zap"
)

// DefaultFeedInterval is how often the auto-feed emits a synthetic entry.
const DefaultFeedInterval = 3 * time.Second

// placeholder is replaced by a random integer in [0, 100).
const placeholder = "{}"

// State is the auto-feed mode shown on the log panel.
type State string

const (
	StateLive   State = "LIVE"
	StatePaused State = "PAUSED"
)

// Template is a synthetic message pattern.
type Template struct {
	Level  model.Level
	Format string
}

// DefaultTemplates is the robot's fixed set of background chatter.
var DefaultTemplates = []Template{
	{model.LevelInfo, "Moisture sensor reading: {}"},
	{model.LevelInfo, "Motor status updated"},
	{model.LevelSuccess, "Watering cycle completed"},
	{model.LevelWarning, "Low battery warning: {}%"},
	{model.LevelInfo, "GPS position updated"},
	{model.LevelSuccess, "Weed removal completed"},
	{model.LevelInfo, "Temperature: {}°C, Humidity: {}%"},
}

// Appender is the part of Buffer the feed needs.
type Appender interface {
	Append(level model.Level, message string) model.LogEntry
}

// FeedOption customises a Feed.
type FeedOption func(*Feed)

// WithFeedInterval sets the emission period.
func WithFeedInterval(d time.Duration) FeedOption {
	return func(f *Feed) { f.interval = d }
}

// WithTemplates replaces DefaultTemplates.
func WithTemplates(t []Template) FeedOption {
	return func(f *Feed) {
		if len(t) > 0 {
			f.templates = t
		}
	}
}

// WithFeedRand sets the random source.
func WithFeedRand(r *rand.Rand) FeedOption {
	return func(f *Feed) {
		if r != nil {
			f.rng = r
		}
	}
}

// WithFeedTicker replaces the tick source.
func WithFeedTicker(t schedule.TickerFunc) FeedOption {
	return func(f *Feed) { f.ticker = t }
}

// WithFeedPublisher reports LIVE/PAUSED transitions.
func WithFeedPublisher(p model.Publisher) FeedOption {
	return func(f *Feed) {
		if p != nil {
			f.pub = p
		}
	}
}

// WithFeedLogger attaches a logger.
func WithFeedLogger(l *zap.Logger) FeedOption {
	return func(f *Feed) {
		if l != nil {
			f.log = l
		}
	}
}

// Feed periodically appends synthetic entries to a buffer.
type Feed struct {
	buf       Appender
	interval  time.Duration
	templates []Template
	ticker    schedule.TickerFunc
	pub       model.Publisher
	log       *zap.Logger
	task      *schedule.Task

	// ctl serialises Start/Stop so state events are published in order.
	ctl sync.Mutex

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewFeed builds a paused feed writing into buf.
func NewFeed(buf Appender, opts ...FeedOption) (*Feed, error) {
	f := &Feed{
		buf:       buf,
		interval:  DefaultFeedInterval,
		templates: DefaultTemplates,
		pub:       model.Discard,
		log:       zap.NewNop(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(f)
	}
	task, err := schedule.New(f.interval, f.emit, f.ticker)
	if err != nil {
		return nil, err
	}
	task.OnExit(func() {
		f.log.Info("log auto-feed paused", zap.String("reason", "context done"))
		f.pub.Publish(model.Event{Kind: model.EventFeedState, Time: time.Now(), FeedState: string(StatePaused)})
	})
	f.task = task
	return f, nil
}

// Start switches the feed to LIVE. Calling it while live is a no-op and
// returns false.
func (f *Feed) Start(ctx context.Context) bool {
	f.ctl.Lock()
	defer f.ctl.Unlock()
	if !f.task.Start(ctx) {
		return false
	}
	f.log.Info("log auto-feed live", zap.Duration("interval", f.interval))
	f.pub.Publish(model.Event{Kind: model.EventFeedState, Time: time.Now(), FeedState: string(StateLive)})
	return true
}

// Stop switches the feed to PAUSED and waits for the ticker to exit. Calling
// it while paused is a no-op and returns false. A feed whose Start context is
// cancelled also publishes PAUSED.
func (f *Feed) Stop() bool {
	f.ctl.Lock()
	defer f.ctl.Unlock()
	if !f.task.Stop() {
		return false
	}
	f.log.Info("log auto-feed paused")
	f.pub.Publish(model.Event{Kind: model.EventFeedState, Time: time.Now(), FeedState: string(StatePaused)})
	return true
}

// Toggle flips between LIVE and PAUSED and returns the new state.
func (f *Feed) Toggle(ctx context.Context) State {
	if f.State() == StateLive {
		f.Stop()
		return StatePaused
	}
	f.Start(ctx)
	return StateLive
}

// State reports LIVE while the ticker runs, PAUSED otherwise.
func (f *Feed) State() State {
	if f.task.Running() {
		return StateLive
	}
	return StatePaused
}

// Interval returns the emission period.
func (f *Feed) Interval() time.Duration {
	return f.interval
}

// Generate draws one synthetic message without appending it.
func (f *Feed) Generate() (model.Level, string) {
	f.rngMu.Lock()
	defer f.rngMu.Unlock()

	tpl := f.templates[f.rng.Intn(len(f.templates))]
	msg := tpl.Format
	for strings.Contains(msg, placeholder) {
		msg = strings.Replace(msg, placeholder, strconv.Itoa(f.rng.Intn(100)), 1)
	}
	return tpl.Level, msg
}

func (f *Feed) emit(time.Time) {
	level, msg := f.Generate()
	f.buf.Append(level, msg)
}
