// Package session wires one dashboard together: the event hub, the log
// buffer and its auto-feed, the simulated robot, manual controls, stats and
// the translation catalog.
package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/aggregator"
	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/control"
	"github.com/atikulmunna/agribot/internal/export"
	"github.com/atikulmunna/agribot/internal/hub"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/logbuf"
	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/parser"
	"github.com/atikulmunna/agribot/internal/schedule"
	"github.com/atikulmunna/agribot/internal/telemetry"
)

// startup is the log shown when a dashboard opens without a seed file.
var startup = []struct {
	level model.Level
	key   i18n.Key
}{
	{model.LevelSuccess, i18n.LogsSystemInit},
	{model.LevelInfo, i18n.LogsConnected},
	{model.LevelInfo, i18n.LogsCalibration},
	{model.LevelWarning, i18n.LogsObstacleDetected},
	{model.LevelError, i18n.LogsTankEmpty},
}

// Snapshot is the full dashboard state, sent to clients when they connect.
type Snapshot struct {
	Locale    i18n.Locale      `json:"locale"`
	FeedState logbuf.State     `json:"feed_state"`
	Capacity  int              `json:"capacity"`
	Logs      []model.LogEntry `json:"logs"`
	Telemetry model.Telemetry  `json:"telemetry"`
	Stats     aggregator.Stats `json:"stats"`
}

// Option customises a Session, mostly for tests.
type Option func(*options)

type options struct {
	ticker schedule.TickerFunc
	now    func() time.Time
}

// WithTicker drives both the feed and the station from t.
func WithTicker(t schedule.TickerFunc) Option {
	return func(o *options) { o.ticker = t }
}

// WithClock overrides time.Now for log timestamps and exports.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Session owns every component of one dashboard.
type Session struct {
	Hub        *hub.Hub
	Buffer     *logbuf.Buffer
	Feed       *logbuf.Feed
	Station    *telemetry.Station
	Controller *control.Controller
	Stats      *aggregator.Aggregator
	Catalog    *i18n.Catalog

	cfg    config.Config
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	locale i18n.Locale

	startOnce sync.Once
	closeOnce sync.Once
	runCtx    context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a session from cfg and seeds its log.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:     cfg,
		logger:  logger,
		now:     o.now,
		locale:  cfg.Locale,
		Catalog: i18n.NewCatalog(),
		Hub:     hub.New(hub.WithLogger(logger.Named("hub"))),
	}

	if pattern := cfg.CatalogPattern(); pattern != "" {
		n, err := s.Catalog.LoadGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("load translations: %w", err)
		}
		logger.Info("translations loaded", zap.String("pattern", pattern), zap.Int("entries", n))
	}

	var err error
	s.Buffer, err = logbuf.New(cfg.LogCapacity, logbuf.WithClock(s.now), logbuf.WithPublisher(s.Hub))
	if err != nil {
		return nil, err
	}
	s.Feed, err = logbuf.NewFeed(s.Buffer,
		logbuf.WithFeedInterval(cfg.FeedInterval),
		logbuf.WithFeedTicker(o.ticker),
		logbuf.WithFeedPublisher(s.Hub),
		logbuf.WithFeedLogger(logger.Named("feed")))
	if err != nil {
		return nil, err
	}
	s.Station, err = telemetry.NewStation(
		telemetry.WithInterval(cfg.TelemetryInterval),
		telemetry.WithTicker(o.ticker),
		telemetry.WithPublisher(s.Hub),
		telemetry.WithStationClock(s.now),
		telemetry.WithLogger(logger.Named("telemetry")))
	if err != nil {
		return nil, err
	}
	s.Controller = control.New(s.Station, s.Buffer,
		control.WithPublisher(s.Hub),
		control.WithLabels(s.Translate),
		control.WithClock(s.now),
		control.WithLogger(logger.Named("control")))
	s.Stats = aggregator.New(s.Hub.Subscribe().Events, s.Hub)

	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) seed() error {
	if s.cfg.SeedFile == "" {
		for _, e := range startup {
			s.Buffer.Append(e.level, s.Translate(e.key))
		}
		return nil
	}

	f, err := os.Open(s.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	recs, err := parser.ParseAll(f, parser.NewAutoParser())
	if err != nil {
		return err
	}
	for _, r := range recs {
		if r.Timestamp == "" {
			s.Buffer.Append(r.Level, r.Message)
		} else {
			s.Buffer.Restore(r.Level, r.Message, r.Timestamp)
		}
	}
	s.logger.Info("log seeded", zap.String("file", s.cfg.SeedFile), zap.Int("entries", len(recs)))
	return nil
}

// Start runs the timers until ctx is cancelled or Close is called. The
// auto-feed starts LIVE unless log.auto_feed is off.
func (s *Session) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.mu.Lock()
		ctx, s.cancel = context.WithCancel(ctx)
		s.runCtx = ctx
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.Stats.Start(ctx)
		}()

		s.Station.Start(ctx)
		if s.cfg.AutoFeed {
			s.Feed.Start(ctx)
		}
		if pattern := s.cfg.CatalogPattern(); pattern != "" {
			if err := s.Catalog.Watch(ctx, pattern, s.logger.Named("i18n")); err != nil {
				s.logger.Warn("translation reload disabled", zap.Error(err))
			}
		}
	})
}

// Close stops every timer, closes the hub and waits for background work.
// Safe to call more than once and before Start.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.RLock()
		cancel := s.cancel
		s.mu.RUnlock()
		if cancel != nil {
			cancel()
		}
		s.Feed.Stop()
		s.Station.Stop()
		s.Hub.Close()
		s.wg.Wait()
	})
}

// Context is cancelled when the session closes. Before Start it is
// context.Background().
func (s *Session) Context() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.runCtx == nil {
		return context.Background()
	}
	return s.runCtx
}

// Locale returns the display locale.
func (s *Session) Locale() i18n.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale changes the display locale. Existing log lines keep their text.
func (s *Session) SetLocale(l i18n.Locale) {
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
}

// NextLocale cycles through i18n.Supported and returns the new locale.
func (s *Session) NextLocale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range i18n.Supported {
		if l == s.locale {
			s.locale = i18n.Supported[(i+1)%len(i18n.Supported)]
			return s.locale
		}
	}
	s.locale = i18n.English
	return s.locale
}

// Translate resolves key in the current locale.
func (s *Session) Translate(key i18n.Key) string {
	return s.Catalog.Translate(s.Locale(), key)
}

// Snapshot captures the whole dashboard.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Locale:    s.Locale(),
		FeedState: s.Feed.State(),
		Capacity:  s.Buffer.Capacity(),
		Logs:      s.Buffer.Snapshot(),
		Telemetry: s.Station.Snapshot(),
		Stats:     s.Stats.Snapshot(),
	}
}

// Export writes the current log to the configured export directory.
func (s *Session) Export() (string, error) {
	path, err := export.WriteFile(s.cfg.ExportDir, s.now(), s.Buffer.ExportText())
	if err != nil {
		return "", err
	}
	s.logger.Info("log exported", zap.String("path", path), zap.Int("entries", s.Buffer.Len()))
	return path, nil
}

// Config returns the settings the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Now is the session clock.
func (s *Session) Now() time.Time {
	return s.now()
}

// Logger is the logger the session was built with.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}
