package telemetry

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/atikulmunna/agribot/internal/mathx"
	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/schedule"
	"go.uber.org/zap"
)

const (
	DefaultInterval = 2 * time.Second

	MoistureFullScale = 1023.0
	ObstacleThreshold = 20.0 // cm; closer than this stops the robot
	SafetyRange       = 50.0 // cm that count as a 100% clear path
	HistoryLength     = 20

	tankFillOK    = 75
	tankFillEmpty = 10

	statusRerollChance = 0.1
	pumpOnThreshold    = 0.7
	weederOnThreshold  = 0.8
)

// Default metric configurations for the robot's sensors.
var (
	MoistureConfig = Config{Metric: "soil_moisture", Unit: "raw", Min: 200, Max: 1023, Seed: 650, Delta: 20}
	DistanceConfig = Config{Metric: "obstacle_distance", Unit: "cm", Min: 5, Max: 100, Seed: 45, Delta: 5}
	ChartConfig    = Config{Metric: "moisture_history", Unit: "raw", Min: 0, Max: 1023, Seed: 600, Delta: 40, Amplitude: 20, Rate: 1}
)

// MoistureStatus buckets a moisture percentage into dry, moderate or moist.
func MoistureStatus(percent float64) string {
	switch {
	case percent < 30:
		return "dry"
	case percent < 60:
		return "moderate"
	default:
		return "moist"
	}
}

// StationOption customises a Station.
type StationOption func(*Station)

// WithInterval sets the tick period.
func WithInterval(d time.Duration) StationOption {
	return func(s *Station) { s.interval = d }
}

// WithPublisher routes telemetry events to p.
func WithPublisher(p model.Publisher) StationOption {
	return func(s *Station) {
		if p != nil {
			s.pub = p
		}
	}
}

// WithTicker replaces the tick source.
func WithTicker(t schedule.TickerFunc) StationOption {
	return func(s *Station) { s.ticker = t }
}

// WithStationRand seeds every random decision the station makes.
func WithStationRand(r *rand.Rand) StationOption {
	return func(s *Station) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithStationClock overrides the wall clock.
func WithStationClock(now func() time.Time) StationOption {
	return func(s *Station) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) StationOption {
	return func(s *Station) {
		if l != nil {
			s.log = l
		}
	}
}

// Station is the simulated robot: every dashboard widget reads from it.
type Station struct {
	moisture *Simulator
	distance *Simulator
	chart    *Simulator

	interval time.Duration
	ticker   schedule.TickerFunc
	task     *schedule.Task
	pub      model.Publisher
	log      *zap.Logger
	now      func() time.Time

	mu          sync.RWMutex
	rng         *rand.Rand
	history     []model.ChartPoint
	systems     model.Systems
	tank        model.TankLevel
	lastCommand string
}

// NewStation builds a station with the default sensor set.
func NewStation(opts ...StationOption) (*Station, error) {
	s := &Station{
		interval: DefaultInterval,
		pub:      model.Discard,
		log:      zap.NewNop(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		systems:  model.Systems{Motor: true},
		tank:     model.TankOK,
	}
	for _, opt := range opts {
		opt(s)
	}

	// rand.Rand is not safe for concurrent use, so each walk gets its own source.
	build := func(cfg Config) (*Simulator, error) {
		return NewSimulator(cfg, WithRand(rand.New(rand.NewSource(s.rng.Int63()))), WithClock(s.now))
	}
	var err error
	if s.moisture, err = build(MoistureConfig); err != nil {
		return nil, err
	}
	if s.distance, err = build(DistanceConfig); err != nil {
		return nil, err
	}
	if s.chart, err = build(ChartConfig); err != nil {
		return nil, err
	}

	s.task, err = schedule.New(s.interval, s.Tick, s.ticker)
	if err != nil {
		return nil, fmt.Errorf("telemetry station: %w", err)
	}

	s.prefillHistory()
	return s, nil
}

// prefillHistory backfills the chart with one point per minute.
func (s *Station) prefillHistory() {
	now := s.now()
	s.history = make([]model.ChartPoint, 0, HistoryLength)
	for i := HistoryLength - 1; i >= 0; i-- {
		ts := now.Add(-time.Duration(i) * time.Minute)
		r := s.chart.Tick()
		s.history = append(s.history, model.ChartPoint{Label: ts.Format("15:04"), Value: r.Value})
	}
}

// Start begins periodic ticking until Stop or ctx cancellation.
func (s *Station) Start(ctx context.Context) bool {
	started := s.task.Start(ctx)
	if started {
		s.log.Info("telemetry station running", zap.Duration("interval", s.interval))
	}
	return started
}

// Stop halts ticking and waits for the ticker goroutine to exit.
func (s *Station) Stop() bool {
	stopped := s.task.Stop()
	if stopped {
		s.log.Info("telemetry station stopped")
	}
	return stopped
}

// Running reports whether the station is ticking.
func (s *Station) Running() bool {
	return s.task.Running()
}

// Interval returns the tick period.
func (s *Station) Interval() time.Duration {
	return s.interval
}

// Tick advances every sensor once and publishes the new state.
func (s *Station) Tick(ts time.Time) {
	s.moisture.Tick()
	s.distance.Tick()
	point := s.chart.Tick()

	s.mu.Lock()
	if len(s.history) >= HistoryLength {
		copy(s.history, s.history[1:])
		s.history = s.history[:len(s.history)-1]
	}
	s.history = append(s.history, model.ChartPoint{Label: ts.Format("15:04"), Value: point.Value})

	if s.rng.Float64() < statusRerollChance {
		s.systems.Pump = s.rng.Float64() > pumpOnThreshold
		s.systems.Weeder = s.rng.Float64() > weederOnThreshold
	}
	snap := s.snapshotLocked(ts)
	s.mu.Unlock()

	s.log.Debug("telemetry tick",
		zap.Float64("moisture", snap.Moisture.Value),
		zap.Float64("distance", snap.Distance.Value),
		zap.Int("active_systems", snap.ActiveSystems))
	s.pub.Publish(model.Event{Kind: model.EventTelemetry, Time: ts, Telemetry: &snap})
}

// UpdateSystems applies fn to the actuator state and publishes the result.
func (s *Station) UpdateSystems(command string, fn func(*model.Systems)) model.Telemetry {
	s.mu.Lock()
	if fn != nil {
		fn(&s.systems)
	}
	if command != "" {
		s.lastCommand = command
	}
	ts := s.now()
	snap := s.snapshotLocked(ts)
	s.mu.Unlock()

	s.pub.Publish(model.Event{Kind: model.EventTelemetry, Time: ts, Telemetry: &snap})
	return snap
}

// SetTank sets the water tank state.
func (s *Station) SetTank(level model.TankLevel) {
	s.mu.Lock()
	s.tank = level
	s.mu.Unlock()
}

// Snapshot returns the current widget state.
func (s *Station) Snapshot() model.Telemetry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(s.now())
}

func (s *Station) snapshotLocked(ts time.Time) model.Telemetry {
	moisture := s.moisture.Reading()
	distance := s.distance.Reading()
	percent := mathx.Percent(moisture.Value, MoistureFullScale)

	fill := tankFillOK
	if s.tank == model.TankEmpty {
		fill = tankFillEmpty
	}

	history := make([]model.ChartPoint, len(s.history))
	copy(history, s.history)

	return model.Telemetry{
		Time:             ts,
		Moisture:         moisture,
		MoisturePercent:  percent,
		MoistureStatus:   MoistureStatus(percent),
		Distance:         distance,
		ObstacleDetected: distance.Value < ObstacleThreshold,
		SafetyPercent:    mathx.Percent(distance.Value, SafetyRange),
		Tank:             s.tank,
		TankFill:         fill,
		Systems:          s.systems,
		ActiveSystems:    s.systems.Active(),
		History:          history,
		LastCommand:      s.lastCommand,
	}
}
