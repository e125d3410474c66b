package telemetry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/atikulmunna/agribot/internal/mathx"
	"github.com/atikulmunna/agribot/internal/model"
)

var (
	// ErrInvalidBounds is returned when Min > Max or a bound is not finite.
	ErrInvalidBounds = errors.New("telemetry: min must not exceed max")
	// ErrInvalidDelta is returned for a negative or non-finite step magnitude.
	ErrInvalidDelta = errors.New("telemetry: delta must be a finite non-negative number")
)

// Config describes one simulated metric.
type Config struct {
	Metric string
	Unit   string
	Min    float64
	Max    float64
	Seed   float64
	// Delta is the half-width of the uniform random step, i.e. steps fall in [-Delta, +Delta].
	Delta float64
	// Amplitude and Rate add Amplitude*sin(elapsedSeconds*Rate) to every step.
	Amplitude float64
	Rate      float64
}

// Validate checks the configuration without building a simulator.
func (c Config) Validate() error {
	if !mathx.Finite(c.Min) || !mathx.Finite(c.Max) || c.Min > c.Max {
		return fmt.Errorf("%w: metric %q has range [%v, %v]", ErrInvalidBounds, c.Metric, c.Min, c.Max)
	}
	if !mathx.Finite(c.Delta) || c.Delta < 0 {
		return fmt.Errorf("%w: metric %q has delta %v", ErrInvalidDelta, c.Metric, c.Delta)
	}
	return nil
}

// Option customises a Simulator.
type Option func(*Simulator)

// WithRand overrides the random source, mainly for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithClock overrides the clock used for the oscillatory term and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// Simulator is a bounded random walk standing in for a real sensor.
type Simulator struct {
	cfg     Config
	mu      sync.Mutex
	value   float64
	rng     *rand.Rand
	now     func() time.Time
	started time.Time
}

// NewSimulator validates cfg and seeds the walk. A seed outside the range is clamped.
func NewSimulator(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	seed := cfg.Seed
	if !mathx.Finite(seed) {
		seed = cfg.Min
	}
	s.value = mathx.Clamp(seed, cfg.Min, cfg.Max)
	s.started = s.now()
	return s, nil
}

// Step is the deterministic core of a tick: current+delta saturated into [lo, hi].
func Step(current, delta, lo, hi float64) float64 {
	next := current + delta
	if math.IsNaN(next) {
		return lo
	}
	return mathx.Clamp(next, lo, hi)
}

// Next computes the value following current without mutating the simulator.
func (s *Simulator) Next(current float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked(current)
}

func (s *Simulator) nextLocked(current float64) float64 {
	delta := (s.rng.Float64()*2 - 1) * s.cfg.Delta
	if s.cfg.Amplitude != 0 {
		elapsed := s.now().Sub(s.started).Seconds()
		delta += s.cfg.Amplitude * math.Sin(elapsed*s.cfg.Rate)
	}
	return Step(current, delta, s.cfg.Min, s.cfg.Max)
}

// Tick advances the walk by one step and returns the new reading.
func (s *Simulator) Tick() model.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = s.nextLocked(s.value)
	return s.readingLocked()
}

// Set moves the walk to v, clamped into range.
func (s *Simulator) Set(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = Step(v, 0, s.cfg.Min, s.cfg.Max)
}

// Value returns the current value.
func (s *Simulator) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Reading returns the current value with its bounds.
func (s *Simulator) Reading() model.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readingLocked()
}

func (s *Simulator) readingLocked() model.Reading {
	return model.Reading{
		Metric: s.cfg.Metric,
		Value:  s.value,
		Min:    s.cfg.Min,
		Max:    s.cfg.Max,
		Unit:   s.cfg.Unit,
	}
}

// Config returns the simulator configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}
