package telemetry

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestSimulatorStaysInBounds(t *testing.T) {
	sim, err := NewSimulator(Config{Metric: "moisture", Min: 200, Max: 1023, Seed: 650, Delta: 20},
		WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		r := sim.Tick()
		if r.Value < 200 || r.Value > 1023 {
			t.Fatalf("tick %d: value %v escaped [200, 1023]", i, r.Value)
		}
	}
}

func TestSimulatorBoundsForRandomDeltas(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		lo := rng.Float64() * 100
		hi := lo + rng.Float64()*50
		delta := rng.Float64() * 200 // often much wider than the range itself
		sim, err := NewSimulator(Config{Min: lo, Max: hi, Seed: (lo + hi) / 2, Delta: delta},
			WithRand(rand.New(rand.NewSource(int64(trial)))))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 500; i++ {
			v := sim.Tick().Value
			if v < lo || v > hi {
				t.Fatalf("trial %d tick %d: %v outside [%v, %v]", trial, i, v, lo, hi)
			}
		}
	}
}

func TestSimulatorRejectsInvertedBounds(t *testing.T) {
	_, err := NewSimulator(Config{Metric: "bad", Min: 10, Max: 5})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}

	_, err = NewSimulator(Config{Min: math.NaN(), Max: 5})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds for NaN bound, got %v", err)
	}
}

func TestSimulatorRejectsNegativeDelta(t *testing.T) {
	_, err := NewSimulator(Config{Min: 0, Max: 5, Delta: -1})
	if !errors.Is(err, ErrInvalidDelta) {
		t.Errorf("expected ErrInvalidDelta, got %v", err)
	}
}

func TestSeedIsClamped(t *testing.T) {
	sim, err := NewSimulator(Config{Min: 0, Max: 10, Seed: 50})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Value() != 10 {
		t.Errorf("expected seed clamped to 10, got %v", sim.Value())
	}
}

func TestStepSaturates(t *testing.T) {
	if got := Step(1020, 20, 200, 1023); got != 1023 {
		t.Errorf("expected 1023, got %v", got)
	}
	if got := Step(205, -20, 200, 1023); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}
	if got := Step(500, 10, 200, 1023); got != 510 {
		t.Errorf("expected 510, got %v", got)
	}
}

func TestNextDoesNotMutate(t *testing.T) {
	sim, _ := NewSimulator(Config{Min: 0, Max: 100, Seed: 50, Delta: 5})
	_ = sim.Next(50)
	if sim.Value() != 50 {
		t.Errorf("expected Next to leave value at 50, got %v", sim.Value())
	}
}

func TestZeroDeltaIsStable(t *testing.T) {
	sim, _ := NewSimulator(Config{Min: 0, Max: 100, Seed: 33})
	for i := 0; i < 10; i++ {
		sim.Tick()
	}
	if sim.Value() != 33 {
		t.Errorf("expected value to stay at 33, got %v", sim.Value())
	}
}

func TestOscillationStaysInBounds(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }

	sim, err := NewSimulator(Config{Min: 0, Max: 1023, Seed: 1000, Delta: 10, Amplitude: 100, Rate: 1},
		WithClock(clock), WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		now = now.Add(2 * time.Second)
		v := sim.Tick().Value
		if v < 0 || v > 1023 {
			t.Fatalf("tick %d: %v out of range", i, v)
		}
	}
}

func BenchmarkSimulatorTick(b *testing.B) {
	sim, _ := NewSimulator(MoistureConfig)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sim.Tick()
	}
}
