package telemetry

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Publish(ev model.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestMoistureStatus(t *testing.T) {
	cases := map[float64]string{
		10:   "dry",
		29.9: "dry",
		30:   "moderate",
		59:   "moderate",
		60:   "moist",
		100:  "moist",
	}
	for pct, want := range cases {
		if got := MoistureStatus(pct); got != want {
			t.Errorf("MoistureStatus(%v): expected %s, got %s", pct, want, got)
		}
	}
}

func TestStationInitialSnapshot(t *testing.T) {
	st, err := NewStation(WithStationRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}

	snap := st.Snapshot()
	if snap.Moisture.Value != 650 {
		t.Errorf("expected moisture seed 650, got %v", snap.Moisture.Value)
	}
	if snap.Distance.Value != 45 {
		t.Errorf("expected distance seed 45, got %v", snap.Distance.Value)
	}
	if snap.MoistureStatus != "moist" {
		t.Errorf("expected moist at 650/1023, got %s", snap.MoistureStatus)
	}
	if snap.ObstacleDetected {
		t.Error("expected clear path at 45cm")
	}
	if snap.SafetyPercent != 90 {
		t.Errorf("expected 90%% safety at 45cm, got %v", snap.SafetyPercent)
	}
	if len(snap.History) != HistoryLength {
		t.Errorf("expected %d history points, got %d", HistoryLength, len(snap.History))
	}
	if snap.Tank != model.TankOK || snap.TankFill != 75 {
		t.Errorf("expected OK tank at 75%%, got %s at %d%%", snap.Tank, snap.TankFill)
	}
	if !snap.Systems.Motor || snap.ActiveSystems != 1 {
		t.Errorf("expected only the motor active, got %+v", snap.Systems)
	}
}

func TestStationTickKeepsHistoryBounded(t *testing.T) {
	rec := &recorder{}
	st, err := NewStation(WithPublisher(rec), WithStationRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Now()
	for i := 0; i < 100; i++ {
		ts = ts.Add(2 * time.Second)
		st.Tick(ts)
	}

	snap := st.Snapshot()
	if len(snap.History) != HistoryLength {
		t.Errorf("expected history capped at %d, got %d", HistoryLength, len(snap.History))
	}
	if snap.Moisture.Value < 200 || snap.Moisture.Value > 1023 {
		t.Errorf("moisture out of range: %v", snap.Moisture.Value)
	}
	if snap.Distance.Value < 5 || snap.Distance.Value > 100 {
		t.Errorf("distance out of range: %v", snap.Distance.Value)
	}
	if rec.count() != 100 {
		t.Errorf("expected 100 telemetry events, got %d", rec.count())
	}
	for _, ev := range rec.events {
		if ev.Kind != model.EventTelemetry || ev.Telemetry == nil {
			t.Fatalf("unexpected event %+v", ev)
		}
	}
}

func TestStationObstacleDetection(t *testing.T) {
	st, _ := NewStation()
	st.distance.Set(12)

	snap := st.Snapshot()
	if !snap.ObstacleDetected {
		t.Error("expected obstacle at 12cm")
	}
	if snap.SafetyPercent != 24 {
		t.Errorf("expected 24%% safety at 12cm, got %v", snap.SafetyPercent)
	}
}

func TestStationEmptyTank(t *testing.T) {
	st, _ := NewStation()
	st.SetTank(model.TankEmpty)
	if got := st.Snapshot().TankFill; got != 10 {
		t.Errorf("expected 10%% fill for empty tank, got %d", got)
	}
}

func TestStationUpdateSystems(t *testing.T) {
	rec := &recorder{}
	st, _ := NewStation(WithPublisher(rec))

	snap := st.UpdateSystems("WATER", func(s *model.Systems) { s.Pump = true })
	if !snap.Systems.Pump || snap.ActiveSystems != 2 {
		t.Errorf("expected pump on and 2 active, got %+v", snap.Systems)
	}
	if snap.LastCommand != "WATER" {
		t.Errorf("expected last command WATER, got %q", snap.LastCommand)
	}
	if rec.count() != 1 {
		t.Errorf("expected 1 event, got %d", rec.count())
	}
}

func TestStationStopCancelsTicker(t *testing.T) {
	ticks := make(chan time.Time)
	ticker := func(time.Duration) (<-chan time.Time, func()) { return ticks, func() {} }

	rec := &recorder{}
	st, err := NewStation(WithPublisher(rec), WithTicker(ticker))
	if err != nil {
		t.Fatal(err)
	}

	st.Start(context.Background())
	ticks <- time.Now()
	ticks <- time.Now() // the second send only completes once the first tick has been handled
	st.Stop()

	if st.Running() {
		t.Error("expected station to be stopped")
	}
	before := st.Snapshot().Moisture.Value
	select {
	case ticks <- time.Now():
		t.Error("expected no receiver after Stop")
	case <-time.After(50 * time.Millisecond):
	}
	if after := st.Snapshot().Moisture.Value; after != before {
		t.Errorf("expected moisture frozen after Stop, went from %v to %v", before, after)
	}
}

func TestStationRejectsBadInterval(t *testing.T) {
	if _, err := NewStation(WithInterval(0)); err == nil {
		t.Error("expected error for zero interval")
	}
}
