package model

import "time"

// Reading is a single clamped sensor value together with its bounds.
type Reading struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Unit   string  `json:"unit,omitempty"`
}

// TankLevel is the coarse water tank state reported by the float switch.
type TankLevel string

const (
	TankOK    TankLevel = "OK"
	TankEmpty TankLevel = "EMPTY"
)

// Systems holds the on/off state of the robot's actuators.
type Systems struct {
	Motor  bool `json:"motor"`
	Pump   bool `json:"pump"`
	Weeder bool `json:"weeder"`
}

// Active counts how many actuators are on.
func (s Systems) Active() int {
	n := 0
	for _, on := range []bool{s.Motor, s.Pump, s.Weeder} {
		if on {
			n++
		}
	}
	return n
}

// ChartPoint is one sample of the moisture history chart.
type ChartPoint struct {
	Label string  `json:"label"` // HH:MM
	Value float64 `json:"value"`
}

// Telemetry is the full widget state of the dashboard at one instant.
type Telemetry struct {
	Time time.Time `json:"time"`

	Moisture        Reading `json:"moisture"`
	MoisturePercent float64 `json:"moisture_percent"`
	MoistureStatus  string  `json:"moisture_status"` // dry, moderate, moist

	Distance         Reading `json:"distance"`
	ObstacleDetected bool    `json:"obstacle_detected"`
	SafetyPercent    float64 `json:"safety_percent"`

	Tank     TankLevel `json:"tank"`
	TankFill int       `json:"tank_fill"`

	Systems       Systems `json:"systems"`
	ActiveSystems int     `json:"active_systems"`

	History     []ChartPoint `json:"history"`
	LastCommand string       `json:"last_command,omitempty"`
}
