package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// SpeedRampSystem grows ball speed each fixed step by (1 + rate*dt), unbounded
type SpeedRampSystem struct {
	rate    float64
	metrics *metrics.Manager
}

// NewSpeedRampSystem creates the ramp with the given fractional rate per second
func NewSpeedRampSystem(rate float64, m *metrics.Manager) *SpeedRampSystem {
	return &SpeedRampSystem{rate: rate, metrics: m}
}

// Name returns system's name
func (s *SpeedRampSystem) Name() string {
	return "ramp"
}

// Priority returns the system's priority (after collision response)
func (s *SpeedRampSystem) Priority() int {
	return parameter.PriorityRamp
}

// Update scales the ball velocity
func (s *SpeedRampSystem) Update(w *engine.World, dt time.Duration) {
	ball, ok := w.Ball()
	if !ok {
		return
	}
	physics.ScaleVelocity(&ball.Kinetic, 1+s.rate*dt.Seconds())
	s.metrics.SetBallSpeed(ball.Speed())
}
