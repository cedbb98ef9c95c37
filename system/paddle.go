package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
)

// PaddleMotion assigns paddle velocities from input once per frame
// Runs on the variable-rate cadence, outside the fixed-step system list
type PaddleMotion struct {
	speed float64
}

// NewPaddleMotion creates the controller with the given speed
func NewPaddleMotion(speed float64) *PaddleMotion {
	return &PaddleMotion{speed: speed}
}

// Apply overwrites every paddle's velocity from its source
// No source, or both bindings held, leaves the paddle at rest
func (s *PaddleMotion) Apply(w *engine.World) {
	for _, side := range core.Sides {
		p, ok := w.Paddle(side)
		if !ok {
			continue
		}
		intent := input.Neutral
		if p.Source != nil {
			intent = input.Resolve(p.Source.Pressed())
		}
		p.Velocity = mgl64.Vec2{0, intent.Sign() * s.speed}
	}
}

