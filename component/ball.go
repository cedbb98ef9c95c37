package component

import (
	"github.com/lixenwraith/vi-pong/physics"
)

// BallComponent is the single dynamic circle in play
type BallComponent struct {
	physics.Body
}

// Speed returns the ball's current speed
func (b *BallComponent) Speed() float64 {
	return b.Velocity.Len()
}
