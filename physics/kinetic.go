package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// integrate performs explicit Euler integration: p = p + v*dt
func integrate(k *core.Kinetic, seconds float64) {
	k.Position = k.Position.Add(k.Velocity.Mul(seconds))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, impulse mgl64.Vec2) {
	k.Velocity = k.Velocity.Add(impulse)
}

// ScaleVelocity multiplies velocity by factor
func ScaleVelocity(k *core.Kinetic, factor float64) {
	k.Velocity = k.Velocity.Mul(factor)
}

// Restitute applies a perfectly elastic bounce of k against a surface moving at surface
// normal points from the surface toward k; velocity changes only when approaching
func Restitute(k *core.Kinetic, surface, normal mgl64.Vec2) bool {
	rel := k.Velocity.Sub(surface)
	if rel.Dot(normal) >= 0 {
		return false
	}
	k.Velocity = vmath.Reflect(rel, normal).Add(surface)
	return true
}

// SubSteps returns how many equal sub-steps keep every dynamic circle from moving
// more than its radius relative to the fastest kinematic body within dt
// Result is in [1, MaxSubSteps]
func SubSteps(bodies []*Body, dt time.Duration) int {
	var kinematic float64
	for _, b := range bodies {
		if b.Kind == Kinematic {
			kinematic = max(kinematic, b.Velocity.Len())
		}
	}

	n := 1
	for _, b := range bodies {
		if b.Kind != Dynamic || b.Shape.Kind != ShapeCircle || b.Shape.Radius <= 0 {
			continue
		}
		if !vmath.Finite(b.Velocity) {
			return MaxSubSteps
		}
		travel := (b.Velocity.Len() + kinematic) * dt.Seconds()
		n = max(n, int(math.Min(math.Ceil(travel/b.Shape.Radius), MaxSubSteps)))
	}
	return min(n, MaxSubSteps)
}
