package physics

import (
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

type pairKey struct {
	circle, rect core.Entity
}

// BoundaryEngine is a minimal integrator with a circle-vs-rectangle narrow phase
// Contacts fire once when an overlap begins; solid rectangles reflect the circle elastically
type BoundaryEngine struct {
	active map[pairKey]struct{}
	next   map[pairKey]struct{}
}

// NewBoundaryEngine creates an engine with no active overlaps
func NewBoundaryEngine() *BoundaryEngine {
	return &BoundaryEngine{
		active: make(map[pairKey]struct{}),
		next:   make(map[pairKey]struct{}),
	}
}

// Advance integrates non-static bodies then resolves dynamic circles against rectangles
// Fast bodies are split into sub-steps so no circle moves more than its radius per sub-step
func (e *BoundaryEngine) Advance(bodies []*Body, dt time.Duration) []Contact {
	n := SubSteps(bodies, dt)
	seconds := dt.Seconds() / float64(n)

	var contacts []Contact
	for i := 0; i < n; i++ {
		contacts = e.step(bodies, seconds, contacts)
	}
	return contacts
}

func (e *BoundaryEngine) step(bodies []*Body, seconds float64, contacts []Contact) []Contact {
	for _, b := range bodies {
		if b.Kind != Static {
			integrate(&b.Kinetic, seconds)
		}
	}

	clear(e.next)
	for _, c := range bodies {
		if c.Kind != Dynamic || c.Shape.Kind != ShapeCircle {
			continue
		}
		for _, r := range bodies {
			if r == c || r.Shape.Kind != ShapeRect {
				continue
			}
			center, half := r.Bounds()
			normal, depth, ok := vmath.CircleRectPenetration(c.Position, c.Shape.Radius, center, half)
			if !ok {
				continue
			}

			key := pairKey{circle: c.ID, rect: r.ID}
			e.next[key] = struct{}{}
			if _, seen := e.active[key]; !seen {
				contacts = append(contacts, Contact{
					A:      c.ID,
					B:      r.ID,
					Point:  c.Position.Sub(normal.Mul(c.Shape.Radius)),
					Normal: normal,
				})
			}

			if r.Sensor || c.Sensor {
				continue
			}
			Restitute(&c.Kinetic, r.Velocity, normal)
			c.Position = c.Position.Add(normal.Mul(depth + vmath.Epsilon))
		}
	}

	e.active, e.next = e.next, e.active
	return contacts
}
