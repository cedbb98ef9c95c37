package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// PhysicsSystem advances all bodies through the physics engine and queues the contacts
type PhysicsSystem struct {
	engine physics.Engine
}

// NewPhysicsSystem creates a physics system over the given engine
func NewPhysicsSystem(e physics.Engine) *PhysicsSystem {
	return &PhysicsSystem{engine: e}
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

// Priority returns the system's priority (runs first)
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update integrates positions with current velocities
func (s *PhysicsSystem) Update(w *engine.World, dt time.Duration) {
	for _, c := range s.engine.Advance(w.Bodies(), dt) {
		w.Contacts.Push(c)
	}
}
