package engine

import (
	"time"
)

// System processes the world on each fixed step
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// AddSystem adds a system to the world and sorts by priority
// Systems with equal priority keep insertion order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort systems by priority (bubble sort is fine for small number of systems)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems for one fixed step
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	w.steps++
}

// Steps returns the number of fixed steps run
func (w *World) Steps() uint64 {
	return w.steps
}
