// Package physics defines collision bodies and the engines that advance them
package physics

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownEngine is returned by New for an unsupported engine name
var ErrUnknownEngine = errors.New("unknown physics engine")

// Engine names accepted by New
const (
	EngineBoundary = "boundary"
	EngineChipmunk = "chipmunk"
)

// Engine integrates bodies over one fixed step and reports contacts that began during it
// Implementations write integrated position and velocity back into the bodies
type Engine interface {
	Advance(bodies []*Body, dt time.Duration) []Contact
}

// New returns the engine registered under name
func New(name string) (Engine, error) {
	switch name {
	case EngineBoundary, "":
		return NewBoundaryEngine(), nil
	case EngineChipmunk:
		return NewChipmunkEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
