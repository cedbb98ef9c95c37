package parameter

import "time"

// Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedStep is the simulation step (64 Hz)
	FixedStep = 15625 * time.Microsecond

	// MaxCatchUpSteps bounds fixed steps run in one frame, surplus time is dropped
	MaxCatchUpSteps = 8

	// EventQueueSize is the fixed capacity of each event ring buffer
	EventQueueSize = 256
)

// Terminal projection, world units per cell
const (
	UnitsPerColumn = 16.0
	UnitsPerRow    = 32.0
)

// DefaultViewport is the arena size used before a host reports its own
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0
)

// Terminal input
const (
	// KeyHoldWindow is how long a key counts as held after its last press event
	// Terminals report presses and auto-repeat but never releases
	KeyHoldWindow = 180 * time.Millisecond
)
