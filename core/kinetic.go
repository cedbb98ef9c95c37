package core

import "github.com/go-gl/mathgl/mgl64"

// Kinetic is the positional state shared by every body in the arena
// Units are world units and world units per second, y axis points up
type Kinetic struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
}
