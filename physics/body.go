package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
)

// BodyKind selects how an engine moves a body
type BodyKind uint8

const (
	// Dynamic bodies integrate velocity and receive collision response
	Dynamic BodyKind = iota
	// Kinematic bodies integrate velocity but are never pushed
	Kinematic
	// Static bodies never move
	Static
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// ShapeKind discriminates Shape
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a circle of Radius or an axis-aligned rectangle of Half extents
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Half   mgl64.Vec2
}

// Circle returns a circle shape
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Rect returns a rectangle shape from full width and height
func Rect(width, height float64) Shape {
	return Shape{Kind: ShapeRect, Half: mgl64.Vec2{width / 2, height / 2}}
}

// Size returns full width and height of the shape bounding box
func (s Shape) Size() (w, h float64) {
	if s.Kind == ShapeCircle {
		return 2 * s.Radius, 2 * s.Radius
	}
	return 2 * s.Half[0], 2 * s.Half[1]
}

// SlabDepth is how far a boundary rectangle extends away from the arena for collision
// A ball that crosses a boundary in one step still lands inside the slab
const SlabDepth = 1e6

// MaxSubSteps caps the integration sub-steps of one Advance
const MaxSubSteps = 32

// Body is the engine-facing definition of one collision body
// Sensor bodies report contacts without restitution
type Body struct {
	ID     core.Entity
	Kind   BodyKind
	Shape  Shape
	Sensor bool
	// Outward is the unit normal pointing away from the arena for boundary rectangles
	// Zero for ordinary bodies
	Outward mgl64.Vec2
	core.Kinetic
}

// Bounds returns the collision rectangle of a rect body
// Boundary bodies are extended by SlabDepth along Outward
func (b *Body) Bounds() (center, half mgl64.Vec2) {
	center, half = b.Position, b.Shape.Half
	if b.Outward == (mgl64.Vec2{}) {
		return center, half
	}
	ext := SlabDepth / 2
	center = center.Add(b.Outward.Mul(ext))
	half = half.Add(mgl64.Vec2{math.Abs(b.Outward[0]), math.Abs(b.Outward[1])}.Mul(ext))
	return center, half
}

// Contact reports that two bodies began overlapping during a step
// A and B are unordered; Normal points from B toward A when known
type Contact struct {
	A, B   core.Entity
	Point  mgl64.Vec2
	Normal mgl64.Vec2
}

// Involves reports whether e is one of the participants
func (c Contact) Involves(e core.Entity) bool {
	return c.A == e || c.B == e
}

// Other returns the participant that is not e
func (c Contact) Other(e core.Entity) core.Entity {
	if c.A == e {
		return c.B
	}
	return c.A
}
