package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/vi-pong/core"
)

// Collision types registered with the space
const (
	collisionDynamic cp.CollisionType = iota + 1
	collisionKinematic
	collisionStatic
)

type signature struct {
	kind     BodyKind
	shape    Shape
	sensor   bool
	outward  mgl64.Vec2
	position mgl64.Vec2 // Static only, static bodies are rebuilt when moved
}

type cpEntry struct {
	body  *cp.Body
	shape *cp.Shape
	sig   signature
}

// ChipmunkEngine advances bodies in a Chipmunk2D space
// Bodies are reconciled into the space on every Advance, keyed by entity
type ChipmunkEngine struct {
	space    *cp.Space
	entries  map[core.Entity]*cpEntry
	seen     map[core.Entity]struct{}
	contacts []Contact
}

// NewChipmunkEngine creates a zero-gravity space with a begin handler on dynamic bodies
func NewChipmunkEngine() *ChipmunkEngine {
	e := &ChipmunkEngine{
		space:   cp.NewSpace(),
		entries: make(map[core.Entity]*cpEntry),
		seen:    make(map[core.Entity]struct{}),
	}
	e.space.SetGravity(cp.Vector{})

	handler := e.space.NewWildcardCollisionHandler(collisionDynamic)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		ea, okA := a.UserData.(core.Entity)
		eb, okB := b.UserData.(core.Entity)
		if !okA || !okB {
			return true
		}
		c := Contact{A: ea, B: eb}
		n := arb.Normal()
		c.Normal = mgl64.Vec2{-n.X, -n.Y}
		if set := arb.ContactPointSet(); set.Count > 0 {
			p := set.Points[0].PointA
			c.Point = mgl64.Vec2{p.X, p.Y}
		}
		e.contacts = append(e.contacts, c)
		return true
	}
	return e
}

// Advance reconciles bodies into the space, steps it and writes state back
func (e *ChipmunkEngine) Advance(bodies []*Body, dt time.Duration) []Contact {
	clear(e.seen)
	for _, b := range bodies {
		e.seen[b.ID] = struct{}{}
		e.sync(b)
	}
	for id, entry := range e.entries {
		if _, ok := e.seen[id]; !ok {
			e.remove(entry)
			delete(e.entries, id)
		}
	}

	e.contacts = e.contacts[:0]
	n := SubSteps(bodies, dt)
	for i := 0; i < n; i++ {
		e.space.Step(dt.Seconds() / float64(n))
	}

	for _, b := range bodies {
		if b.Kind == Static {
			continue
		}
		entry := e.entries[b.ID]
		p := entry.body.Position()
		v := entry.body.Velocity()
		b.Position = mgl64.Vec2{p.X, p.Y}
		b.Velocity = mgl64.Vec2{v.X, v.Y}
	}

	if len(e.contacts) == 0 {
		return nil
	}
	out := make([]Contact, len(e.contacts))
	copy(out, e.contacts)
	return out
}

// Bodies returns the number of bodies held by the space
func (e *ChipmunkEngine) Bodies() int {
	return len(e.entries)
}

func (e *ChipmunkEngine) sync(b *Body) {
	sig := signature{kind: b.Kind, shape: b.Shape, sensor: b.Sensor, outward: b.Outward}
	if b.Kind == Static {
		sig.position = b.Position
	}

	entry, ok := e.entries[b.ID]
	if ok && entry.sig != sig {
		e.remove(entry)
		ok = false
	}
	if !ok {
		entry = e.create(b, sig)
		e.entries[b.ID] = entry
	}

	if b.Kind != Static {
		entry.body.SetPosition(cp.Vector{X: b.Position[0], Y: b.Position[1]})
		entry.body.SetVelocity(b.Velocity[0], b.Velocity[1])
	}
}

func (e *ChipmunkEngine) create(b *Body, sig signature) *cpEntry {
	var body *cp.Body
	var ctype cp.CollisionType
	switch b.Kind {
	case Dynamic:
		moment := cp.MomentForCircle(1, 0, b.Shape.Radius, cp.Vector{})
		if b.Shape.Kind == ShapeRect {
			moment = cp.MomentForBox(1, 2*b.Shape.Half[0], 2*b.Shape.Half[1])
		}
		body = cp.NewBody(1, moment)
		ctype = collisionDynamic
	case Kinematic:
		body = cp.NewKinematicBody()
		ctype = collisionKinematic
	default:
		body = cp.NewStaticBody()
		ctype = collisionStatic
	}
	center, half := b.Position, b.Shape.Half
	if b.Shape.Kind == ShapeRect {
		center, half = b.Bounds()
	}
	body.SetPosition(cp.Vector{X: center[0], Y: center[1]})
	body.UserData = b.ID
	e.space.AddBody(body)

	var shape *cp.Shape
	if b.Shape.Kind == ShapeCircle {
		shape = cp.NewCircle(body, b.Shape.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, 2*half[0], 2*half[1], 0)
	}
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetSensor(b.Sensor)
	shape.SetCollisionType(ctype)
	shape.UserData = b.ID
	e.space.AddShape(shape)

	return &cpEntry{body: body, shape: shape, sig: sig}
}

func (e *ChipmunkEngine) remove(entry *cpEntry) {
	e.space.RemoveShape(entry.shape)
	e.space.RemoveBody(entry.body)
}
