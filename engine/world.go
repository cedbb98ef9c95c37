package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// EntityKind classifies a live entity
type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindBall
	KindPaddle
	KindWall
)

func (k EntityKind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindWall:
		return "wall"
	default:
		return "none"
	}
}

// World is the explicit arena of typed entity records and the per-step event queues
// Not safe for concurrent use; the host loop owns it
type World struct {
	tuning parameter.Tuning

	ball    *component.BallComponent
	paddles [2]*component.PaddleComponent
	walls   [4]*component.WallComponent
	nextID  core.Entity

	viewport   mgl64.Vec2 // Applied layout, full width and height
	pending    mgl64.Vec2 // Latest reported viewport
	hasPending bool

	systems []System
	steps   uint64
	bodies  []*physics.Body

	// Queues drained once per step by their consumers
	Contacts   *event.Queue[physics.Contact]
	Bounces    *event.Queue[event.Bounce]
	Goals      *event.Queue[event.ScoreGoal]
	PaddleHits *event.Queue[event.PaddleHit]
	Respawns   *event.Queue[event.Respawn]
}

// NewWorld creates an empty arena
func NewWorld(tuning parameter.Tuning) *World {
	return &World{
		tuning:     tuning,
		nextID:     core.NoEntity,
		Contacts:   event.NewQueue[physics.Contact](parameter.EventQueueSize),
		Bounces:    event.NewQueue[event.Bounce](parameter.EventQueueSize),
		Goals:      event.NewQueue[event.ScoreGoal](parameter.EventQueueSize),
		PaddleHits: event.NewQueue[event.PaddleHit](parameter.EventQueueSize),
		Respawns:   event.NewQueue[event.Respawn](parameter.EventQueueSize),
	}
}

// Tuning returns the configuration the world was built with
func (w *World) Tuning() parameter.Tuning {
	return w.tuning
}

func (w *World) allocate() core.Entity {
	w.nextID++
	return w.nextID
}

// SpawnArena creates both paddles and the four walls; called once at startup
func (w *World) SpawnArena(width, height float64) error {
	if w.paddles[core.Left] != nil {
		return ErrArenaExists
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}

	w.viewport = mgl64.Vec2{width, height}
	halfW := width / 2
	for _, side := range core.Sides {
		x := halfW - w.tuning.PaddleMargin
		if side == core.Left {
			x = -x
		}
		w.paddles[side] = &component.PaddleComponent{
			Body: physics.Body{
				ID:      w.allocate(),
				Kind:    physics.Kinematic,
				Shape:   physics.Rect(w.tuning.PaddleWidth, w.tuning.PaddleHeight),
				Kinetic: core.Kinetic{Position: mgl64.Vec2{x, 0}},
			},
			Side:   side,
			SpawnX: x,
		}
	}

	for _, kind := range component.WallKinds {
		w.walls[kind] = &component.WallComponent{
			Body: physics.Body{
				ID:     w.allocate(),
				Kind:   physics.Static,
				Sensor: true,
			},
			Kind: kind,
		}
	}
	w.layoutWalls()
	return nil
}

// layoutWalls places the walls on the edges of the applied viewport
func (w *World) layoutWalls() {
	halfW, halfH := w.viewport[0]/2, w.viewport[1]/2
	thick := w.tuning.WallThickness
	for _, wall := range w.walls {
		switch wall.Kind {
		case component.WallTop:
			wall.Position = mgl64.Vec2{0, halfH}
			wall.Shape = physics.Rect(w.viewport[0], thick)
			wall.Outward = mgl64.Vec2{0, 1}
		case component.WallBottom:
			wall.Position = mgl64.Vec2{0, -halfH}
			wall.Shape = physics.Rect(w.viewport[0], thick)
			wall.Outward = mgl64.Vec2{0, -1}
		case component.WallLeft:
			wall.Position = mgl64.Vec2{-halfW, 0}
			wall.Shape = physics.Rect(thick, w.viewport[1])
			wall.Outward = mgl64.Vec2{-1, 0}
		case component.WallRight:
			wall.Position = mgl64.Vec2{halfW, 0}
			wall.Shape = physics.Rect(thick, w.viewport[1])
			wall.Outward = mgl64.Vec2{1, 0}
		}
	}
}

// Relayout replaces the wall geometry for a new viewport; paddles keep their spawn x
func (w *World) Relayout(width, height float64) error {
	if w.walls[component.WallTop] == nil {
		return ErrNoArena
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	w.viewport = mgl64.Vec2{width, height}
	w.hasPending = false
	w.layoutWalls()
	return nil
}

// Resize records a viewport change, applied to the walls at the next respawn
func (w *World) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	if (mgl64.Vec2{width, height}) == w.viewport {
		w.hasPending = false
		return nil
	}
	w.pending = mgl64.Vec2{width, height}
	w.hasPending = true
	return nil
}

// Viewport returns the applied viewport size
func (w *World) Viewport() (width, height float64) {
	return w.viewport[0], w.viewport[1]
}

// SpawnBall creates the ball at the origin with the given velocity
func (w *World) SpawnBall(velocity mgl64.Vec2) (core.Entity, error) {
	if w.ball != nil {
		return core.NoEntity, ErrBallExists
	}
	w.ball = &component.BallComponent{
		Body: physics.Body{
			ID:      w.allocate(),
			Kind:    physics.Dynamic,
			Shape:   physics.Circle(w.tuning.BallRadius),
			Kinetic: core.Kinetic{Velocity: velocity},
		},
	}
	return w.ball.ID, nil
}

// DespawnBall removes the ball identified by id
func (w *World) DespawnBall(id core.Entity) error {
	if w.ball == nil {
		return ErrNoBall
	}
	if w.ball.ID != id {
		return fmt.Errorf("%w: %d is not the ball", ErrUnknownEntity, id)
	}
	w.ball = nil
	return nil
}

// RespawnBall replaces the ball: despawn, apply any pending viewport, then spawn
// A missing ball is not an error, a new one is spawned
func (w *World) RespawnBall(velocity mgl64.Vec2) (old, fresh core.Entity, err error) {
	if w.ball != nil {
		old = w.ball.ID
		if err := w.DespawnBall(old); err != nil {
			return old, core.NoEntity, err
		}
	}
	if w.hasPending {
		if err := w.Relayout(w.pending[0], w.pending[1]); err != nil {
			return old, core.NoEntity, err
		}
	}
	fresh, err = w.SpawnBall(velocity)
	return old, fresh, err
}

// Ball returns the live ball
func (w *World) Ball() (*component.BallComponent, bool) {
	return w.ball, w.ball != nil
}

// Paddle returns the paddle of a side
func (w *World) Paddle(side core.Side) (*component.PaddleComponent, bool) {
	if int(side) >= len(w.paddles) {
		return nil, false
	}
	p := w.paddles[side]
	return p, p != nil
}

// Bind attaches an input source to a side's paddle, nil unbinds
func (w *World) Bind(side core.Side, src input.Source) error {
	p, ok := w.Paddle(side)
	if !ok {
		return ErrNoArena
	}
	p.Source = src
	return nil
}

// Wall returns the wall of a kind
func (w *World) Wall(kind component.WallKind) (*component.WallComponent, bool) {
	if int(kind) >= len(w.walls) {
		return nil, false
	}
	wall := w.walls[kind]
	return wall, wall != nil
}

// Lookup classifies an entity id
func (w *World) Lookup(id core.Entity) EntityKind {
	if id == core.NoEntity {
		return KindNone
	}
	if w.ball != nil && w.ball.ID == id {
		return KindBall
	}
	if _, ok := w.PaddleByID(id); ok {
		return KindPaddle
	}
	if _, ok := w.WallByID(id); ok {
		return KindWall
	}
	return KindNone
}

// PaddleByID returns the paddle with the given id
func (w *World) PaddleByID(id core.Entity) (*component.PaddleComponent, bool) {
	for _, p := range w.paddles {
		if p != nil && p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// WallByID returns the wall with the given id
func (w *World) WallByID(id core.Entity) (*component.WallComponent, bool) {
	for _, wall := range w.walls {
		if wall != nil && wall.ID == id {
			return wall, true
		}
	}
	return nil, false
}

// Bodies returns engine body pointers in stable order: paddles, walls, ball
// The returned slice is reused by the next call
func (w *World) Bodies() []*physics.Body {
	w.bodies = w.bodies[:0]
	for _, p := range w.paddles {
		if p != nil {
			w.bodies = append(w.bodies, &p.Body)
		}
	}
	for _, wall := range w.walls {
		if wall != nil {
			w.bodies = append(w.bodies, &wall.Body)
		}
	}
	if w.ball != nil {
		w.bodies = append(w.bodies, &w.ball.Body)
	}
	return w.bodies
}
