package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Reasons a contact is dropped
const (
	IgnoreNoBall        = "no_ball"
	IgnoreNotBall       = "no_ball_participant"
	IgnoreSelf          = "self_contact"
	IgnoreUnknownEntity = "unknown_entity"
)

// CollisionSystem translates raw contacts into bounces and goals
// Participants are unordered; each contact is handled independently
type CollisionSystem struct {
	impulse float64
	log     logger.Logger
	metrics *metrics.Manager
}

// NewCollisionSystem creates the collision response system
func NewCollisionSystem(impulse float64, log logger.Logger, m *metrics.Manager) *CollisionSystem {
	if log == nil {
		log = logger.Nop()
	}
	return &CollisionSystem{
		impulse: impulse,
		log:     log.Named("collision"),
		metrics: m,
	}
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority (after physics)
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update drains the contact queue
func (s *CollisionSystem) Update(w *engine.World, _ time.Duration) {
	for _, c := range w.Contacts.Drain() {
		s.Handle(w, c)
	}
}

// Handle processes a single contact
func (s *CollisionSystem) Handle(w *engine.World, c physics.Contact) {
	ball, ok := w.Ball()
	if !ok {
		s.ignore(IgnoreNoBall, c)
		return
	}
	if !c.Involves(ball.ID) {
		s.ignore(IgnoreNotBall, c)
		return
	}
	if c.A == c.B {
		s.ignore(IgnoreSelf, c)
		return
	}

	other := c.Other(ball.ID)
	switch w.Lookup(other) {
	case engine.KindPaddle:
		paddle, _ := w.PaddleByID(other)
		s.paddleContact(w, ball, paddle)
	case engine.KindWall:
		wall, _ := w.WallByID(other)
		s.wallContact(w, ball, wall)
	default:
		s.ignore(IgnoreUnknownEntity, c)
	}
}

func (s *CollisionSystem) paddleContact(w *engine.World, ball *component.BallComponent, paddle *component.PaddleComponent) {
	dir, ok := vmath.Normalize(ball.Position.Sub(paddle.Position))
	if ok {
		physics.ApplyImpulse(&ball.Kinetic, dir.Mul(s.impulse))
	} else {
		s.log.Debug("degenerate paddle contact",
			logger.Uint64("paddle", uint64(paddle.ID)),
			logger.String("side", paddle.Side.String()),
		)
	}

	w.PaddleHits.Push(event.PaddleHit{Paddle: paddle.ID, Side: paddle.Side})
	s.bounce(w, ball)
	s.metrics.RecordContact("paddle")
}

func (s *CollisionSystem) wallContact(w *engine.World, ball *component.BallComponent, wall *component.WallComponent) {
	switch wall.Kind {
	case component.WallTop:
		if ball.Velocity[1] > 0 {
			ball.Velocity = vmath.ReflectAxisY(ball.Velocity)
		}
		s.bounce(w, ball)
		s.metrics.RecordContact("wall")

	case component.WallBottom:
		if ball.Velocity[1] < 0 {
			ball.Velocity = vmath.ReflectAxisY(ball.Velocity)
		}
		s.bounce(w, ball)
		s.metrics.RecordContact("wall")

	case component.WallLeft, component.WallRight:
		side, _ := wall.Kind.Side()
		goal := event.NewScoreGoal(side)
		w.Goals.Push(goal)

		// Goal walls keep the ball in the arena
		if (side == core.Left && ball.Velocity[0] < 0) || (side == core.Right && ball.Velocity[0] > 0) {
			ball.Velocity = vmath.ReflectAxisX(ball.Velocity)
		}
		s.metrics.RecordContact("goal")
		s.log.Debug("goal",
			logger.String("conceded", goal.Conceded.String()),
			logger.String("goal_for", goal.GoalFor.String()),
		)
	}
}

func (s *CollisionSystem) bounce(w *engine.World, ball *component.BallComponent) {
	w.Bounces.Push(event.Bounce{Position: ball.Position})
	s.metrics.RecordBounce()
}

func (s *CollisionSystem) ignore(reason string, c physics.Contact) {
	s.log.Debug("contact ignored",
		logger.String("reason", reason),
		logger.Uint64("a", uint64(c.A)),
		logger.Uint64("b", uint64(c.B)),
	)
	s.metrics.RecordIgnored(reason)
}
