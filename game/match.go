// Package game runs a pong match: the arena world, its fixed-step systems and the frame cadence
package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/system"
)

// Match owns the world, the fixed clock and the systems of one session
// Not safe for concurrent use; the host loop calls every method
type Match struct {
	session uuid.UUID
	tuning  parameter.Tuning
	world   *engine.World
	clock   *engine.FixedClock

	motion     *system.PaddleMotion
	score      *system.ScoreSystem
	inactivity *system.InactivitySystem

	log     logger.Logger
	metrics *metrics.Manager

	started  bool
	bounces  []event.Bounce
	respawns []event.Respawn
	dropped  uint64
}

// New creates a match over the given physics engine; nil selects the boundary engine
func New(tuning parameter.Tuning, eng physics.Engine, opts ...Option) (*Match, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if eng == nil {
		eng = physics.NewBoundaryEngine()
	}

	m := &Match{
		session: uuid.New(),
		tuning:  tuning,
		world:   engine.NewWorld(tuning),
		clock:   engine.NewFixedClock(tuning.FixedStep, tuning.MaxCatchUp),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.Named("match")

	m.motion = system.NewPaddleMotion(tuning.PaddleSpeed)
	m.score = system.NewScoreSystem(m.metrics)
	m.inactivity = system.NewInactivitySystem(tuning.LockTimeout, tuning.Launch(), m.log, m.metrics)

	m.world.AddSystem(system.NewPhysicsSystem(eng))
	m.world.AddSystem(system.NewCollisionSystem(tuning.PaddleImpulse, m.log, m.metrics))
	m.world.AddSystem(m.score)
	m.world.AddSystem(system.NewSpeedRampSystem(tuning.RampRate, m.metrics))
	m.world.AddSystem(m.inactivity)

	return m, nil
}

// Start spawns the arena for the viewport and launches the first ball
func (m *Match) Start(width, height float64) error {
	if err := m.world.SpawnArena(width, height); err != nil {
		return fmt.Errorf("spawn arena: %w", err)
	}
	if _, err := m.world.SpawnBall(m.tuning.Launch()); err != nil {
		return fmt.Errorf("spawn ball: %w", err)
	}
	m.started = true
	m.log.Info("match started",
		logger.String("session", m.session.String()),
		logger.Float64("width", width),
		logger.Float64("height", height),
	)
	return nil
}

// Bind attaches an input source to a side
func (m *Match) Bind(side core.Side, src input.Source) error {
	return m.world.Bind(side, src)
}

// Frame runs the variable-rate cadence: paddle velocities, then due fixed steps
// Returns the number of fixed steps run
func (m *Match) Frame(dt time.Duration) int {
	if !m.started {
		return 0
	}
	m.motion.Apply(m.world)

	before := m.clock.Dropped()
	n := m.clock.Advance(dt)
	m.metrics.RecordCatchUpDropped(m.clock.Dropped() - before)

	for i := 0; i < n; i++ {
		m.Step()
	}
	return n
}

// Step runs exactly one fixed step
func (m *Match) Step() {
	if !m.started {
		return
	}
	start := time.Now()
	m.world.Update(m.clock.Step())

	m.bounces = append(m.bounces, m.world.Bounces.Drain()...)
	m.respawns = append(m.respawns, m.world.Respawns.Drain()...)

	dropped := m.world.Contacts.Dropped() + m.world.Bounces.Dropped() + m.world.Goals.Dropped() +
		m.world.PaddleHits.Dropped() + m.world.Respawns.Dropped()
	if dropped > m.dropped {
		m.metrics.RecordDropped(dropped - m.dropped)
		m.log.Warn("event queue overflow",
			logger.Uint64("dropped", dropped-m.dropped),
			logger.Int("capacity", m.world.Contacts.Cap()),
		)
		m.dropped = dropped
	}
	m.metrics.RecordStep(time.Since(start))
}

// Pause stops fixed steps until Resume
func (m *Match) Pause() {
	if !m.clock.IsPaused() {
		m.log.Debug("match paused", logger.String("discarded", m.clock.Pending().String()))
	}
	m.clock.Pause()
}

// Resume restarts fixed steps
func (m *Match) Resume() {
	m.clock.Resume()
}

// Paused reports whether the match is paused
func (m *Match) Paused() bool {
	return m.clock.IsPaused()
}

// Resize records a new viewport, applied to the walls at the next respawn
func (m *Match) Resize(width, height float64) error {
	return m.world.Resize(width, height)
}

// Score returns the raw counters
func (m *Match) Score() system.Score {
	return m.score.Score()
}

// TakeScore returns the counters when they changed since the previous take
func (m *Match) TakeScore() (system.Score, bool) {
	return m.score.TakeChanged()
}

// DrainBounces returns bounces since the previous drain
func (m *Match) DrainBounces() []event.Bounce {
	out := m.bounces
	m.bounces = nil
	return out
}

// DrainRespawns returns respawns since the previous drain
func (m *Match) DrainRespawns() []event.Respawn {
	out := m.respawns
	m.respawns = nil
	return out
}

// Ball returns the ball body
func (m *Match) Ball() (physics.Body, bool) {
	b, ok := m.world.Ball()
	if !ok {
		return physics.Body{}, false
	}
	return b.Body, true
}

// Paddle returns a side's paddle body
func (m *Match) Paddle(side core.Side) (physics.Body, bool) {
	p, ok := m.world.Paddle(side)
	if !ok {
		return physics.Body{}, false
	}
	return p.Body, true
}

// Inactivity returns time since the last paddle contact
func (m *Match) Inactivity() time.Duration {
	return m.inactivity.Elapsed()
}

// Steps returns the number of fixed steps run
func (m *Match) Steps() uint64 {
	return m.world.Steps()
}

// Session returns the session id
func (m *Match) Session() uuid.UUID {
	return m.session
}

// World exposes the arena for tests and tooling
func (m *Match) World() *engine.World {
	return m.world
}

// Digest hashes the authoritative state: step count, ball, paddles and score
// Identical inputs produce identical digests
func (m *Match) Digest() uint64 {
	buf := make([]byte, 0, 128)
	buf = binary.LittleEndian.AppendUint64(buf, m.world.Steps())

	if b, ok := m.world.Ball(); ok {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.ID))
		buf = appendKinetic(buf, b.Kinetic)
	}
	for _, side := range core.Sides {
		if p, ok := m.world.Paddle(side); ok {
			buf = appendKinetic(buf, p.Kinetic)
		}
	}

	sc := m.score.Score()
	buf = binary.LittleEndian.AppendUint64(buf, sc.Left)
	buf = binary.LittleEndian.AppendUint64(buf, sc.Right)
	return xxh3.Hash(buf)
}

func appendKinetic(buf []byte, k core.Kinetic) []byte {
	for _, v := range [4]float64{k.Position[0], k.Position[1], k.Velocity[0], k.Velocity[1]} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}
