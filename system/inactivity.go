package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/parameter"
)

// InactivitySystem respawns the ball when no paddle contact happened for the timeout
// Elapsed time is only accumulated while a ball exists
// The locked interval is the respawn itself: despawn, relayout and spawn complete in one step,
// announced by a Respawn event
type InactivitySystem struct {
	timeout time.Duration
	launch  mgl64.Vec2

	elapsed  time.Duration
	respawns uint64

	log     logger.Logger
	metrics *metrics.Manager
}

// NewInactivitySystem creates the timer
func NewInactivitySystem(timeout time.Duration, launch mgl64.Vec2, log logger.Logger, m *metrics.Manager) *InactivitySystem {
	if log == nil {
		log = logger.Nop()
	}
	s := &InactivitySystem{
		timeout: timeout,
		launch:  launch,
		log:     log.Named("inactivity"),
		metrics: m,
	}
	s.Init()
	return s
}

// Init resets the timer
func (s *InactivitySystem) Init() {
	s.elapsed = 0
}

// Name returns system's name
func (s *InactivitySystem) Name() string {
	return "inactivity"
}

// Priority returns the system's priority (runs last)
func (s *InactivitySystem) Priority() int {
	return parameter.PriorityInactivity
}

// Update accumulates dt, applies paddle-contact resets and respawns on timeout
func (s *InactivitySystem) Update(w *engine.World, dt time.Duration) {
	hits := w.PaddleHits.Drain()
	if _, ok := w.Ball(); !ok {
		return
	}

	s.elapsed += dt
	if len(hits) > 0 {
		s.elapsed = 0
	}

	if s.elapsed > s.timeout {
		old, fresh, err := w.RespawnBall(s.launch)
		if err != nil {
			s.log.Error("respawn failed", logger.Error(err))
		} else {
			w.Respawns.Push(event.Respawn{Old: old, New: fresh})
			s.respawns++
			s.metrics.RecordRespawn()
			s.log.Info("ball respawned",
				logger.Uint64("old", uint64(old)),
				logger.Uint64("new", uint64(fresh)),
			)
		}
		s.elapsed = 0
	}
	s.metrics.SetInactivity(s.elapsed)
}

// Elapsed returns time since the last paddle contact or respawn
func (s *InactivitySystem) Elapsed() time.Duration {
	return s.elapsed
}

// Respawns returns how many times the ball was replaced
func (s *InactivitySystem) Respawns() uint64 {
	return s.respawns
}
