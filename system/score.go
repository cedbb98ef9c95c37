package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Score holds the raw goal counters
type Score struct {
	Left  uint64
	Right uint64
}

// Of returns the counter of a side
func (s Score) Of(side core.Side) uint64 {
	if side == core.Left {
		return s.Left
	}
	return s.Right
}

// ScoreSystem is the score ledger, the only writer of Score
type ScoreSystem struct {
	score   Score
	dirty   bool
	metrics *metrics.Manager
}

// NewScoreSystem creates a ledger at 0:0
func NewScoreSystem(m *metrics.Manager) *ScoreSystem {
	return &ScoreSystem{metrics: m, dirty: true}
}

// Name returns system's name
func (s *ScoreSystem) Name() string {
	return "score"
}

// Priority returns the system's priority (after collision)
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Update drains goals in emission order
func (s *ScoreSystem) Update(w *engine.World, _ time.Duration) {
	for _, g := range w.Goals.Drain() {
		s.RecordGoal(g)
	}
}

// RecordGoal credits the side opposite the conceding wall
func (s *ScoreSystem) RecordGoal(g event.ScoreGoal) {
	credited := g.Conceded.Opposite()
	if credited == core.Left {
		s.score.Left++
	} else {
		s.score.Right++
	}
	s.dirty = true
	s.metrics.RecordGoal(credited.String())
}

// Score returns the current counters
func (s *ScoreSystem) Score() Score {
	return s.score
}

// TakeChanged returns the counters when they changed since the previous take
// The first take after creation reports the initial 0:0
func (s *ScoreSystem) TakeChanged() (Score, bool) {
	if !s.dirty {
		return s.score, false
	}
	s.dirty = false
	return s.score, true
}
