package game

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/system"
)

// Scene is a read-only snapshot for display collaborators
type Scene struct {
	Width, Height float64
	Ball          physics.Body
	HasBall       bool
	Paddles       [2]physics.Body
	Walls         [4]physics.Body
	Score         system.Score
	Paused        bool
}

// Scene captures the current state
func (m *Match) Scene() Scene {
	var s Scene
	s.Width, s.Height = m.world.Viewport()
	s.Ball, s.HasBall = m.Ball()
	for _, side := range core.Sides {
		s.Paddles[side], _ = m.Paddle(side)
	}
	for _, kind := range component.WallKinds {
		if w, ok := m.world.Wall(kind); ok {
			s.Walls[kind] = w.Body
		}
	}
	s.Score = m.score.Score()
	s.Paused = m.Paused()
	return s
}
