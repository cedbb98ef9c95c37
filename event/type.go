package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
)

// Bounce is emitted on every ball reflection off a paddle or horizontal wall
type Bounce struct {
	Position mgl64.Vec2 // Ball center at contact
}

// ScoreGoal is emitted when the ball reaches a side wall
// Conceded is the side whose wall was hit, GoalFor is the credited side
type ScoreGoal struct {
	Conceded core.Side
	GoalFor  core.Side
}

// NewScoreGoal builds the goal for a hit on the given side's wall
func NewScoreGoal(conceded core.Side) ScoreGoal {
	return ScoreGoal{Conceded: conceded, GoalFor: conceded.Opposite()}
}

// PaddleHit is emitted on ball-paddle contact, consumed by the inactivity timer
type PaddleHit struct {
	Paddle core.Entity
	Side   core.Side
}

// Respawn is emitted when the inactivity timer replaces the ball
type Respawn struct {
	Old core.Entity
	New core.Entity
}
