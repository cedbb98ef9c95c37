package component

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
)

// PaddleComponent is a kinematic rectangle driven by an input source
// X is fixed at spawn, only the vertical velocity is ever assigned
type PaddleComponent struct {
	physics.Body
	Side   core.Side
	Source input.Source // nil resolves to Neutral
	SpawnX float64
}
