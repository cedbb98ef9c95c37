package main

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// runHeadless plays both sides with followers for a fixed simulated duration
func runHeadless(match *game.Match, duration time.Duration, out io.Writer) error {
	if err := match.Start(parameter.DefaultViewportWidth, parameter.DefaultViewportHeight); err != nil {
		return err
	}
	deadzone := match.World().Tuning().FollowDeadzone
	for _, side := range core.Sides {
		f := &input.Follow{
			Target: func() (mgl64.Vec2, bool) {
				b, ok := match.Ball()
				return b.Position, ok
			},
			Self: func() mgl64.Vec2 {
				p, _ := match.Paddle(side)
				return p.Position
			},
			Deadzone: deadzone,
		}
		if err := match.Bind(side, f); err != nil {
			return err
		}
	}

	step := match.World().Tuning().FixedStep
	for elapsed := time.Duration(0); elapsed < duration; elapsed += step {
		match.Frame(step)
		match.DrainBounces()
		match.DrainRespawns()
	}

	s := match.Score()
	_, err := fmt.Fprintf(out, "steps=%d score=%d:%d idle=%s digest=%016x\n",
		match.Steps(), s.Left, s.Right, match.Inactivity(), match.Digest())
	return err
}
