package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/system"
)

func newMatch(t *testing.T, eng physics.Engine) *Match {
	t.Helper()
	m, err := New(parameter.DefaultTuning(), eng, WithSession(uuid.Nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Start(1280, 720); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return m
}

func followers(m *Match) {
	for _, side := range core.Sides {
		_ = m.Bind(side, &input.Follow{
			Target: func() (mgl64.Vec2, bool) {
				b, ok := m.Ball()
				return b.Position, ok
			},
			Self: func() mgl64.Vec2 {
				p, _ := m.Paddle(side)
				return p.Position
			},
			Deadzone: parameter.FollowDeadzone,
		})
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tu := parameter.DefaultTuning()
	tu.FixedStep = 0
	if _, err := New(tu, nil); !errors.Is(err, parameter.ErrInvalidTuning) {
		t.Errorf("New = %v, want ErrInvalidTuning", err)
	}
}

func TestStartOnce(t *testing.T) {
	m := newMatch(t, nil)
	b, ok := m.Ball()
	if !ok || b.Velocity != (mgl64.Vec2{100, 33}) {
		t.Fatalf("initial ball = %+v", b)
	}
	if err := m.Start(1280, 720); !errors.Is(err, engine.ErrArenaExists) {
		t.Errorf("second Start = %v, want ErrArenaExists", err)
	}
	if m.Session() != uuid.Nil {
		t.Errorf("session = %v", m.Session())
	}
}

func TestFrameDrivesPaddles(t *testing.T) {
	m := newMatch(t, nil)
	keys := &input.KeyState{Up: true}
	if err := m.Bind(core.Left, keys); err != nil {
		t.Fatal(err)
	}

	if n := m.Frame(parameter.FixedStep); n != 1 {
		t.Fatalf("Frame ran %d steps", n)
	}
	p, _ := m.Paddle(core.Left)
	if math.Abs(p.Position[1]-500.0/64) > 1e-9 || p.Position[0] != -560 {
		t.Errorf("paddle at %v, want (-560, 7.8125)", p.Position)
	}

	keys.Up = false
	m.Frame(parameter.FixedStep)
	p, _ = m.Paddle(core.Left)
	if p.Velocity != (mgl64.Vec2{}) {
		t.Errorf("released paddle velocity %v", p.Velocity)
	}
}

func TestGoalEndToEnd(t *testing.T) {
	m := newMatch(t, nil)
	if _, ok := m.TakeScore(); !ok {
		t.Fatal("initial score not reported")
	}

	b, _ := m.World().Ball()
	b.Position = mgl64.Vec2{-600, 250}
	b.Velocity = mgl64.Vec2{-640, 0}

	m.Step()

	sc, ok := m.TakeScore()
	if !ok || sc != (system.Score{Left: 0, Right: 1}) {
		t.Errorf("score = %+v changed=%v, want 0:1", sc, ok)
	}
	if b.Velocity[0] <= 0 {
		t.Errorf("ball not sent back, velocity %v", b.Velocity)
	}

	// Further steps while still overlapping do not score again
	m.Step()
	if _, ok := m.TakeScore(); ok {
		t.Error("persisting overlap scored twice")
	}
}

func TestTopWallEndToEnd(t *testing.T) {
	m := newMatch(t, nil)
	b, _ := m.World().Ball()
	b.Position = mgl64.Vec2{0, 310}
	b.Velocity = mgl64.Vec2{64, 640}

	m.Step()

	if b.Velocity[1] >= 0 {
		t.Errorf("vy = %v, want negative", b.Velocity[1])
	}
	want := 64 * (1 + 0.05*parameter.FixedStep.Seconds())
	if math.Abs(b.Velocity[0]-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", b.Velocity[0], want)
	}
	if got := m.DrainBounces(); len(got) != 1 {
		t.Errorf("bounces = %d, want 1", len(got))
	}
	if got := m.DrainBounces(); got != nil {
		t.Error("bounces drained twice")
	}
}

func TestRespawnThroughMatch(t *testing.T) {
	m := newMatch(t, nil)
	b, _ := m.World().Ball()
	b.Velocity = mgl64.Vec2{}
	first := b.ID

	if err := m.Resize(1600, 900); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1280; i++ {
		m.Step()
	}
	if len(m.DrainRespawns()) != 0 {
		t.Fatal("respawned early")
	}

	m.Step()
	ev := m.DrainRespawns()
	if len(ev) != 1 || ev[0].Old != first {
		t.Fatalf("respawns = %+v", ev)
	}
	nb, _ := m.Ball()
	if nb.Velocity != (mgl64.Vec2{100, 33}) || m.Inactivity() != 0 {
		t.Errorf("new ball %v, inactivity %v", nb.Velocity, m.Inactivity())
	}
	if sc := m.Scene(); sc.Width != 1600 || sc.Height != 900 {
		t.Errorf("viewport after respawn = %vx%v", sc.Width, sc.Height)
	}
}

func TestSingleBallInvariant(t *testing.T) {
	for _, name := range []string{physics.EngineBoundary, physics.EngineChipmunk} {
		t.Run(name, func(t *testing.T) {
			eng, err := physics.New(name)
			if err != nil {
				t.Fatal(err)
			}
			m := newMatch(t, eng)
			followers(m)

			for i := 0; i < 64*45; i++ {
				m.Frame(parameter.FixedStep)
				b, ok := m.Ball()
				if !ok {
					t.Fatalf("no ball at step %d", i)
				}
				if math.IsNaN(b.Position[0]) || math.IsNaN(b.Velocity[1]) {
					t.Fatalf("non-finite ball at step %d: %+v", i, b)
				}
			}
			if m.Steps() != 64*45 {
				t.Errorf("Steps = %d", m.Steps())
			}
		})
	}
}

func TestDigestDeterministic(t *testing.T) {
	run := func() uint64 {
		m := newMatch(t, nil)
		followers(m)
		for i := 0; i < 64*30; i++ {
			m.Frame(parameter.FixedStep)
		}
		return m.Digest()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("digests differ: %x vs %x", a, b)
	}

	m := newMatch(t, nil)
	if m.Digest() == a {
		t.Error("fresh match digest equals played match")
	}
}

func TestPauseStopsSteps(t *testing.T) {
	m := newMatch(t, nil)
	m.Pause()
	if n := m.Frame(time.Second); n != 0 || !m.Paused() {
		t.Errorf("paused frame ran %d steps", n)
	}
	m.Resume()
	if n := m.Frame(time.Second); n != parameter.MaxCatchUpSteps {
		t.Errorf("resumed frame ran %d steps, want cap %d", n, parameter.MaxCatchUpSteps)
	}
}

func TestSceneSnapshot(t *testing.T) {
	m := newMatch(t, nil)
	s := m.Scene()
	if !s.HasBall || s.Width != 1280 || s.Height != 720 {
		t.Errorf("scene = %+v", s)
	}
	if s.Paddles[core.Right].Position[0] != 560 {
		t.Errorf("right paddle x = %v", s.Paddles[core.Right].Position[0])
	}
	s.Ball.Position = mgl64.Vec2{999, 999}
	if b, _ := m.Ball(); b.Position == s.Ball.Position {
		t.Error("scene aliases live state")
	}
}

func TestFastBallStaysInArena(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel mgl64.Vec2
		bounces  int
		check    func(t *testing.T, b physics.Body, sc system.Score)
	}{
		{"top", mgl64.Vec2{0, 200}, mgl64.Vec2{0, 20000}, 1, func(t *testing.T, b physics.Body, _ system.Score) {
			if b.Velocity[1] >= 0 {
				t.Errorf("vy = %v, want negative", b.Velocity[1])
			}
		}},
		{"bottom", mgl64.Vec2{0, -200}, mgl64.Vec2{0, -20000}, 1, func(t *testing.T, b physics.Body, _ system.Score) {
			if b.Velocity[1] <= 0 {
				t.Errorf("vy = %v, want positive", b.Velocity[1])
			}
		}},
		{"left goal", mgl64.Vec2{-500, 250}, mgl64.Vec2{-20000, 0}, 0, func(t *testing.T, b physics.Body, sc system.Score) {
			if sc != (system.Score{Right: 1}) || b.Velocity[0] <= 0 {
				t.Errorf("score %+v velocity %v, want 0:1 and vx > 0", sc, b.Velocity)
			}
		}},
		{"right goal", mgl64.Vec2{500, 250}, mgl64.Vec2{20000, 0}, 0, func(t *testing.T, b physics.Body, sc system.Score) {
			if sc != (system.Score{Left: 1}) || b.Velocity[0] >= 0 {
				t.Errorf("score %+v velocity %v, want 1:0 and vx < 0", sc, b.Velocity)
			}
		}},
	}

	for _, name := range []string{physics.EngineBoundary, physics.EngineChipmunk} {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				eng, _ := physics.New(name)
				m := newMatch(t, eng)
				ball, _ := m.World().Ball()
				ball.Position, ball.Velocity = tt.pos, tt.vel

				// One step moves the ball well past the 50-unit wall
				m.Step()
				b, _ := m.Ball()
				tt.check(t, b, m.Score())
				if n := len(m.DrainBounces()); n != tt.bounces {
					t.Errorf("bounces = %d, want %d", n, tt.bounces)
				}

				// A ball past a wall's inner face always heads back in
				for i := 0; i < 120; i++ {
					m.Step()
					b, _ := m.Ball()
					if (b.Position[1] > 335 && b.Velocity[1] > 0) || (b.Position[1] < -335 && b.Velocity[1] < 0) ||
						(b.Position[0] > 615 && b.Velocity[0] > 0) || (b.Position[0] < -615 && b.Velocity[0] < 0) {
						t.Fatalf("step %d: ball escaping at %v with velocity %v", i, b.Position, b.Velocity)
					}
				}
			})
		}
	}
}
