package physics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
)

const step = time.Second / 64

func ball(id core.Entity, pos, vel mgl64.Vec2) *Body {
	return &Body{ID: id, Kind: Dynamic, Shape: Circle(20), Kinetic: core.Kinetic{Position: pos, Velocity: vel}}
}

func rect(id core.Entity, kind BodyKind, pos mgl64.Vec2, w, h float64, sensor bool) *Body {
	return &Body{ID: id, Kind: kind, Shape: Rect(w, h), Sensor: sensor, Kinetic: core.Kinetic{Position: pos}}
}

func TestNew(t *testing.T) {
	if e, err := New(EngineBoundary); err != nil || e == nil {
		t.Errorf("New(boundary) = %v, %v", e, err)
	}
	if e, err := New(EngineChipmunk); err != nil || e == nil {
		t.Errorf("New(chipmunk) = %v, %v", e, err)
	}
	if _, err := New("box2d"); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("New(box2d) err = %v, want ErrUnknownEngine", err)
	}
}

func TestContactHelpers(t *testing.T) {
	c := Contact{A: 1, B: 2}
	if !c.Involves(1) || !c.Involves(2) || c.Involves(3) {
		t.Error("Involves mismatch")
	}
	if c.Other(1) != 2 || c.Other(2) != 1 {
		t.Error("Other mismatch")
	}
}

func TestBoundaryIntegrates(t *testing.T) {
	e := NewBoundaryEngine()
	b := ball(1, mgl64.Vec2{}, mgl64.Vec2{64, -128})
	wall := rect(2, Static, mgl64.Vec2{1000, 0}, 50, 50, true)
	wall.Velocity = mgl64.Vec2{5, 5}

	e.Advance([]*Body{b, wall}, step)

	if math.Abs(b.Position[0]-1) > 1e-9 || math.Abs(b.Position[1]+2) > 1e-9 {
		t.Errorf("ball position = %v, want (1,-2)", b.Position)
	}
	if wall.Position != (mgl64.Vec2{1000, 0}) {
		t.Errorf("static body moved to %v", wall.Position)
	}
}

func TestBoundarySensorContactOnce(t *testing.T) {
	e := NewBoundaryEngine()
	b := ball(1, mgl64.Vec2{0, 0}, mgl64.Vec2{640, 0})
	wall := rect(2, Static, mgl64.Vec2{65, 0}, 50, 720, true)

	// 10 units per step; overlap begins at x > 20
	var contacts []Contact
	for i := 0; i < 6; i++ {
		contacts = append(contacts, e.Advance([]*Body{b, wall}, step)...)
	}

	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if !contacts[0].Involves(1) || !contacts[0].Involves(2) {
		t.Errorf("contact = %+v", contacts[0])
	}
	if b.Velocity[0] != 640 {
		t.Errorf("sensor changed velocity to %v", b.Velocity)
	}
}

func TestBoundarySolidReflects(t *testing.T) {
	e := NewBoundaryEngine()
	b := ball(1, mgl64.Vec2{-50, 0}, mgl64.Vec2{640, 0})
	paddle := rect(2, Kinematic, mgl64.Vec2{0, 0}, 20, 320, false)

	var contacts []Contact
	for i := 0; i < 5 && len(contacts) == 0; i++ {
		contacts = e.Advance([]*Body{paddle, b}, step)
	}

	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if b.Velocity[0] != -640 || b.Velocity[1] != 0 {
		t.Errorf("velocity after bounce = %v, want (-640,0)", b.Velocity)
	}
	if b.Position[0] > -30 {
		t.Errorf("ball not pushed out, x = %v", b.Position[0])
	}
	if n := contacts[0].Normal; n != (mgl64.Vec2{-1, 0}) {
		t.Errorf("normal = %v, want (-1,0)", n)
	}
}

func TestBoundaryRespawnedBallContactsAgain(t *testing.T) {
	e := NewBoundaryEngine()
	wall := rect(2, Static, mgl64.Vec2{0, 0}, 50, 50, true)

	first := ball(1, mgl64.Vec2{}, mgl64.Vec2{})
	if got := e.Advance([]*Body{wall, first}, step); len(got) != 1 {
		t.Fatalf("first ball contacts = %d", len(got))
	}
	if got := e.Advance([]*Body{wall, first}, step); len(got) != 0 {
		t.Fatalf("persisting overlap reported again")
	}

	second := ball(3, mgl64.Vec2{}, mgl64.Vec2{})
	if got := e.Advance([]*Body{wall, second}, step); len(got) != 1 {
		t.Errorf("new ball contacts = %d, want 1", len(got))
	}
	if len(e.active) != 1 {
		t.Errorf("stale pair kept, active pairs = %d", len(e.active))
	}
}

func TestRestitute(t *testing.T) {
	k := core.Kinetic{Velocity: mgl64.Vec2{-10, 3}}
	if !Restitute(&k, mgl64.Vec2{}, mgl64.Vec2{1, 0}) {
		t.Fatal("approaching body not restituted")
	}
	if k.Velocity != (mgl64.Vec2{10, 3}) {
		t.Errorf("velocity = %v", k.Velocity)
	}
	if Restitute(&k, mgl64.Vec2{}, mgl64.Vec2{1, 0}) {
		t.Error("separating body restituted")
	}
}

func TestChipmunkSensorContact(t *testing.T) {
	e := NewChipmunkEngine()
	b := ball(1, mgl64.Vec2{0, 0}, mgl64.Vec2{640, 0})
	wall := rect(2, Static, mgl64.Vec2{100, 0}, 50, 720, true)

	var contacts []Contact
	for i := 0; i < 20; i++ {
		contacts = append(contacts, e.Advance([]*Body{wall, b}, step)...)
	}

	if len(contacts) == 0 {
		t.Fatal("no contact with sensor wall")
	}
	if !contacts[0].Involves(1) || !contacts[0].Involves(2) {
		t.Errorf("contact = %+v", contacts[0])
	}
	if b.Velocity[0] <= 0 {
		t.Errorf("sensor reflected ball, velocity %v", b.Velocity)
	}
}

func TestChipmunkPaddleBounce(t *testing.T) {
	e := NewChipmunkEngine()
	b := ball(1, mgl64.Vec2{-100, 0}, mgl64.Vec2{640, 0})
	paddle := rect(2, Kinematic, mgl64.Vec2{0, 0}, 20, 320, false)

	hit := false
	for i := 0; i < 30; i++ {
		if len(e.Advance([]*Body{paddle, b}, step)) > 0 {
			hit = true
		}
	}

	if !hit {
		t.Fatal("no paddle contact")
	}
	if b.Velocity[0] >= 0 {
		t.Errorf("ball not reflected, velocity %v", b.Velocity)
	}
	if paddle.Position != (mgl64.Vec2{}) {
		t.Errorf("kinematic paddle pushed to %v", paddle.Position)
	}
}

func TestChipmunkReconcile(t *testing.T) {
	e := NewChipmunkEngine()
	b := ball(1, mgl64.Vec2{}, mgl64.Vec2{})
	wall := rect(2, Static, mgl64.Vec2{500, 0}, 50, 50, true)

	e.Advance([]*Body{wall, b}, step)
	if e.Bodies() != 2 {
		t.Fatalf("Bodies = %d, want 2", e.Bodies())
	}

	e.Advance([]*Body{wall}, step)
	if e.Bodies() != 1 {
		t.Errorf("despawned body kept, Bodies = %d", e.Bodies())
	}

	wall.Position = mgl64.Vec2{600, 0}
	e.Advance([]*Body{wall}, step)
	if wall.Position != (mgl64.Vec2{600, 0}) || e.Bodies() != 1 {
		t.Errorf("moved static wall not rebuilt: %v, %d", wall.Position, e.Bodies())
	}
}

func TestSubSteps(t *testing.T) {
	paddle := rect(2, Kinematic, mgl64.Vec2{}, 20, 320, false)
	paddle.Velocity = mgl64.Vec2{0, 500}

	tests := []struct {
		name   string
		bodies []*Body
		want   int
	}{
		{"slow ball", []*Body{ball(1, mgl64.Vec2{}, mgl64.Vec2{100, 33})}, 1},
		{"fast ball", []*Body{ball(1, mgl64.Vec2{}, mgl64.Vec2{20000, 0})}, 16},
		{"fast ball and moving paddle", []*Body{paddle, ball(1, mgl64.Vec2{}, mgl64.Vec2{20000, 0})}, 17},
		{"capped", []*Body{ball(1, mgl64.Vec2{}, mgl64.Vec2{1e9, 0})}, MaxSubSteps},
		{"non-finite", []*Body{ball(1, mgl64.Vec2{}, mgl64.Vec2{math.Inf(1), 0})}, MaxSubSteps},
		{"no dynamic bodies", []*Body{paddle}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubSteps(tt.bodies, step); got != tt.want {
				t.Errorf("SubSteps = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBoundsExtendsBoundary(t *testing.T) {
	top := rect(1, Static, mgl64.Vec2{0, 360}, 1280, 50, true)
	if c, h := top.Bounds(); c != top.Position || h != top.Shape.Half {
		t.Errorf("plain rect bounds = %v %v", c, h)
	}

	top.Outward = mgl64.Vec2{0, 1}
	c, h := top.Bounds()
	if inner := c[1] - h[1]; inner != 335 {
		t.Errorf("inner face = %v, want 335", inner)
	}
	if h[0] != 640 || c[0] != 0 {
		t.Errorf("lateral extent changed: center %v half %v", c, h)
	}
	if outer := c[1] + h[1]; outer < SlabDepth {
		t.Errorf("outer face = %v, want beyond %v", outer, SlabDepth)
	}
}

// arena builds four boundary sensors around a 1280x720 arena
func arena() []*Body {
	walls := []*Body{
		rect(10, Static, mgl64.Vec2{0, 360}, 1280, 50, true),
		rect(11, Static, mgl64.Vec2{0, -360}, 1280, 50, true),
		rect(12, Static, mgl64.Vec2{-640, 0}, 50, 720, true),
		rect(13, Static, mgl64.Vec2{640, 0}, 50, 720, true),
	}
	walls[0].Outward = mgl64.Vec2{0, 1}
	walls[1].Outward = mgl64.Vec2{0, -1}
	walls[2].Outward = mgl64.Vec2{-1, 0}
	walls[3].Outward = mgl64.Vec2{1, 0}
	return walls
}

func TestFastBallContactsBoundary(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec2
		vel  mgl64.Vec2
		wall core.Entity
	}{
		{"top", mgl64.Vec2{0, 200}, mgl64.Vec2{0, 20000}, 10},
		{"bottom", mgl64.Vec2{0, -200}, mgl64.Vec2{0, -20000}, 11},
		{"left", mgl64.Vec2{-500, 250}, mgl64.Vec2{-20000, 0}, 12},
		{"right", mgl64.Vec2{500, 250}, mgl64.Vec2{20000, 0}, 13},
	}
	for _, name := range []string{EngineBoundary, EngineChipmunk} {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				e, _ := New(name)
				b := ball(1, tt.pos, tt.vel)
				bodies := append(arena(), b)

				contacts := e.Advance(bodies, step)

				// One step carries the ball past the outer face of the 50-unit wall
				if len(contacts) != 1 {
					t.Fatalf("got %d contacts, want 1 (ball at %v)", len(contacts), b.Position)
				}
				if !contacts[0].Involves(1) || !contacts[0].Involves(tt.wall) {
					t.Errorf("contact = %+v, want ball and wall %d", contacts[0], tt.wall)
				}
			})
		}
	}
}

func TestFastBallReflectsOffPaddle(t *testing.T) {
	for _, name := range []string{EngineBoundary, EngineChipmunk} {
		t.Run(name, func(t *testing.T) {
			e, _ := New(name)
			b := ball(1, mgl64.Vec2{-100, 0}, mgl64.Vec2{20000, 0})
			paddle := rect(2, Kinematic, mgl64.Vec2{}, 20, 320, false)

			contacts := e.Advance([]*Body{paddle, b}, step)

			if len(contacts) == 0 {
				t.Fatalf("ball passed through paddle to %v", b.Position)
			}
			if b.Velocity[0] >= 0 || b.Position[0] > 0 {
				t.Errorf("ball not reflected: position %v velocity %v", b.Position, b.Velocity)
			}
		})
	}
}
