package input

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Source yields the raw (up, down) binding state for one paddle
// Queried once per frame
type Source interface {
	Pressed() (up, down bool)
}

// KeyState is a directly set binding state, for hosts that report key releases
type KeyState struct {
	Up, Down bool
}

func (k *KeyState) Pressed() (up, down bool) {
	return k.Up, k.Down
}

// Latch treats a key as held for a window after its last press
// Press is called from the event goroutine, Pressed from the loop
type Latch struct {
	mu       sync.Mutex
	window   time.Duration
	now      func() time.Time
	lastUp   time.Time
	lastDown time.Time
}

// NewLatch creates a latch with the given hold window, now defaults to time.Now
func NewLatch(window time.Duration, now func() time.Time) *Latch {
	if now == nil {
		now = time.Now
	}
	return &Latch{window: window, now: now}
}

// Press records a press of the up or down binding
func (l *Latch) Press(i Intent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch i {
	case Up:
		l.lastUp = l.now()
	case Down:
		l.lastDown = l.now()
	}
}

// Release clears both bindings
func (l *Latch) Release() {
	l.mu.Lock()
	l.lastUp, l.lastDown = time.Time{}, time.Time{}
	l.mu.Unlock()
}

func (l *Latch) Pressed() (up, down bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	up = !l.lastUp.IsZero() && now.Sub(l.lastUp) <= l.window
	down = !l.lastDown.IsZero() && now.Sub(l.lastDown) <= l.window
	return up, down
}

// Follow steers a paddle toward a target height, used for computer-controlled sides
// Inside the deadzone neither binding is held
type Follow struct {
	Target   func() (mgl64.Vec2, bool) // Ball position, false when no ball
	Self     func() mgl64.Vec2         // Paddle position
	Deadzone float64
}

func (f *Follow) Pressed() (up, down bool) {
	if f.Target == nil || f.Self == nil {
		return false, false
	}
	target, ok := f.Target()
	if !ok {
		return false, false
	}
	dy := target[1] - f.Self()[1]
	return dy > f.Deadzone, dy < -f.Deadzone
}
