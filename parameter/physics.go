package parameter

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidTuning is returned when a tuning value is out of range
var ErrInvalidTuning = errors.New("invalid tuning")

// Arena geometry
const (
	BallRadius      = 20.0
	PaddleWidth     = 20.0
	PaddleHeight    = 320.0
	PaddleMargin    = 80.0 // Paddle center inset from the side edge
	WallThickness   = 50.0
	LaunchVelocityX = 100.0
	LaunchVelocityY = 33.0
)

// Gameplay tuning
const (
	PaddleSpeed    = 500.0            // Units per second
	PaddleImpulse  = 100.0            // Radial impulse added on paddle contact
	SpeedRampRate  = 0.05             // Fractional speed gain per second
	LockTimeout    = 20 * time.Second // Rally lock reset window
	FollowDeadzone = 12.0             // Follow source dead band
)

// Tuning is the runtime-adjustable set of gameplay constants
type Tuning struct {
	BallRadius     float64       `koanf:"ball_radius"`
	PaddleWidth    float64       `koanf:"paddle_width"`
	PaddleHeight   float64       `koanf:"paddle_height"`
	PaddleMargin   float64       `koanf:"paddle_margin"`
	WallThickness  float64       `koanf:"wall_thickness"`
	LaunchX        float64       `koanf:"launch_x"`
	LaunchY        float64       `koanf:"launch_y"`
	PaddleSpeed    float64       `koanf:"paddle_speed"`
	PaddleImpulse  float64       `koanf:"paddle_impulse"`
	RampRate       float64       `koanf:"ramp_rate"`
	LockTimeout    time.Duration `koanf:"lock_timeout"`
	FixedStep      time.Duration `koanf:"fixed_step"`
	MaxCatchUp     int           `koanf:"max_catch_up"`
	FollowDeadzone float64       `koanf:"follow_deadzone"`
}

// DefaultTuning returns the stock configuration
func DefaultTuning() Tuning {
	return Tuning{
		BallRadius:     BallRadius,
		PaddleWidth:    PaddleWidth,
		PaddleHeight:   PaddleHeight,
		PaddleMargin:   PaddleMargin,
		WallThickness:  WallThickness,
		LaunchX:        LaunchVelocityX,
		LaunchY:        LaunchVelocityY,
		PaddleSpeed:    PaddleSpeed,
		PaddleImpulse:  PaddleImpulse,
		RampRate:       SpeedRampRate,
		LockTimeout:    LockTimeout,
		FixedStep:      FixedStep,
		MaxCatchUp:     MaxCatchUpSteps,
		FollowDeadzone: FollowDeadzone,
	}
}

// Launch returns the initial ball velocity
func (t Tuning) Launch() mgl64.Vec2 {
	return mgl64.Vec2{t.LaunchX, t.LaunchY}
}

// Validate rejects non-positive geometry and timing
func (t Tuning) Validate() error {
	switch {
	case t.BallRadius <= 0:
		return errors.Join(ErrInvalidTuning, errors.New("ball_radius must be positive"))
	case t.PaddleWidth <= 0 || t.PaddleHeight <= 0:
		return errors.Join(ErrInvalidTuning, errors.New("paddle size must be positive"))
	case t.WallThickness <= 0:
		return errors.Join(ErrInvalidTuning, errors.New("wall_thickness must be positive"))
	case t.PaddleSpeed < 0 || t.PaddleImpulse < 0 || t.RampRate < 0:
		return errors.Join(ErrInvalidTuning, errors.New("speed, impulse and ramp must not be negative"))
	case t.LockTimeout <= 0:
		return errors.Join(ErrInvalidTuning, errors.New("lock_timeout must be positive"))
	case t.FixedStep <= 0:
		return errors.Join(ErrInvalidTuning, errors.New("fixed_step must be positive"))
	case t.MaxCatchUp < 1:
		return errors.Join(ErrInvalidTuning, errors.New("max_catch_up must be at least 1"))
	}
	return nil
}
