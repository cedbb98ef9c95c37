// Package vmath provides the float64 vector helpers used by the arena physics
// Vectors are mathgl Vec2 values; all helpers are pure and zero-safe
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as degenerate
const Epsilon = 1e-9

// Zero is the zero vector
var Zero = mgl64.Vec2{}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Finite reports whether both components are finite numbers
func Finite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}
