package vmath

import "github.com/go-gl/mathgl/mgl64"

// Normalize returns the unit vector of v, zero-safe
// ok is false when v is shorter than Epsilon and the zero vector is returned
// mgl64.Vec2.Normalize divides by zero on a zero vector, so callers use this instead
func Normalize(v mgl64.Vec2) (n mgl64.Vec2, ok bool) {
	l := v.Len()
	if l < Epsilon {
		return Zero, false
	}
	return v.Mul(1 / l), true
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal mgl64.Vec2) mgl64.Vec2 {
	return vel.Sub(normal.Mul(2 * vel.Dot(normal)))
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
func ReflectAxisX(vel mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-vel[0], vel[1]}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
func ReflectAxisY(vel mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{vel[0], -vel[1]}
}
