package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClosestPointOnRect returns the point of an axis-aligned rectangle nearest to p
// Rectangle is given by center and half extents
func ClosestPointOnRect(p, center, half mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		Clamp(p[0], center[0]-half[0], center[0]+half[0]),
		Clamp(p[1], center[1]-half[1], center[1]+half[1]),
	}
}

// CircleRectPenetration returns the contact normal pointing from the rectangle toward the circle
// and the penetration depth; ok is false when the shapes do not overlap
// A circle center inside the rectangle resolves along the axis of least penetration
func CircleRectPenetration(c mgl64.Vec2, r float64, center, half mgl64.Vec2) (normal mgl64.Vec2, depth float64, ok bool) {
	closest := ClosestPointOnRect(c, center, half)
	d := c.Sub(closest)
	distSq := d.Dot(d)
	if distSq >= r*r {
		return Zero, 0, false
	}

	if distSq > Epsilon*Epsilon {
		dist := math.Sqrt(distSq)
		return d.Mul(1 / dist), r - dist, true
	}

	// Center on or inside the rectangle
	local := c.Sub(center)
	penX := half[0] - math.Abs(local[0])
	penY := half[1] - math.Abs(local[1])
	if penX < penY {
		return mgl64.Vec2{sign(local[0]), 0}, penX + r, true
	}
	return mgl64.Vec2{0, sign(local[1])}, penY + r, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
