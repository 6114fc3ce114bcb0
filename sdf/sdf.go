// Package sdf holds the scalar helpers and the analytic signed distance
// field shared by every primitive compositor.
package sdf

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/boardkit/boardkit"
)

func Clamp(x, lo, hi float32) float32 {
	return math32.Min(math32.Max(x, lo), hi)
}

func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep is the cubic 0..1 interpolation between the edges, the analytic
// anti-aliasing primitive of all compositors.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// RoundedBox is the exact signed distance from offset to a box of the given
// size centered at the origin, with one independent radius per corner.
// Negative inside, zero on the boundary, positive outside. offset.y grows
// downward, matching UI-layout space.
//
// Radii summing to more than half an edge are not clamped; overlapping
// rounding regions are accepted behavior.
func RoundedBox(offset, size mgl32.Vec2, radius boardkit.Corners) float32 {
	// pick the radius of the quadrant the point lies in
	var r float32
	if offset.X() < 0 {
		if offset.Y() < 0 {
			r = radius.TopLeft
		} else {
			r = radius.BottomLeft
		}
	} else {
		if offset.Y() < 0 {
			r = radius.TopRight
		} else {
			r = radius.BottomRight
		}
	}

	qx := math32.Abs(offset.X()) - size.X()/2 + r
	qy := math32.Abs(offset.Y()) - size.Y()/2 + r
	return math32.Min(math32.Max(qx, qy), 0) +
		math32.Hypot(math32.Max(qx, 0), math32.Max(qy, 0)) - r
}
