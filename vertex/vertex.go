// Package vertex is the geometry half of the pipeline: it maps UI-layout
// positions to clip space and synthesizes the four corners of every
// instance's quad. Each function is pure; one invocation per
// (instance, corner) with no ordering dependency between them.
package vertex

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/boardkit/boardkit"
)

// Corner returns one of the four canonical corners of bounds. The index
// mapping is fixed: 0 -> (min,min), 1 -> (min.x,max.y), 2 -> (max.x,min.y),
// 3 -> (max,max). Any other index falls back to corner 3, so a quad drawn as
// a 4-vertex strip covers the box with two triangles.
func Corner(bounds boardkit.Aabb, index int) mgl32.Vec2 {
	switch index {
	case 0:
		return bounds.Min
	case 1:
		return mgl32.Vec2{bounds.Min.X(), bounds.Max.Y()}
	case 2:
		return mgl32.Vec2{bounds.Max.X(), bounds.Min.Y()}
	default:
		return bounds.Max
	}
}

// CornerExpanded pushes the corner outward by margin along both axes,
// enlarging the rasterized footprint so a drop shadow's falloff region is
// actually covered by fragments.
func CornerExpanded(bounds boardkit.Aabb, index int, margin float32) mgl32.Vec2 {
	switch index {
	case 0:
		return mgl32.Vec2{bounds.Min.X() - margin, bounds.Min.Y() - margin}
	case 1:
		return mgl32.Vec2{bounds.Min.X() - margin, bounds.Max.Y() + margin}
	case 2:
		return mgl32.Vec2{bounds.Max.X() + margin, bounds.Min.Y() - margin}
	default:
		return mgl32.Vec2{bounds.Max.X() + margin, bounds.Max.Y() + margin}
	}
}

// CornerUV returns the corner position together with the matching corner of
// the UV rectangle, under the identical index mapping.
func CornerUV(bounds, uv boardkit.Aabb, index int) (pos, uvPos mgl32.Vec2) {
	return Corner(bounds, index), Corner(uv, index)
}

// UIToScreen scales a UI-layout position to physical pixels. Only the screen
// height participates in the scale so element proportions stay constant
// across window widths.
func UIToScreen(ui mgl32.Vec2, screen boardkit.ScreenRaw, referenceHeight float32) mgl32.Vec2 {
	scale := screen.Height / referenceHeight
	return ui.Mul(scale)
}

// ScreenToClip maps a pixel position to clip space, y flipped so that pixel
// (0,0) lands at NDC (-1,1).
func ScreenToClip(p mgl32.Vec2, screen boardkit.ScreenRaw) mgl32.Vec4 {
	return mgl32.Vec4{
		p.X()/screen.Width*2 - 1,
		1 - p.Y()/screen.Height*2,
		0,
		1,
	}
}

// UIToClip is the 2D screen-space mode of the coordinate pipeline.
func UIToClip(ui mgl32.Vec2, screen boardkit.ScreenRaw, referenceHeight float32) mgl32.Vec4 {
	return ScreenToClip(UIToScreen(ui, screen, referenceHeight), screen)
}

// UIToWorldClip is the 3D mode: the UI position is scaled into world units,
// y-flipped, placed on the local z=0 plane, transformed by the draw call's
// push transform and then by the camera. The perspective divide happens
// downstream in the rasterizer.
func UIToWorldClip(ui mgl32.Vec2, worldPerUIUnit float32, push boardkit.PushTransform, camera boardkit.CameraRaw) mgl32.Vec4 {
	local := mgl32.Vec3{
		ui.X() * worldPerUIUnit,
		-ui.Y() * worldPerUIUnit,
		0,
	}
	world := push.Transform.Apply(local)
	return camera.ViewProj.Mul4x1(world.Vec4(1))
}

// ParticleCorner builds the clip-space position and UV of one corner of a
// particle quad. The quad is built in particle-local space from a canonical
// unit quad, rotated about the particle center by the particle's scalar
// rotation, translated by its offset, then pushed through the shared draw
// call transform and the camera. Every particle of a draw call shares one
// orientation; there is no per-particle billboarding.
func ParticleCorner(p boardkit.ParticleInstance, index int, push boardkit.TransformRaw, camera boardkit.CameraRaw) (clip mgl32.Vec4, uv mgl32.Vec2) {
	corner := Corner(boardkit.Aabb{
		Min: mgl32.Vec2{-0.5, -0.5},
		Max: mgl32.Vec2{0.5, 0.5},
	}, index)
	uv = Corner(p.UV, index)

	x := corner.X() * p.Size.X()
	y := corner.Y() * p.Size.Y()

	local := rotate2D(mgl32.Vec2{x, y}, p.Rotation)
	pos := p.Pos.Add(mgl32.Vec3{local.X(), local.Y(), 0})
	world := push.Apply(pos)
	clip = camera.ViewProj.Mul4x1(world.Vec4(1))
	return clip, uv
}

func rotate2D(v mgl32.Vec2, angle float32) mgl32.Vec2 {
	sin, cos := math32.Sincos(angle)
	return mgl32.Vec2{
		v.X()*cos - v.Y()*sin,
		v.X()*sin + v.Y()*cos,
	}
}
