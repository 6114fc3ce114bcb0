package boardkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a position plus size. Pos is the top-left corner in UI-layout
// units (y grows downward).
type Rect struct {
	Pos  mgl32.Vec2
	Size mgl32.Vec2
}

var (
	RectUnit = Rect{Pos: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{1, 1}}
	RectZero = Rect{}
)

func (r Rect) Contains(pos mgl32.Vec2) bool {
	return pos.X() >= r.Pos.X() && pos.Y() >= r.Pos.Y() &&
		pos.X() <= r.Pos.X()+r.Size.X() && pos.Y() <= r.Pos.Y()+r.Size.Y()
}

func (r Rect) Aabb() Aabb {
	return Aabb{Min: r.Pos, Max: r.Pos.Add(r.Size)}
}

func (r Rect) Lerp(other Rect, factor float32) Rect {
	return Rect{
		Pos:  lerpVec2(r.Pos, other.Pos, factor),
		Size: lerpVec2(r.Size, other.Size, factor),
	}
}

// Aabb is an axis-aligned bounding box. Min is the top-left corner in
// UI-layout units. Min <= Max is assumed, not checked; a violated invariant
// yields a negative-size quad and an undefined visual result.
type Aabb struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// AabbUnit is the unit box, the default UV rectangle covering a full texture.
var AabbUnit = Aabb{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}}

func NewAabb(minX, minY, maxX, maxY float32) Aabb {
	return Aabb{Min: mgl32.Vec2{minX, minY}, Max: mgl32.Vec2{maxX, maxY}}
}

// AabbSquare returns a square box of edge length len centered on center.
func AabbSquare(center mgl32.Vec2, len float32) Aabb {
	half := mgl32.Vec2{len / 2, len / 2}
	return Aabb{Min: center.Sub(half), Max: center.Add(half)}
}

func (a Aabb) Size() mgl32.Vec2 {
	return a.Max.Sub(a.Min)
}

func (a Aabb) Center() mgl32.Vec2 {
	return a.Max.Add(a.Min).Mul(0.5)
}

func (a Aabb) Contains(pos mgl32.Vec2) bool {
	return pos.X() >= a.Min.X() && pos.Y() >= a.Min.Y() &&
		pos.X() <= a.Max.X() && pos.Y() <= a.Max.Y()
}

func (a Aabb) Translate(by mgl32.Vec2) Aabb {
	return Aabb{Min: a.Min.Add(by), Max: a.Max.Add(by)}
}

// Scale scales the box around its center. A factor of 0.5 shrinks the box,
// useful for zooming in on icon UV coords.
func (a Aabb) Scale(factor float32) Aabb {
	return a.ScaleXY(mgl32.Vec2{factor, factor})
}

func (a Aabb) ScaleXY(factor mgl32.Vec2) Aabb {
	center := a.Center()
	return Aabb{
		Min: center.Add(mulVec2(a.Min.Sub(center), factor)),
		Max: center.Add(mulVec2(a.Max.Sub(center), factor)),
	}
}

// FlippedX swaps the horizontal extents. A UV box with Max.X < Min.X samples
// the region mirrored, used for sprites facing left.
func (a Aabb) FlippedX() Aabb {
	return Aabb{
		Min: mgl32.Vec2{a.Max.X(), a.Min.Y()},
		Max: mgl32.Vec2{a.Min.X(), a.Max.Y()},
	}
}

func (a Aabb) OverlapArea(other Aabb) float32 {
	w := min(a.Max.X(), other.Max.X()) - max(a.Min.X(), other.Min.X())
	h := min(a.Max.Y(), other.Max.Y()) - max(a.Min.Y(), other.Min.Y())
	return max(w, 0) * max(h, 0)
}

func (a Aabb) Lerp(other Aabb, factor float32) Aabb {
	return Aabb{
		Min: lerpVec2(a.Min, other.Min, factor),
		Max: lerpVec2(a.Max, other.Max, factor),
	}
}

// Corners holds one value per rectangle corner, used for border radii.
type Corners struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

func CornersAll(v float32) Corners {
	return Corners{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

func lerpVec2(a, b mgl32.Vec2, factor float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(factor))
}

func mulVec2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}
