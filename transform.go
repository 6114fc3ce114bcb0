package boardkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position/rotation/scale triple placing a board, sprite or
// particle system in the 3D scene.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func TransformAt(x, y, z float32) Transform {
	t := NewTransform()
	t.Position = mgl32.Vec3{x, y, z}
	return t
}

func (t Transform) WithScale(s float32) Transform {
	t.Scale = mgl32.Vec3{s, s, s}
	return t
}

func (t *Transform) Rotate(rotation mgl32.Quat) {
	t.Rotation = rotation.Mul(t.Rotation)
}

// RotateAxis rotates around axis by angle radians.
func (t *Transform) RotateAxis(axis mgl32.Vec3, angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, axis))
}

func (t *Transform) RotateX(angle float32) {
	t.RotateAxis(mgl32.Vec3{1, 0, 0}, angle)
}

func (t *Transform) RotateY(angle float32) {
	t.RotateAxis(mgl32.Vec3{0, 1, 0}, angle)
}

func (t *Transform) RotateZ(angle float32) {
	t.RotateAxis(mgl32.Vec3{0, 0, 1}, angle)
}

// Mat4 returns the object-to-world matrix, M = T * R * S.
func (t Transform) Mat4() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}

func (t Transform) Lerp(other Transform, factor float32) Transform {
	return Transform{
		Position: t.Position.Add(other.Position.Sub(t.Position).Mul(factor)),
		Rotation: mgl32.QuatSlerp(t.Rotation, other.Rotation, factor),
		Scale:    t.Scale.Add(other.Scale.Sub(t.Scale).Mul(factor)),
	}
}

// ToRaw packs the transform into the affine column form instance buffers and
// push constants use: three basis columns plus a translation.
func (t Transform) ToRaw() TransformRaw {
	m := t.Mat4()
	return TransformRaw{
		Col1:        mgl32.Vec3{m.At(0, 0), m.At(1, 0), m.At(2, 0)},
		Col2:        mgl32.Vec3{m.At(0, 1), m.At(1, 1), m.At(2, 1)},
		Col3:        mgl32.Vec3{m.At(0, 2), m.At(1, 2), m.At(2, 2)},
		Translation: mgl32.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)},
	}
}

// TransformRaw is an affine transform as three basis columns plus a
// translation column.
type TransformRaw struct {
	Col1        mgl32.Vec3
	Col2        mgl32.Vec3
	Col3        mgl32.Vec3
	Translation mgl32.Vec3
}

func TransformRawIdent() TransformRaw {
	return TransformRaw{
		Col1: mgl32.Vec3{1, 0, 0},
		Col2: mgl32.Vec3{0, 1, 0},
		Col3: mgl32.Vec3{0, 0, 1},
	}
}

// Apply transforms a point.
func (r TransformRaw) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return r.Col1.Mul(p.X()).
		Add(r.Col2.Mul(p.Y())).
		Add(r.Col3.Mul(p.Z())).
		Add(r.Translation)
}

func (r TransformRaw) Mat4() mgl32.Mat4 {
	return mgl32.Mat4{
		r.Col1.X(), r.Col1.Y(), r.Col1.Z(), 0,
		r.Col2.X(), r.Col2.Y(), r.Col2.Z(), 0,
		r.Col3.X(), r.Col3.Y(), r.Col3.Z(), 0,
		r.Translation.X(), r.Translation.Y(), r.Translation.Z(), 1,
	}
}

// PushTransform is the per-draw-call ambient state: an affine parent
// transform and a tint multiplier applied uniformly to every instance of the
// call. It is snapshotted for the duration of the call, never mutated by the
// core. The tint alpha acts as overall transparency.
type PushTransform struct {
	Transform TransformRaw
	Tint      Color
}

func PushTransformIdent() PushTransform {
	return PushTransform{Transform: TransformRawIdent(), Tint: White}
}
