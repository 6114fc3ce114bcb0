package boardkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Instance records are immutable per-draw data produced once per frame by an
// external layout stage. The core only reads them. Malformed data (degenerate
// bounds, radii exceeding half extents, non-normalized colors) is not
// validated here; that is the layout stage's job.

// RectInstance is a plain rounded rectangle with border and drop shadow.
type RectInstance struct {
	Bounds       Aabb
	Color        Color
	BorderRadius Corners
	BorderColor  Color

	BorderWidth float32
	// BorderSoftness is reserved. It is carried in the record but never
	// consumed.
	BorderSoftness float32
	ShadowWidth    float32
	// ShadowCurve is reserved, same as BorderSoftness.
	ShadowCurve float32

	ShadowColor Color
}

// TexturedRectInstance is a rect that samples a texture region instead of a
// flat fill. The rect color acts as a tint.
type TexturedRectInstance struct {
	Rect RectInstance
	UV   Aabb
}

// AlphaSDFParams controls the two-threshold alpha masking used by sprites
// and alpha-SDF rects. The inner cutoff separates fill from border, the
// outer cutoff fades the border to transparent. BorderToOutCutoff should
// stay below InToBorderCutoff; the gap between them is the border thickness.
type AlphaSDFParams struct {
	BorderColor       Color
	InToBorderCutoff  float32
	InToBorderSmooth  float32
	BorderToOutCutoff float32
	BorderToOutSmooth float32
}

func DefaultAlphaSDFParams() AlphaSDFParams {
	return AlphaSDFParams{
		BorderColor:       Black,
		InToBorderCutoff:  0.5,
		InToBorderSmooth:  0.001,
		BorderToOutCutoff: 0.45,
		BorderToOutSmooth: 0.1,
	}
}

// AlphaSDFRectInstance is an alpha-masked rect in UI-layout space.
type AlphaSDFRectInstance struct {
	Bounds Aabb
	Color  Color
	Params AlphaSDFParams
	UV     Aabb
}

// GlyphInstance is one glyph quad sampling a font atlas distance field.
type GlyphInstance struct {
	Bounds          Aabb
	Color           Color
	UV              Aabb
	ShadowIntensity float32
}

// ParticleInstance is one particle of a particle system. Rotation is a
// single scalar about the quad normal; particles of one draw call share the
// orientation of the call's transform, they do not billboard individually.
type ParticleInstance struct {
	Pos      mgl32.Vec3
	Rotation float32
	Size     mgl32.Vec2
	Color    Color
	UV       Aabb
}

// Sprite is an alpha-SDF masked quad placed freely in the 3D scene.
type Sprite struct {
	Texture   *Texture
	Transform Transform
	Offset    mgl32.Vec2
	Size      mgl32.Vec2
	UV        Aabb
	Color     Color
	Params    AlphaSDFParams
}

// SpriteInstance is the packed per-draw form of a Sprite.
type SpriteInstance struct {
	Transform TransformRaw
	Offset    mgl32.Vec2
	Size      mgl32.Vec2
	UV        Aabb
	Color     Color
	Params    AlphaSDFParams
}

func (s *Sprite) ToRaw() SpriteInstance {
	return SpriteInstance{
		Transform: s.Transform.ToRaw(),
		Offset:    s.Offset,
		Size:      s.Size,
		UV:        s.UV,
		Color:     s.Color,
		Params:    s.Params,
	}
}
