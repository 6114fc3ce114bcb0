// Package composite holds the per-pixel color math of every primitive kind.
// Each function is a pure function of one interpolated fragment plus the
// instance record; invocations have no shared state and no ordering, except
// that adaptive glyph anti-aliasing needs UV derivatives from a 2x2 fragment
// neighborhood (see package raster).
package composite

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/boardkit/boardkit"
	"github.com/boardkit/boardkit/sdf"
)

// AAWidth is the antialias half-width in pixels around SDF edges.
const AAWidth = 0.5

// Rect blends fill, border and drop shadow from the signed distance d of the
// fragment to the rounded box. The same distance feeds two independently
// thresholded smoothsteps: one for the fill/border band shifted inward by
// the border width, one for the shape edge where the shadow takes over.
func Rect(d float32, inst *boardkit.RectInstance, shadowEpsilon float32) boardkit.Color {
	shadowWidth := math32.Max(inst.ShadowWidth, shadowEpsilon)

	borderFactor := sdf.Smoothstep(-AAWidth, AAWidth, d+inst.BorderWidth)
	rectColor := inst.Color.Lerp(inst.BorderColor, borderFactor)

	insideFactor := sdf.Smoothstep(-AAWidth, AAWidth, d)
	shadowFactor := sdf.Smoothstep(0, 1, 1-d/shadowWidth)
	shadowColor := inst.ShadowColor
	shadowColor.A *= shadowFactor

	return rectColor.Lerp(shadowColor, insideFactor)
}

// RectAt evaluates the rounded box distance for a fragment at pixel position
// p and composites it. Bounds are in pixels.
func RectAt(p mgl32.Vec2, bounds boardkit.Aabb, inst *boardkit.RectInstance, shadowEpsilon float32) boardkit.Color {
	d := sdf.RoundedBox(p.Sub(bounds.Center()), bounds.Size(), inst.BorderRadius)
	return Rect(d, inst, shadowEpsilon)
}

// TexturedRect blends a sampled texel with the border color across a single
// smoothstep band and tints the result by the instance color. No shadow
// term.
func TexturedRect(d float32, texel boardkit.Color, inst *boardkit.TexturedRectInstance, shadowEpsilon float32) boardkit.Color {
	shadowWidth := math32.Max(inst.Rect.ShadowWidth, shadowEpsilon)

	borderFactor := sdf.Smoothstep(0, 1, (d+inst.Rect.BorderWidth)/shadowWidth)
	color := texel.Lerp(inst.Rect.BorderColor, borderFactor)
	return color.Mul(inst.Rect.Color)
}

// AlphaSDF masks a fragment by a sampled alpha value with two thresholds:
// the inner cutoff blends fill into border, the outer cutoff fades the
// border to transparent. Output alpha is 0.5*fill.A at the outer cutoff
// itself and reaches zero at BorderToOutCutoff-BorderToOutSmooth and below.
// The second return value is false when the fragment must be discarded
// rather than written; a zero-alpha write would still touch depth/stencil
// downstream.
func AlphaSDF(a float32, fill boardkit.Color, p *boardkit.AlphaSDFParams) (boardkit.Color, bool) {
	innerFactor := sdf.Smoothstep(-p.InToBorderSmooth, p.InToBorderSmooth, a-p.InToBorderCutoff)
	outerFactor := sdf.Smoothstep(-p.BorderToOutSmooth, p.BorderToOutSmooth, a-p.BorderToOutCutoff)

	color := p.BorderColor.Lerp(fill, innerFactor)
	color.A = outerFactor * fill.A
	if color.A == 0 {
		return boardkit.Color{}, false
	}
	return color, true
}

// GlyphConfig is the subset of the renderer config the glyph compositor
// needs.
type GlyphConfig struct {
	Outline          bool
	OutlineDistance  float32
	OutlineSmoothing float32
}

// GlyphAdaptive composites a glyph fragment from an atlas distance sample
// d in [0,1] (0.5 = glyph boundary). fwidthUV is the screen-space rate of
// change of the UV coordinate estimated from neighboring fragments;
// atlasSize converts it to texels per pixel, which makes the edge width
// resolution- and zoom-independent.
func GlyphAdaptive(d float32, fwidthUV mgl32.Vec2, atlasSize mgl32.Vec2, inst *boardkit.GlyphInstance, cfg GlyphConfig) boardkit.Color {
	texelRate := mgl32.Vec2{
		fwidthUV.X() * atlasSize.X(),
		fwidthUV.Y() * atlasSize.Y(),
	}
	toPixels := 32.0 / texelRate.Len()
	insideFactor := sdf.Clamp((d-0.5)*toPixels+0.5, 0, 1)
	return glyphShade(d, insideFactor, inst, cfg)
}

// GlyphFixed is the fallback for back-ends without derivative access. The
// smoothing window is derived from the glyph's pixel size on screen.
func GlyphFixed(d float32, fontSizePixels float32, inst *boardkit.GlyphInstance, cfg GlyphConfig) boardkit.Color {
	smoothing := 4.0 / fontSizePixels
	insideFactor := sdf.Smoothstep(0.5-smoothing, 0.5+smoothing, d)
	return glyphShade(d, insideFactor, inst, cfg)
}

func glyphShade(d, insideFactor float32, inst *boardkit.GlyphInstance, cfg GlyphConfig) boardkit.Color {
	if cfg.Outline {
		// fixed-distance outline band, hard cut beyond it
		if d < cfg.OutlineDistance-cfg.OutlineSmoothing {
			return boardkit.Transparent
		}
		band := sdf.Smoothstep(cfg.OutlineDistance-cfg.OutlineSmoothing, cfg.OutlineDistance+cfg.OutlineSmoothing, d)
		outline := boardkit.Black.WithAlpha(band * inst.Color.A)
		return outline.Lerp(inst.Color, insideFactor)
	}

	falloff := 1 - d
	shadowAlpha := (1 - falloff*falloff) * inst.ShadowIntensity * inst.Color.A
	shadow := boardkit.Black.WithAlpha(shadowAlpha)
	return shadow.Lerp(inst.Color, insideFactor)
}

// Particle multiplies the particle color by the sampled atlas texel.
func Particle(texel boardkit.Color, inst *boardkit.ParticleInstance) boardkit.Color {
	return texel.Mul(inst.Color)
}
