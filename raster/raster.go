// Package raster is the CPU reference back-end of the rendering core. It
// walks instance batches in draw order, synthesizes each instance's quad,
// interpolates UV across it and runs the matching compositor per covered
// pixel, blending straight-alpha onto the target image.
//
// Fragments are data-parallel: the frame is split into horizontal bands, one
// goroutine per band, each band replaying all batches clipped to its rows.
// Per-pixel blend order therefore matches draw order everywhere. Adaptive
// glyph anti-aliasing needs the local rate of change of UV; the band worker
// evaluates the UV mapping at the two neighboring pixel positions to
// estimate it, the two-phase form of a 2x2 derivative quad.
package raster

import (
	"image"
	"runtime"
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/boardkit/boardkit"
	"github.com/boardkit/boardkit/composite"
	"github.com/boardkit/boardkit/sdf"
)

type Renderer struct {
	cfg     boardkit.Config
	log     boardkit.Logger
	workers int
}

func New(cfg boardkit.Config, log boardkit.Logger) *Renderer {
	if log == nil {
		log = boardkit.NopLogger{}
	}
	return &Renderer{
		cfg:     cfg,
		log:     log,
		workers: runtime.NumCPU(),
	}
}

// Draw renders batches onto dst in 2D screen-space mode. tint is the draw
// call's ambient color multiplier; pass boardkit.White for none. dst holds
// straight (non-premultiplied) alpha.
func (r *Renderer) Draw(dst *image.NRGBA, batches *boardkit.ElementBatches, screen boardkit.Screen, tint boardkit.Color) {
	if len(batches.Batches) == 0 {
		return
	}

	bounds := dst.Bounds()
	height := bounds.Dy()
	workers := r.workers
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	rows := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := bounds.Min.Y + w*rows
		y1 := min(y0+rows, bounds.Max.Y)
		if y0 >= y1 {
			break
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			band := bandRenderer{
				cfg:    r.cfg,
				dst:    dst,
				screen: screen.ToRaw(),
				tint:   tint,
				x0:     bounds.Min.X,
				x1:     bounds.Max.X,
				y0:     y0,
				y1:     y1,
			}
			band.draw(batches)
		}(y0, y1)
	}
	wg.Wait()

	r.log.Debugf("rasterized %d batches at %dx%d", len(batches.Batches), bounds.Dx(), height)
}

type bandRenderer struct {
	cfg    boardkit.Config
	dst    *image.NRGBA
	screen boardkit.ScreenRaw
	tint   boardkit.Color
	x0, x1 int
	y0, y1 int
}

func (b *bandRenderer) draw(batches *boardkit.ElementBatches) {
	for _, batch := range batches.Batches {
		switch batch.Kind {
		case boardkit.BatchRect:
			for i := batch.Start; i < batch.End; i++ {
				b.drawRect(&batches.Rects[i])
			}
		case boardkit.BatchTexturedRect:
			for i := batch.Start; i < batch.End; i++ {
				b.drawTexturedRect(&batches.TexturedRects[i], batch.Texture)
			}
		case boardkit.BatchAlphaSDFRect:
			for i := batch.Start; i < batch.End; i++ {
				b.drawAlphaSDFRect(&batches.AlphaSDFRects[i], batch.Texture)
			}
		case boardkit.BatchGlyph:
			for i := batch.Start; i < batch.End; i++ {
				b.drawGlyph(&batches.Glyphs[i], batch.Texture)
			}
		}
	}
}

// uiScale is pixels per UI-layout unit for the current screen.
func (b *bandRenderer) uiScale() float32 {
	return b.screen.Height / b.cfg.ReferenceHeight
}

// pixelBounds converts UI bounds to pixel space and expands them by margin
// pixels on every side.
func (b *bandRenderer) pixelBounds(bounds boardkit.Aabb, margin float32) boardkit.Aabb {
	s := b.uiScale()
	return boardkit.Aabb{
		Min: bounds.Min.Mul(s).Sub(mgl32.Vec2{margin, margin}),
		Max: bounds.Max.Mul(s).Add(mgl32.Vec2{margin, margin}),
	}
}

// clip intersects a pixel-space box with the band.
func (b *bandRenderer) clip(px boardkit.Aabb) (x0, x1, y0, y1 int, ok bool) {
	x0 = max(int(px.Min.X()), b.x0)
	x1 = min(int(px.Max.X())+1, b.x1)
	y0 = max(int(px.Min.Y()), b.y0)
	y1 = min(int(px.Max.Y())+1, b.y1)
	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

func (b *bandRenderer) drawRect(inst *boardkit.RectInstance) {
	s := b.uiScale()
	shadow := inst.ShadowWidth * s

	// pixel-space copy of the instance so the 0.5px antialias band and the
	// SDF agree on units
	px := *inst
	px.Bounds = b.pixelBounds(inst.Bounds, 0)
	px.BorderRadius = boardkit.Corners{
		TopLeft:     inst.BorderRadius.TopLeft * s,
		TopRight:    inst.BorderRadius.TopRight * s,
		BottomRight: inst.BorderRadius.BottomRight * s,
		BottomLeft:  inst.BorderRadius.BottomLeft * s,
	}
	px.BorderWidth = inst.BorderWidth * s
	px.ShadowWidth = shadow

	x0, x1, y0, y1, ok := b.clip(b.pixelBounds(inst.Bounds, shadow))
	if !ok {
		return
	}

	center := px.Bounds.Center()
	size := px.Bounds.Size()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelCenter(x, y)
			d := sdf.RoundedBox(p.Sub(center), size, px.BorderRadius)
			c := composite.Rect(d, &px, b.cfg.ShadowWidthEpsilon)
			b.blend(x, y, c)
		}
	}
}

func (b *bandRenderer) drawTexturedRect(inst *boardkit.TexturedRectInstance, tex *boardkit.Texture) {
	if tex == nil {
		tex = boardkit.WhiteTexture()
	}
	s := b.uiScale()

	px := *inst
	px.Rect.Bounds = b.pixelBounds(inst.Rect.Bounds, 0)
	px.Rect.BorderRadius = boardkit.Corners{
		TopLeft:     inst.Rect.BorderRadius.TopLeft * s,
		TopRight:    inst.Rect.BorderRadius.TopRight * s,
		BottomRight: inst.Rect.BorderRadius.BottomRight * s,
		BottomLeft:  inst.Rect.BorderRadius.BottomLeft * s,
	}
	px.Rect.BorderWidth = inst.Rect.BorderWidth * s
	px.Rect.ShadowWidth = inst.Rect.ShadowWidth * s

	x0, x1, y0, y1, ok := b.clip(px.Rect.Bounds)
	if !ok {
		return
	}

	center := px.Rect.Bounds.Center()
	size := px.Rect.Bounds.Size()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelCenter(x, y)
			d := sdf.RoundedBox(p.Sub(center), size, px.Rect.BorderRadius)
			uv := interpolateUV(p, px.Rect.Bounds, inst.UV)
			c := composite.TexturedRect(d, tex.Sample(uv), &px, b.cfg.ShadowWidthEpsilon)
			b.blend(x, y, c)
		}
	}
}

func (b *bandRenderer) drawAlphaSDFRect(inst *boardkit.AlphaSDFRectInstance, tex *boardkit.Texture) {
	if tex == nil {
		tex = boardkit.WhiteTexture()
	}

	px := b.pixelBounds(inst.Bounds, 0)
	x0, x1, y0, y1, ok := b.clip(px)
	if !ok {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelCenter(x, y)
			a := tex.SampleAlpha(interpolateUV(p, px, inst.UV))
			c, keep := composite.AlphaSDF(a, inst.Color, &inst.Params)
			if !keep {
				continue
			}
			b.blend(x, y, c)
		}
	}
}

func (b *bandRenderer) drawGlyph(inst *boardkit.GlyphInstance, atlas *boardkit.Texture) {
	if atlas == nil {
		return
	}

	px := b.pixelBounds(inst.Bounds, 0)
	x0, x1, y0, y1, ok := b.clip(px)
	if !ok {
		return
	}

	atlasSize := atlas.Size()
	cfg := composite.GlyphConfig{
		Outline:          b.cfg.GlyphOutline,
		OutlineDistance:  b.cfg.GlyphOutlineDistance,
		OutlineSmoothing: b.cfg.GlyphOutlineSmoothing,
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelCenter(x, y)
			uv := interpolateUV(p, px, inst.UV)

			// neighborhood phase: evaluate the UV mapping one pixel to the
			// right and one pixel down to estimate its screen-space rate of
			// change
			uvDx := interpolateUV(p.Add(mgl32.Vec2{1, 0}), px, inst.UV).Sub(uv)
			uvDy := interpolateUV(p.Add(mgl32.Vec2{0, 1}), px, inst.UV).Sub(uv)
			fwidthUV := mgl32.Vec2{
				math32.Abs(uvDx.X()) + math32.Abs(uvDy.X()),
				math32.Abs(uvDx.Y()) + math32.Abs(uvDy.Y()),
			}

			d := atlas.SampleAlpha(uv)
			c := composite.GlyphAdaptive(d, fwidthUV, atlasSize, inst, cfg)
			b.blend(x, y, c)
		}
	}
}

// blend composites src over dst at (x,y) with straight alpha, after applying
// the draw call tint.
func (b *bandRenderer) blend(x, y int, src boardkit.Color) {
	src = src.Mul(b.tint)

	i := b.dst.PixOffset(x, y)
	pix := b.dst.Pix[i : i+4 : i+4]

	dr := float32(pix[0]) / 255.0
	dg := float32(pix[1]) / 255.0
	db := float32(pix[2]) / 255.0
	da := float32(pix[3]) / 255.0

	a := sdf.Clamp(src.A, 0, 1)
	outA := a + da*(1-a)
	var outR, outG, outB float32
	if outA > 0 {
		outR = (src.R*a + dr*da*(1-a)) / outA
		outG = (src.G*a + dg*da*(1-a)) / outA
		outB = (src.B*a + db*da*(1-a)) / outA
	}

	pix[0] = toByte(outR)
	pix[1] = toByte(outG)
	pix[2] = toByte(outB)
	pix[3] = toByte(outA)
}

func pixelCenter(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
}

// interpolateUV maps a pixel position inside bounds to the matching point of
// the UV rectangle.
func interpolateUV(p mgl32.Vec2, bounds, uv boardkit.Aabb) mgl32.Vec2 {
	size := bounds.Size()
	tx := (p.X() - bounds.Min.X()) / size.X()
	ty := (p.Y() - bounds.Min.Y()) / size.Y()
	return mgl32.Vec2{
		uv.Min.X() + (uv.Max.X()-uv.Min.X())*tx,
		uv.Min.Y() + (uv.Max.Y()-uv.Min.Y())*ty,
	}
}

func toByte(v float32) uint8 {
	v = sdf.Clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
