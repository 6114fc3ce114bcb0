package boardkit

import (
	"sort"

	"github.com/google/uuid"
)

// StackingLevel orders primitives back to front:
//   - higher z-index in front of lower
//   - text in front of rects at the same z-index
//   - children in front of parents when both are rects at the same z-index
type StackingLevel struct {
	ZIndex int16
	// TextLevel is 0 for rects, 1 for text and inline rects inside text, 2
	// for text inside inline rects.
	TextLevel    uint16
	NestingLevel uint16
}

func (l StackingLevel) Less(other StackingLevel) bool {
	if l.ZIndex != other.ZIndex {
		return l.ZIndex < other.ZIndex
	}
	if l.TextLevel != other.TextLevel {
		return l.TextLevel < other.TextLevel
	}
	return l.NestingLevel < other.NestingLevel
}

// BatchKind selects which instance array and compositor a batch draws with.
type BatchKind int

const (
	BatchRect BatchKind = iota
	BatchTexturedRect
	BatchAlphaSDFRect
	BatchGlyph
)

// Batch is a contiguous run of same-kind instances sharing one texture.
// Start/End index into the kind's instance array in ElementBatches.
type Batch struct {
	Kind BatchKind
	// Texture is nil for plain rect batches.
	Texture *Texture
	Start   int
	End     int
}

// key is not unique across the frame, it only decides whether two adjacent
// primitives are compatible.
func (b Batch) key() batchKey {
	id := uuid.Nil
	if b.Texture != nil {
		id = b.Texture.ID
	}
	return batchKey{kind: b.Kind, texture: id}
}

type batchKey struct {
	kind    BatchKind
	texture uuid.UUID
}

// ElementBatches holds the per-frame instance arrays in draw order plus the
// batches slicing them. Produced by BatchList.Build, consumed read-only.
type ElementBatches struct {
	Rects         []RectInstance
	TexturedRects []TexturedRectInstance
	AlphaSDFRects []AlphaSDFRectInstance
	Glyphs        []GlyphInstance
	Batches       []Batch
}

// BatchList collects primitives with stacking levels and merges them into
// ordered batches. A zero BatchList is ready to use.
type BatchList struct {
	prims []primitive
}

type primitive struct {
	level StackingLevel
	kind  BatchKind

	rect     RectInstance
	textured TexturedRectInstance
	alphaSDF AlphaSDFRectInstance
	glyphs   []GlyphInstance

	texture *Texture
}

func (b *BatchList) AddRect(level StackingLevel, rect RectInstance) {
	// fully transparent fills are dropped here, even if border or shadow
	// carry color
	if rect.Color == Transparent {
		return
	}
	b.prims = append(b.prims, primitive{level: level, kind: BatchRect, rect: rect})
}

func (b *BatchList) AddTexturedRect(level StackingLevel, rect TexturedRectInstance, texture *Texture) {
	if rect.Rect.Color == Transparent {
		return
	}
	b.prims = append(b.prims, primitive{level: level, kind: BatchTexturedRect, textured: rect, texture: texture})
}

func (b *BatchList) AddAlphaSDFRect(level StackingLevel, rect AlphaSDFRectInstance, texture *Texture) {
	if rect.Color == Transparent {
		return
	}
	b.prims = append(b.prims, primitive{level: level, kind: BatchAlphaSDFRect, alphaSDF: rect, texture: texture})
}

// AddGlyphs adds one text run. All glyphs share the run's atlas.
func (b *BatchList) AddGlyphs(level StackingLevel, glyphs []GlyphInstance, atlas *Texture) {
	if len(glyphs) == 0 {
		return
	}
	b.prims = append(b.prims, primitive{level: level, kind: BatchGlyph, glyphs: glyphs, texture: atlas})
}

// Build sorts primitives back to front and merges adjacent compatible runs
// into batches.
func (b *BatchList) Build() ElementBatches {
	sort.SliceStable(b.prims, func(i, j int) bool {
		return b.prims[i].level.Less(b.prims[j].level)
	})

	var out ElementBatches
	for _, p := range b.prims {
		next := Batch{Kind: p.kind, Texture: p.texture}

		compatible := false
		if n := len(out.Batches); n > 0 {
			compatible = out.Batches[n-1].key() == next.key()
		}
		if !compatible {
			start := out.kindLen(p.kind)
			next.Start = start
			next.End = start
			out.Batches = append(out.Batches, next)
		}

		switch p.kind {
		case BatchRect:
			out.Rects = append(out.Rects, p.rect)
		case BatchTexturedRect:
			out.TexturedRects = append(out.TexturedRects, p.textured)
		case BatchAlphaSDFRect:
			out.AlphaSDFRects = append(out.AlphaSDFRects, p.alphaSDF)
		case BatchGlyph:
			out.Glyphs = append(out.Glyphs, p.glyphs...)
		}
		out.Batches[len(out.Batches)-1].End = out.kindLen(p.kind)
	}
	return out
}

func (e *ElementBatches) kindLen(kind BatchKind) int {
	switch kind {
	case BatchRect:
		return len(e.Rects)
	case BatchTexturedRect:
		return len(e.TexturedRects)
	case BatchAlphaSDFRect:
		return len(e.AlphaSDFRects)
	default:
		return len(e.Glyphs)
	}
}

// SpriteBatch is a run of sprites sharing a texture after depth sorting.
type SpriteBatch struct {
	Texture *Texture
	Start   int
	End     int
}

// BatchSprites sorts sprites back to front relative to the camera and merges
// runs with the same texture. The input slice is sorted in place.
func BatchSprites(sprites []*Sprite, camera *Camera) ([]SpriteInstance, []SpriteBatch) {
	if len(sprites) == 0 {
		return nil, nil
	}

	sort.SliceStable(sprites, func(i, j int) bool {
		di := sprites[i].Transform.Position.Sub(camera.Position).LenSqr()
		dj := sprites[j].Transform.Position.Sub(camera.Position).LenSqr()
		return di > dj
	})

	instances := make([]SpriteInstance, 0, len(sprites))
	var batches []SpriteBatch
	current := SpriteBatch{Texture: spriteTexture(sprites[0])}

	for _, s := range sprites {
		instances = append(instances, s.ToRaw())
		if tex := spriteTexture(s); tex.ID != current.Texture.ID {
			batches = append(batches, current)
			current = SpriteBatch{Texture: tex, Start: current.End, End: current.End}
		}
		current.End++
	}
	batches = append(batches, current)

	return instances, batches
}

// spriteTexture falls back to the shared white texture, mirroring what the
// rasterizer does for batches without a bound texture.
func spriteTexture(s *Sprite) *Texture {
	if s.Texture == nil {
		return WhiteTexture()
	}
	return s.Texture
}
