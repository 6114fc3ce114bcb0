// Package atlas builds signed-distance-field font atlases for the glyph
// compositor. Glyph coverage masks are rasterized with x/image/font and
// converted to a normalized distance field where 0.5 is the glyph boundary,
// the encoding GlyphAdaptive and GlyphFixed expect.
package atlas

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/boardkit/boardkit"
)

type Options struct {
	// FontSize is the rasterization size in pixels. Larger sizes give
	// cleaner distance fields at the cost of atlas space.
	FontSize float64
	// Spread is the distance field radius in pixels around the glyph
	// boundary.
	Spread int
	// Size is the atlas edge length in pixels.
	Size int
	// First and Last bound the inclusive rune range packed into the atlas.
	First rune
	Last  rune
}

func DefaultOptions() Options {
	return Options{
		FontSize: 48,
		Spread:   8,
		Size:     1024,
		First:    32,
		Last:     126,
	}
}

// Glyph describes one packed glyph. Size and Offset are in pixels at the
// rasterized FontSize and include the Spread padding; scale them by
// targetSize/FontSize when emitting glyph bounds.
type Glyph struct {
	UV      boardkit.Aabb
	Size    mgl32.Vec2
	Offset  mgl32.Vec2
	Advance float32
}

type FontAtlas struct {
	Texture    *boardkit.Texture
	Glyphs     map[rune]Glyph
	FontSize   float32
	Ascent     float32
	LineHeight float32
}

// BuildFontAtlas parses a TTF/OTF font and packs the distance fields of the
// requested rune range into one atlas texture.
func BuildFontAtlas(ttf []byte, opts Options, log boardkit.Logger) (*FontAtlas, error) {
	if log == nil {
		log = boardkit.NopLogger{}
	}
	if opts.Last < opts.First {
		return nil, fmt.Errorf("invalid rune range %d..%d", opts.First, opts.Last)
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}

	atlasSize := opts.Size
	spread := opts.Spread
	img := image.NewNRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	glyphs := make(map[rune]Glyph)

	pad := 2
	x, y := pad, pad
	rowHeight := 0

	for r := opts.First; r <= opts.Last; r++ {
		bounds, mask, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		field := distanceField(mask, spread)
		w := field.Bounds().Dx()
		h := field.Bounds().Dy()

		if x+w >= atlasSize {
			x = pad
			y += rowHeight + pad
			rowHeight = 0
		}
		if y+h >= atlasSize {
			return nil, fmt.Errorf("atlas size %d too small for rune range %d..%d at font size %g",
				atlasSize, opts.First, opts.Last, opts.FontSize)
		}

		for fy := 0; fy < h; fy++ {
			for fx := 0; fx < w; fx++ {
				i := img.PixOffset(x+fx, y+fy)
				d := field.Pix[fy*w+fx]
				img.Pix[i+0] = 255
				img.Pix[i+1] = 255
				img.Pix[i+2] = 255
				img.Pix[i+3] = d
			}
		}

		glyphs[r] = Glyph{
			UV: boardkit.NewAabb(
				float32(x)/float32(atlasSize),
				float32(y)/float32(atlasSize),
				float32(x+w)/float32(atlasSize),
				float32(y+h)/float32(atlasSize),
			),
			Size: mgl32.Vec2{float32(w), float32(h)},
			Offset: mgl32.Vec2{
				float32(bounds.Min.X - spread),
				float32(bounds.Min.Y - spread),
			},
			Advance: float32(adv) / 64.0,
		}

		x += w + pad
		if h > rowHeight {
			rowHeight = h
		}
	}

	metrics := face.Metrics()
	log.Debugf("packed %d glyphs into %dx%d atlas", len(glyphs), atlasSize, atlasSize)

	return &FontAtlas{
		Texture:    boardkit.NewTexture(img),
		Glyphs:     glyphs,
		FontSize:   float32(opts.FontSize),
		Ascent:     float32(metrics.Ascent.Ceil()),
		LineHeight: float32(metrics.Height.Ceil()),
	}, nil
}

// distanceField converts a coverage mask to a normalized distance field
// padded by spread pixels on every side. Output values map the signed
// distance into [0,1] with 0.5 on the boundary, inside above.
func distanceField(mask image.Image, spread int) *image.Alpha {
	mb := mask.Bounds()
	mw, mh := mb.Dx(), mb.Dy()
	w := mw + 2*spread
	h := mh + 2*spread

	inside := make([]bool, w*h)
	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			_, _, _, a := mask.At(mb.Min.X+mx, mb.Min.Y+my).RGBA()
			if a >= 0x8000 {
				inside[(my+spread)*w+mx+spread] = true
			}
		}
	}

	out := image.NewAlpha(image.Rect(0, 0, w, h))
	maxDist := float32(spread)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			self := inside[py*w+px]
			best := maxDist

			// nearest pixel of the opposite state within the spread window
			for oy := -spread; oy <= spread; oy++ {
				ny := py + oy
				if ny < 0 || ny >= h {
					continue
				}
				for ox := -spread; ox <= spread; ox++ {
					nx := px + ox
					if nx < 0 || nx >= w {
						continue
					}
					if inside[ny*w+nx] != self {
						d := math32.Hypot(float32(ox), float32(oy))
						if d < best {
							best = d
						}
					}
				}
			}

			signed := best
			if !self {
				signed = -best
			}
			v := 0.5 + signed/(2*maxDist)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			out.Pix[py*w+px] = uint8(v*255 + 0.5)
		}
	}
	return out
}
