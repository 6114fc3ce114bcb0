package boardkit

import (
	"image"
	"image/draw"
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// AddressMode controls how out-of-range UV coordinates are resolved.
type AddressMode int

const (
	AddressClamp AddressMode = iota
	AddressRepeat
)

// FilterMode controls texel interpolation when sampling.
type FilterMode int

const (
	FilterLinear FilterMode = iota
	FilterNearest
)

// Texture is a decoded image plus the sampler state used when compositors
// sample it. The ID gives textures a stable identity for batch keys.
type Texture struct {
	ID      uuid.UUID
	Address AddressMode
	Filter  FilterMode

	pix *image.NRGBA
}

// NewTexture copies img into a texture with linear filtering and clamped
// addressing. Pixel values are treated as linear [0,1]; color-space
// conversion is the caller's concern.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	pix := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), img, b.Min, draw.Src)
	return &Texture{
		ID:      uuid.New(),
		Address: AddressClamp,
		Filter:  FilterLinear,
		pix:     pix,
	}
}

var whiteTexture = sync.OnceValue(func() *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 255, 255, 255, 255
	return NewTexture(img)
})

// WhiteTexture returns a shared 1x1 opaque white texture, the stand-in for
// draw calls without a bound atlas.
func WhiteTexture() *Texture {
	return whiteTexture()
}

// Size returns the texture dimensions in texels.
func (t *Texture) Size() mgl32.Vec2 {
	b := t.pix.Bounds()
	return mgl32.Vec2{float32(b.Dx()), float32(b.Dy())}
}

// Sample reads the texture at normalized UV coordinates.
func (t *Texture) Sample(uv mgl32.Vec2) Color {
	b := t.pix.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	// texel-space position with the sample point at texel centers
	x := uv.X()*w - 0.5
	y := uv.Y()*h - 0.5

	if t.Filter == FilterNearest {
		return t.texel(int(math32.Round(x)), int(math32.Round(y)))
	}

	x0, y0 := math32.Floor(x), math32.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	c00 := t.texel(ix, iy)
	c10 := t.texel(ix+1, iy)
	c01 := t.texel(ix, iy+1)
	c11 := t.texel(ix+1, iy+1)

	top := c00.Lerp(c10, fx)
	bottom := c01.Lerp(c11, fx)
	return top.Lerp(bottom, fy)
}

// SampleAlpha reads only the alpha channel, the path used by alpha-SDF
// masking and glyph atlases.
func (t *Texture) SampleAlpha(uv mgl32.Vec2) float32 {
	return t.Sample(uv).A
}

func (t *Texture) texel(x, y int) Color {
	b := t.pix.Bounds()
	w, h := b.Dx(), b.Dy()
	switch t.Address {
	case AddressRepeat:
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h
	default:
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
	}
	i := t.pix.PixOffset(x, y)
	p := t.pix.Pix[i : i+4 : i+4]
	return Color{
		R: float32(p[0]) / 255.0,
		G: float32(p[1]) / 255.0,
		B: float32(p[2]) / 255.0,
		A: float32(p[3]) / 255.0,
	}
}
