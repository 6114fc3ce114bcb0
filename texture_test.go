package boardkit

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func checkerTexture() *Texture {
	// 2x2: white top-left, black top-right, black bottom-left, white
	// bottom-right, all opaque
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	set := func(x, y int, v uint8) {
		i := img.PixOffset(x, y)
		img.Pix[i+0] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	set(0, 0, 255)
	set(1, 0, 0)
	set(0, 1, 0)
	set(1, 1, 255)
	return NewTexture(img)
}

func TestTextureSampleNearest(t *testing.T) {
	tex := checkerTexture()
	tex.Filter = FilterNearest

	got := tex.Sample(mgl32.Vec2{0.25, 0.25})
	if got.R != 1 {
		t.Fatalf("expected white texel, got %+v", got)
	}
	got = tex.Sample(mgl32.Vec2{0.75, 0.25})
	if got.R != 0 {
		t.Fatalf("expected black texel, got %+v", got)
	}
}

func TestTextureSampleBilinearCenter(t *testing.T) {
	tex := checkerTexture()

	// dead center of a checker averages to grey
	got := tex.Sample(mgl32.Vec2{0.5, 0.5})
	if got.R < 0.49 || got.R > 0.51 {
		t.Fatalf("expected ~0.5 at center, got %+v", got)
	}
	if got.A != 1 {
		t.Fatalf("alpha should stay opaque, got %+v", got)
	}
}

func TestTextureAddressClamp(t *testing.T) {
	tex := checkerTexture()
	tex.Filter = FilterNearest

	inside := tex.Sample(mgl32.Vec2{0.25, 0.25})
	outside := tex.Sample(mgl32.Vec2{-3, -3})
	if inside != outside {
		t.Fatalf("clamped sample should repeat the edge texel: %+v vs %+v", inside, outside)
	}
}

func TestTextureAddressRepeat(t *testing.T) {
	tex := checkerTexture()
	tex.Filter = FilterNearest
	tex.Address = AddressRepeat

	a := tex.Sample(mgl32.Vec2{0.25, 0.25})
	b := tex.Sample(mgl32.Vec2{1.25, 1.25})
	if a != b {
		t.Fatalf("repeat sample should wrap: %+v vs %+v", a, b)
	}
}

func TestWhiteTexture(t *testing.T) {
	tex := WhiteTexture()
	got := tex.Sample(mgl32.Vec2{0.5, 0.5})
	if got.R != 1 || got.G != 1 || got.B != 1 || got.A != 1 {
		t.Fatalf("white texture should sample opaque white, got %+v", got)
	}
	if WhiteTexture() != tex {
		t.Fatal("white texture should be shared")
	}
	if tex.ID != WhiteTexture().ID {
		t.Fatal("shared texture should keep one id")
	}
}

func TestTextureSize(t *testing.T) {
	tex := checkerTexture()
	if tex.Size() != (mgl32.Vec2{2, 2}) {
		t.Fatalf("unexpected size %v", tex.Size())
	}
}
