package vertex

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/boardkit/boardkit"
)

func TestCornerIndexMapping(t *testing.T) {
	b := boardkit.NewAabb(10, 20, 110, 70)

	assert.Equal(t, mgl32.Vec2{10, 20}, Corner(b, 0))
	assert.Equal(t, mgl32.Vec2{10, 70}, Corner(b, 1))
	assert.Equal(t, mgl32.Vec2{110, 20}, Corner(b, 2))
	assert.Equal(t, mgl32.Vec2{110, 70}, Corner(b, 3))
	// out-of-range indices fall back to corner 3
	assert.Equal(t, mgl32.Vec2{110, 70}, Corner(b, 7))
}

func TestCornersReconstructAabb(t *testing.T) {
	b := boardkit.NewAabb(-5, 12.5, 30, 42)

	minX := float32(math.Inf(1))
	minY := float32(math.Inf(1))
	maxX := float32(math.Inf(-1))
	maxY := float32(math.Inf(-1))
	for i := 0; i < 4; i++ {
		c := CornerExpanded(b, i, 0)
		minX = min(minX, c.X())
		minY = min(minY, c.Y())
		maxX = max(maxX, c.X())
		maxY = max(maxY, c.Y())
	}

	assert.Equal(t, b.Min, mgl32.Vec2{minX, minY})
	assert.Equal(t, b.Max, mgl32.Vec2{maxX, maxY})
}

func TestCornerExpandedMargin(t *testing.T) {
	b := boardkit.NewAabb(0, 0, 10, 10)

	assert.Equal(t, mgl32.Vec2{-3, -3}, CornerExpanded(b, 0, 3))
	assert.Equal(t, mgl32.Vec2{13, 13}, CornerExpanded(b, 3, 3))
	assert.Equal(t, mgl32.Vec2{-3, 13}, CornerExpanded(b, 1, 3))
	assert.Equal(t, mgl32.Vec2{13, -3}, CornerExpanded(b, 2, 3))
}

func TestCornerUV(t *testing.T) {
	b := boardkit.NewAabb(0, 0, 100, 100)
	uv := boardkit.NewAabb(0.25, 0.5, 0.75, 1.0)

	pos, uvPos := CornerUV(b, uv, 0)
	assert.Equal(t, mgl32.Vec2{0, 0}, pos)
	assert.Equal(t, mgl32.Vec2{0.25, 0.5}, uvPos)

	pos, uvPos = CornerUV(b, uv, 3)
	assert.Equal(t, mgl32.Vec2{100, 100}, pos)
	assert.Equal(t, mgl32.Vec2{0.75, 1.0}, uvPos)
}

func TestUIToClip2D(t *testing.T) {
	screen := boardkit.NewScreen(1920, 1080).ToRaw()

	clip := UIToClip(mgl32.Vec2{0, 0}, screen, boardkit.ReferenceHeight)
	assert.InDelta(t, -1.0, clip.X(), 1e-6)
	assert.InDelta(t, 1.0, clip.Y(), 1e-6)
	assert.Equal(t, float32(0), clip.Z())
	assert.Equal(t, float32(1), clip.W())

	clip = UIToClip(mgl32.Vec2{1920, 1080}, screen, boardkit.ReferenceHeight)
	assert.InDelta(t, 1.0, clip.X(), 1e-6)
	assert.InDelta(t, -1.0, clip.Y(), 1e-6)
}

func TestUIToClipScalesByHeightOnly(t *testing.T) {
	// a wider window must not stretch content: the same UI position lands on
	// the same pixel, so its NDC x moves toward the center
	narrow := boardkit.NewScreen(1000, 1000).ToRaw()
	wide := boardkit.NewScreen(2000, 1000).ToRaw()

	ui := mgl32.Vec2{500, 500}
	clipNarrow := UIToClip(ui, narrow, 1000)
	clipWide := UIToClip(ui, wide, 1000)

	assert.InDelta(t, 0.0, clipNarrow.X(), 1e-6)
	assert.InDelta(t, -0.5, clipWide.X(), 1e-6)
	assert.InDelta(t, clipNarrow.Y(), clipWide.Y(), 1e-6)
}

func TestUIToWorldClip(t *testing.T) {
	push := boardkit.PushTransformIdent()
	camera := boardkit.CameraRaw{ViewProj: mgl32.Ident4()}

	clip := UIToWorldClip(mgl32.Vec2{1000, 500}, 1.0/1000.0, push, camera)
	assert.InDelta(t, 1.0, clip.X(), 1e-6)
	assert.InDelta(t, -0.5, clip.Y(), 1e-6)
	assert.InDelta(t, 0.0, clip.Z(), 1e-6)
	assert.InDelta(t, 1.0, clip.W(), 1e-6)
}

func TestUIToWorldClipWithTransform(t *testing.T) {
	tr := boardkit.TransformAt(3, 0, -2)
	push := boardkit.PushTransform{Transform: tr.ToRaw(), Tint: boardkit.White}
	camera := boardkit.CameraRaw{ViewProj: mgl32.Ident4()}

	clip := UIToWorldClip(mgl32.Vec2{0, 0}, 1.0/1000.0, push, camera)
	assert.InDelta(t, 3.0, clip.X(), 1e-6)
	assert.InDelta(t, 0.0, clip.Y(), 1e-6)
	assert.InDelta(t, -2.0, clip.Z(), 1e-6)
}

func TestParticleCornerRotation(t *testing.T) {
	p := boardkit.ParticleInstance{
		Pos:      mgl32.Vec3{0, 0, 0},
		Rotation: math.Pi / 2,
		Size:     mgl32.Vec2{2, 2},
		UV:       boardkit.AabbUnit,
	}
	camera := boardkit.CameraRaw{ViewProj: mgl32.Ident4()}

	// corner 3 is (1,1) before rotation; a quarter turn moves it to (-1,1)
	clip, uv := ParticleCorner(p, 3, boardkit.TransformRawIdent(), camera)
	assert.InDelta(t, -1.0, clip.X(), 1e-6)
	assert.InDelta(t, 1.0, clip.Y(), 1e-6)
	assert.Equal(t, mgl32.Vec2{1, 1}, uv)
}

func TestParticleCornerTranslation(t *testing.T) {
	p := boardkit.ParticleInstance{
		Pos:  mgl32.Vec3{5, -3, 2},
		Size: mgl32.Vec2{1, 1},
		UV:   boardkit.AabbUnit,
	}
	camera := boardkit.CameraRaw{ViewProj: mgl32.Ident4()}

	clip, uv := ParticleCorner(p, 0, boardkit.TransformRawIdent(), camera)
	assert.InDelta(t, 4.5, clip.X(), 1e-6)
	assert.InDelta(t, -3.5, clip.Y(), 1e-6)
	assert.InDelta(t, 2.0, clip.Z(), 1e-6)
	assert.Equal(t, mgl32.Vec2{0, 0}, uv)
}

func TestParticleCornerSharedTransform(t *testing.T) {
	// the draw call transform moves every particle the same way
	tr := boardkit.TransformAt(0, 10, 0)
	p := boardkit.ParticleInstance{Size: mgl32.Vec2{1, 1}, UV: boardkit.AabbUnit}
	camera := boardkit.CameraRaw{ViewProj: mgl32.Ident4()}

	clip, _ := ParticleCorner(p, 3, tr.ToRaw(), camera)
	assert.InDelta(t, 0.5, clip.X(), 1e-6)
	assert.InDelta(t, 10.5, clip.Y(), 1e-6)
}
