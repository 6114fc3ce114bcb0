package boardkit

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTexture() *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return NewTexture(img)
}

func rectAt(x float32) RectInstance {
	return RectInstance{
		Bounds: NewAabb(x, 0, x+10, 10),
		Color:  White,
	}
}

func TestBatchListMergesAdjacentRects(t *testing.T) {
	var list BatchList
	list.AddRect(StackingLevel{}, rectAt(0))
	list.AddRect(StackingLevel{}, rectAt(20))
	list.AddRect(StackingLevel{}, rectAt(40))

	batches := list.Build()
	require.Len(t, batches.Batches, 1)
	assert.Equal(t, BatchRect, batches.Batches[0].Kind)
	assert.Equal(t, 0, batches.Batches[0].Start)
	assert.Equal(t, 3, batches.Batches[0].End)
	assert.Len(t, batches.Rects, 3)
}

func TestBatchListSortsByStackingLevel(t *testing.T) {
	var list BatchList
	top := rectAt(0)
	top.Color = Red
	bottom := rectAt(0)
	bottom.Color = Blue

	list.AddRect(StackingLevel{ZIndex: 5}, top)
	list.AddRect(StackingLevel{ZIndex: -1}, bottom)

	batches := list.Build()
	require.Len(t, batches.Rects, 2)
	// back to front: the low z-index draws first
	assert.Equal(t, Blue, batches.Rects[0].Color)
	assert.Equal(t, Red, batches.Rects[1].Color)
}

func TestBatchListTextInFrontOfRectsAtSameZ(t *testing.T) {
	var list BatchList
	atlas := testTexture()

	list.AddGlyphs(StackingLevel{TextLevel: 1}, []GlyphInstance{{Color: White}}, atlas)
	list.AddRect(StackingLevel{}, rectAt(0))

	batches := list.Build()
	require.Len(t, batches.Batches, 2)
	assert.Equal(t, BatchRect, batches.Batches[0].Kind)
	assert.Equal(t, BatchGlyph, batches.Batches[1].Kind)
}

func TestBatchListSplitsOnTextureChange(t *testing.T) {
	var list BatchList
	texA := testTexture()
	texB := testTexture()

	tr := TexturedRectInstance{Rect: rectAt(0), UV: AabbUnit}
	list.AddTexturedRect(StackingLevel{}, tr, texA)
	list.AddTexturedRect(StackingLevel{}, tr, texA)
	list.AddTexturedRect(StackingLevel{}, tr, texB)

	batches := list.Build()
	require.Len(t, batches.Batches, 2)
	assert.Equal(t, 0, batches.Batches[0].Start)
	assert.Equal(t, 2, batches.Batches[0].End)
	assert.Same(t, texA, batches.Batches[0].Texture)
	assert.Equal(t, 2, batches.Batches[1].Start)
	assert.Equal(t, 3, batches.Batches[1].End)
	assert.Same(t, texB, batches.Batches[1].Texture)
}

func TestBatchListKindChangeSplitsBatch(t *testing.T) {
	var list BatchList
	tex := testTexture()

	// same texture, different kinds: must not merge
	list.AddTexturedRect(StackingLevel{}, TexturedRectInstance{Rect: rectAt(0), UV: AabbUnit}, tex)
	list.AddAlphaSDFRect(StackingLevel{}, AlphaSDFRectInstance{
		Bounds: NewAabb(0, 0, 10, 10),
		Color:  White,
		Params: DefaultAlphaSDFParams(),
		UV:     AabbUnit,
	}, tex)

	batches := list.Build()
	require.Len(t, batches.Batches, 2)
}

func TestBatchListDropsTransparentFills(t *testing.T) {
	var list BatchList
	r := rectAt(0)
	r.Color = Transparent
	r.BorderColor = Red // even a colored border does not save it
	list.AddRect(StackingLevel{}, r)

	batches := list.Build()
	assert.Empty(t, batches.Batches)
	assert.Empty(t, batches.Rects)
}

func TestStackingLevelOrder(t *testing.T) {
	a := StackingLevel{ZIndex: 0, TextLevel: 0, NestingLevel: 2}
	b := StackingLevel{ZIndex: 0, TextLevel: 1, NestingLevel: 0}
	c := StackingLevel{ZIndex: 1, TextLevel: 0, NestingLevel: 0}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
}

func TestBatchSpritesSortsBackToFront(t *testing.T) {
	tex := testTexture()
	camera := NewCamera()
	camera.Position = mgl32.Vec3{0, 0, 0}

	near := &Sprite{Texture: tex, Transform: TransformAt(0, 0, -1), Color: Red}
	far := &Sprite{Texture: tex, Transform: TransformAt(0, 0, -50), Color: Blue}

	instances, batches := BatchSprites([]*Sprite{near, far}, camera)
	require.Len(t, instances, 2)
	assert.Equal(t, Blue, instances[0].Color)
	assert.Equal(t, Red, instances[1].Color)

	require.Len(t, batches, 1)
	assert.Equal(t, 0, batches[0].Start)
	assert.Equal(t, 2, batches[0].End)
}

func TestBatchSpritesSplitsOnTexture(t *testing.T) {
	texA := testTexture()
	texB := testTexture()
	camera := NewCamera()
	camera.Position = mgl32.Vec3{0, 0, 0}

	s1 := &Sprite{Texture: texA, Transform: TransformAt(0, 0, -30)}
	s2 := &Sprite{Texture: texB, Transform: TransformAt(0, 0, -20)}
	s3 := &Sprite{Texture: texB, Transform: TransformAt(0, 0, -10)}

	_, batches := BatchSprites([]*Sprite{s3, s1, s2}, camera)
	require.Len(t, batches, 2)
	assert.Same(t, texA, batches[0].Texture)
	assert.Equal(t, 0, batches[0].Start)
	assert.Equal(t, 1, batches[0].End)
	assert.Same(t, texB, batches[1].Texture)
	assert.Equal(t, 1, batches[1].Start)
	assert.Equal(t, 3, batches[1].End)
}

func TestBatchSpritesNilTexture(t *testing.T) {
	camera := NewCamera()
	camera.Position = mgl32.Vec3{0, 0, 0}

	bare := &Sprite{Transform: TransformAt(0, 0, -5)}
	textured := &Sprite{Texture: testTexture(), Transform: TransformAt(0, 0, -1)}

	instances, batches := BatchSprites([]*Sprite{textured, bare}, camera)
	require.Len(t, instances, 2)
	require.Len(t, batches, 2)
	// untextured sprites batch under the shared white texture
	assert.Same(t, WhiteTexture(), batches[0].Texture)
	assert.Same(t, textured.Texture, batches[1].Texture)
}

func TestBatchSpritesEmpty(t *testing.T) {
	instances, batches := BatchSprites(nil, NewCamera())
	assert.Nil(t, instances)
	assert.Nil(t, batches)
}
