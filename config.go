package boardkit

const (
	// ReferenceHeight is the design height of the UI coordinate system in
	// layout units. UI positions are scaled by screenHeight/ReferenceHeight,
	// so element proportions stay constant across window widths; wider
	// windows reveal more horizontal content instead of stretching.
	ReferenceHeight = 1080.0

	// WorldUnitsPerUIUnit converts UI-layout units to world units when a
	// board is embedded as a flat panel in the 3D scene. A 1920x1080 board
	// maps to a 1.92x1.08 world-unit panel.
	WorldUnitsPerUIUnit = 1.0 / 1000.0

	// ShadowWidthEpsilon is the lower clamp applied to shadow widths before
	// the shadow falloff divide. A zero width would divide by zero and bleed
	// NaN into the blended output.
	ShadowWidthEpsilon = 1e-4
)

// Config carries the tunable constants of the rendering core. The zero value
// is not useful; start from DefaultConfig.
type Config struct {
	ReferenceHeight     float32
	WorldUnitsPerUIUnit float32
	ShadowWidthEpsilon  float32

	// GlyphOutline enables the fixed-distance glyph outline band. Off by
	// default.
	GlyphOutline          bool
	GlyphOutlineDistance  float32
	GlyphOutlineSmoothing float32
}

func DefaultConfig() Config {
	return Config{
		ReferenceHeight:       ReferenceHeight,
		WorldUnitsPerUIUnit:   WorldUnitsPerUIUnit,
		ShadowWidthEpsilon:    ShadowWidthEpsilon,
		GlyphOutline:          false,
		GlyphOutlineDistance:  0.3,
		GlyphOutlineSmoothing: 0.05,
	}
}
