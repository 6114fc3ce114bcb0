package boardkit

// Screen is the per-frame window state. Read-only for the duration of a
// frame.
type Screen struct {
	Width       uint32
	Height      uint32
	ScaleFactor float64
}

func NewScreen(width, height uint32) Screen {
	return Screen{Width: width, Height: height, ScaleFactor: 1.0}
}

// Aspect is width / height.
func (s Screen) Aspect() float32 {
	return float32(s.Width) / float32(s.Height)
}

// ToRaw converts to the float form the per-pixel stages consume.
func (s Screen) ToRaw() ScreenRaw {
	return ScreenRaw{
		Width:       float32(s.Width),
		Height:      float32(s.Height),
		Aspect:      s.Aspect(),
		ScaleFactor: float32(s.ScaleFactor),
	}
}

// ScreenRaw is the uniform-shaped screen state.
type ScreenRaw struct {
	Width       float32
	Height      float32
	Aspect      float32
	ScaleFactor float32
}
