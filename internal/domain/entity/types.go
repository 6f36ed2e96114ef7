package entity

// Vec2 is a 2D position or displacement in screen pixels
type Vec2 struct {
	X, Y float32
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect selects a sub-region of a texture (a "frame")
type Rect struct {
	X, Y int
	W, H int
}

// Frames returns count frames of size w x h laid out left to right
// starting at the texture origin.
func Frames(count, w, h int) []Rect {
	frames := make([]Rect, count)
	for i := range frames {
		frames[i] = Rect{X: i * w, Y: 0, W: w, H: h}
	}
	return frames
}

// Viewport is the renderable screen area used for clamping
type Viewport struct {
	Width  float32
	Height float32
}

// Clamp bounds v to [lo, hi]. When hi < lo (an object larger than the
// viewport) lo wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampTopLeft keeps a w x h box whose top-left corner is pos fully inside vp.
func (vp Viewport) ClampTopLeft(pos Vec2, w, h float32) Vec2 {
	return Vec2{
		X: Clamp(pos.X, 0, vp.Width-w),
		Y: Clamp(pos.Y, 0, vp.Height-h),
	}
}

// ClampCenter keeps a w x h box centred on pos fully inside vp.
func (vp Viewport) ClampCenter(pos Vec2, w, h float32) Vec2 {
	hw, hh := w/2, h/2
	return Vec2{
		X: Clamp(pos.X, hw, vp.Width-hw),
		Y: Clamp(pos.Y, hh, vp.Height-hh),
	}
}

// Controls is the held-key directional state for one tick
type Controls struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}
