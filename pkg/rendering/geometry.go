package rendering

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float32
	Y float32
}

// Rect represents a rectangle by its top-left corner and dimensions.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float32) Rect {
	return Rect{X: left, Y: top, Width: width, Height: height}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float32 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float32 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: r.X + r.Width*0.5,
		Y: r.Y + r.Height*0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Expand grows (or, with a negative amount, shrinks) the rectangle by
// the same amount on every side, keeping the center fixed.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + amount*2,
		Height: r.Height + amount*2,
	}
}

// ExpandTouchTarget grows the rectangle so both dimensions are at
// least size, keeping the center fixed. Interactive widgets expand
// their hit areas this way to meet minimum touch-target sizing.
func (r Rect) ExpandTouchTarget(size float32) Rect {
	out := r
	if out.Width < size {
		pad := (size - out.Width) * 0.5
		out.X -= pad
		out.Width = size
	}
	if out.Height < size {
		pad := (size - out.Height) * 0.5
		out.Y -= pad
		out.Height = size
	}
	return out
}

// ExpandTouchTargetHeight grows only the height to at least size,
// keeping the vertical center fixed.
func (r Rect) ExpandTouchTargetHeight(size float32) Rect {
	out := r
	if out.Height < size {
		pad := (size - out.Height) * 0.5
		out.Y -= pad
		out.Height = size
	}
	return out
}
