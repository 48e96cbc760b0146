package raster

import (
	"github.com/go-ember/ember/pkg/rendering"
)

// Context is a clipped drawing surface over a borrowed ARGB32 pixel
// buffer. The buffer is row-major, width*height cells, no padding. All
// primitives respect the clip rectangle and accumulate into
// PixelsDrawn, a profiling counter of pixels touched.
//
// Clip bounds are always clamped into [0, width] x [0, height]. An
// inverted clip (min past max) is not an error; it simply draws
// nothing.
type Context struct {
	fb     []uint32
	width  int
	height int

	clipMinX, clipMinY int
	clipMaxX, clipMaxY int

	// PixelsDrawn counts pixels written since the context was created.
	PixelsDrawn uint64
}

// New returns a Context over fb with a full-surface clip. fb must hold
// at least w*h pixels.
func New(fb []uint32, w, h int) *Context {
	c := &Context{fb: fb, width: w, height: h}
	c.ResetClip()
	return c
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.height }

// SetClip sets the clip rectangle. Negative mins clamp to zero and
// maxes clamp to the surface size; maxes are not forced above mins, so
// inverted input yields an empty draw region.
func (c *Context) SetClip(minX, minY, maxX, maxY int) {
	c.clipMinX = max(minX, 0)
	c.clipMinY = max(minY, 0)
	c.clipMaxX = min(maxX, c.width)
	c.clipMaxY = min(maxY, c.height)
}

// Clip returns the current clip bounds.
func (c *Context) Clip() (minX, minY, maxX, maxY int) {
	return c.clipMinX, c.clipMinY, c.clipMaxX, c.clipMaxY
}

// ResetClip restores the full-surface clip.
func (c *Context) ResetClip() {
	c.clipMinX, c.clipMinY = 0, 0
	c.clipMaxX, c.clipMaxY = c.width, c.height
}

// Pixel blends one pixel if it falls inside the clip and is a no-op
// otherwise. The bounds check precedes the buffer access, so
// out-of-range coordinates never fault.
func (c *Context) Pixel(x, y int, color rendering.Color) {
	if x < c.clipMinX || x >= c.clipMaxX || y < c.clipMinY || y >= c.clipMaxY {
		return
	}
	idx := y*c.width + x
	c.fb[idx] = uint32(rendering.BlendOver(rendering.Color(c.fb[idx]), color))
	c.PixelsDrawn++
}

// PixelCoverage blends one pixel with fractional coverage, skipping
// immediately when coverage is zero or negative.
func (c *Context) PixelCoverage(x, y int, color rendering.Color, coverage float32) {
	if coverage <= 0 {
		return
	}
	if x < c.clipMinX || x >= c.clipMaxX || y < c.clipMinY || y >= c.clipMaxY {
		return
	}
	idx := y*c.width + x
	c.fb[idx] = uint32(rendering.BlendCoverage(rendering.Color(c.fb[idx]), color, coverage))
	c.PixelsDrawn++
}

// HLine draws a horizontal span from x0 to x1 inclusive on row y.
// Endpoints are normalized and clipped on both axes; opaque colors are
// written directly while translucent colors blend per pixel. A fully
// transparent color is a no-op.
func (c *Context) HLine(x0, x1, y int, color rendering.Color) {
	if y < c.clipMinY || y >= c.clipMaxY {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}

	start := max(x0, c.clipMinX)
	end := min(x1, c.clipMaxX-1)

	sa := color.Alpha()
	if sa == 0 || start > end {
		return
	}

	row := c.fb[y*c.width : (y+1)*c.width]
	if sa == 255 {
		for x := start; x <= end; x++ {
			row[x] = uint32(color)
		}
	} else {
		for x := start; x <= end; x++ {
			row[x] = uint32(rendering.BlendOver(rendering.Color(row[x]), color))
		}
	}
	c.PixelsDrawn += uint64(end - start + 1)
}

// Clear overwrites every pixel of the surface with color, bypassing
// both the clip and alpha blending.
func (c *Context) Clear(color rendering.Color) {
	n := c.width * c.height
	for i := 0; i < n; i++ {
		c.fb[i] = uint32(color)
	}
}
