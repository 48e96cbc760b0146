// Package headless is the software backend: an in-memory ARGB32
// framebuffer rendered entirely by the raster package, with text
// supplied by a fixed bitmap face. It implements the renderer,
// vector-path and text contracts consumed by the ui package, and is
// what the test harness and the snapshot CLI render through.
package headless

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-ember/ember/pkg/raster"
	"github.com/go-ember/ember/pkg/rendering"
)

// Port owns a logical-resolution framebuffer, a raster context over
// it, and the shared vector path state. All rendering happens in
// logical coordinates; callers embedding the port at a higher device
// density set a path scale and stroke widths accordingly.
type Port struct {
	fb     []uint32
	width  int
	height int

	raster *raster.Context
	path   raster.Path

	pathScale float32

	text *textFace
}

// New creates a headless port with a width x height framebuffer.
func New(width, height int) (*Port, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid surface size %dx%d", width, height)
	}
	p := &Port{
		fb:        make([]uint32, width*height),
		width:     width,
		height:    height,
		pathScale: 1,
		text:      newTextFace(),
	}
	p.raster = raster.New(p.fb, width, height)
	return p, nil
}

// Raster exposes the underlying raster context for direct drawing and
// for reading the drawn-pixel counter.
func (p *Port) Raster() *raster.Context { return p.raster }

// Framebuffer returns the live ARGB32 pixel buffer.
func (p *Port) Framebuffer() []uint32 { return p.fb }

// Width returns the surface width in pixels.
func (p *Port) Width() int { return p.width }

// Height returns the surface height in pixels.
func (p *Port) Height() int { return p.height }

// PixelAt returns the pixel at (x, y), or transparent black when out
// of range.
func (p *Port) PixelAt(x, y int) rendering.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return rendering.ColorTransparent
	}
	return rendering.Color(p.fb[y*p.width+x])
}

// Clear fills the whole framebuffer, ignoring the clip.
func (p *Port) Clear(color rendering.Color) {
	p.raster.Clear(color)
}

// SetPathScale sets the uniform multiplier applied to vector path
// coordinates, for hosts rendering glyphs at a higher density.
func (p *Port) SetPathScale(scale float32) {
	if scale > 0 {
		p.pathScale = scale
	}
}

// --- rendering.Renderer ---

// DrawBox fills a rounded rectangle.
func (p *Port) DrawBox(rect rendering.Rect, cornerRadius float32, color rendering.Color) {
	p.raster.FillRoundedRect(rect.X, rect.Y, rect.Width, rect.Height, cornerRadius, color)
}

// SetClipRect restricts subsequent raster drawing.
func (p *Port) SetClipRect(minX, minY, maxX, maxY int) {
	p.raster.SetClip(minX, minY, maxX, maxY)
}

// ResetClip restores the full-surface clip.
func (p *Port) ResetClip() {
	p.raster.ResetClip()
}

// DrawLine draws a round-capped line segment.
func (p *Port) DrawLine(x0, y0, x1, y1, width float32, color rendering.Color) {
	p.raster.Line(x0, y0, x1, y1, width, color)
}

// DrawCircle fills and/or strokes a circle.
func (p *Port) DrawCircle(cx, cy, radius float32, fill, stroke rendering.Color, strokeWidth float32) {
	if fill.Alpha() != 0 {
		p.raster.FillCircle(cx, cy, radius, fill)
	}
	if strokeWidth > 0 && stroke.Alpha() != 0 {
		p.raster.StrokeCircle(cx, cy, radius, strokeWidth, stroke)
	}
}

// DrawArc draws a stroked arc with round caps.
func (p *Port) DrawArc(cx, cy, radius, startAngle, endAngle, width float32, color rendering.Color) {
	p.raster.Arc(cx, cy, radius, startAngle, endAngle, width, color)
}

// --- rendering.PathRenderer ---

// PathMove starts a new subpath.
func (p *Port) PathMove(x, y float32) {
	p.path.MoveToScaled(x, y, p.pathScale)
}

// PathLine appends a line segment.
func (p *Port) PathLine(x, y float32) {
	p.path.LineToScaled(x, y, p.pathScale)
}

// PathCurve appends an adaptively tessellated cubic Bezier.
func (p *Port) PathCurve(x1, y1, x2, y2, x3, y3 float32) {
	p.path.CurveToScaled(x1, y1, x2, y2, x3, y3, p.pathScale)
}

// PathStroke renders the accumulated subpath with round caps and
// resets it. Invalid widths or colors still reset the path so a bad
// stroke cannot poison the next glyph.
func (p *Port) PathStroke(width float32, color rendering.Color) {
	if p.path.Len() < 2 || width <= 0 || color.Alpha() == 0 {
		p.path.Reset()
		return
	}
	p.raster.StrokePath(&p.path, width*p.pathScale, color)
	p.path.Reset()
}

// --- snapshots ---

// Image copies the framebuffer into an RGBA image.
func (p *Port) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := rendering.Color(p.fb[y*p.width+x])
			off := img.PixOffset(x, y)
			img.Pix[off+0] = c.Red()
			img.Pix[off+1] = c.Green()
			img.Pix[off+2] = c.Blue()
			img.Pix[off+3] = c.Alpha()
		}
	}
	return img
}

// EncodePNG writes the framebuffer as a PNG.
func (p *Port) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.Image()); err != nil {
		return fmt.Errorf("headless: encoding snapshot: %w", err)
	}
	return nil
}
