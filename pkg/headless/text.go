package headless

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-ember/ember/pkg/rendering"
)

// textFace renders single-line text into the port's framebuffer with a
// fixed 7x13 bitmap face. Ports with real font stacks replace this by
// leaving the ui text renderer unset and drawing glyphs through the
// vector-path contract instead.
type textFace struct {
	face font.Face
}

func newTextFace() *textFace {
	return &textFace{face: basicfont.Face7x13}
}

// FontHeight returns the face's line height in pixels.
func (p *Port) FontHeight() float32 {
	return float32(p.text.face.Metrics().Height.Ceil())
}

// TextWidth returns the advance width of text in pixels.
func (p *Port) TextWidth(text string) float32 {
	return float32(font.MeasureString(p.text.face, text)) / 64
}

// DrawText draws one line of text with its top-left corner at (x, y),
// honoring the current raster clip.
func (p *Port) DrawText(x, y float32, text string, c rendering.Color) {
	if text == "" || c.Alpha() == 0 {
		return
	}

	ascent := p.text.face.Metrics().Ascent.Ceil()
	drawer := font.Drawer{
		Dst:  &clippedSurface{port: p},
		Src:  image.NewUniform(color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}),
		Face: p.text.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6((y + float32(ascent)) * 64),
		},
	}
	drawer.DrawString(text)
}

// clippedSurface adapts the ARGB32 framebuffer to draw.Image for the
// font drawer, dropping writes outside the raster clip.
type clippedSurface struct {
	port *Port
}

func (s *clippedSurface) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *clippedSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.port.width, s.port.height)
}

func (s *clippedSurface) At(x, y int) color.Color {
	c := s.port.PixelAt(x, y)
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

func (s *clippedSurface) Set(x, y int, c color.Color) {
	minX, minY, maxX, maxY := s.port.raster.Clip()
	if x < minX || x >= maxX || y < minY || y >= maxY {
		return
	}
	r, g, b, a := c.RGBA()
	s.port.fb[y*s.port.width+x] = uint32(rendering.RGBA(
		uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
}
