package raster

import (
	"github.com/chewxy/math32"

	"github.com/go-ember/ember/pkg/rendering"
)

// MaxPathPoints is the fixed capacity of a Path. Points beyond the
// capacity are silently dropped; vector glyphs stay well under it.
const MaxPathPoints = 64

// maxBezierSegments bounds the adaptive tessellation so a single curve
// cannot exhaust the path capacity.
const maxBezierSegments = 32

// Path accumulates a single open polyline fed by move/line/curve
// operations and consumed by Context.StrokePath. It allocates nothing:
// ports embed it by value in their context.
type Path struct {
	xs    [MaxPathPoints]float32
	ys    [MaxPathPoints]float32
	count int
	penX  float32
	penY  float32
}

// Len returns the number of accumulated points.
func (p *Path) Len() int { return p.count }

// Pen returns the current pen position.
func (p *Path) Pen() (x, y float32) { return p.penX, p.penY }

// Reset clears the point sequence and returns the pen to the origin.
func (p *Path) Reset() {
	p.count = 0
	p.penX = 0
	p.penY = 0
}

// MoveTo starts a new subpath at (x, y), discarding any unflushed
// points. Only one open subpath exists at a time.
func (p *Path) MoveTo(x, y float32) {
	p.penX = x
	p.penY = y
	p.count = 0
	p.append(x, y)
}

// LineTo appends a point and advances the pen.
func (p *Path) LineTo(x, y float32) {
	p.penX = x
	p.penY = y
	p.append(x, y)
}

// CurveTo tessellates a cubic Bezier from the pen through control
// points (x1, y1) and (x2, y2) to (x3, y3). The segment count adapts to
// the control polygon's extent so larger curves get more segments, with
// a floor of one segment. Each point is the exact cubic evaluation at
// t = i/segments.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	p.tessellate(p.penX, p.penY, x1, y1, x2, y2, x3, y3)
}

// MoveToScaled is MoveTo with a uniform coordinate multiplier, used by
// backends that render at a higher device pixel density.
func (p *Path) MoveToScaled(x, y, scale float32) {
	p.MoveTo(x*scale, y*scale)
}

// LineToScaled is LineTo with a uniform coordinate multiplier.
func (p *Path) LineToScaled(x, y, scale float32) {
	p.LineTo(x*scale, y*scale)
}

// CurveToScaled is CurveTo with a uniform multiplier applied to the
// control and target coordinates. The pen is already in scaled space
// from the previous operation, so it is not rescaled.
func (p *Path) CurveToScaled(x1, y1, x2, y2, x3, y3, scale float32) {
	p.tessellate(p.penX, p.penY,
		x1*scale, y1*scale, x2*scale, y2*scale, x3*scale, y3*scale)
}

func (p *Path) append(x, y float32) {
	if p.count < MaxPathPoints {
		p.xs[p.count] = x
		p.ys[p.count] = y
		p.count++
	}
}

func (p *Path) tessellate(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y float32) {
	segments := bezierSegments(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y)
	invSeg := 1 / float32(segments)

	for i := 1; i <= segments; i++ {
		t := float32(i) * invSeg
		t2 := t * t
		t3 := t2 * t
		mt := 1 - t
		mt2 := mt * mt
		mt3 := mt2 * mt

		// B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3
		px := mt3*p0x + 3*mt2*t*p1x + 3*mt*t2*p2x + t3*p3x
		py := mt3*p0y + 3*mt2*t*p1y + 3*mt*t2*p2y + t3*p3y
		p.append(px, py)
	}

	p.penX = p3x
	p.penY = p3y
}

// bezierSegments picks a tessellation density from the Manhattan extent
// of the control polygon's bounding box, floored at one segment.
func bezierSegments(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y float32) int {
	minX := math32.Min(math32.Min(p0x, p1x), math32.Min(p2x, p3x))
	maxX := math32.Max(math32.Max(p0x, p1x), math32.Max(p2x, p3x))
	minY := math32.Min(math32.Min(p0y, p1y), math32.Min(p2y, p3y))
	maxY := math32.Max(math32.Max(p0y, p1y), math32.Max(p2y, p3y))

	extent := (maxX - minX) + (maxY - minY)
	segments := int(extent / 3)
	if segments < 1 {
		return 1
	}
	if segments > maxBezierSegments {
		return maxBezierSegments
	}
	return segments
}

// StrokePath renders the accumulated polyline as one capsule per
// consecutive point pair, which inherently produces round joins and
// caps. Fewer than two points is a no-op; the minimum stroke width is
// one device pixel; segments shorter than the degenerate threshold are
// skipped so the capsule's direction normalization never divides by
// zero.
func (c *Context) StrokePath(p *Path, width float32, color rendering.Color) {
	if p.count < 2 {
		return
	}

	if width < 1 {
		width = 1
	}
	radius := width * 0.5

	for i := 0; i < p.count-1; i++ {
		x0, y0 := p.xs[i], p.ys[i]
		x1, y1 := p.xs[i+1], p.ys[i+1]

		dx := x1 - x0
		dy := y1 - y0
		if dx*dx+dy*dy < 0.001*0.001 {
			continue
		}

		c.Capsule(x0, y0, x1, y1, radius, color)
	}
}
