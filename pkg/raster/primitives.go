package raster

import (
	"github.com/chewxy/math32"

	"github.com/go-ember/ember/pkg/rendering"
)

// FillRect fills an axis-aligned rectangle by decomposing it into
// per-row spans. Straight edges land on the pixel grid, so no
// anti-aliasing is needed.
func (c *Context) FillRect(x, y, w, h int, color rendering.Color) {
	for row := 0; row < h; row++ {
		c.HLine(x, x+w-1, y+row, color)
	}
}

// FillRoundedRect fills a rectangle with circular corners of the given
// radius. Each row inside a corner band computes its horizontal inset
// from the half-circle distance formula and adds one anti-aliased pixel
// per side using the fractional inset as coverage. The radius is
// clamped to half the smaller dimension; radii at or below half a pixel
// degrade to a plain FillRect.
func (c *Context) FillRoundedRect(fx, fy, fw, fh, radius float32, color rendering.Color) {
	x := int(math32.Floor(fx))
	y := int(math32.Floor(fy))
	w := int(math32.Ceil(fx+fw)) - x
	h := int(math32.Ceil(fy+fh)) - y

	if w <= 0 || h <= 0 {
		return
	}

	if radius <= 0.5 {
		c.FillRect(x, y, w, h, color)
		return
	}

	if radius > float32(w)/2 {
		radius = float32(w) / 2
	}
	if radius > float32(h)/2 {
		radius = float32(h) / 2
	}

	r2 := radius * radius
	ir := int(math32.Ceil(radius))

	for row := 0; row < h; row++ {
		lineY := y + row
		xStart := x
		xEnd := x + w - 1
		var aaLeft, aaRight float32

		// dy is the distance from the corner-band edge, offset half a
		// pixel for center sampling.
		var dy float32
		inBand := false
		if row < ir {
			dy = radius - float32(row) - 0.5
			inBand = dy > 0
		} else if row >= h-ir {
			dy = float32(row) - float32(h-1) + radius - 0.5
			inBand = dy > 0
		}

		if inBand {
			dy2 := dy * dy
			if dy2 >= r2 {
				// Row lies entirely outside the corner arc.
				continue
			}
			dx := math32.Sqrt(r2 - dy2)
			insetF := radius - dx
			inset := int(math32.Floor(insetF))
			aaLeft = insetF - float32(inset)
			aaRight = aaLeft
			if inset >= 0 {
				xStart = x + inset + 1
				xEnd = x + w - 1 - inset - 1
			}
		}

		if xStart <= xEnd {
			c.HLine(xStart, xEnd, lineY, color)
		}

		if aaLeft > 0.01 && xStart > x {
			c.PixelCoverage(xStart-1, lineY, color, 1-aaLeft)
		}
		if aaRight > 0.01 && xEnd < x+w-1 {
			c.PixelCoverage(xEnd+1, lineY, color, 1-aaRight)
		}
	}
}

// Capsule draws a line segment thickened by radius with round caps,
// evaluating a signed distance field per pixel. This is the atomic
// stroke primitive: Line and StrokePath both route through it.
//
// The anti-aliasing half-width adapts to the radius, interpolating
// between 0.35px (crisp, thin strokes) and 0.5px over the radius range
// [0.4, 0.6] so there is no visible width jump at the thin-line
// boundary. Squared-distance comparisons handle the solid core and
// fully-outside cases without a square root; the root is taken only
// inside the AA band. Iteration covers the clipped bounding box of the
// capsule only.
func (c *Context) Capsule(x0, y0, x1, y1, radius float32, color rendering.Color) {
	if radius <= 0 {
		return
	}

	var aaHalf float32
	switch {
	case radius <= 0.4:
		aaHalf = 0.35
	case radius >= 0.6:
		aaHalf = 0.5
	default:
		aaHalf = 0.35 + (radius-0.4)*(0.5-0.35)/(0.6-0.4)
	}

	innerR := radius - aaHalf
	outerR := radius + aaHalf
	var innerR2 float32
	if innerR > 0 {
		innerR2 = innerR * innerR
	}
	outerR2 := outerR * outerR
	aaWidth := 2 * aaHalf

	margin := outerR + 0.5
	minX := int(math32.Floor(math32.Min(x0, x1) - margin))
	maxX := int(math32.Ceil(math32.Max(x0, x1) + margin))
	minY := int(math32.Floor(math32.Min(y0, y1) - margin))
	maxY := int(math32.Ceil(math32.Max(y0, y1) + margin))

	// Pre-clip the bounding box so the inner loop needs no per-pixel
	// bounds checks.
	minX = max(minX, c.clipMinX)
	maxX = min(maxX, c.clipMaxX)
	minY = max(minY, c.clipMinY)
	maxY = min(maxY, c.clipMaxY)

	if minX >= maxX || minY >= maxY {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	len2 := dx*dx + dy*dy
	var invLen2 float32
	// Threshold matches StrokePath's degenerate-segment check.
	if len2 > 0.000001 {
		invLen2 = 1 / len2
	}

	// Scaled direction lets the projection dot product advance by one
	// addition per pixel.
	dxScaled := dx * invLen2
	dyScaled := dy * invLen2
	fxStart := float32(minX) + 0.5
	fxX0 := fxStart - x0

	rowBase := minY * c.width

	for py := minY; py < maxY; py++ {
		fy := float32(py) + 0.5
		fyY0 := fy - y0

		dot := fxX0*dxScaled + fyY0*dyScaled
		fx := fxStart

		for px := minX; px < maxX; px++ {
			var t float32
			if invLen2 != 0 {
				t = dot
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}

			cx := x0 + t*dx
			cy := y0 + t*dy

			distX := fx - cx
			distY := fy - cy
			dist2 := distX*distX + distY*distY

			if dist2 < innerR2 {
				idx := rowBase + px
				c.fb[idx] = uint32(rendering.BlendOver(rendering.Color(c.fb[idx]), color))
				c.PixelsDrawn++
			} else if dist2 < outerR2 {
				dist := math32.Sqrt(dist2)
				coverage := (outerR - dist) / aaWidth
				idx := rowBase + px
				c.fb[idx] = uint32(rendering.BlendCoverage(rendering.Color(c.fb[idx]), color, coverage))
				c.PixelsDrawn++
			}

			dot += dxScaled
			fx++
		}
		rowBase += c.width
	}
}

// Line draws a stroked line segment with round caps. The rendered
// width is never less than one device pixel.
func (c *Context) Line(x0, y0, x1, y1, width float32, color rendering.Color) {
	if width < 1 {
		width = 1
	}
	c.Capsule(x0, y0, x1, y1, width*0.5, color)
}

// FillCircle fills a circle by scanline decomposition: each row inside
// the vertical extent draws its interior chord as a span and
// anti-aliases the two boundary pixels from the fractional chord edge
// coverage.
func (c *Context) FillCircle(cx, cy, radius float32, color rendering.Color) {
	if radius <= 0.5 {
		return
	}

	r2 := radius * radius
	ir := int(math32.Ceil(radius))

	for y := -ir; y <= ir; y++ {
		fy := float32(y)
		dy2 := fy * fy
		if dy2 > r2 {
			continue
		}

		xExtent := math32.Sqrt(r2 - dy2)
		leftEdge := cx - xExtent
		rightEdge := cx + xExtent

		xLeft := int(math32.Floor(leftEdge))
		xRight := int(math32.Ceil(rightEdge))
		iy := int(cy) + y

		leftCoverage := 1 - (leftEdge - float32(xLeft))
		rightCoverage := rightEdge - math32.Floor(rightEdge)
		if leftCoverage > 1 {
			leftCoverage = 1
		}
		if rightCoverage > 1 {
			rightCoverage = 1
		}

		if leftCoverage > 0.01 {
			c.PixelCoverage(xLeft, iy, color, leftCoverage)
		}
		if xLeft+1 <= xRight-1 {
			c.HLine(xLeft+1, xRight-1, iy, color)
		}
		if xRight != xLeft && rightCoverage > 0.01 {
			c.PixelCoverage(xRight, iy, color, rightCoverage)
		}
	}
}

// StrokeCircle outlines a circle by evaluating the distance to the
// ring per pixel with a fixed one-pixel anti-aliasing zone centered on
// the stroke boundary. The ring is not separable into horizontal
// spans, so the full clipped bounding box is scanned.
func (c *Context) StrokeCircle(cx, cy, radius, width float32, color rendering.Color) {
	if radius <= 0 || width <= 0 {
		return
	}

	halfW := width * 0.5
	if halfW < 0.4 {
		halfW = 0.4
	}

	outerR := radius + halfW + 1

	minX := max(int(math32.Floor(cx-outerR)), c.clipMinX)
	maxX := min(int(math32.Ceil(cx+outerR)), c.clipMaxX)
	minY := max(int(math32.Floor(cy-outerR)), c.clipMinY)
	maxY := min(int(math32.Ceil(cy+outerR)), c.clipMaxY)

	for py := minY; py < maxY; py++ {
		fy := float32(py) + 0.5 - cy
		fy2 := fy * fy

		for px := minX; px < maxX; px++ {
			fx := float32(px) + 0.5 - cx

			distToCenter := math32.Sqrt(fx*fx + fy2)
			distToRing := math32.Abs(distToCenter - radius)

			if distToRing < halfW-0.5 {
				c.Pixel(px, py, color)
			} else if distToRing < halfW+0.5 {
				coverage := (halfW + 0.5) - distToRing
				c.PixelCoverage(px, py, color, coverage)
			}
		}
	}
}

// normalizeAngle wraps an angle into [0, 2*pi).
func normalizeAngle(angle float32) float32 {
	const twoPi = 2 * math32.Pi
	for angle < 0 {
		angle += twoPi
	}
	for angle >= twoPi {
		angle -= twoPi
	}
	return angle
}

// angleInArc reports whether angle lies within [start, end], handling
// ranges that wrap past zero.
func angleInArc(angle, start, end float32) bool {
	angle = normalizeAngle(angle)
	start = normalizeAngle(start)
	end = normalizeAngle(end)

	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// Arc draws a stroked circular arc between startAngle and endAngle (in
// radians). Pixels inside the angular range use the radial ring
// distance; pixels outside it use the distance to the nearest arc
// endpoint, which yields a round cap at each terminus.
func (c *Context) Arc(cx, cy, radius, startAngle, endAngle, width float32, color rendering.Color) {
	if radius <= 0 || width <= 0 {
		return
	}

	halfW := width * 0.5
	if halfW < 0.4 {
		halfW = 0.4
	}

	outerR := radius + halfW + 1

	minX := max(int(math32.Floor(cx-outerR)), c.clipMinX)
	maxX := min(int(math32.Ceil(cx+outerR)), c.clipMaxX)
	minY := max(int(math32.Floor(cy-outerR)), c.clipMinY)
	maxY := min(int(math32.Ceil(cy+outerR)), c.clipMaxY)

	startX := cx + math32.Cos(startAngle)*radius
	startY := cy + math32.Sin(startAngle)*radius
	endX := cx + math32.Cos(endAngle)*radius
	endY := cy + math32.Sin(endAngle)*radius

	for py := minY; py < maxY; py++ {
		fy := float32(py) + 0.5 - cy
		fy2 := fy * fy

		for px := minX; px < maxX; px++ {
			fx := float32(px) + 0.5 - cx
			distToCenter := math32.Sqrt(fx*fx + fy2)

			if distToCenter < radius-halfW-1 || distToCenter > radius+halfW+1 {
				continue
			}

			pixelAngle := math32.Atan2(fy, fx)

			var dist float32
			if angleInArc(pixelAngle, startAngle, endAngle) {
				dist = math32.Abs(distToCenter - radius)
			} else {
				dxs := float32(px) + 0.5 - startX
				dys := float32(py) + 0.5 - startY
				distStart := math32.Sqrt(dxs*dxs + dys*dys)

				dxe := float32(px) + 0.5 - endX
				dye := float32(py) + 0.5 - endY
				distEnd := math32.Sqrt(dxe*dxe + dye*dye)

				dist = math32.Min(distStart, distEnd)
			}

			if dist < halfW-0.5 {
				c.Pixel(px, py, color)
			} else if dist < halfW+0.5 {
				coverage := (halfW + 0.5) - dist
				c.PixelCoverage(px, py, color, coverage)
			}
		}
	}
}
