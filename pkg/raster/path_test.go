package raster_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/raster"
	"github.com/go-ember/ember/pkg/rendering"
)

func TestPathMoveToRestartsSubpath(t *testing.T) {
	var p raster.Path
	p.MoveTo(1, 1)
	p.LineTo(5, 5)
	p.LineTo(9, 2)
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}

	p.MoveTo(20, 20)
	if p.Len() != 1 {
		t.Errorf("MoveTo did not discard prior points: Len = %d", p.Len())
	}
	if x, y := p.Pen(); x != 20 || y != 20 {
		t.Errorf("pen = (%g,%g), want (20,20)", x, y)
	}
}

func TestPathCapacityTruncatesSilently(t *testing.T) {
	var p raster.Path
	p.MoveTo(0, 0)
	for i := 0; i < raster.MaxPathPoints*2; i++ {
		p.LineTo(float32(i), float32(i))
	}
	if p.Len() != raster.MaxPathPoints {
		t.Errorf("Len = %d, want capacity %d", p.Len(), raster.MaxPathPoints)
	}
	// The pen still tracks the last requested position.
	if x, _ := p.Pen(); x != float32(raster.MaxPathPoints*2-1) {
		t.Errorf("pen x = %g after truncation", x)
	}
}

func TestCurveToTinyCurveStillAppends(t *testing.T) {
	var p raster.Path
	p.MoveTo(5, 5)
	// Degenerate curve: all control points at the pen.
	p.CurveTo(5, 5, 5, 5, 5, 5)
	if p.Len() < 2 {
		t.Errorf("tiny curve appended %d points beyond start, want >= 1", p.Len()-1)
	}
}

func TestCurveToAdaptiveSegments(t *testing.T) {
	var small, large raster.Path
	small.MoveTo(0, 0)
	small.CurveTo(2, 2, 4, 2, 6, 0)
	large.MoveTo(0, 0)
	large.CurveTo(40, 40, 80, 40, 120, 0)

	if large.Len() <= small.Len() {
		t.Errorf("larger curve got %d points, smaller got %d; want more for larger",
			large.Len(), small.Len())
	}
	if large.Len() > raster.MaxPathPoints {
		t.Errorf("curve exceeded path capacity: %d", large.Len())
	}

	// The curve's endpoint is exact.
	if x, y := large.Pen(); x != 120 || y != 0 {
		t.Errorf("pen = (%g,%g), want (120,0)", x, y)
	}
}

func TestScaledVariantsScaleTargetsOnly(t *testing.T) {
	var p, q raster.Path
	p.MoveTo(10, 10)
	p.LineTo(20, 20)

	q.MoveToScaled(5, 5, 2)
	q.LineToScaled(10, 10, 2)

	if p.Len() != q.Len() {
		t.Fatalf("scaled path length %d != unscaled %d", q.Len(), p.Len())
	}
	px, py := p.Pen()
	qx, qy := q.Pen()
	if px != qx || py != qy {
		t.Errorf("scaled pen (%g,%g) != unscaled pen (%g,%g)", qx, qy, px, py)
	}
}

func TestStrokePathUnderTwoPointsIsNoop(t *testing.T) {
	fb, ctx := newSurface(16, 16)

	var p raster.Path
	ctx.StrokePath(&p, 2, rendering.ColorWhite)
	p.MoveTo(8, 8)
	ctx.StrokePath(&p, 2, rendering.ColorWhite)

	for _, v := range fb {
		if v != 0 {
			t.Fatal("stroking a degenerate path wrote pixels")
		}
	}
}

func TestStrokePathSkipsDegenerateSegments(t *testing.T) {
	fbA, ctxA := newSurface(24, 24)
	fbB, ctxB := newSurface(24, 24)

	var a raster.Path
	a.MoveTo(4, 12)
	a.LineTo(20, 12)
	ctxA.StrokePath(&a, 2, rendering.ColorWhite)

	// Same stroke with a zero-length segment spliced in.
	var b raster.Path
	b.MoveTo(4, 12)
	b.LineTo(4, 12)
	b.LineTo(20, 12)
	ctxB.StrokePath(&b, 2, rendering.ColorWhite)

	for i := range fbA {
		if fbA[i] != fbB[i] {
			t.Fatalf("degenerate segment changed output at index %d", i)
		}
	}
}

func TestStrokePathDrawsSegments(t *testing.T) {
	fb, ctx := newSurface(32, 32)

	var p raster.Path
	p.MoveTo(4, 16)
	p.CurveTo(12, 4, 20, 28, 28, 16)
	ctx.StrokePath(&p, 2, rendering.ColorWhite)

	if ctx.PixelsDrawn == 0 {
		t.Fatal("stroked curve drew nothing")
	}
	touched := false
	for _, v := range fb {
		if v != 0 {
			touched = true
			break
		}
	}
	if !touched {
		t.Fatal("framebuffer unchanged after stroke")
	}
}
