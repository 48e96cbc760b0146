package raster_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/rendering"
)

func TestFillRect(t *testing.T) {
	fb, ctx := newSurface(8, 8)
	ctx.FillRect(2, 3, 4, 2, rendering.ColorGreen)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				want = uint32(rendering.ColorGreen)
			}
			if fb[y*8+x] != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, fb[y*8+x], want)
			}
		}
	}
}

func TestCapsuleSymmetric(t *testing.T) {
	fbA, ctxA := newSurface(32, 32)
	fbB, ctxB := newSurface(32, 32)

	ctxA.Capsule(5.3, 7.1, 26.8, 24.4, 3.5, rendering.ColorWhite)
	ctxB.Capsule(26.8, 24.4, 5.3, 7.1, 3.5, rendering.ColorWhite)

	for i := range fbA {
		if fbA[i] != fbB[i] {
			t.Fatalf("capsule not endpoint-symmetric at index %d: %#08x vs %#08x",
				i, fbA[i], fbB[i])
		}
	}
	if ctxA.PixelsDrawn == 0 {
		t.Fatal("capsule drew nothing")
	}
}

func TestCapsuleZeroRadiusIsNoop(t *testing.T) {
	fb, ctx := newSurface(8, 8)
	ctx.Capsule(1, 1, 6, 6, 0, rendering.ColorWhite)
	for _, v := range fb {
		if v != 0 {
			t.Fatal("zero-radius capsule wrote pixels")
		}
	}
}

func TestCapsuleSolidCore(t *testing.T) {
	fb, ctx := newSurface(16, 16)
	ctx.Capsule(3, 8, 13, 8, 3, rendering.ColorWhite)

	// The segment midpoint lies deep inside the solid core.
	if fb[8*16+8] != uint32(rendering.ColorWhite) {
		t.Errorf("core pixel = %#08x, want solid white", fb[8*16+8])
	}
	// Far corner stays untouched.
	if fb[0] != 0 {
		t.Error("capsule leaked outside its bounding box")
	}
}

func TestLineMinimumWidth(t *testing.T) {
	fbThin, ctxThin := newSurface(16, 16)
	fbOne, ctxOne := newSurface(16, 16)

	ctxThin.Line(2, 8, 14, 8, 0.1, rendering.ColorWhite)
	ctxOne.Line(2, 8, 14, 8, 1, rendering.ColorWhite)

	for i := range fbThin {
		if fbThin[i] != fbOne[i] {
			t.Fatalf("sub-pixel width not clamped to 1px at index %d", i)
		}
	}
}

func TestLineRespectsClip(t *testing.T) {
	fb, ctx := newSurface(16, 16)
	ctx.SetClip(0, 0, 8, 16)
	ctx.Line(0, 8, 15, 8, 3, rendering.ColorWhite)

	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			if fb[y*16+x] != 0 {
				t.Fatalf("line escaped clip at (%d,%d)", x, y)
			}
		}
	}
}

func TestFillCircle(t *testing.T) {
	fb, ctx := newSurface(24, 24)
	ctx.FillCircle(12, 12, 6, rendering.ColorBlue)

	if fb[12*24+12] != uint32(rendering.ColorBlue) {
		t.Error("circle center not filled")
	}
	if fb[0] != 0 || fb[12*24+1] != 0 {
		t.Error("circle filled pixels far outside the radius")
	}
}

func TestFillCircleTinyRadiusIsNoop(t *testing.T) {
	fb, ctx := newSurface(8, 8)
	ctx.FillCircle(4, 4, 0.4, rendering.ColorBlue)
	for _, v := range fb {
		if v != 0 {
			t.Fatal("sub-pixel circle wrote pixels")
		}
	}
}

func TestStrokeCircleRing(t *testing.T) {
	fb, ctx := newSurface(32, 32)
	ctx.StrokeCircle(16, 16, 10, 2, rendering.ColorWhite)

	if fb[16*32+16] != 0 {
		t.Error("ring filled its center")
	}
	// A point on the ring (right of center at the radius) is solid.
	if fb[16*32+26] == 0 && fb[16*32+25] == 0 {
		t.Error("ring left its own boundary unpainted")
	}
}

func TestArcCoversOnlyItsAngles(t *testing.T) {
	fb, ctx := newSurface(40, 40)
	// Right half: -pi/2 .. pi/2.
	ctx.Arc(20, 20, 12, -1.5707, 1.5707, 3, rendering.ColorWhite)

	rightPainted := false
	for y := 15; y < 25; y++ {
		if fb[y*40+32] != 0 || fb[y*40+31] != 0 {
			rightPainted = true
		}
	}
	if !rightPainted {
		t.Error("arc did not paint inside its angular range")
	}

	// The far left of the ring is outside the range and beyond cap
	// reach.
	if fb[20*40+8] != 0 {
		t.Error("arc painted the opposite side of the ring")
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	fb, ctx := newSurface(20, 12)
	// Radius far beyond half the height must clamp, not distort.
	ctx.FillRoundedRect(2, 2, 16, 8, 100, rendering.ColorWhite)

	if fb[6*20+10] != uint32(rendering.ColorWhite) {
		t.Error("rounded rect center not filled")
	}
	if fb[2*20+2] != 0 {
		t.Error("corner pixel should be rounded away")
	}
}

func TestRoundedRectSmallRadiusFallsBackToRect(t *testing.T) {
	fbA, ctxA := newSurface(12, 12)
	fbB, ctxB := newSurface(12, 12)

	ctxA.FillRoundedRect(2, 2, 8, 8, 0.3, rendering.ColorWhite)
	ctxB.FillRect(2, 2, 8, 8, rendering.ColorWhite)

	for i := range fbA {
		if fbA[i] != fbB[i] {
			t.Fatalf("sub-pixel radius should degrade to FillRect (index %d)", i)
		}
	}
}
