package rendering_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/rendering"
)

func TestColorChannels(t *testing.T) {
	c := rendering.RGBA(0x12, 0x34, 0x56, 0x78)
	if got := uint32(c); got != 0x78123456 {
		t.Fatalf("RGBA packed %#08x, want 0x78123456", got)
	}
	if c.Red() != 0x12 || c.Green() != 0x34 || c.Blue() != 0x56 || c.Alpha() != 0x78 {
		t.Errorf("channel round-trip failed: r=%#x g=%#x b=%#x a=%#x",
			c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	if got := rendering.RGB(1, 2, 3).Alpha(); got != 0xFF {
		t.Errorf("RGB alpha = %#x, want 0xFF", got)
	}
}

func TestBlendOverTransparentSource(t *testing.T) {
	dst := rendering.RGB(10, 20, 30)
	src := rendering.RGBA(200, 200, 200, 0)
	if got := rendering.BlendOver(dst, src); got != dst {
		t.Errorf("blending transparent src changed dst: %#08x", uint32(got))
	}
}

func TestBlendOverOpaqueSource(t *testing.T) {
	dst := rendering.RGB(10, 20, 30)
	src := rendering.RGB(200, 100, 50)
	if got := rendering.BlendOver(dst, src); got != src {
		t.Errorf("blending opaque src did not replace dst: %#08x", uint32(got))
	}
}

func TestBlendOverHalfAlpha(t *testing.T) {
	dst := rendering.RGB(0, 0, 0)
	src := rendering.RGBA(255, 255, 255, 128)
	got := rendering.BlendOver(dst, src)

	// out = (255*128 + 0*127) / 255 = 128 per channel, truncated.
	if got.Red() != 128 || got.Green() != 128 || got.Blue() != 128 {
		t.Errorf("half-alpha blend = %#08x, want 128 per channel", uint32(got))
	}
	// out_a = 128 + 255*127/255 = 255.
	if got.Alpha() != 255 {
		t.Errorf("half-alpha output alpha = %d, want 255", got.Alpha())
	}
}

func TestBlendCoverageEndpoints(t *testing.T) {
	dst := rendering.RGB(40, 50, 60)
	c := rendering.RGBA(200, 100, 50, 180)

	if got := rendering.BlendCoverage(dst, c, 0); got != dst {
		t.Errorf("coverage 0 changed dst: %#08x", uint32(got))
	}
	if got := rendering.BlendCoverage(dst, c, -1); got != dst {
		t.Errorf("negative coverage changed dst: %#08x", uint32(got))
	}

	want := rendering.BlendOver(dst, c)
	if got := rendering.BlendCoverage(dst, c, 1); got != want {
		t.Errorf("coverage 1 = %#08x, want BlendOver result %#08x", uint32(got), uint32(want))
	}
	// Over-range coverage clamps to 1.
	if got := rendering.BlendCoverage(dst, c, 2.5); got != want {
		t.Errorf("coverage 2.5 = %#08x, want clamped result %#08x", uint32(got), uint32(want))
	}
}

func TestExpandTouchTarget(t *testing.T) {
	r := rendering.Rect{X: 100, Y: 100, Width: 20, Height: 20}
	e := r.ExpandTouchTarget(48)

	if e.Width != 48 || e.Height != 48 {
		t.Fatalf("expanded size = %gx%g, want 48x48", e.Width, e.Height)
	}
	if got, want := e.Center(), r.Center(); got != want {
		t.Errorf("expansion moved center: got %+v, want %+v", got, want)
	}

	big := rendering.Rect{X: 0, Y: 0, Width: 100, Height: 60}
	if got := big.ExpandTouchTarget(48); got != big {
		t.Errorf("already-large rect changed: %+v", got)
	}
}
