package uitest

import (
	"testing"

	"github.com/go-ember/ember/pkg/headless"
	"github.com/go-ember/ember/pkg/rendering"
	"github.com/go-ember/ember/pkg/ui"
)

// defaultDelta is one 60 Hz frame in seconds.
const defaultDelta = 1.0 / 60.0

// Harness bundles a headless port and a ui.Context and drives frames
// with scripted input. Input calls (MoveTo, Press, keys) take effect
// on the next Frame, matching how a windowing port queues events
// between frames.
type Harness struct {
	Port *headless.Port
	Ctx  *ui.Context

	t     *testing.T
	delta float32
}

// NewHarness creates a harness with a width x height surface. The
// context uses the port for both drawing and text.
func NewHarness(t *testing.T, width, height int) *Harness {
	t.Helper()
	port, err := headless.New(width, height)
	if err != nil {
		t.Fatalf("uitest: creating headless port: %v", err)
	}
	ctx := ui.New(port, ui.Config{
		Width:      width,
		Height:     height,
		Text:       port,
		FontHeight: port.FontHeight(),
	})
	return &Harness{Port: port, Ctx: ctx, t: t, delta: defaultDelta}
}

// SetDelta overrides the per-frame time step in seconds.
func (h *Harness) SetDelta(dt float32) {
	h.delta = dt
}

// Frame runs one frame: BeginFrame with the current time step, the
// build function, then EndFrame.
func (h *Harness) Frame(build func(*ui.Context)) {
	h.Ctx.BeginFrame(h.delta)
	if build != nil {
		build(h.Ctx)
	}
	h.Ctx.EndFrame()
}

// Frames runs the same build for n consecutive frames.
func (h *Harness) Frames(n int, build func(*ui.Context)) {
	for i := 0; i < n; i++ {
		h.Frame(build)
	}
}

// MoveTo moves the pointer.
func (h *Harness) MoveTo(x, y float32) {
	h.Ctx.SetPointer(x, y)
}

// Press pushes the left pointer button down.
func (h *Harness) Press() {
	h.Ctx.PointerButton(ui.MouseLeft, true)
}

// Release lifts the left pointer button.
func (h *Harness) Release() {
	h.Ctx.PointerButton(ui.MouseLeft, false)
}

// Tap presses and releases at (x, y) across two frames of build.
func (h *Harness) Tap(x, y float32, build func(*ui.Context)) {
	h.MoveTo(x, y)
	h.Press()
	h.Frame(build)
	h.Release()
	h.Frame(build)
}

// Key records a key press for the next frame.
func (h *Harness) Key(k ui.Key) {
	h.Ctx.KeyPress(k)
}

// Type records typed text for the next frame.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Ctx.TypeRune(r)
	}
}

// PixelAt reads a framebuffer pixel.
func (h *Harness) PixelAt(x, y int) rendering.Color {
	return h.Port.PixelAt(x, y)
}

// RequirePixel fails the test when the pixel at (x, y) differs from
// want.
func (h *Harness) RequirePixel(x, y int, want rendering.Color) {
	h.t.Helper()
	got := h.Port.PixelAt(x, y)
	if got != want {
		h.t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
	}
}
