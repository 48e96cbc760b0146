package ui_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/ui"
	"github.com/go-ember/ember/pkg/uitest"
)

func TestButtonClick(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	clicks := 0
	build := func(c *ui.Context) {
		if c.Button("Save", ui.AlignLeft) {
			clicks++
		}
	}

	h.Frame(build)
	if clicks != 0 {
		t.Fatal("button clicked without input")
	}

	h.Tap(20, 24, build)
	if clicks != 1 {
		t.Errorf("clicks = %d after tap, want 1", clicks)
	}
}

func TestButtonEmptyLabelIsNoop(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	h.MoveTo(20, 24)
	h.Press()
	h.Frame(func(c *ui.Context) {
		if c.Button("", ui.AlignLeft) {
			t.Error("empty-label button reported a click")
		}
	})
	if h.Ctx.FocusedWidget() != 0 {
		t.Error("empty-label button registered for focus")
	}
}

func TestButtonEnterActivation(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	clicks := 0
	build := func(c *ui.Context) {
		if c.ButtonStyled("OK", ui.AlignLeft, ui.ButtonFilled) {
			clicks++
		}
	}

	h.Frame(build)
	h.Key(ui.KeyTab)
	h.Frame(build)
	if h.Ctx.FocusedWidget() == 0 {
		t.Fatal("Tab did not focus the button")
	}

	h.Key(ui.KeyEnter)
	h.Frame(build)
	if clicks != 1 {
		t.Errorf("clicks = %d after Enter on focused button, want 1", clicks)
	}
}

func TestFocusTraversalWrapsAndReverses(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	build := func(c *ui.Context) {
		c.Button("First", ui.AlignLeft)
		c.Newline()
		c.Button("Second", ui.AlignLeft)
		c.Newline()
	}

	h.Frame(build)
	h.Key(ui.KeyTab)
	h.Frame(build)
	first := h.Ctx.FocusedWidget()
	if first == 0 {
		t.Fatal("Tab from nothing did not focus the first widget")
	}

	h.Key(ui.KeyTab)
	h.Frame(build)
	second := h.Ctx.FocusedWidget()
	if second == 0 || second == first {
		t.Fatalf("second Tab focused %d, want a different widget than %d", second, first)
	}

	// Wrap around the end of the list.
	h.Key(ui.KeyTab)
	h.Frame(build)
	if got := h.Ctx.FocusedWidget(); got != first {
		t.Errorf("Tab past the last widget focused %d, want wrap to %d", got, first)
	}

	h.Key(ui.KeyBackTab)
	h.Frame(build)
	if got := h.Ctx.FocusedWidget(); got != second {
		t.Errorf("BackTab focused %d, want %d", got, second)
	}
}

func TestFocusRingDrawnAroundFocusedButton(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	build := func(c *ui.Context) {
		c.Button("Save", ui.AlignLeft)
	}

	// "Save" sits at {8, 8, 44, 32}; its focus ring is the rect expanded
	// by 3, so the top edge runs along y=5 between the corner arcs.
	h.Frame(build)
	if got := h.PixelAt(30, 5); got != 0 {
		t.Fatalf("ring pixel painted while unfocused: %#08x", uint32(got))
	}

	h.Key(ui.KeyTab)
	h.Frame(build)
	if h.Ctx.FocusedWidget() == 0 {
		t.Fatal("Tab did not focus the button")
	}
	if h.PixelAt(30, 5) == 0 {
		t.Error("focused button drew no ring above its bounds")
	}
	// The rounded corners are stroked as arcs; the ring's top-left
	// corner region must be painted too.
	corner := false
	for y := 4; y <= 12; y++ {
		for x := 4; x <= 12; x++ {
			if h.PixelAt(x, y) != 0 {
				corner = true
			}
		}
	}
	if !corner {
		t.Error("ring corner arc left unpainted")
	}
}

func TestFocusClearedWhenWidgetNotDrawn(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	build := func(c *ui.Context) {
		c.Button("Only", ui.AlignLeft)
	}

	h.Frame(build)
	h.Key(ui.KeyTab)
	h.Frame(build)
	if h.Ctx.FocusedWidget() == 0 {
		t.Fatal("button did not take focus")
	}

	h.Frame(nil)
	if h.Ctx.FocusedWidget() != 0 {
		t.Error("undrawn widget kept keyboard focus")
	}
}

func TestSegmentedSelection(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	entries := []string{"Day", "Week", "Month"}
	selected := 0
	build := func(c *ui.Context) {
		c.Segmented(entries, &selected)
	}

	h.Frame(build)
	if selected != 0 {
		t.Fatalf("selection changed without input: %d", selected)
	}

	// Row is {8, 8, 384, _}; each of the three segments is 128 wide and
	// starts 8px below the row top.
	h.Tap(200, 30, build)
	if selected != 1 {
		t.Errorf("selected = %d after tapping the middle segment, want 1", selected)
	}

	h.Tap(330, 30, build)
	if selected != 2 {
		t.Errorf("selected = %d after tapping the last segment, want 2", selected)
	}
}

func TestSegmentedClampsSelection(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	selected := 9
	h.Frame(func(c *ui.Context) {
		c.Segmented([]string{"A", "B"}, &selected)
	})
	if selected != 0 {
		t.Errorf("out-of-range selection = %d, want clamp to 0", selected)
	}
}

func TestSegmentedRejectsBadSegmentCounts(t *testing.T) {
	h := uitest.NewHarness(t, 400, 300)
	selected := 0
	h.MoveTo(200, 30)
	h.Press()
	h.Frame(func(c *ui.Context) {
		c.Segmented([]string{"Lonely"}, &selected)
		c.Segmented([]string{"a", "b", "c", "d", "e", "f"}, &selected)
		c.Segmented(nil, &selected)
	})
	if selected != 0 {
		t.Errorf("invalid segmented calls changed selection to %d", selected)
	}
}

func TestNilContextWidgetsAreNoops(t *testing.T) {
	var c *ui.Context
	c.BeginFrame(1.0 / 60)
	if c.Button("x", ui.AlignLeft) {
		t.Error("nil context button clicked")
	}
	if c.SliderEx(5, 0, 10, 1, nil) != 5 {
		t.Error("nil context slider changed value")
	}
	if c.TextField(&ui.EditState{}, nil) {
		t.Error("nil context text field submitted")
	}
	c.Segmented([]string{"a", "b"}, new(int))
	c.EndFrame()
	if c.ActiveSlider() != 0 || c.FocusedEdit() != nil || c.FocusedWidget() != 0 {
		t.Error("nil context reported interaction state")
	}
}
