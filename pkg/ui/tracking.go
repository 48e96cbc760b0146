package ui

// The field-tracking ledger records which interactive widgets were
// drawn this frame. EndFrame consults it to clear focus and drag state
// belonging to widgets that were not re-registered — a widget hidden by
// a conditional must not keep keyboard focus or drag ownership, or
// input routing desyncs from what is on screen.
//
// Storage is preallocated and reused: the ledger is reset at frame
// start and consulted at frame end, never freed.

const maxTrackedFields = 64

type fieldLedger struct {
	textFields     [maxTrackedFields]*EditState
	textFieldCount int

	sliders     [maxTrackedFields]uint32
	sliderCount int

	frameNumber uint32
}

func (l *fieldLedger) reset() {
	l.textFieldCount = 0
	l.sliderCount = 0
}

// registerTextField records a text field by its state pointer.
// Registering the same state twice within one frame counts once.
func (l *fieldLedger) registerTextField(s *EditState) {
	if s == nil {
		return
	}
	for i := 0; i < l.textFieldCount; i++ {
		if l.textFields[i] == s {
			return
		}
	}
	if l.textFieldCount < maxTrackedFields {
		l.textFields[l.textFieldCount] = s
		l.textFieldCount++
	}
}

func (l *fieldLedger) textFieldRegistered(s *EditState) bool {
	for i := 0; i < l.textFieldCount; i++ {
		if l.textFields[i] == s {
			return true
		}
	}
	return false
}

// registerSlider records a slider identity, deduplicated by value.
func (l *fieldLedger) registerSlider(id uint32) {
	if id == 0 {
		return
	}
	for i := 0; i < l.sliderCount; i++ {
		if l.sliders[i] == id {
			return
		}
	}
	if l.sliderCount < maxTrackedFields {
		l.sliders[l.sliderCount] = id
		l.sliderCount++
	}
}

func (l *fieldLedger) sliderRegistered(id uint32) bool {
	for i := 0; i < l.sliderCount; i++ {
		if l.sliders[i] == id {
			return true
		}
	}
	return false
}

// RegisterTextField records a text field in the current frame's
// ledger. Widgets do this automatically; hosts embedding custom edit
// surfaces call it directly.
func (c *Context) RegisterTextField(s *EditState) {
	c.tracking.registerTextField(s)
}

// TextFieldIsRegistered reports whether the state was registered this
// frame.
func (c *Context) TextFieldIsRegistered(s *EditState) bool {
	return c.tracking.textFieldRegistered(s)
}

// RegisterSlider records a slider identity in the current frame's
// ledger.
func (c *Context) RegisterSlider(id uint32) {
	c.tracking.registerSlider(id)
}

// ResetFieldIDs clears the ledger's registration counts. BeginFrame
// calls this; it is exposed for hosts that drive partial frames.
func (c *Context) ResetFieldIDs() {
	c.tracking.reset()
}

// TrackedTextFields returns the number of distinct text fields
// registered this frame.
func (c *Context) TrackedTextFields() int {
	return c.tracking.textFieldCount
}

// TrackedSliders returns the number of distinct sliders registered
// this frame.
func (c *Context) TrackedSliders() int {
	return c.tracking.sliderCount
}

// FrameNumber returns the monotonically increasing frame counter.
func (c *Context) FrameNumber() uint32 {
	return c.tracking.frameNumber
}
