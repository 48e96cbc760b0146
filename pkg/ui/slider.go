package ui

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/rendering"
)

// Slider metrics.
const (
	sliderTrackHeight    = 4
	sliderThumbIdle      = 20
	sliderThumbPressed   = 28
	sliderTouchTarget    = 48
	sliderValueIndicator = 28
)

// animDuration is the shared widget animation length in seconds.
const animDuration = animation.DurationShort4

// sliderMode says what the active slider is doing. At most one slider
// is dragging or animating at a time per context.
type sliderMode uint8

const (
	sliderIdle sliderMode = iota
	sliderDragging
	sliderAnimating
)

// sliderState is the context-wide active-slider record. activeID is a
// masked (31-bit, non-zero) identity; zero means no slider owns the
// state. The mode is explicit rather than packed into the identity.
type sliderState struct {
	activeID uint32
	mode     sliderMode

	// dragOffset keeps dragging relative: pointer X minus thumb X at
	// press time.
	dragOffset float32

	// Track-click animation keyframes and progress.
	animStartX  float32
	animTargetX float32
	animT       float32
}

// SliderOptions customizes SliderEx. The zero value gives a plain
// slider with theme colors.
type SliderOptions struct {
	// StartText and EndText are labels drawn left- and right-aligned
	// above the track.
	StartText string
	EndText   string
	// ValueFormat is the fmt verb for the value indicator ("%.0f" when
	// empty).
	ValueFormat string
	// Track and handle color overrides; zero keeps theme defaults.
	ActiveTrackColor   rendering.Color
	InactiveTrackColor rendering.Color
	HandleColor        rendering.Color
	// Disabled draws the slider muted and ignores input.
	Disabled bool
	// ShowValueIndicator draws a value bubble above the thumb while
	// dragging.
	ShowValueIndicator bool
}

// Slider draws a labeled slider and returns the (possibly updated)
// value. The value pointer semantics of hosts are kept simple: pass
// the current value, store the result.
func (c *Context) Slider(label string, minValue, maxValue, step, value float32) float32 {
	return c.SliderEx(value, minValue, maxValue, step, &SliderOptions{StartText: label})
}

// SliderEx draws a slider with options and returns the updated value.
//
// The interaction state machine:
//   - a fresh press on the thumb's touch rect starts a drag, storing
//     the pointer-to-thumb offset so motion is relative;
//   - a fresh press on the track while nothing is active starts an
//     animation from the current thumb position to the click position,
//     eased with ease-out-back;
//   - while dragging, the thumb follows the pointer until the button is
//     released;
//   - animation progress advances by deltaTime/duration each frame and
//     releases the active state when it completes.
//
// Inverted ranges no-op and return the value unchanged.
func (c *Context) SliderEx(value, minValue, maxValue, step float32, options *SliderOptions) float32 {
	if c == nil || maxValue <= minValue {
		return value
	}

	// Identity from the layout position; registered for per-frame
	// stale-state tracking.
	sliderID := maskedID(hashString("slider_ex") ^ hashPos(c.layout.X, c.layout.Y))
	c.RegisterSlider(sliderID)

	value = clamp(value, minValue, maxValue)

	activeColor := c.palette.Primary
	inactiveColor := c.palette.SurfaceContainerHighest
	handleColor := c.palette.Primary
	disabled := false
	format := "%.0f"
	if options != nil {
		if options.ActiveTrackColor != 0 {
			activeColor = options.ActiveTrackColor
		}
		if options.InactiveTrackColor != 0 {
			inactiveColor = options.InactiveTrackColor
		}
		if options.HandleColor != 0 {
			handleColor = options.HandleColor
		}
		if options.ValueFormat != "" {
			format = options.ValueFormat
		}
		disabled = options.Disabled
	}

	if disabled {
		activeColor = stateLayer(c.palette.OnSurface, focusAlpha)
		inactiveColor = stateLayer(c.palette.OnSurface, focusAlpha)
		handleColor = stateLayer(c.palette.OnSurface, disableAlpha)
	}

	if options != nil && (options.StartText != "" || options.EndText != "") {
		labelColor := c.palette.OnSurface
		if disabled {
			labelColor = stateLayer(c.palette.OnSurface, disableAlpha)
		}
		if options.StartText != "" {
			c.drawText(c.layout.X, c.layout.Y+(c.layout.Height-c.fontHeight)*0.5,
				options.StartText, labelColor)
		}
		if options.EndText != "" {
			w := c.textWidth(options.EndText)
			c.drawText(c.layout.MaxX()-w, c.layout.Y+(c.layout.Height-c.fontHeight)*0.5,
				options.EndText, labelColor)
		}
		c.Newline()
	}

	centerY := c.layout.Y + c.layout.Height*0.5

	trackMargin := c.layout.Width * 0.05
	trackRect := rendering.Rect{
		X:      c.layout.X + trackMargin,
		Y:      centerY - sliderTrackHeight*0.5,
		Width:  c.layout.Width - trackMargin*2,
		Height: sliderTrackHeight,
	}

	normValue := (value - minValue) / (maxValue - minValue)
	thumbX := normValue*trackRect.Width + trackRect.X

	isDragging := c.slider.mode == sliderDragging && c.slider.activeID == sliderID

	thumbSize := float32(sliderThumbIdle)
	if isDragging {
		thumbSize = sliderThumbPressed
	}
	halfSize := thumbSize * 0.5

	thumbRect := rendering.Rect{
		X:      thumbX - halfSize,
		Y:      centerY - halfSize,
		Width:  thumbSize,
		Height: thumbSize,
	}
	touchRect := thumbRect.ExpandTouchTarget(sliderTouchTarget)

	trackState := c.widgetState(trackRect, disabled)
	thumbState := c.widgetState(touchRect, disabled)

	// Inactive track under everything, then the active portion.
	c.renderer.DrawBox(trackRect, trackRect.Height*0.5, inactiveColor)
	activeWidth := thumbX - trackRect.X
	if activeWidth > 0 {
		c.renderer.DrawBox(rendering.Rect{
			X: trackRect.X, Y: trackRect.Y,
			Width: activeWidth, Height: trackRect.Height,
		}, trackRect.Height*0.5, activeColor)
	}

	thumbHovered := thumbState == StateHovered

	if !disabled {
		if thumbState == StatePressed && !isDragging {
			c.slider = sliderState{
				activeID:   sliderID,
				mode:       sliderDragging,
				dragOffset: c.pointer.X - thumbX,
			}
			isDragging = true
		} else if trackState == StatePressed && c.slider.mode == sliderIdle {
			c.slider = sliderState{
				activeID:    sliderID,
				mode:        sliderAnimating,
				animStartX:  thumbX,
				animTargetX: clamp(c.pointer.X, trackRect.X, trackRect.MaxX()),
			}
		}

		if c.slider.activeID == sliderID && c.slider.mode == sliderAnimating {
			c.slider.animT += c.deltaTime / animDuration
			done := false
			if c.slider.animT >= 1 {
				c.slider.animT = 1
				done = true
			}
			thumbX = animation.Lerp(c.slider.animStartX, c.slider.animTargetX,
				animation.EaseOutBack(c.slider.animT))
			if done {
				c.slider = sliderState{}
			}
		}

		if isDragging && c.held&MouseLeft != 0 {
			thumbX = c.pointer.X - c.slider.dragOffset
		} else if isDragging {
			c.slider = sliderState{}
			isDragging = false
		}
	}

	thumbX = clamp(thumbX, trackRect.X, trackRect.MaxX())

	// Position back to value, quantized to the step grid.
	normValue = (thumbX - trackRect.X) / trackRect.Width
	value = normValue*(maxValue-minValue) + minValue
	if step > 0 {
		value = math32.Round(value/step) * step
	}
	value = clamp(value, minValue, maxValue)

	normValue = (value - minValue) / (maxValue - minValue)
	thumbX = normValue*trackRect.Width + trackRect.X
	thumbRect.X = thumbX - halfSize

	if (thumbHovered || isDragging) && !disabled {
		stateSize := thumbSize * 1.5
		alpha := hoverAlpha
		if isDragging {
			alpha = dragAlpha
		}
		c.renderer.DrawBox(rendering.Rect{
			X: thumbX - stateSize*0.5, Y: centerY - stateSize*0.5,
			Width: stateSize, Height: stateSize,
		}, stateSize*0.5, stateLayer(handleColor, alpha))
	}

	if options != nil && options.ShowValueIndicator && isDragging && !disabled {
		c.drawValueIndicator(thumbX, thumbRect.Y, fmt.Sprintf(format, value), activeColor)
	}

	c.renderer.DrawBox(thumbRect, halfSize, handleColor)

	c.Newline()
	return value
}

// drawValueIndicator draws the value bubble above the thumb,
// temporarily expanding the clip upward so the bubble is not cut off
// near the surface top.
func (c *Context) drawValueIndicator(thumbX, thumbTop float32, label string, bg rendering.Color) {
	textWidth := c.textWidth(label)
	indicatorWidth := math32.Max(sliderValueIndicator, textWidth+c.padding)
	indicatorHeight := float32(sliderValueIndicator)
	indicatorX := thumbX - indicatorWidth*0.5
	indicatorY := thumbTop - indicatorHeight - 8

	prevClip := c.currentClip
	expanded := false
	if indicatorY < float32(prevClip.minY) {
		newMinY := int(math32.Max(0, indicatorY))
		c.setClip(prevClip.minX, newMinY, prevClip.maxX, prevClip.maxY)
		expanded = true
	}

	c.renderer.DrawBox(rendering.Rect{
		X: indicatorX, Y: indicatorY,
		Width: indicatorWidth, Height: indicatorHeight,
	}, indicatorHeight*0.5, bg)

	c.drawText(indicatorX+(indicatorWidth-textWidth)*0.5,
		indicatorY+(indicatorHeight-c.fontHeight)*0.5,
		label, c.palette.OnPrimary)

	if expanded {
		c.setClip(prevClip.minX, prevClip.minY, prevClip.maxX, prevClip.maxY)
	}
}

// ActiveSlider returns the identity of the slider currently dragging
// or animating, zero when none is.
func (c *Context) ActiveSlider() uint32 {
	if c == nil {
		return 0
	}
	return c.slider.activeID
}

// SliderIsAnimating reports whether the active slider is running a
// track-click animation rather than a drag.
func (c *Context) SliderIsAnimating() bool {
	return c != nil && c.slider.mode == sliderAnimating
}

// SliderIsDragging reports whether the active slider is being dragged.
func (c *Context) SliderIsDragging() bool {
	return c != nil && c.slider.mode == sliderDragging
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
