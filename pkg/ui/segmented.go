package ui

import (
	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/rendering"
)

// Segmented control limits, matching the two-to-five segment design
// guidance.
const (
	segmentedMinSegments = 2
	segmentedMaxSegments = 5
	segmentedIconSize    = 18
)

// Segmented draws a segmented control over entries and updates
// *selected on click. The selected highlight slides between segments
// with an ease-out-back animation. Nil pointers, empty entries or a
// segment count outside [2, 5] no-op; an out-of-range selection is
// clamped to zero.
func (c *Context) Segmented(entries []string, selected *int) {
	if c == nil || selected == nil ||
		len(entries) < segmentedMinSegments || len(entries) > segmentedMaxSegments {
		return
	}

	numEntries := len(entries)
	segHeight := c.fontHeight + c.padding*2
	pillRadius := segHeight / 2
	segWidth := c.layout.Width / float32(numEntries)
	segY := c.layout.Y + c.padding
	segXStart := c.layout.X

	if *selected < 0 || *selected >= numEntries {
		*selected = 0
	}

	// Unified pill container behind all segments.
	c.renderer.DrawBox(rendering.Rect{
		X: segXStart, Y: segY, Width: c.layout.Width, Height: segHeight,
	}, pillRadius, c.palette.SurfaceContainerHighest)

	// Selected highlight, sliding while the shared animation targets
	// this control.
	selX := segXStart + segWidth*float32(*selected)
	if c.anim.widget == selected {
		selX = animation.Lerp(c.anim.from, c.anim.to, animation.EaseOutBack(c.anim.t))
	}
	highlightCorner := float32(0)
	if *selected == 0 || *selected == numEntries-1 {
		highlightCorner = pillRadius
	}
	c.renderer.DrawBox(rendering.Rect{
		X: selX, Y: segY, Width: segWidth, Height: segHeight,
	}, highlightCorner, c.palette.SecondaryContainer)

	segX := segXStart
	for i := 0; i < numEntries; i++ {
		if entries[i] == "" {
			segX += segWidth
			continue
		}

		isSelected := i == *selected
		segRect := rendering.Rect{X: segX, Y: segY, Width: segWidth, Height: segHeight}
		segState := c.widgetState(segRect, false)

		if !isSelected && segState.IsInteractive() {
			corner := float32(0)
			if i == 0 || i == numEntries-1 {
				corner = pillRadius
			}
			c.renderer.DrawBox(segRect, corner,
				stateLayer(c.palette.OnSurface, hoverAlpha))
		}

		if segState == StatePressed && !isSelected {
			c.anim = widgetAnim{
				widget: selected,
				from:   segXStart + segWidth*float32(*selected),
				to:     segXStart + segWidth*float32(i),
			}
			*selected = i
			isSelected = true
		}

		textColor := c.palette.OnSurface
		if isSelected {
			textColor = c.palette.OnSecondaryContainer
		}

		textW := c.textWidth(entries[i])
		if isSelected {
			// Checkmark, gap, then the label, centered as one block.
			gap := float32(8)
			contentWidth := segmentedIconSize + gap + textW
			contentX := segX + (segWidth-contentWidth)*0.5
			iconCX := contentX + segmentedIconSize*0.5
			iconCY := segY + segHeight*0.5

			c.drawIconCheck(iconCX, iconCY, segmentedIconSize, textColor)
			c.drawText(contentX+segmentedIconSize+gap,
				segY+(segHeight-c.fontHeight)*0.5, entries[i], textColor)
		} else {
			c.drawText(segX+(segWidth-textW)*0.5,
				segY+(segHeight-c.fontHeight)*0.5, entries[i], textColor)
		}

		segX += segWidth
	}

	c.layout.Y += segHeight + c.padding
}

// drawIconCheck draws a checkmark as two line strokes inside a square
// of the given size centered at (cx, cy).
func (c *Context) drawIconCheck(cx, cy, size float32, color rendering.Color) {
	half := size * 0.5
	c.renderer.DrawLine(cx-half*0.8, cy, cx-half*0.2, cy+half*0.6, 2, color)
	c.renderer.DrawLine(cx-half*0.2, cy+half*0.6, cx+half*0.8, cy-half*0.5, 2, color)
}
