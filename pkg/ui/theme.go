package ui

import "github.com/go-ember/ember/pkg/rendering"

// Palette holds the color roles widgets draw with. Hosts may replace
// any role; the zero Palette is upgraded to DefaultPalette by New.
type Palette struct {
	Primary                 rendering.Color
	OnPrimary               rendering.Color
	Surface                 rendering.Color
	OnSurface               rendering.Color
	SurfaceContainer        rendering.Color
	SurfaceContainerHigh    rendering.Color
	SurfaceContainerHighest rendering.Color
	SecondaryContainer      rendering.Color
	OnSecondaryContainer    rendering.Color
	Outline                 rendering.Color
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:                 rendering.RGB(0xD0, 0xBC, 0xFF),
		OnPrimary:               rendering.RGB(0x38, 0x1E, 0x72),
		Surface:                 rendering.RGB(0x14, 0x12, 0x18),
		OnSurface:               rendering.RGB(0xE6, 0xE0, 0xE9),
		SurfaceContainer:        rendering.RGB(0x21, 0x1F, 0x26),
		SurfaceContainerHigh:    rendering.RGB(0x2B, 0x29, 0x30),
		SurfaceContainerHighest: rendering.RGB(0x36, 0x34, 0x3B),
		SecondaryContainer:      rendering.RGB(0x4A, 0x44, 0x58),
		OnSecondaryContainer:    rendering.RGB(0xE8, 0xDE, 0xF8),
		Outline:                 rendering.RGB(0x93, 0x8F, 0x99),
	}
}

// State layer opacities, as alpha bytes.
const (
	hoverAlpha   uint8 = 20 // 8%
	focusAlpha   uint8 = 31 // 12%
	dragAlpha    uint8 = 41 // 16%
	disableAlpha uint8 = 97 // 38%
)

// stateLayer returns color at the given state-layer opacity.
func stateLayer(color rendering.Color, alpha uint8) rendering.Color {
	return color.WithAlpha(alpha)
}
