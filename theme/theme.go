package theme

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/widget/material"
)

// Theme extends the material theme with the tokens the pull-down menu needs.
type Theme struct {
	*material.Theme

	// Bg2 is the background of elevated surfaces like the menu body.
	Bg2 color.NRGBA
	// Destructive tints destructive menu items.
	Destructive color.NRGBA
	// ScrimColor dims the content behind an open menu. The zero value keeps
	// the backdrop fully transparent.
	ScrimColor color.NRGBA

	// Alpha values applied for hover, selected and disabled states.
	HoverAlpha    uint8
	SelectedAlpha uint8
	DisabledAlpha uint8
}

// NewTheme instantiates a theme, extending the material theme. Fonts are
// loaded from fontDir and the embedded font buffers, falling back to the Gio
// builtin Go font collection.
func NewTheme(fontDir string, embeddedFonts [][]byte, noSystemFonts bool) *Theme {
	th := material.NewTheme()

	var options = []text.ShaperOption{
		text.WithCollection(LoadBuiltin(fontDir, embeddedFonts)),
	}

	if noSystemFonts {
		options = append(options, text.NoSystemFonts())
	}

	th.Shaper = text.NewShaper(options...)

	theme := &Theme{
		Theme:         th,
		Bg2:           color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf7, A: 0xff},
		Destructive:   color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff},
		HoverAlpha:    48,
		SelectedAlpha: 96,
		DisabledAlpha: 112,
	}

	return theme
}
