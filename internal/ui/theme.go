package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens the default Fyne theme so the whole form fits a
// fixed 600x500 window, and raises contrast on inputs and placeholders.
type CompactTheme struct{}

var _ fyne.Theme = (*CompactTheme)(nil)

// NewCompactTheme creates the theme used by the main window.
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns the color for the specified name and variant.
func (c *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	light := variant == theme.VariantLight
	switch name {
	case theme.ColorNamePlaceHolder:
		if light {
			return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
		}
		return color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}

	case theme.ColorNameDisabled:
		// Read-only path fields are disabled entries and must stay legible.
		if light {
			return color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF}
		}
		return color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}

	case theme.ColorNameInputBorder:
		if light {
			return color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
		}
		return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the font resource for the specified text style.
func (c *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon resource for the specified name.
func (c *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
func (c *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 4
	default:
		return theme.DefaultTheme().Size(name)
	}
}
