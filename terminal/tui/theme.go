package tui

import "github.com/lixenwraith/cellstyle/theme"

// Theme bundles the palette with the decorations drawn around views
type Theme struct {
	Palette theme.Palette
	Shadow  bool     // draw a one-cell shadow right and below dialogs
	Borders LineType // border style for boxes
}

// DefaultTheme provides the stock palette with shadows and single borders
func DefaultTheme() Theme {
	return Theme{
		Palette: theme.DefaultPalette(),
		Shadow:  true,
		Borders: LineSingle,
	}
}

// WithPalette returns a copy of t using p
func (t Theme) WithPalette(p theme.Palette) Theme {
	t.Palette = p
	return t
}
