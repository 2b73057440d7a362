package tui

import (
	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

// Style bundles a requested color style with text attributes
type Style struct {
	Color theme.ColorStyle
	Attr  terminal.Attr
}

// ColorOnly wraps a color style with no attributes
func ColorOnly(c theme.ColorStyle) Style {
	return Style{Color: c}
}

// MergeStyle layers b over a: colors merge right-biased, attributes accumulate
func MergeStyle(a, b Style) Style {
	return Style{
		Color: theme.MergeStyles(a.Color, b.Color),
		Attr:  (a.Attr | b.Attr) & terminal.AttrStyle,
	}
}
