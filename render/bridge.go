package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

// TcellColor converts a resolved color to tcell.Color
// TerminalDefault maps to tcell.ColorDefault, base and low-res colors to palette indices
func TcellColor(c theme.Color) tcell.Color {
	if c.IsTerminalDefault() {
		return tcell.ColorDefault
	}
	if base, light, ok := c.Base(); ok {
		idx := int(base)
		if light {
			idx += 8
		}
		return tcell.PaletteColor(idx)
	}
	r, g, b := c.Components()
	if c.IsLowRes() {
		return tcell.PaletteColor(int(terminal.CubeIndex(r, g, b)))
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TcellPairStyle converts a resolved pair to a tcell.Style with no attributes
func TcellPairStyle(p theme.ColorPair) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(p.Front)).Background(TcellColor(p.Back))
}

// channelColor decodes one cell channel as stored by theme.ColorPair.Apply
func channelColor(rgb terminal.RGB, attrs, indexed, def terminal.Attr) tcell.Color {
	switch {
	case attrs&def != 0:
		return tcell.ColorDefault
	case attrs&indexed != 0:
		return tcell.PaletteColor(int(rgb.R))
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// CellStyle converts a buffer cell's colors and attributes to a tcell.Style
func CellStyle(c terminal.Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(channelColor(c.Fg, c.Attrs, terminal.AttrFg256, terminal.AttrFgDefault)).
		Background(channelColor(c.Bg, c.Attrs, terminal.AttrBg256, terminal.AttrBgDefault))

	a := c.Attrs
	if a&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&terminal.AttrDim != 0 {
		st = st.Dim(true)
	}
	if a&terminal.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if a&terminal.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if a&terminal.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if a&terminal.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
