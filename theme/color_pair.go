package theme

import "github.com/lixenwraith/cellstyle/terminal"

// ColorPair is a resolved front/back pair, ready for display
type ColorPair struct {
	Front Color
	Back  Color
}

// TerminalDefaultPair leaves both channels to the terminal
var TerminalDefaultPair = ColorPair{Front: TerminalDefault, Back: TerminalDefault}

// NewColorPair builds a pair from two colors
func NewColorPair(front, back Color) ColorPair {
	return ColorPair{Front: front, Back: back}
}

// Invert swaps front and back
func (p ColorPair) Invert() ColorPair {
	return ColorPair{Front: p.Back, Back: p.Front}
}

// Apply writes p into the color channels of cell, replacing any previous color encoding
// Base and low-res colors become palette indices (AttrFg256/AttrBg256), TerminalDefault sets AttrFgDefault/AttrBgDefault
func (p ColorPair) Apply(cell terminal.Cell) terminal.Cell {
	fg, fgAttr := p.Front.channel(terminal.AttrFg256, terminal.AttrFgDefault)
	bg, bgAttr := p.Back.channel(terminal.AttrBg256, terminal.AttrBgDefault)
	cell.Fg = fg
	cell.Bg = bg
	cell.Attrs = cell.Attrs&^(terminal.AttrFgMask|terminal.AttrBgMask) | fgAttr | bgAttr
	return cell
}

// PairFromCell recovers the pair encoded in cell by Apply
// Indices 16-255 without a cube origin come back as their xterm RGB value
func PairFromCell(cell terminal.Cell) ColorPair {
	return ColorPair{
		Front: fromChannel(cell.Fg, cell.Attrs, terminal.AttrFg256, terminal.AttrFgDefault),
		Back:  fromChannel(cell.Bg, cell.Attrs, terminal.AttrBg256, terminal.AttrBgDefault),
	}
}

func fromChannel(rgb terminal.RGB, attrs, indexed, def terminal.Attr) Color {
	switch {
	case attrs&def != 0:
		return TerminalDefault
	case attrs&indexed == 0:
		return FromTerminalRGB(rgb)
	}
	idx := rgb.R
	switch {
	case idx < 8:
		return Dark(BaseColor(idx))
	case idx < 16:
		return Light(BaseColor(idx - 8))
	case idx < 232:
		i := idx - 16
		return RGBLowRes(i/36, (i/6)%6, i%6)
	}
	return FromTerminalRGB(terminal.Palette256(idx))
}

// String describes both colors
func (p ColorPair) String() string {
	return "{front: " + p.Front.String() + ", back: " + p.Back.String() + "}"
}
