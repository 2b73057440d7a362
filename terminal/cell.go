package terminal

// Attr represents text attributes (bitmask)
type Attr uint16

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrFg256     Attr = 1 << 6 // Fg.R is 256-color palette index
	AttrBg256     Attr = 1 << 7 // Bg.R is 256-color palette index
	AttrFgDefault Attr = 1 << 8 // Fg is the terminal default, RGB ignored
	AttrBgDefault Attr = 1 << 9 // Bg is the terminal default, RGB ignored
)

// AttrStyle masks only the style bits (excludes color mode flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// AttrFgMask masks the bits describing how Fg is encoded
const AttrFgMask Attr = AttrFg256 | AttrFgDefault

// AttrBgMask masks the bits describing how Bg is encoded
const AttrBgMask Attr = AttrBg256 | AttrBgDefault

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// FgIndex returns the palette index held in Fg, ok is false unless AttrFg256 is set
func (c Cell) FgIndex() (uint8, bool) {
	if c.Attrs&AttrFg256 == 0 {
		return 0, false
	}
	return c.Fg.R, true
}

// BgIndex returns the palette index held in Bg, ok is false unless AttrBg256 is set
func (c Cell) BgIndex() (uint8, bool) {
	if c.Attrs&AttrBg256 == 0 {
		return 0, false
	}
	return c.Bg.R, true
}

// Downgrade re-encodes 24-bit channels for a terminal with fewer colors
// Default and indexed channels are left as-is except indices above 15 in ColorMode16
func (c Cell) Downgrade(mode ColorMode) Cell {
	if mode == ColorModeTrueColor {
		return c
	}
	c.Fg, c.Attrs = downgradeChannel(c.Fg, c.Attrs, AttrFg256, AttrFgDefault, mode)
	c.Bg, c.Attrs = downgradeChannel(c.Bg, c.Attrs, AttrBg256, AttrBgDefault, mode)
	return c
}

func downgradeChannel(rgb RGB, attrs, indexed, def Attr, mode ColorMode) (RGB, Attr) {
	if attrs&def != 0 {
		return rgb, attrs
	}
	if attrs&indexed != 0 {
		if mode == ColorMode16 && rgb.R > 15 {
			return RGB{R: Nearest16(Palette256(rgb.R))}, attrs
		}
		return rgb, attrs
	}
	if mode == ColorMode16 {
		return RGB{R: Nearest16(rgb)}, attrs | indexed
	}
	return RGB{R: RGBTo256(rgb)}, attrs | indexed
}
