package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

// Printer draws into a Region with the colors currently in effect
//
// Printers are values: WithColor and friends return a derived printer whose
// pair is the requested style resolved against the parent's pair, so nested
// views inherit whatever channels they do not set. Resolving step by step
// gives the same pair as resolving the merged style once.
type Printer struct {
	region  Region
	theme   Theme
	pair    theme.ColorPair
	attr    terminal.Attr
	focused bool
}

// NewPrinter creates a root printer; colors start at the terminal default
func NewPrinter(r Region, th Theme) Printer {
	return Printer{
		region:  r,
		theme:   th,
		pair:    theme.TerminalDefaultPair,
		focused: true,
	}
}

// Region returns the area this printer draws into
func (p Printer) Region() Region {
	return p.region
}

// Theme returns the theme in use
func (p Printer) Theme() Theme {
	return p.theme
}

// Pair returns the colors currently in effect
func (p Printer) Pair() theme.ColorPair {
	return p.pair
}

// Attr returns the attributes currently in effect
func (p Printer) Attr() terminal.Attr {
	return p.attr
}

// Size returns the drawable width and height
func (p Printer) Size() (w, h int) {
	return p.region.W, p.region.H
}

// IsFocused reports whether the view being drawn has focus
func (p Printer) IsFocused() bool {
	return p.focused
}

// Focused returns a printer with the focus flag set to f
func (p Printer) Focused(f bool) Printer {
	p.focused = f
	return p
}

// Sub returns a printer clipped to a sub-area, colors carry over
func (p Printer) Sub(x, y, w, h int) Printer {
	p.region = p.region.Sub(x, y, w, h)
	return p
}

// Inset returns a printer shrunk by n cells on all sides
func (p Printer) Inset(n int) Printer {
	p.region = p.region.Inset(n)
	return p
}

// WithColor resolves s against the current pair
func (p Printer) WithColor(s theme.ColorStyle) Printer {
	p.pair = s.Resolve(p.theme.Palette, p.pair)
	return p
}

// WithStyles folds overrides in order, later ones winning, then resolves once
func (p Printer) WithStyles(styles ...theme.ColorStyle) Printer {
	return p.WithColor(theme.MergeAll(styles...))
}

// WithEffect adds text attributes
func (p Printer) WithEffect(a terminal.Attr) Printer {
	p.attr |= a & terminal.AttrStyle
	return p
}

// WithStyle applies both the color style and attributes of s
func (p Printer) WithStyle(s Style) Printer {
	return p.WithColor(s.Color).WithEffect(s.Attr)
}

// WithSelection picks the highlight style, dimmed when the printer is not focused
func (p Printer) WithSelection() Printer {
	if p.focused {
		return p.WithColor(theme.HighlightStyle())
	}
	return p.WithColor(theme.HighlightInactiveStyle())
}

func (p Printer) cell(ch rune) terminal.Cell {
	return p.pair.Apply(terminal.Cell{Rune: ch, Attrs: p.attr})
}

// Print writes s starting at (x, y), clipped to the region, returns cells advanced
// A wide rune takes two cells; the second holds rune 0 as a continuation marker
func (p Printer) Print(x, y int, s string) int {
	if y < 0 || y >= p.region.H {
		return 0
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > p.region.W {
			break
		}
		if col >= 0 {
			p.region.Put(col, y, p.cell(ch))
			if w == 2 {
				p.region.Put(col+1, y, p.cell(0))
			}
		}
		col += w
	}
	return col - x
}

// PrintCenter writes s centered on row y
func (p Printer) PrintCenter(y int, s string) {
	s = Truncate(s, p.region.W)
	p.Print((p.region.W-Width(s))/2, y, s)
}

// PrintHLine repeats ch n times rightward from (x, y)
func (p Printer) PrintHLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		p.region.Put(x+i, y, p.cell(ch))
	}
}

// PrintVLine repeats ch n times downward from (x, y)
func (p Printer) PrintVLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		p.region.Put(x, y+i, p.cell(ch))
	}
}

// Fill covers the whole region with ch
func (p Printer) Fill(ch rune) {
	for y := 0; y < p.region.H; y++ {
		p.PrintHLine(0, y, p.region.W, ch)
	}
}

// Clear fills the region with spaces in the current colors
func (p Printer) Clear() {
	p.Fill(' ')
}

// Box draws the theme border around the rectangle (x, y, w, h)
func (p Printer) Box(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	chars := boxChars[p.theme.Borders.valid()]

	p.region.Put(x, y, p.cell(chars[boxTL]))
	p.region.Put(x+w-1, y, p.cell(chars[boxTR]))
	p.region.Put(x, y+h-1, p.cell(chars[boxBL]))
	p.region.Put(x+w-1, y+h-1, p.cell(chars[boxBR]))

	p.PrintHLine(x+1, y, w-2, chars[boxH])
	p.PrintHLine(x+1, y+h-1, w-2, chars[boxH])
	p.PrintVLine(x, y+1, h-2, chars[boxV])
	p.PrintVLine(x+w-1, y+1, h-2, chars[boxV])
}

// Shadow paints the one-cell drop shadow of the rectangle (x, y, w, h) when the theme enables it
// The shadow occupies column x+w and row y+h, offset by one cell
func (p Printer) Shadow(x, y, w, h int) {
	if !p.theme.Shadow || w < 1 || h < 1 {
		return
	}
	sp := p.WithColor(theme.ShadowStyle())
	sp.PrintVLine(x+w, y+1, h, ' ')
	sp.PrintHLine(x+1, y+h, w, ' ')
}
