package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellstyle/terminal"
)

// ContentSetter is the part of tcell.Screen Flush writes through
type ContentSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Flush copies a row-major cell buffer onto a screen
// Cells after a wide rune are skipped; other zero runes are drawn as spaces
// Callers still call screen.Show
func Flush(screen ContentSetter, cells []terminal.Cell, width, height int) {
	if width <= 0 {
		return
	}
	for y := 0; y < height; y++ {
		row := y * width
		if row >= len(cells) {
			return
		}
		skip := false
		for x := 0; x < width && row+x < len(cells); x++ {
			c := cells[row+x]
			if skip {
				skip = false
				if c.Rune == 0 {
					continue
				}
			}
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, CellStyle(c))
			if runewidth.RuneWidth(ch) == 2 {
				skip = true
			}
		}
	}
}

// Downgrade re-encodes a cell buffer in place for a terminal with fewer colors
func Downgrade(cells []terminal.Cell, mode terminal.ColorMode) {
	if mode == terminal.ColorModeTrueColor {
		return
	}
	for i := range cells {
		cells[i] = cells[i].Downgrade(mode)
	}
}
