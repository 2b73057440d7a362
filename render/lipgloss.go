package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

// LipglossColor converts a resolved color to a lipgloss.TerminalColor
// TerminalDefault becomes lipgloss.NoColor, base and low-res colors ANSI indices, RGB a hex string
func LipglossColor(c theme.Color) lipgloss.TerminalColor {
	if c.IsTerminalDefault() {
		return lipgloss.NoColor{}
	}
	if base, light, ok := c.Base(); ok {
		idx := int(base)
		if light {
			idx += 8
		}
		return lipgloss.Color(strconv.Itoa(idx))
	}
	r, g, b := c.Components()
	if c.IsLowRes() {
		return lipgloss.Color(strconv.Itoa(int(terminal.CubeIndex(r, g, b))))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// LipglossStyle builds a lipgloss style painting text with p and attributes a
func LipglossStyle(p theme.ColorPair, a terminal.Attr) lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(LipglossColor(p.Front)).
		Background(LipglossColor(p.Back))

	if a&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&terminal.AttrDim != 0 {
		st = st.Faint(true)
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
