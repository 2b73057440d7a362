package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns display width in cells (wide runes count 2)
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth cells
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadCenter centers string within width
func PadCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// WrapText wraps text at word boundaries to fit width
// Words wider than width are split; returns at least one line
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		wordW := runewidth.StringWidth(word)

		if lineW > 0 && lineW+1+wordW > width {
			flush()
		}

		for wordW > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			if lineW > 0 {
				flush()
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			wordW = runewidth.StringWidth(word)
		}

		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += wordW
	}

	if lineW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
