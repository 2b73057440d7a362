package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lixenwraith/cellstyle/render"
	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/terminal/tui"
	"github.com/lixenwraith/cellstyle/theme"
)

const (
	nameWidth   = 20
	valueWidth  = 48
	sampleText  = " Sample "
	previewW    = 36
	previewH    = 9
	previewText = "Lucky number 7!"
)

var heading = color.New(color.FgHiWhite, color.Bold)

// namedStyle is a preset listed in the style table
type namedStyle struct {
	name  string
	style theme.ColorStyle
}

var presets = []namedStyle{
	{"terminal_default", theme.TerminalDefaultStyle()},
	{"background", theme.BackgroundStyle()},
	{"shadow", theme.ShadowStyle()},
	{"primary", theme.PrimaryStyle()},
	{"secondary", theme.SecondaryStyle()},
	{"tertiary", theme.TertiaryStyle()},
	{"title_primary", theme.TitlePrimaryStyle()},
	{"title_secondary", theme.TitleSecondaryStyle()},
	{"highlight", theme.HighlightStyle()},
	{"highlight_inactive", theme.HighlightInactiveStyle()},
}

type swatch struct {
	theme   tui.Theme
	name    string
	mode    terminal.ColorMode
	rich    bool // emit colors; false prints text only
	preview bool
}

func (s swatch) write(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, s.heading("Palette %s (%s colors)", s.name, s.mode))
	for _, role := range theme.PaletteColors {
		c := s.theme.Palette.Lookup(role)
		s.row(w, role.String(), c.String(), theme.NewColorPair(theme.TerminalDefault, c))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.heading("Styles"))
	for _, p := range presets {
		pair := p.style.Resolve(s.theme.Palette, theme.TerminalDefaultPair)
		s.row(w, p.name, p.style.String(), pair)
	}

	if s.preview {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.heading("Preview"))
		if err := w.Flush(); err != nil {
			return err
		}
		if err := s.writePreview(out); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (s swatch) heading(format string, a ...any) string {
	if !s.rich {
		return fmt.Sprintf(format, a...)
	}
	return heading.Sprintf(format, a...)
}

// row prints a name, a description and a sample painted with pair
func (s swatch) row(w io.Writer, name, desc string, pair theme.ColorPair) {
	sample := sampleText
	if s.rich {
		sample = render.LipglossStyle(pair, terminal.AttrNone).Render(sampleText)
	}
	fmt.Fprintf(w, "  %-*s %-*s %s\n", nameWidth, name, valueWidth, tui.Truncate(desc, valueWidth), sample)
}

// previewCells draws a sample dialog into a cell buffer
func (s swatch) previewCells() []terminal.Cell {
	cells := make([]terminal.Cell, previewW*previewH)
	root := tui.NewPrinter(tui.NewRegion(cells, previewW, 0, 0, previewW, previewH), s.theme)
	root.WithColor(theme.BackgroundStyle()).Clear()

	opts := tui.DialogOpts{
		Title:       "[ 7 ]",
		Buttons:     []string{"Ok", "Cancel"},
		FocusButton: 0,
	}
	dw, dh := tui.DialogSize(tui.Width(previewText), 2, opts)
	content := root.Dialog((previewW-dw-1)/2, 0, dw, dh, opts)
	content.TextBlock(previewText)
	content.Slider(0, 1, tui.NewSliderState(15, 7))
	return cells
}

func (s swatch) writePreview(out io.Writer) error {
	cells := s.previewCells()
	if s.rich {
		return terminal.WriteCells(out, cells, previewW, previewH, s.mode)
	}

	w := bufio.NewWriter(out)
	for y := 0; y < previewH; y++ {
		var line strings.Builder
		for _, c := range cells[y*previewW : (y+1)*previewW] {
			if c.Rune != 0 {
				line.WriteRune(c.Rune)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	return w.Flush()
}
