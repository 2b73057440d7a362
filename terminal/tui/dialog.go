package tui

import (
	"strings"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

// DialogStyle maps dialog parts to requested styles
type DialogStyle struct {
	Frame   Style
	Title   Style
	Content Style
	Button  Style
}

// DefaultDialogStyle uses the palette roles: view background, primary frame, bold title_primary title
func DefaultDialogStyle() DialogStyle {
	return DialogStyle{
		Frame:   ColorOnly(theme.PrimaryStyle()),
		Title:   Style{Color: theme.TitlePrimaryStyle(), Attr: terminal.AttrBold},
		Content: ColorOnly(theme.PrimaryStyle()),
		Button:  ColorOnly(theme.PrimaryStyle()),
	}
}

// Merge layers each part of o over the matching part of d
// Inherited colors keep d's request; attributes only accumulate
func (d DialogStyle) Merge(o DialogStyle) DialogStyle {
	return DialogStyle{
		Frame:   MergeStyle(d.Frame, o.Frame),
		Title:   MergeStyle(d.Title, o.Title),
		Content: MergeStyle(d.Content, o.Content),
		Button:  MergeStyle(d.Button, o.Button),
	}
}

// DialogOpts configures a dialog frame
type DialogOpts struct {
	Title   string
	Buttons []string
	// FocusButton indexes Buttons; the zero value focuses the first button
	// Set -1 to leave focus on the content
	FocusButton int
	Style       DialogStyle // layered over DefaultDialogStyle
}

// DialogSize returns the outer size needed for content of the given size
// Frame takes 1 cell per side plus 1 cell padding; buttons add two rows
func DialogSize(contentW, contentH int, opts DialogOpts) (w, h int) {
	w = contentW + 4
	h = contentH + 4
	if len(opts.Buttons) > 0 {
		h += 2
		if bw := buttonRowWidth(opts.Buttons) + 4; bw > w {
			w = bw
		}
	}
	if tw := Width(opts.Title) + 6; tw > w {
		w = tw
	}
	return w, h
}

func buttonLabel(label string) string {
	return "<" + label + ">"
}

func buttonRowWidth(buttons []string) int {
	w := 0
	for i, b := range buttons {
		if i > 0 {
			w += 2
		}
		w += Width(buttonLabel(b))
	}
	return w
}

// Dialog draws a framed dialog at (x, y, w, h) with optional shadow, title and
// button row, and returns a printer for the content area
// Content is focused only when no button is
func (p Printer) Dialog(x, y, w, h int, opts DialogOpts) Printer {
	st := DefaultDialogStyle().Merge(opts.Style)

	p.Shadow(x, y, w, h)

	frame := p.WithStyle(st.Frame)
	frame.Sub(x, y, w, h).Clear()
	frame.Box(x, y, w, h)

	if opts.Title != "" && w > 6 {
		title := Truncate(opts.Title, w-6)
		tx := x + (w-Width(title))/2
		frame.WithStyle(st.Title).Print(tx, y, title)
	}

	contentH := h - 4
	if len(opts.Buttons) > 0 {
		contentH -= 2
		row := frame.WithStyle(st.Button)
		bx := x + w - 2 - buttonRowWidth(opts.Buttons)
		by := y + h - 2
		for i, b := range opts.Buttons {
			label := buttonLabel(b)
			bp := row
			if i == opts.FocusButton {
				bp = bp.WithSelection()
			}
			bx += bp.Print(bx, by, label) + 2
		}
	}

	content := p.WithStyle(st.Content).Sub(x+2, y+2, w-4, max(contentH, 0))
	return content.Focused(p.focused && (opts.FocusButton < 0 || len(opts.Buttons) == 0))
}

// TextBlock prints wrapped text from the top-left of the printer, returns lines used
func (p Printer) TextBlock(text string) int {
	w, h := p.Size()
	n := 0
	for _, para := range strings.Split(text, "\n") {
		for _, line := range WrapText(para, w) {
			if n >= h {
				return n
			}
			p.Print(0, n, line)
			n++
		}
	}
	return n
}
