package tui

import (
	"testing"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

func TestSliderState(t *testing.T) {
	s := NewSliderState(15, 7)
	if s.Value != 7 {
		t.Fatalf("Expected initial value 7, got %d", s.Value)
	}

	tests := []struct {
		name    string
		op      func() bool
		want    int
		changed bool
	}{
		{"Inc", s.Inc, 8, true},
		{"Dec", s.Dec, 7, true},
		{"Set above range", func() bool { return s.Set(99) }, 14, true},
		{"Inc at max", s.Inc, 14, false},
		{"Set below range", func() bool { return s.Set(-3) }, 0, true},
		{"Dec at min", s.Dec, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := tt.op()
			if s.Value != tt.want || changed != tt.changed {
				t.Errorf("Expected value %d changed=%v, got %d changed=%v", tt.want, tt.changed, s.Value, changed)
			}
		})
	}
}

func TestSliderDraw(t *testing.T) {
	const w = 6
	cells, root := newTestPrinter(w, 1)
	palette := root.Theme().Palette

	view := root.WithColor(theme.PrimaryStyle())
	view.Slider(0, 0, NewSliderState(5, 2))

	for x := 0; x < 5; x++ {
		want := '-'
		if x == 2 {
			want = ' '
		}
		if cells[x].Rune != want {
			t.Errorf("Expected %q at %d, got %q", want, x, cells[x].Rune)
		}
	}

	knob := theme.PairFromCell(cells[2])
	if knob.Back != palette.Lookup(theme.Highlight) {
		t.Errorf("Expected focused knob on highlight, got %v", knob)
	}

	view.Focused(false).Slider(0, 0, NewSliderState(5, 2))
	knob = theme.PairFromCell(cells[2])
	if knob.Back != palette.Lookup(theme.HighlightInactive) {
		t.Errorf("Expected unfocused knob on highlight_inactive, got %v", knob)
	}
}

func TestDialogSize(t *testing.T) {
	w, h := DialogSize(15, 1, DialogOpts{Title: "[ 7 ]"})
	if w != 19 || h != 5 {
		t.Errorf("Expected 19x5, got %dx%d", w, h)
	}

	w, h = DialogSize(4, 1, DialogOpts{Buttons: []string{"Ok", "Cancel"}})
	// "<Ok>  <Cancel>" is 14 wide, plus frame and padding
	if w != 18 || h != 7 {
		t.Errorf("Expected 18x7, got %dx%d", w, h)
	}
}

func TestDialogDraw(t *testing.T) {
	const w, h = 24, 10
	cells, root := newTestPrinter(w, h)
	palette := root.Theme().Palette

	opts := DialogOpts{Title: "Hi", Buttons: []string{"Ok"}, FocusButton: 0}
	dw, dh := DialogSize(10, 1, opts)
	content := root.Dialog(1, 1, dw, dh, opts)

	if content.IsFocused() {
		t.Error("Expected content unfocused while a button has focus")
	}
	if cw, ch := content.Size(); cw != dw-4 || ch != 1 {
		t.Errorf("Expected content %dx1, got %dx%d", dw-4, cw, ch)
	}

	// Frame corner and title
	if cells[1*w+1].Rune != '┌' {
		t.Errorf("Expected frame corner, got %q", cells[1*w+1].Rune)
	}
	titleX := 1 + (dw-2)/2
	if cells[1*w+titleX].Rune != 'H' {
		t.Errorf("Expected title at column %d, got %q", titleX, cells[1*w+titleX].Rune)
	}
	title := theme.PairFromCell(cells[1*w+titleX])
	if title.Front != palette.Lookup(theme.TitlePrimary) || title.Back != palette.Lookup(theme.View) {
		t.Errorf("Expected title_primary over view, got %v", title)
	}
	if cells[1*w+titleX].Attrs&terminal.AttrBold == 0 {
		t.Error("Expected bold title")
	}
	if cells[1*w+1].Attrs&terminal.AttrBold != 0 {
		t.Error("Expected frame without bold")
	}

	// Focused button drawn with highlight
	by := 1 + dh - 2
	bx := 1 + dw - 2 - Width("<Ok>")
	if cells[by*w+bx].Rune != '<' {
		t.Fatalf("Expected button at (%d,%d), got %q", bx, by, cells[by*w+bx].Rune)
	}
	btn := theme.PairFromCell(cells[by*w+bx])
	if btn.Back != palette.Lookup(theme.Highlight) {
		t.Errorf("Expected focused button on highlight, got %v", btn)
	}

	// Shadow right of the frame
	shadow := theme.PairFromCell(cells[2*w+1+dw])
	if shadow.Back != palette.Lookup(theme.Shadow) {
		t.Errorf("Expected shadow at right edge, got %v", shadow)
	}

	if n := content.TextBlock("Lucky number 7!"); n != 1 {
		t.Errorf("Expected one line of text, got %d", n)
	}
}

func TestDialogStyleOverride(t *testing.T) {
	const w, h = 24, 10
	cells, root := newTestPrinter(w, h)
	palette := root.Theme().Palette

	opts := DialogOpts{
		Title:       "Hi",
		FocusButton: -1,
		Style: DialogStyle{
			Frame: ColorOnly(theme.Front(theme.Tertiary)),
			Title: Style{Attr: terminal.AttrUnderline},
		},
	}
	dw, _ := DialogSize(10, 1, opts)
	root.Dialog(1, 1, dw, 5, opts)

	// Frame front overridden, back still inherited from the default primary style
	frame := theme.PairFromCell(cells[1*w+1])
	if frame.Front != palette.Lookup(theme.Tertiary) || frame.Back != palette.Lookup(theme.View) {
		t.Errorf("Expected tertiary frame over view, got %v", frame)
	}

	tc := cells[1*w+1+(dw-2)/2]
	if tc.Rune != 'H' {
		t.Fatalf("Expected title, got %q", tc.Rune)
	}
	if theme.PairFromCell(tc).Front != palette.Lookup(theme.TitlePrimary) {
		t.Errorf("Expected title color kept, got %v", theme.PairFromCell(tc))
	}
	if tc.Attrs&terminal.AttrBold == 0 || tc.Attrs&terminal.AttrUnderline == 0 {
		t.Errorf("Expected bold and underline title, got %b", tc.Attrs)
	}
}

func TestDialogButtonFocus(t *testing.T) {
	tests := []struct {
		name         string
		focus        int
		wantContent  bool
		wantSelected bool
	}{
		{"Zero value focuses first button", 0, false, true},
		{"Content focus", -1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const w, h = 24, 10
			cells, root := newTestPrinter(w, h)
			palette := root.Theme().Palette

			opts := DialogOpts{Buttons: []string{"Ok"}, FocusButton: tt.focus}
			dw, dh := DialogSize(10, 1, opts)
			content := root.Dialog(0, 0, dw, dh, opts)

			if content.IsFocused() != tt.wantContent {
				t.Errorf("Expected content focused %v", tt.wantContent)
			}
			bx := dw - 2 - Width("<Ok>")
			btn := theme.PairFromCell(cells[(dh-2)*w+bx])
			if selected := btn.Back == palette.Lookup(theme.Highlight); selected != tt.wantSelected {
				t.Errorf("Expected button selected %v, got %v", tt.wantSelected, btn)
			}
		})
	}
}
