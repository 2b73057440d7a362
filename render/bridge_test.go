package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/theme"
)

func TestTcellColor(t *testing.T) {
	tests := []struct {
		name string
		c    theme.Color
		want tcell.Color
	}{
		{"Terminal default", theme.TerminalDefault, tcell.ColorDefault},
		{"Dark red", theme.Dark(theme.Red), tcell.PaletteColor(1)},
		{"Light blue", theme.Light(theme.Blue), tcell.PaletteColor(12)},
		{"Low res", theme.RGBLowRes(5, 0, 0), tcell.PaletteColor(196)},
		{"RGB", theme.RGB(10, 20, 30), tcell.NewRGBColor(10, 20, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TcellColor(tt.c); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCellStyleMatchesPairStyle(t *testing.T) {
	pairs := []theme.ColorPair{
		theme.TerminalDefaultPair,
		theme.NewColorPair(theme.Dark(theme.Black), theme.Light(theme.White)),
		theme.NewColorPair(theme.RGB(1, 2, 3), theme.RGBLowRes(1, 2, 3)),
	}
	for _, p := range pairs {
		cell := p.Apply(terminal.Cell{Rune: 'x'})
		if got, want := CellStyle(cell), TcellPairStyle(p); got != want {
			t.Errorf("pair %v: expected %v, got %v", p, want, got)
		}
	}
}

func TestCellStyleAttributes(t *testing.T) {
	cell := theme.TerminalDefaultPair.Apply(terminal.Cell{Attrs: terminal.AttrBold | terminal.AttrReverse})
	want := tcell.StyleDefault.
		Foreground(tcell.ColorDefault).
		Background(tcell.ColorDefault).
		Bold(true).
		Reverse(true)
	if got := CellStyle(cell); got != want {
		t.Errorf("Expected bold reverse style, got %v", got)
	}
}

type recordedCell struct {
	ch    rune
	style tcell.Style
}

type fakeScreen struct {
	cells map[[2]int]recordedCell
}

func (f *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = recordedCell{ch: primary, style: style}
}

func TestFlush(t *testing.T) {
	const w, h = 4, 2
	cells := make([]terminal.Cell, w*h)
	pair := theme.NewColorPair(theme.Dark(theme.White), theme.Dark(theme.Blue))
	cells[0] = pair.Apply(terminal.Cell{Rune: '世'})
	cells[1] = pair.Apply(terminal.Cell{Rune: 0})
	cells[2] = pair.Apply(terminal.Cell{Rune: 'a'})

	screen := &fakeScreen{cells: make(map[[2]int]recordedCell)}
	Flush(screen, cells, w, h)

	if _, ok := screen.cells[[2]int{1, 0}]; ok {
		t.Error("Expected wide rune continuation to be skipped")
	}
	if got := screen.cells[[2]int{0, 0}]; got.ch != '世' || got.style != TcellPairStyle(pair) {
		t.Errorf("Expected wide rune with pair style, got %q %v", got.ch, got.style)
	}
	if got := screen.cells[[2]int{2, 0}]; got.ch != 'a' {
		t.Errorf("Expected 'a' at (2,0), got %q", got.ch)
	}
	if got := screen.cells[[2]int{3, 1}]; got.ch != ' ' {
		t.Errorf("Expected empty cell drawn as space, got %q", got.ch)
	}
	if len(screen.cells) != w*h-1 {
		t.Errorf("Expected %d cells written, got %d", w*h-1, len(screen.cells))
	}
}

func TestDowngrade(t *testing.T) {
	cells := []terminal.Cell{
		theme.NewColorPair(theme.RGB(255, 0, 0), theme.TerminalDefault).Apply(terminal.Cell{}),
	}
	Downgrade(cells, terminal.ColorMode256)
	if idx, ok := cells[0].FgIndex(); !ok || idx != 196 {
		t.Errorf("Expected fg index 196, got %d (ok=%v)", idx, ok)
	}
	if cells[0].Attrs&terminal.AttrBgDefault == 0 {
		t.Error("Expected default background preserved")
	}
}

func TestLipglossColor(t *testing.T) {
	tests := []struct {
		name string
		c    theme.Color
		want lipgloss.TerminalColor
	}{
		{"Terminal default", theme.TerminalDefault, lipgloss.NoColor{}},
		{"Dark green", theme.Dark(theme.Green), lipgloss.Color("2")},
		{"Light white", theme.Light(theme.White), lipgloss.Color("15")},
		{"Low res", theme.RGBLowRes(0, 0, 5), lipgloss.Color("21")},
		{"RGB", theme.RGB(255, 128, 0), lipgloss.Color("#ff8000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LipglossColor(tt.c); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLipglossStyle(t *testing.T) {
	pair := theme.NewColorPair(theme.Dark(theme.White), theme.Dark(theme.Red))
	st := LipglossStyle(pair, terminal.AttrBold)

	if st.GetForeground() != lipgloss.Color("7") {
		t.Errorf("Expected foreground 7, got %v", st.GetForeground())
	}
	if st.GetBackground() != lipgloss.Color("1") {
		t.Errorf("Expected background 1, got %v", st.GetBackground())
	}
	if !st.GetBold() || st.GetItalic() {
		t.Error("Expected bold only")
	}
}
