package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellstyle/render"
	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/terminal/tui"
	"github.com/lixenwraith/cellstyle/theme"
)

const (
	sliderSteps   = 15
	sliderInitial = 7
)

// display is the part of tcell.Screen the app draws to
type display interface {
	render.ContentSetter
	SetStyle(style tcell.Style)
	Size() (width, height int)
	Show()
}

// action is a key press translated to what the app does with it
type action uint8

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionSelect
	actionFocus
	actionPalette
	actionQuit
)

// namedPalette pairs a palette with the label shown in the status line
type namedPalette struct {
	name    string
	palette theme.Palette
}

type app struct {
	screen display
	theme  tui.Theme
	mode   terminal.ColorMode
	cells  []terminal.Cell

	palettes   []namedPalette
	paletteIdx int

	slider  *tui.SliderState
	moved   bool // dialog stays untitled until the first move
	focused bool
	result  bool // showing the lucky number dialog

	sound *sound
}

func newApp(screen display, th tui.Theme, paletteName string, mode terminal.ColorMode, snd *sound) *app {
	palettes := []namedPalette{{name: paletteName, palette: th.Palette}}
	for _, name := range []string{"default", "dusk", "mono"} {
		if name == paletteName {
			continue
		}
		p, _ := theme.PaletteByName(name)
		palettes = append(palettes, namedPalette{name: name, palette: p})
	}

	return &app{
		screen:   screen,
		theme:    th,
		mode:     mode,
		palettes: palettes,
		slider:   tui.NewSliderState(sliderSteps, sliderInitial),
		focused:  true,
		sound:    snd,
	}
}

// keyAction maps a tcell key to an action
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEnter:
		return actionSelect
	case tcell.KeyTab, tcell.KeyBacktab:
		return actionFocus
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return actionLeft
		case 'l':
			return actionRight
		case ' ':
			return actionSelect
		case 'p':
			return actionPalette
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// apply updates state for an action, returns false when the app should exit
func (a *app) apply(act action) bool {
	switch act {
	case actionQuit:
		return false
	case actionFocus:
		a.focused = !a.focused
	case actionPalette:
		a.paletteIdx = (a.paletteIdx + 1) % len(a.palettes)
		a.theme = a.theme.WithPalette(a.palettes[a.paletteIdx].palette)
	case actionLeft, actionRight:
		if a.result || !a.focused {
			return true
		}
		var changed bool
		if act == actionLeft {
			changed = a.slider.Dec()
		} else {
			changed = a.slider.Inc()
		}
		if changed {
			a.moved = true
			a.sound.tick(a.slider.Value)
		}
	case actionSelect:
		if !a.focused {
			return true
		}
		if a.result {
			// Ok
			return false
		}
		a.result = true
	}
	return true
}

// draw renders the current state and shows it
func (a *app) draw() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if len(a.cells) != w*h {
		a.cells = make([]terminal.Cell, w*h)
	}

	root := tui.NewPrinter(tui.NewRegion(a.cells, w, 0, 0, w, h), a.theme).Focused(a.focused)
	bg := root.WithColor(theme.BackgroundStyle())
	bg.Clear()
	// Cells tcell clears on resize match the background until the next frame
	a.screen.SetStyle(render.TcellPairStyle(bg.Pair()))

	if a.result {
		a.drawResult(root, w, h)
	} else {
		a.drawSlider(root, w, h)
	}
	a.drawStatus(root, w, h)

	render.Downgrade(a.cells, a.mode)
	render.Flush(a.screen, a.cells, w, h)
	a.screen.Show()
}

func (a *app) drawSlider(root tui.Printer, w, h int) {
	opts := tui.DialogOpts{FocusButton: -1}
	if a.moved {
		opts.Title = sliderTitle(a.slider.Value)
	}
	dw, dh := tui.DialogSize(a.slider.Steps, 1, opts)
	content := root.Dialog((w-dw)/2, (h-dh)/2, dw, dh, opts)
	content.Slider(0, 0, a.slider)
}

func (a *app) drawResult(root tui.Printer, w, h int) {
	msg := resultText(a.slider.Value)
	opts := tui.DialogOpts{
		Buttons:     []string{"Ok"},
		FocusButton: 0,
	}
	dw, dh := tui.DialogSize(tui.Width(msg), 1, opts)
	content := root.Dialog((w-dw)/2, (h-dh)/2, dw, dh, opts)
	content.PrintCenter(0, msg)
}

func (a *app) drawStatus(root tui.Printer, w, h int) {
	status := fmt.Sprintf(" palette: %s  colors: %s  left/right move  enter select  tab focus  p palette  q quit",
		a.palettes[a.paletteIdx].name, a.mode)
	bar := root.Sub(0, h-1, w, 1).WithColor(theme.SecondaryStyle())
	bar.Clear()
	bar.Print(0, 0, tui.Truncate(status, w))
}

func sliderTitle(v int) string {
	return fmt.Sprintf("[ %d ]", v)
}

func resultText(v int) string {
	return fmt.Sprintf("Lucky number %d!", v)
}

// tickFrequency maps a slider value to a pitch, one semitone per step above A4
func tickFrequency(v int) float64 {
	return 440 * math.Pow(2, float64(v)/12)
}
