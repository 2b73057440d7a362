// Command cellstyle-demo shows a themed slider dialog in the terminal.
//
// Left/right move the slider and retitle the dialog, enter confirms and shows
// the chosen number, tab toggles focus, p cycles palettes, q or escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellstyle/config"
	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/terminal/tui"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the exit code so deferred cleanup runs before the process exits
func realMain(args []string) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "cellstyle-demo",
		ReportTimestamp: true,
	})

	if err := config.LoadEnv(); err != nil {
		logger.Error("environment", "err", err)
		return 1
	}

	set := flag.NewFlagSet("cellstyle-demo", flag.ContinueOnError)
	opts := config.Bind(set)
	withSound := set.Bool("sound", false, "play a tone when the slider moves")
	verbose := set.Bool("v", false, "log debug details on exit")
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	mode, err := opts.ColorMode()
	if err != nil {
		logger.Error("color mode", "err", err)
		return 2
	}
	th, err := opts.Theme()
	if err != nil {
		logger.Error("theme", "err", err)
		return 2
	}

	snd, soundErr := newSound(*withSound)
	defer snd.close()

	value, err := run(th, opts.Palette, mode, snd)
	if soundErr != nil {
		logger.Warn("sound disabled", "err", soundErr)
	}
	if err != nil {
		logger.Error("run", "err", err)
		return 1
	}

	logger.Debug("settings", "palette", opts.Palette, "colors", mode, "borders", opts.Borders)
	logger.Info("done", "value", value)
	return 0
}

// run owns the screen for the lifetime of the dialog and returns the final slider value
func run(th tui.Theme, paletteName string, mode terminal.ColorMode, snd *sound) (value int, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, err
	}
	if err := screen.Init(); err != nil {
		return 0, err
	}

	// Restore the terminal before a panic reaches the user
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	screen.HideCursor()
	a := newApp(screen, th, paletteName, mode, snd)

	for {
		a.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return a.slider.Value, nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !a.apply(keyAction(ev)) {
				return a.slider.Value, nil
			}
		}
	}
}
