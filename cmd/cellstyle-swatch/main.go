// Command cellstyle-swatch prints a palette's roles, the preset styles resolved
// against it, and a rendered dialog preview to stdout.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/lixenwraith/cellstyle/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cellstyle-swatch"})

	if err := config.LoadEnv(); err != nil {
		logger.Fatal("environment", "err", err)
	}

	opts := config.Bind(flag.CommandLine)
	noColor := flag.Bool("no-color", false, "print text only, also honored via NO_COLOR")
	preview := flag.Bool("preview", true, "render a sample dialog below the swatch")
	flag.Parse()

	mode, err := opts.ColorMode()
	if err != nil {
		logger.Fatal("color mode", "err", err)
	}
	th, err := opts.Theme()
	if err != nil {
		logger.Fatal("theme", "err", err)
	}

	if *noColor {
		color.NoColor = true
	}

	s := swatch{
		theme:   th,
		name:    opts.Palette,
		mode:    mode,
		rich:    !color.NoColor,
		preview: *preview,
	}
	if err := s.write(os.Stdout); err != nil {
		logger.Fatal("write", "err", err)
	}
}
