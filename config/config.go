// Package config loads command options from flags, the environment and .env files
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/cellstyle/terminal"
	"github.com/lixenwraith/cellstyle/terminal/tui"
	"github.com/lixenwraith/cellstyle/theme"
)

// Environment variables read as flag defaults
const (
	EnvColor   = "CELLSTYLE_COLOR"
	EnvPalette = "CELLSTYLE_PALETTE"
	EnvBorders = "CELLSTYLE_BORDERS"
	EnvShadow  = "CELLSTYLE_SHADOW"
)

var (
	ErrInvalidColorMode = errors.New("invalid color mode")
	ErrInvalidBorders   = errors.New("invalid border style")
)

// Options holds the raw option values shared by the commands
type Options struct {
	Color   string // auto, truecolor, 256 or 16
	Palette string // built-in palette name
	Borders string // single, double, rounded, heavy or none
	Shadow  bool
}

// LoadEnv reads .env files into the process environment without overriding set variables
// With no arguments ./.env is tried; a missing file is not an error
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Bind registers the shared flags on set, taking defaults from the environment
func Bind(set *flag.FlagSet) *Options {
	o := &Options{}
	set.StringVar(&o.Color, "color", envOr(EnvColor, "auto"), "color mode: auto, truecolor, 256, 16")
	set.StringVar(&o.Palette, "palette", envOr(EnvPalette, "default"), "palette: default, dusk, mono")
	set.StringVar(&o.Borders, "borders", envOr(EnvBorders, "single"), "border style: single, double, rounded, heavy, none")
	set.BoolVar(&o.Shadow, "shadow", envBool(EnvShadow, true), "draw dialog shadows")
	return o
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// ColorMode returns the requested mode, detecting it from the environment for "auto"
func (o *Options) ColorMode() (terminal.ColorMode, error) {
	v := strings.ToLower(strings.TrimSpace(o.Color))
	if v == "" || v == "auto" {
		return terminal.DetectColorMode(), nil
	}
	mode, ok := terminal.ParseColorMode(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorMode, o.Color)
	}
	return mode, nil
}

// Theme builds the drawing theme from the named palette, borders and shadow
func (o *Options) Theme() (tui.Theme, error) {
	p, err := theme.PaletteByName(o.Palette)
	if err != nil {
		return tui.Theme{}, err
	}

	borders, ok := tui.ParseLineType(o.Borders)
	if !ok {
		return tui.Theme{}, fmt.Errorf("%w: %q", ErrInvalidBorders, o.Borders)
	}

	return tui.Theme{Palette: p, Shadow: o.Shadow, Borders: borders}, nil
}
