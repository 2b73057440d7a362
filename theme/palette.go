package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRole is returned when a palette role name is not recognized
	ErrUnknownRole = errors.New("unknown palette role")
	// ErrUnknownPalette is returned by PaletteByName for names it does not know
	ErrUnknownPalette = errors.New("unknown palette")
)

// PaletteColor is a symbolic color role, used as a key into a Palette
type PaletteColor uint8

const (
	Background        PaletteColor = iota // application background, where no view is present
	Shadow                                // view shadows
	View                                  // view background
	Primary                               // main text
	Secondary                             // secondary text
	Tertiary                              // tertiary text
	TitlePrimary                          // title text
	TitleSecondary                        // alternative title text
	Highlight                             // highlighted background
	HighlightInactive                     // highlight for unfocused views
	HighlightText                         // text over a highlight

	paletteColorCount
)

// PaletteColors lists every role in declaration order
var PaletteColors = [paletteColorCount]PaletteColor{
	Background, Shadow, View, Primary, Secondary, Tertiary,
	TitlePrimary, TitleSecondary, Highlight, HighlightInactive, HighlightText,
}

var paletteColorNames = [paletteColorCount]string{
	Background:        "background",
	Shadow:            "shadow",
	View:              "view",
	Primary:           "primary",
	Secondary:         "secondary",
	Tertiary:          "tertiary",
	TitlePrimary:      "title_primary",
	TitleSecondary:    "title_secondary",
	Highlight:         "highlight",
	HighlightInactive: "highlight_inactive",
	HighlightText:     "highlight_text",
}

// String returns the snake_case role name
func (p PaletteColor) String() string {
	if p < paletteColorCount {
		return paletteColorNames[p]
	}
	return fmt.Sprintf("PaletteColor(%d)", uint8(p))
}

// ParsePaletteColor maps a snake_case role name to its PaletteColor
func ParsePaletteColor(s string) (PaletteColor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range paletteColorNames {
		if n == name {
			return PaletteColor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Resolve looks the role up in the palette
func (p PaletteColor) Resolve(palette Palette) Color {
	return palette.Lookup(p)
}

// AsColorType uses the role as a palette indirection
func (p PaletteColor) AsColorType() ColorType {
	return FromPalette(p)
}

// Palette maps every PaletteColor to a Color
// It is a value type: With returns a modified copy, so a palette handed to a draw pass never changes under it
type Palette struct {
	colors [paletteColorCount]Color
}

// Lookup returns the color assigned to role
// Every role in PaletteColors has a slot; values outside the role set panic
func (p Palette) Lookup(role PaletteColor) Color {
	return p.colors[role]
}

// With returns a copy of p with role set to c
func (p Palette) With(role PaletteColor, c Color) Palette {
	p.colors[role] = c
	return p
}

// WithAll returns a copy of p with every entry of overrides applied
func (p Palette) WithAll(overrides map[PaletteColor]Color) Palette {
	for role, c := range overrides {
		p.colors[role] = c
	}
	return p
}

// DefaultPalette returns the toolkit's stock palette
func DefaultPalette() Palette {
	var p Palette
	p.colors = [paletteColorCount]Color{
		Background:        Dark(Blue),
		Shadow:            Dark(Black),
		View:              Dark(White),
		Primary:           Dark(Black),
		Secondary:         Dark(Blue),
		Tertiary:          Light(White),
		TitlePrimary:      Dark(Red),
		TitleSecondary:    Dark(Yellow),
		Highlight:         Dark(Red),
		HighlightInactive: Dark(Blue),
		HighlightText:     Dark(White),
	}
	return p
}

// DuskPalette returns a 24-bit dark palette; the inactive highlight is derived by blending
func DuskPalette() Palette {
	view := RGB(26, 27, 38)
	highlight := RGB(122, 162, 247)
	return DefaultPalette().WithAll(map[PaletteColor]Color{
		Background:        RGB(20, 20, 30),
		Shadow:            RGB(5, 5, 5),
		View:              view,
		Primary:           RGB(200, 200, 200),
		Secondary:         RGB(100, 180, 200),
		Tertiary:          RGB(140, 140, 140),
		TitlePrimary:      RGB(255, 180, 100),
		TitleSecondary:    RGB(180, 140, 220),
		Highlight:         highlight,
		HighlightInactive: Blend(highlight, view, 0.6),
		HighlightText:     RGB(20, 20, 30),
	})
}

// MonoPalette returns a palette that leaves text and backgrounds to the terminal
func MonoPalette() Palette {
	var p Palette
	for _, role := range PaletteColors {
		p.colors[role] = TerminalDefault
	}
	return p.WithAll(map[PaletteColor]Color{
		Shadow:            Dark(Black),
		Highlight:         Dark(White),
		HighlightInactive: Light(Black),
		HighlightText:     Dark(Black),
	})
}

// PaletteByName returns one of the built-in palettes: default, dusk or mono
func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultPalette(), nil
	case "dusk":
		return DuskPalette(), nil
	case "mono":
		return MonoPalette(), nil
	}
	return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}
