package theme

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cellstyle/terminal"
)

var (
	// ErrInvalidColor is returned when a color description cannot be parsed
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownBaseColor is returned for a name outside the eight base colors
	ErrUnknownBaseColor = errors.New("unknown base color")
)

// BaseColor is one of the eight ANSI base colors
type BaseColor uint8

const (
	Black BaseColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var baseColorNames = [...]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// String returns the lowercase color name
func (b BaseColor) String() string {
	if int(b) < len(baseColorNames) {
		return baseColorNames[b]
	}
	return fmt.Sprintf("BaseColor(%d)", uint8(b))
}

// Dark returns the dark variant (ANSI 0-7)
func (b BaseColor) Dark() Color {
	return Color{kind: colorDark, r: uint8(b)}
}

// Light returns the light variant (ANSI 8-15)
func (b BaseColor) Light() Color {
	return Color{kind: colorLight, r: uint8(b)}
}

// AsColorType uses the dark variant as a direct color
func (b BaseColor) AsColorType() ColorType {
	return Direct(b.Dark())
}

// ParseBaseColor maps a color name to a BaseColor
func ParseBaseColor(s string) (BaseColor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range baseColorNames {
		if n == name {
			return BaseColor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBaseColor, s)
}

type colorKind uint8

const (
	colorTerminalDefault colorKind = iota
	colorDark
	colorLight
	colorRGB
	colorRGBLowRes
)

// Color is a concrete displayable color
// The zero value is TerminalDefault. Colors are comparable with ==
type Color struct {
	kind    colorKind
	r, g, b uint8 // base color index in r for dark/light, cube coordinates for low-res
}

// TerminalDefault is the color the terminal used before the application started
var TerminalDefault = Color{}

// Dark returns the dark variant of a base color
func Dark(b BaseColor) Color {
	return b.Dark()
}

// Light returns the light variant of a base color
func Light(b BaseColor) Color {
	return b.Light()
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// FromTerminalRGB wraps a terminal.RGB as a 24-bit color
func FromTerminalRGB(c terminal.RGB) Color {
	return RGB(c.R, c.G, c.B)
}

// RGBLowRes returns a 6x6x6 cube color, channels above 5 are clamped
func RGBLowRes(r, g, b uint8) Color {
	return Color{kind: colorRGBLowRes, r: min(r, 5), g: min(g, 5), b: min(b, 5)}
}

// IsTerminalDefault reports whether c is the terminal default sentinel
func (c Color) IsTerminalDefault() bool {
	return c.kind == colorTerminalDefault
}

// Base returns the base color and whether it is the light variant, ok is false for other kinds
func (c Color) Base() (base BaseColor, light bool, ok bool) {
	switch c.kind {
	case colorDark:
		return BaseColor(c.r), false, true
	case colorLight:
		return BaseColor(c.r), true, true
	}
	return 0, false, false
}

// Components returns the stored channels: 0-255 for RGB, 0-5 for low-res, zero otherwise
func (c Color) Components() (r, g, b uint8) {
	switch c.kind {
	case colorRGB, colorRGBLowRes:
		return c.r, c.g, c.b
	}
	return 0, 0, 0
}

// IsLowRes reports whether c is a 6x6x6 cube color
func (c Color) IsLowRes() bool {
	return c.kind == colorRGBLowRes
}

// ToRGB returns the xterm RGB approximation of c, ok is false for TerminalDefault
func (c Color) ToRGB() (terminal.RGB, bool) {
	switch c.kind {
	case colorDark:
		return terminal.ANSI16[c.r&7], true
	case colorLight:
		return terminal.ANSI16[8+c.r&7], true
	case colorRGB:
		return terminal.RGB{R: c.r, G: c.g, B: c.b}, true
	case colorRGBLowRes:
		return terminal.CubeRGB(c.r, c.g, c.b), true
	}
	return terminal.RGB{}, false
}

// AsColorType uses c as a direct, palette-independent color
func (c Color) AsColorType() ColorType {
	return Direct(c)
}

// channel encodes c for one cell channel, indexed and def are that channel's attr flags
func (c Color) channel(indexed, def terminal.Attr) (terminal.RGB, terminal.Attr) {
	switch c.kind {
	case colorDark:
		return terminal.RGB{R: c.r & 7}, indexed
	case colorLight:
		return terminal.RGB{R: 8 + c.r&7}, indexed
	case colorRGB:
		return terminal.RGB{R: c.r, G: c.g, B: c.b}, terminal.AttrNone
	case colorRGBLowRes:
		return terminal.RGB{R: terminal.CubeIndex(c.r, c.g, c.b)}, indexed
	}
	return terminal.RGB{}, def
}

// String returns the form accepted by ParseColor
func (c Color) String() string {
	switch c.kind {
	case colorDark:
		return BaseColor(c.r).String()
	case colorLight:
		return "light " + BaseColor(c.r).String()
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case colorRGBLowRes:
		return fmt.Sprintf("@%d%d%d", c.r, c.g, c.b)
	}
	return "default"
}

// ParseColor parses a color description:
//
//	default | terminal default      TerminalDefault
//	red | dark red                  Dark(Red)
//	light red                       Light(Red)
//	#f00 | #ff0000 | 0xff0000       RGB
//	@520                            RGBLowRes(5, 2, 0)
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "default" || v == "terminal default" || v == "terminal_default":
		return TerminalDefault, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v)
	case strings.HasPrefix(v, "0x"):
		if len(v) != 8 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return parseHex(s, "#"+v[2:])
	case strings.HasPrefix(v, "@"):
		return parseLowRes(s, v[1:])
	case strings.HasPrefix(v, "light "):
		b, err := ParseBaseColor(v[len("light "):])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return b.Light(), nil
	case strings.HasPrefix(v, "dark "):
		v = v[len("dark "):]
	}

	b, err := ParseBaseColor(v)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return b.Dark(), nil
}

func parseHex(orig, hex string) (Color, error) {
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, orig, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

func parseLowRes(orig, digits string) (Color, error) {
	if len(digits) != 3 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		d := digits[i]
		if d < '0' || d > '5' {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = d - '0'
	}
	return RGBLowRes(ch[0], ch[1], ch[2]), nil
}

// Blend mixes a toward b in Lab space, t in [0,1]
// TerminalDefault has no known value, so a is returned unchanged if either side is the default
func Blend(a, b Color, t float64) Color {
	ra, okA := a.ToRGB()
	rb, okB := b.ToRGB()
	if !okA || !okB {
		return a
	}
	t = max(0, min(t, 1))
	mixed := toColorful(ra).BlendLab(toColorful(rb), t).Clamped()
	r, g, bl := mixed.RGB255()
	return RGB(r, g, bl)
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
