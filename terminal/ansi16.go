package terminal

import colorful "github.com/lucasb-eyer/go-colorful"

// ANSI16 holds xterm's default RGB values for palette indices 0-15
// Indices 0-7 are the dark base colors, 8-15 their light counterparts
var ANSI16 = [16]RGB{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // light black
	{255, 0, 0},     // light red
	{0, 255, 0},     // light green
	{255, 255, 0},   // light yellow
	{92, 92, 255},   // light blue
	{255, 0, 255},   // light magenta
	{0, 255, 255},   // light cyan
	{255, 255, 255}, // light white
}

// ansi16Lab caches the Lab form of ANSI16 for nearest-match lookups
var ansi16Lab [16]colorful.Color

func init() {
	for i, c := range ANSI16 {
		ansi16Lab[i] = toColorful(c)
	}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Palette256 returns the xterm RGB value for a 256-color palette index
func Palette256(idx uint8) RGB {
	switch {
	case idx < 16:
		return ANSI16[idx]
	case idx < 232:
		i := idx - 16
		return CubeRGB(i/36, (i/6)%6, i%6)
	default:
		v := 8 + (idx-232)*10
		return RGB{v, v, v}
	}
}

// Nearest16 returns the ANSI16 index perceptually closest to c
func Nearest16(c RGB) uint8 {
	target := toColorful(c)
	best := 0
	bestDist := target.DistanceLab(ansi16Lab[0])
	for i := 1; i < len(ansi16Lab); i++ {
		if d := target.DistanceLab(ansi16Lab[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}
