package theme

import "fmt"

// ColorTypeKind names the source a ColorType draws its color from
type ColorTypeKind uint8

const (
	KindInheritParent ColorTypeKind = iota // reuse the color already in effect
	KindColor                              // direct color, palette-independent
	KindPalette                            // palette role lookup
)

// String returns the kind name
func (k ColorTypeKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindPalette:
		return "palette"
	default:
		return "inherit_parent"
	}
}

// ColorType is the source of one color channel: a direct Color, a palette
// role, or the parent's color. Exactly one source is active.
//
// The zero value is InheritParent.
type ColorType struct {
	kind  ColorTypeKind
	color Color
	role  PaletteColor
}

// InheritParent reuses the color from the enclosing context
var InheritParent = ColorType{}

// ColorSource is anything usable as one channel of a ColorStyle
// Implemented by Color, BaseColor, PaletteColor and ColorType
type ColorSource interface {
	AsColorType() ColorType
}

// Direct uses c regardless of palette and parent
func Direct(c Color) ColorType {
	return ColorType{kind: KindColor, color: c}
}

// FromPalette looks role up in the active palette
func FromPalette(role PaletteColor) ColorType {
	return ColorType{kind: KindPalette, role: role}
}

// AsColorType returns t
func (t ColorType) AsColorType() ColorType {
	return t
}

// Kind returns which source t uses
func (t ColorType) Kind() ColorTypeKind {
	return t.kind
}

// IsInherit reports whether t defers to the parent
func (t ColorType) IsInherit() bool {
	return t.kind == KindInheritParent
}

// Color returns the direct color, ok is false for other kinds
func (t ColorType) Color() (Color, bool) {
	return t.color, t.kind == KindColor
}

// Role returns the palette role, ok is false for other kinds
func (t ColorType) Role() (PaletteColor, bool) {
	return t.role, t.kind == KindPalette
}

// Resolve reduces t to a concrete color using palette and the color previously in effect
func (t ColorType) Resolve(palette Palette, previous Color) Color {
	switch t.kind {
	case KindColor:
		return t.color
	case KindPalette:
		return palette.Lookup(t.role)
	case KindInheritParent:
		return previous
	}
	panic(fmt.Sprintf("theme: unhandled color type kind %d", t.kind))
}

// MergeColorType merges b over a: it returns b, unless b is InheritParent, in which case it returns a
func MergeColorType(a, b ColorType) ColorType {
	if b.kind == KindInheritParent {
		return a
	}
	return b
}

// String describes t, e.g. "palette(primary)" or "color(light red)"
func (t ColorType) String() string {
	switch t.kind {
	case KindColor:
		return "color(" + t.color.String() + ")"
	case KindPalette:
		return "palette(" + t.role.String() + ")"
	}
	return "inherit_parent"
}
