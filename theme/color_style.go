package theme

// ColorStyle is the requested color pair of a cell, before resolution.
// Front and Back are resolved independently.
//
// The zero value inherits both channels from the parent.
type ColorStyle struct {
	// Front is used for the text itself
	Front ColorType
	// Back is used for the cell background
	Back ColorType
}

// NewColorStyle builds a style from two color sources
func NewColorStyle(front, back ColorSource) ColorStyle {
	return ColorStyle{Front: front.AsColorType(), Back: back.AsColorType()}
}

// Front uses f as front color and inherits the parent background
func Front(f ColorSource) ColorStyle {
	return ColorStyle{Front: f.AsColorType(), Back: InheritParent}
}

// Back uses b as background and inherits the parent front color
func Back(b ColorSource) ColorStyle {
	return ColorStyle{Front: InheritParent, Back: b.AsColorType()}
}

// StyleOf converts a single color source into a style, same as Front
func StyleOf(c ColorSource) ColorStyle {
	return Front(c)
}

// Invert swaps front and back, for reverse-video effects
func (s ColorStyle) Invert() ColorStyle {
	return ColorStyle{Front: s.Back, Back: s.Front}
}

// InheritParentStyle inherits both channels
func InheritParentStyle() ColorStyle {
	return ColorStyle{}
}

// TerminalDefaultStyle is the style set by the terminal before the application started
func TerminalDefaultStyle() ColorStyle {
	return NewColorStyle(TerminalDefault, TerminalDefault)
}

// BackgroundStyle is the application background, where no view is present
func BackgroundStyle() ColorStyle {
	return NewColorStyle(Background, Background)
}

// ShadowStyle is used by view shadows; only the background matters
func ShadowStyle() ColorStyle {
	return NewColorStyle(Shadow, Shadow)
}

// PrimaryStyle is main text over the view background
func PrimaryStyle() ColorStyle {
	return NewColorStyle(Primary, View)
}

// SecondaryStyle is secondary text over the view background
func SecondaryStyle() ColorStyle {
	return NewColorStyle(Secondary, View)
}

// TertiaryStyle is tertiary text over the view background
func TertiaryStyle() ColorStyle {
	return NewColorStyle(Tertiary, View)
}

// TitlePrimaryStyle is title text over the view background
func TitlePrimaryStyle() ColorStyle {
	return NewColorStyle(TitlePrimary, View)
}

// TitleSecondaryStyle is the alternative title color
func TitleSecondaryStyle() ColorStyle {
	return NewColorStyle(TitleSecondary, View)
}

// HighlightStyle is alternate text over the highlight background
func HighlightStyle() ColorStyle {
	return NewColorStyle(HighlightText, Highlight)
}

// HighlightInactiveStyle is the highlight for views not in focus
func HighlightInactiveStyle() ColorStyle {
	return NewColorStyle(HighlightText, HighlightInactive)
}

// MergeStyles merges b over a, channel by channel
func MergeStyles(a, b ColorStyle) ColorStyle {
	return ColorStyle{
		Front: MergeColorType(a.Front, b.Front),
		Back:  MergeColorType(a.Back, b.Back),
	}
}

// MergeAll folds styles left to right starting from InheritParentStyle, later styles win
func MergeAll(styles ...ColorStyle) ColorStyle {
	var out ColorStyle
	for _, s := range styles {
		out = MergeStyles(out, s)
	}
	return out
}

// Resolve returns the color pair s represents under palette, given the pair previously in effect
func (s ColorStyle) Resolve(palette Palette, previous ColorPair) ColorPair {
	return ColorPair{
		Front: s.Front.Resolve(palette, previous.Front),
		Back:  s.Back.Resolve(palette, previous.Back),
	}
}

// String describes both channels
func (s ColorStyle) String() string {
	return "{front: " + s.Front.String() + ", back: " + s.Back.String() + "}"
}
