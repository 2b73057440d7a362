// Package theme resolves requested cell colors to concrete ones.
//
// A ColorStyle holds one ColorType per channel (front, back). Each ColorType
// is a direct Color, a PaletteColor role looked up in the active Palette, or
// InheritParent, which reuses the color already in effect.
//
// Nested UI elements layer styles with MergeStyles (later styles win unless
// they inherit), and the effective style is resolved at draw time:
//
//	style := theme.MergeAll(theme.PrimaryStyle(), theme.Front(theme.Dark(theme.Red)))
//	pair := style.Resolve(palette, parentPair)
//	cell = pair.Apply(cell)
//
// Every operation is a pure function of its arguments. Palette is a value
// type, so each draw pass resolves against its own snapshot.
package theme
