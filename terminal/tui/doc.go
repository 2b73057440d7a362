// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Region is a rectangular, clipped window into a []terminal.Cell. Printer
// wraps a Region with a Theme and the color pair currently in effect;
// views derive printers with the styles they request and the theme package
// resolves them against the parent's colors.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewPrinter(tui.NewRegion(cells, w, 0, 0, w, h), tui.DefaultTheme())
//	root.WithColor(theme.BackgroundStyle()).Clear()
//
//	view := root.Sub(4, 2, 30, 8).WithColor(theme.PrimaryStyle())
//	view.Clear()
//	view.WithColor(theme.TitlePrimaryStyle()).PrintCenter(0, "Title")
//	view.WithSelection().Print(2, 3, "selected")
//
//	render.Flush(screen, cells, w, h)
package tui
