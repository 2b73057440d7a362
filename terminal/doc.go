// Package terminal holds the cell model shared by the theming and drawing packages.
//
// A Cell carries a rune, two 24-bit channels and an attribute mask. Attribute
// bits also record how each channel is encoded: the terminal default color,
// an xterm-256 palette index, or plain RGB. Color mode helpers map RGB onto
// the 256-color cube and the 16 ANSI colors for terminals that lack true color.
//
// WriteCells encodes a cell buffer as SGR-styled text for non-interactive output.
package terminal
