package terminal

import (
	"bufio"
	"errors"
	"io"

	"github.com/mattn/go-runewidth"
)

// ErrShortBuffer is returned when a cell buffer is smaller than width*height
var ErrShortBuffer = errors.New("terminal: cell buffer shorter than width*height")

var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
)

// ansiWriter emits cells as SGR-styled text, writing a style only when it changes
type ansiWriter struct {
	w    *bufio.Writer
	mode ColorMode

	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// WriteCells writes a row-major cell buffer to w as ANSI text, one line per row
// Each row ends with a style reset so the output can be embedded in a normal
// scrolling terminal. Cells are downgraded to mode before encoding
func WriteCells(w io.Writer, cells []Cell, width, height int, mode ColorMode) error {
	if len(cells) < width*height {
		return ErrShortBuffer
	}

	aw := &ansiWriter{w: bufio.NewWriter(w), mode: mode}
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			// Continuation of a wide rune occupies no output column
			if c.Rune == 0 && x > 0 && runewidth.RuneWidth(row[x-1].Rune) == 2 {
				continue
			}
			c = c.Downgrade(mode)
			aw.writeStyle(c.Fg, c.Bg, c.Attrs)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				aw.w.WriteByte(byte(r))
			} else {
				aw.w.WriteRune(r)
			}
		}
		aw.w.Write(csiSGR0)
		aw.w.WriteByte('\n')
		aw.lastValid = false
	}
	return aw.w.Flush()
}

// writeStyle emits one combined SGR sequence when the style differs from the last written
func (a *ansiWriter) writeStyle(fg, bg RGB, attr Attr) {
	if a.lastValid && fg == a.lastFg && bg == a.lastBg && attr == a.lastAttr {
		return
	}

	w := a.w
	w.Write(csi)
	w.WriteByte('0')

	styleAttr := attr & AttrStyle
	for _, sa := range [...]struct {
		bit  Attr
		code byte
	}{
		{AttrBold, '1'},
		{AttrDim, '2'},
		{AttrItalic, '3'},
		{AttrUnderline, '4'},
		{AttrBlink, '5'},
		{AttrReverse, '7'},
	} {
		if styleAttr&sa.bit != 0 {
			w.WriteByte(';')
			w.WriteByte(sa.code)
		}
	}

	a.writeChannel(fg, attr&AttrFgDefault != 0, attr&AttrFg256 != 0, 30)
	a.writeChannel(bg, attr&AttrBgDefault != 0, attr&AttrBg256 != 0, 40)
	w.WriteByte('m')

	a.lastFg = fg
	a.lastBg = bg
	a.lastAttr = attr
	a.lastValid = true
}

// writeChannel writes ";<params>" for one color channel
// base is 30 for foreground and 40 for background
func (a *ansiWriter) writeChannel(c RGB, def, indexed bool, base int) {
	w := a.w
	w.WriteByte(';')
	switch {
	case def:
		writeInt(w, base+9)
	case indexed && c.R < 8:
		writeInt(w, base+int(c.R))
	case indexed && c.R < 16:
		writeInt(w, base+60+int(c.R)-8)
	case indexed:
		writeInt(w, base+8)
		w.WriteString(";5;")
		writeInt(w, int(c.R))
	default:
		writeInt(w, base+8)
		w.WriteString(";2;")
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
	}
}

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}
