package tui

import "github.com/lixenwraith/cellstyle/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// index returns the backing slice index for a relative position, ok is false when clipped
func (r Region) index(x, y int) (int, bool) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return 0, false
	}
	absX := r.X + x
	absY := r.Y + y
	if uint(absX) >= uint(r.TotalW) {
		return 0, false
	}
	idx := absY*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return 0, false
	}
	return idx, true
}

// Put stores a cell with bounds checking
func (r Region) Put(x, y int, c terminal.Cell) {
	if idx, ok := r.index(x, y); ok {
		r.Cells[idx] = c
	}
}
