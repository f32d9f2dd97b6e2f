package sand

import (
	"image/color"

	"sandbox/internal/core"
)

// Cell pairs a material with the display color stamped when the material was
// placed. Movement relocates the whole cell, color included; colors are never
// resampled in flight.
type Cell struct {
	Material MaterialID
	Color    color.RGBA
}

// Grid is a fixed-size rectangular field of cells stored row-major, with y
// increasing downward (row 0 at the top).
type Grid struct {
	w, h  int
	cells []Cell
	rng   *core.RNG
}

// NewGrid allocates a grid with the given dimensions, every cell Empty. The
// RNG is used solely to sample placement colors.
func NewGrid(w, h int, rng *core.RNG) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h), rng: rng}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// At returns the cell at (x, y). Callers must keep coordinates in bounds.
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set places a material at (x, y), stamping it with a freshly sampled color
// from its registry spec. Out-of-range coordinates are silently ignored so
// brush strokes may run off the edges.
func (g *Grid) Set(x, y int, id MaterialID) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = Cell{Material: id, Color: Lookup(id).Color.Sample(g.rng)}
}

// setCell writes a prebuilt cell value, used by the engine to relocate cells
// without resampling their colors. Coordinates must already be bounds-checked.
func (g *Grid) setCell(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// Clear resets every cell to Empty without reallocating.
func (g *Grid) Clear() {
	empty := emptyCell()
	for i := range g.cells {
		g.cells[i] = empty
	}
}

// Cells exposes the backing slice for rendering. Treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// copyFrom overwrites this grid's cells with src's. Both grids must share
// dimensions; a mismatch is an engine defect.
func (g *Grid) copyFrom(src *Grid) {
	if g.w != src.w || g.h != src.h {
		panic("sand: grid dimension mismatch")
	}
	copy(g.cells, src.cells)
}

// Count returns the number of non-Empty cells.
func (g *Grid) Count() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Material != Empty {
			n++
		}
	}
	return n
}

func emptyCell() Cell {
	return Cell{Material: Empty, Color: Lookup(Empty).Color.Button()}
}
