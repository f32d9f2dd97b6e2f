package sand

import "math"

// Step advances the world by one tick.
//
// The scratch buffer starts as a copy of the live grid, and every read and
// write during the tick goes to that buffer. A cell that already moved this
// tick is therefore visible to cells processed after it: one coherent pass,
// not two isolated generations.
//
// Rows are scanned bottom to top so falling cells vacate space for the cells
// above them within the same tick. The column direction alternates with the
// frame parity, as does the first diagonal tried, so contested diagonal moves
// carry no systematic horizontal bias.
func (w *World) Step() {
	g := w.next
	g.copyFrom(w.grid)

	width, height := g.w, g.h
	leftToRight := w.frame%2 == 0
	for y := height - 1; y >= 0; y-- {
		for i := 0; i < width; i++ {
			x := i
			if !leftToRight {
				x = width - 1 - i
			}
			stepCell(g, x, y, leftToRight)
		}
	}

	w.grid, w.next = w.next, w.grid
	w.frame++
}

func stepCell(g *Grid, x, y int, leftToRight bool) {
	cell := g.At(x, y)
	if cell.Material == Empty {
		return
	}
	def := Lookup(cell.Material)
	if def.Solid {
		return
	}
	if def.SelfSticky && supported(g, x, y, cell.Material) {
		return
	}

	tx, ty := x, y
	moved := false

	if def.Weight > 0 && y+1 < g.h && g.At(x, y+1).Material == Empty {
		ty = y + fallDistance(g, x, y, def.Weight)
		moved = ty != y
	}

	if !moved && def.Weight > 0 && y+1 < g.h {
		if nx, ok := diagonalTarget(g, x, y, def.Stickiness, leftToRight); ok {
			tx, ty = nx, y+1
			moved = true
		}
	}

	// Buoyancy overrides whatever the downward rules decided. No registered
	// material has both a negative weight and a downward path, but the
	// override order is part of the observable contract.
	if def.Weight < 0 {
		if ny := floatDistance(g, x, y, def.Weight); ny != y {
			tx, ty = x, ny
			moved = true
		}
	}

	if !moved {
		return
	}
	g.setCell(tx, ty, cell)
	g.setCell(x, y, emptyCell())
}

// fallDistance returns how many rows a straight fall covers: at least one,
// up to floor(weight), stopping at the first occupied cell or the grid edge.
// The caller has already verified the cell directly below is Empty.
func fallDistance(g *Grid, x, y int, weight float64) int {
	maxFall := int(math.Floor(weight))
	if maxFall < 1 {
		maxFall = 1
	}
	ny := y + 1
	for ny-y < maxFall && ny+1 < g.h && g.At(x, ny+1).Material == Empty {
		ny++
	}
	return ny - y
}

// diagonalTarget picks the column a cell flows to diagonally, if any. The
// first direction follows the scan direction for this frame; the second is
// only consulted when the first does not qualify. Free-flowing materials
// (stickiness zero) may slide past an occupied lateral neighbor, sticky ones
// need the same-row side cell clear too.
func diagonalTarget(g *Grid, x, y int, stickiness float64, leftToRight bool) (int, bool) {
	first, second := -1, 1
	if !leftToRight {
		first, second = 1, -1
	}
	for _, dx := range [2]int{first, second} {
		nx := x + dx
		if nx < 0 || nx >= g.w {
			continue
		}
		if g.At(nx, y+1).Material != Empty {
			continue
		}
		if stickiness != 0 && g.At(nx, y).Material != Empty {
			continue
		}
		return nx, true
	}
	return 0, false
}

// floatDistance returns the destination row for a buoyant cell: straight up
// through Empty cells, at most floor(|weight| * 10) rows. Buoyant materials
// never drift diagonally.
func floatDistance(g *Grid, x, y int, weight float64) int {
	limit := int(math.Floor(-weight * 10))
	ny := y
	for y-ny < limit && ny-1 >= 0 && g.At(x, ny-1).Material == Empty {
		ny--
	}
	return ny
}

// supported reports whether a self-sticky cell stays put this tick: it rests
// on something directly, or a contiguous run of same-material neighbors on
// either side reaches a cell that does. Cells on the bottom row rest on the
// floor.
func supported(g *Grid, x, y int, id MaterialID) bool {
	if y+1 >= g.h {
		return true
	}
	if g.At(x, y+1).Material != Empty {
		return true
	}
	for nx := x - 1; nx >= 0 && g.At(nx, y).Material == id; nx-- {
		if g.At(nx, y+1).Material != Empty {
			return true
		}
	}
	for nx := x + 1; nx < g.w && g.At(nx, y).Material == id; nx++ {
		if g.At(nx, y+1).Material != Empty {
			return true
		}
	}
	return false
}
