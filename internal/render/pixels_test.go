package render

import (
	"testing"

	"sandbox/internal/core"
	"sandbox/internal/sand"
)

func TestFillCellRGBACopiesStoredColors(t *testing.T) {
	g := sand.NewGrid(3, 2, core.NewRNG(1))
	g.Set(1, 0, sand.Sand)
	g.Set(2, 1, sand.Water)

	cells := g.Cells()
	buf := make([]byte, 4*len(cells))
	fillCellRGBA(buf, cells)

	for i, c := range cells {
		base := i * 4
		if buf[base] != c.Color.R || buf[base+1] != c.Color.G || buf[base+2] != c.Color.B || buf[base+3] != c.Color.A {
			t.Fatalf("pixel %d does not match stored cell color", i)
		}
	}
}
