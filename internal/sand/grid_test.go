package sand

import (
	"testing"

	"sandbox/internal/core"
)

func TestGridSetOutOfRangeIsIgnored(t *testing.T) {
	g := NewGrid(4, 4, core.NewRNG(1))

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-5, -5}, {100, 100}} {
		g.Set(p[0], p[1], Sand)
	}
	if got := g.Count(); got != 0 {
		t.Fatalf("out-of-range writes must be no-ops, found %d cells", got)
	}
}

func TestGridSetStampsRegistryColor(t *testing.T) {
	g := NewGrid(4, 4, core.NewRNG(1))
	g.Set(2, 2, Water)

	cell := g.At(2, 2)
	if cell.Material != Water {
		t.Fatalf("expected water, got %v", cell.Material)
	}
	if cell.Color.A != 255 {
		t.Fatalf("placement must stamp an opaque color, got alpha %d", cell.Color.A)
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(6, 6, core.NewRNG(1))
	for x := 0; x < 6; x++ {
		g.Set(x, 3, Sand)
	}
	if g.Count() == 0 {
		t.Fatal("expected cells before clear")
	}

	g.Clear()

	if got := g.Count(); got != 0 {
		t.Fatalf("clear left %d cells behind", got)
	}
	empty := g.At(0, 3)
	if empty.Material != Empty {
		t.Fatalf("cleared cell should be Empty, got %v", empty.Material)
	}
}

func TestGridClampsDegenerateDimensions(t *testing.T) {
	g := NewGrid(0, -3, core.NewRNG(1))
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(3, 2, core.NewRNG(1))
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {2, 1, true}, {3, 0, false}, {0, 2, false}, {-1, 0, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
