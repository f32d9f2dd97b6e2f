package sand

import "testing"

func newTestWorld(w, h int) *World {
	cfg := Config{Width: w, Height: h, Seed: 1}
	return NewWithConfig(cfg)
}

func TestSingleCellFallScenario(t *testing.T) {
	world := newTestWorld(3, 3)
	world.Grid().Set(1, 0, Water)

	world.Step()

	if got := world.Grid().At(1, 1).Material; got != Water {
		t.Fatalf("after tick 1 expected water at (1,1), got %v", got)
	}
	if got := world.Grid().At(1, 0).Material; got != Empty {
		t.Fatalf("after tick 1 expected (1,0) empty, got %v", got)
	}

	world.Step()

	if got := world.Grid().At(1, 2).Material; got != Water {
		t.Fatalf("after tick 2 expected water at (1,2), got %v", got)
	}
	for _, y := range []int{0, 1} {
		if got := world.Grid().At(1, y).Material; got != Empty {
			t.Fatalf("after tick 2 expected (1,%d) empty, got %v", y, got)
		}
	}
}

func TestMassConservation(t *testing.T) {
	world := newTestWorld(16, 12)
	g := world.Grid()

	materials := []MaterialID{Sand, Water, Gravel, Snow}
	for i := 0; i < 40; i++ {
		g.Set((i*5)%16, (i*3)%8, materials[i%len(materials)])
	}

	initial := g.Count()
	if initial == 0 {
		t.Fatal("expected a populated grid")
	}

	for tick := 0; tick < 60; tick++ {
		world.Step()
		if got := world.Grid().Count(); got != initial {
			t.Fatalf("tick %d: cell count changed from %d to %d", tick+1, initial, got)
		}
	}
}

func TestSolidsNeverMove(t *testing.T) {
	world := newTestWorld(9, 9)
	g := world.Grid()

	wallAt := [][2]int{{2, 4}, {3, 4}, {4, 4}, {6, 7}}
	for _, p := range wallAt {
		g.Set(p[0], p[1], Wall)
	}
	g.Set(3, 0, Sand)
	g.Set(6, 2, Water)

	for tick := 0; tick < 30; tick++ {
		world.Step()
		walls := 0
		for _, p := range wallAt {
			if world.Grid().At(p[0], p[1]).Material != Wall {
				t.Fatalf("tick %d: wall at (%d,%d) moved", tick+1, p[0], p[1])
			}
			walls++
		}
		if walls != len(wallAt) {
			t.Fatalf("tick %d: expected %d walls, found %d", tick+1, len(wallAt), walls)
		}
	}
}

func TestSettlingIsIdempotent(t *testing.T) {
	const h = 8
	world := newTestWorld(5, h)
	world.Grid().Set(2, 0, Water)

	for tick := 0; tick < h; tick++ {
		world.Step()
	}
	if got := world.Grid().At(2, h-1).Material; got != Water {
		t.Fatalf("expected water resting on the floor at (2,%d), got %v", h-1, got)
	}

	before := append([]Cell(nil), world.Grid().Cells()...)
	for tick := 0; tick < 10; tick++ {
		world.Step()
	}
	after := world.Grid().Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("settled cell %d changed after further ticks", i)
		}
	}
}

func TestFallDistanceScalesWithWeight(t *testing.T) {
	world := newTestWorld(3, 10)
	world.Grid().Set(1, 0, Gravel) // weight 3

	world.Step()

	if got := world.Grid().At(1, 3).Material; got != Gravel {
		t.Fatalf("expected gravel to fall three rows to (1,3), got %v", got)
	}

	// A blocking cell cuts the fall short at the first occupied row.
	world2 := newTestWorld(3, 10)
	world2.Grid().Set(1, 2, Wall)
	world2.Grid().Set(1, 0, Gravel)

	world2.Step()

	if got := world2.Grid().At(1, 1).Material; got != Gravel {
		t.Fatalf("expected gravel to stop above the wall at (1,1), got %v", got)
	}
}

func TestBuoyantCellsRise(t *testing.T) {
	world := newTestWorld(3, 10)
	world.Grid().Set(1, 8, Steam)

	row := 8
	for tick := 0; tick < 10 && row > 0; tick++ {
		world.Step()
		next := -1
		for y := 0; y < 10; y++ {
			if world.Grid().At(1, y).Material == Steam {
				next = y
				break
			}
		}
		if next == -1 {
			t.Fatalf("tick %d: steam disappeared", tick+1)
		}
		if next >= row {
			t.Fatalf("tick %d: steam row %d did not decrease from %d", tick+1, next, row)
		}
		row = next
	}
	if row != 0 {
		t.Fatalf("expected steam to reach the top boundary, stuck at row %d", row)
	}
}

func TestBuoyantCellsStopUnderOccupied(t *testing.T) {
	world := newTestWorld(3, 10)
	world.Grid().Set(1, 3, Wall)
	world.Grid().Set(1, 9, Smoke) // rises one row per tick

	for tick := 0; tick < 20; tick++ {
		world.Step()
	}
	if got := world.Grid().At(1, 4).Material; got != Smoke {
		t.Fatalf("expected smoke pinned below the wall at (1,4), got %v", got)
	}
}

func TestStickinessGatesDiagonalFlow(t *testing.T) {
	build := func(id MaterialID) *World {
		// The moving cell sits on a wall with its right lateral neighbor
		// occupied and the right-down diagonal open. The left diagonal is
		// walled off.
		world := newTestWorld(3, 2)
		world.Grid().Set(0, 1, Wall)
		world.Grid().Set(1, 0, Wall)
		world.Grid().Set(0, 0, id)
		return world
	}

	sticky := build(Sand) // stickiness 1
	sticky.Step()
	if got := sticky.Grid().At(0, 0).Material; got != Sand {
		t.Fatalf("sticky material must not slip past an occupied side cell, (0,0) now %v", got)
	}

	fluid := build(Water) // stickiness 0
	fluid.Step()
	if got := fluid.Grid().At(1, 1).Material; got != Water {
		t.Fatalf("free-flowing material must take the open diagonal, (1,1) is %v", got)
	}
	if got := fluid.Grid().At(0, 0).Material; got != Empty {
		t.Fatalf("source cell should be vacated, got %v", got)
	}
}

func TestDiagonalDirectionAlternatesWithParity(t *testing.T) {
	build := func() *World {
		// A cell on a one-wide peak with both diagonals open.
		world := newTestWorld(3, 2)
		world.Grid().Set(1, 1, Wall)
		return world
	}

	even := build()
	even.Grid().Set(1, 0, Water)
	even.Step() // frame 0 scans left to right, tries the left diagonal first
	if got := even.Grid().At(0, 1).Material; got != Water {
		t.Fatalf("even tick should prefer the left diagonal, (0,1) is %v", got)
	}

	odd := build()
	odd.Step() // burn frame 0 on an empty grid
	odd.Grid().Set(1, 0, Water)
	odd.Step()
	if got := odd.Grid().At(2, 1).Material; got != Water {
		t.Fatalf("odd tick should prefer the right diagonal, (2,1) is %v", got)
	}
}

func TestCohesionAnchorsHorizontalRun(t *testing.T) {
	world := newTestWorld(8, 4)
	world.Grid().Set(1, 3, Wall)
	run := [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}}
	for _, p := range run {
		world.Grid().Set(p[0], p[1], Slime)
	}

	for tick := 0; tick < 12; tick++ {
		world.Step()
		for _, p := range run {
			if got := world.Grid().At(p[0], p[1]).Material; got != Slime {
				t.Fatalf("tick %d: slime at (%d,%d) fell, got %v", tick+1, p[0], p[1], got)
			}
		}
	}
}

func TestUnanchoredCohesiveRunFalls(t *testing.T) {
	world := newTestWorld(8, 4)
	run := [][2]int{{2, 1}, {3, 1}, {4, 1}}
	for _, p := range run {
		world.Grid().Set(p[0], p[1], Slime)
	}

	world.Step()

	for _, p := range run {
		if got := world.Grid().At(p[0], p[1]).Material; got != Empty {
			t.Fatalf("unsupported slime at (%d,%d) should fall, got %v", p[0], p[1], got)
		}
	}
}

func TestNeutralWeightNeverDrifts(t *testing.T) {
	world := newTestWorld(5, 5)
	world.Grid().Set(2, 1, Spark)

	for tick := 0; tick < 10; tick++ {
		world.Step()
	}
	if got := world.Grid().At(2, 1).Material; got != Spark {
		t.Fatalf("weight-zero material must stay where placed, (2,1) is %v", got)
	}
}

func TestColorCarriedVerbatimByMovement(t *testing.T) {
	world := newTestWorld(3, 5)
	world.Grid().Set(1, 0, Sand)
	placed := world.Grid().At(1, 0)

	world.Step()
	world.Step()

	landed := world.Grid().At(1, 4)
	if landed.Material != Sand {
		t.Fatalf("expected sand at (1,4), got %v", landed.Material)
	}
	if landed.Color != placed.Color {
		t.Fatalf("movement resampled the color: placed %v, landed %v", placed.Color, landed.Color)
	}
}

func TestFrameCounterAdvances(t *testing.T) {
	world := newTestWorld(4, 4)
	if world.Frame() != 0 {
		t.Fatalf("fresh world should start at frame 0, got %d", world.Frame())
	}
	world.Step()
	world.Step()
	if world.Frame() != 2 {
		t.Fatalf("expected frame 2 after two steps, got %d", world.Frame())
	}
	world.Reset(0)
	if world.Frame() != 0 {
		t.Fatalf("reset should zero the frame counter, got %d", world.Frame())
	}
}
