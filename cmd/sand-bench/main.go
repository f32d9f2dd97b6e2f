// sand-bench pours each movable material into a headless world and reports
// how it behaves: how much mass ends up where, and how many ticks it takes to
// settle. Useful when tuning material coefficients without a window.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"sandbox/internal/brush"
	"sandbox/internal/sand"
)

type scenarioResult struct {
	material  sand.MaterialID
	name      string
	placed    int
	remaining int
	settledAt int
	topRow    int
	bottomRow int
}

func main() {
	steps := flag.Int("steps", 600, "maximum ticks to simulate per material")
	pour := flag.Int("pour", 120, "ticks during which material keeps pouring")
	width := flag.Int("w", 120, "grid width")
	height := flag.Int("h", 90, "grid height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	var pourable []sand.MaterialID
	for _, id := range sand.Materials() {
		def := sand.Lookup(id)
		if id == sand.Empty || def.Solid {
			continue
		}
		pourable = append(pourable, id)
	}

	fmt.Printf("Pouring %d materials on a %dx%d grid (%d workers, %d steps)\n",
		len(pourable), *width, *height, *workers, *steps)

	jobs := make(chan sand.MaterialID)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results <- runScenario(id, *width, *height, *steps, *pour)
			}
		}()
	}

	go func() {
		for _, id := range pourable {
			jobs <- id
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].material < all[j].material })

	for _, res := range all {
		fmt.Printf("%-8s placed=%-5d remaining=%-5d rows=[%d..%d] settled@%d\n",
			res.name, res.placed, res.remaining, res.topRow, res.bottomRow, res.settledAt)
	}
}

// runScenario drips one material from a spout near its natural origin (top
// for sinkers, bottom for gases) and steps until the grid stops changing.
func runScenario(id sand.MaterialID, width, height, maxSteps, pourTicks int) scenarioResult {
	cfg := sand.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Params.BorderWalls = false
	cfg.Params.PileCount = 0
	cfg.Params.PoolRows = 0

	world := sand.NewWithConfig(cfg)
	world.Reset(0)
	world.SetBrush(id)

	def := sand.Lookup(id)
	spoutY := 0
	if def.Weight < 0 {
		spoutY = height - 1
	}

	placed := 0
	prev := make([]sand.Cell, width*height)
	settledAt := -1

	for step := 0; step < maxSteps; step++ {
		if step < pourTicks {
			brush.Disc(width/2, spoutY, 2, func(x, y int) {
				if world.Grid().InBounds(x, y) && world.Grid().At(x, y).Material == sand.Empty {
					world.Paint(x, y)
					placed++
				}
			})
		}
		copy(prev, world.Grid().Cells())
		world.Step()
		if step >= pourTicks && unchanged(prev, world.Grid().Cells()) {
			settledAt = step
			break
		}
	}

	top, bottom := occupiedRows(world)
	return scenarioResult{
		material:  id,
		name:      def.Name,
		placed:    placed,
		remaining: world.Grid().Count(),
		settledAt: settledAt,
		topRow:    top,
		bottomRow: bottom,
	}
}

func unchanged(a, b []sand.Cell) bool {
	for i := range a {
		if a[i].Material != b[i].Material {
			return false
		}
	}
	return true
}

func occupiedRows(world *sand.World) (int, int) {
	g := world.Grid()
	top, bottom := -1, -1
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y).Material == sand.Empty {
				continue
			}
			if top == -1 {
				top = y
			}
			bottom = y
			break
		}
	}
	return top, bottom
}
