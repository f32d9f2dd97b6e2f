package sand

import "sandbox/internal/core"

// World is the explicit simulation context: the live grid, its scratch
// buffer, the frame counter and the current brush selection. Everything the
// transition rules touch lives here, so tests can drive a world without any
// rendering surface.
type World struct {
	cfg Config

	grid *Grid
	next *Grid

	frame uint64
	brush MaterialID

	rng *core.RNG
}

var _ core.Sim = (*World)(nil)
var _ core.CatalogProvider = (*World)(nil)

// New returns a sandbox world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	rng := core.NewRNG(cfg.Seed)
	return &World{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height, rng),
		next:  NewGrid(cfg.Width, cfg.Height, rng),
		brush: Sand,
		rng:   rng,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the live grid. Renderers must treat it as read-only; painting
// goes through Grid.Set or World.Paint.
func (w *World) Grid() *Grid { return w.grid }

// Frame returns the number of completed ticks since the last reset.
func (w *World) Frame() uint64 { return w.frame }

// Brush returns the currently selected placement material.
func (w *World) Brush() MaterialID { return w.brush }

// SetBrush selects the material future Paint calls place.
func (w *World) SetBrush(id MaterialID) {
	if id < materialCount {
		w.brush = id
	}
}

// Catalog lists the selectable materials for palette UI.
func (w *World) Catalog() []core.CatalogEntry { return Catalog() }

// Paint places the current brush material at (x, y). Out-of-range
// coordinates are ignored, matching edge-tolerant pointer strokes.
func (w *World) Paint(x, y int) {
	w.grid.Set(x, y, w.brush)
}

// Clear empties the grid without touching dimensions or the frame counter.
func (w *World) Clear() {
	w.grid.Clear()
	w.next.Clear()
}

// Resize reallocates both buffers at the new dimensions. All prior cell
// state is lost; there is no resize-preserving migration.
func (w *World) Resize(width, height int) {
	if width == w.grid.w && height == w.grid.h {
		return
	}
	w.cfg.Width = width
	w.cfg.Height = height
	w.grid = NewGrid(width, height, w.rng)
	w.next = NewGrid(width, height, w.rng)
	w.frame = 0
}

// Reset rebuilds the deterministic demo scene: an optional wall border, a
// water pool along the floor and a scattering of sand piles.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.grid.rng = w.rng
	w.next.rng = w.rng
	w.grid.Clear()
	w.next.Clear()
	w.frame = 0

	if w.cfg.Params.BorderWalls {
		w.buildBorder()
	}
	w.fillPool()
	w.scatterPiles()
}

func (w *World) buildBorder() {
	width, height := w.grid.w, w.grid.h
	for x := 0; x < width; x++ {
		w.grid.Set(x, height-1, Wall)
	}
	for y := 0; y < height; y++ {
		w.grid.Set(0, y, Wall)
		w.grid.Set(width-1, y, Wall)
	}
}

func (w *World) fillPool() {
	rows := w.cfg.Params.PoolRows
	if rows <= 0 {
		return
	}
	width, height := w.grid.w, w.grid.h
	for y := height - 1 - rows; y < height; y++ {
		for x := 0; x < width; x++ {
			if y < 0 || w.grid.At(x, y).Material != Empty {
				continue
			}
			w.grid.Set(x, y, Water)
		}
	}
}

func (w *World) scatterPiles() {
	count := w.cfg.Params.PileCount
	if count <= 0 {
		return
	}
	minR := w.cfg.Params.PileRadiusMin
	maxR := w.cfg.Params.PileRadiusMax
	if minR < 0 {
		minR = 0
	}
	if maxR < minR {
		maxR = minR
	}
	den := w.cfg.Params.PileDensity
	if den <= 0 {
		den = 1
	}
	width, height := w.grid.w, w.grid.h
	for p := 0; p < count; p++ {
		cx := w.rng.IntN(width)
		cy := w.rng.IntN(height / 2)
		radius := minR
		if maxR > minR {
			radius += w.rng.IntN(maxR - minR + 1)
		}
		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > r2 {
					continue
				}
				if w.rng.Float64() > den {
					continue
				}
				x, y := cx+dx, cy+dy
				if !w.grid.InBounds(x, y) || w.grid.At(x, y).Material != Empty {
					continue
				}
				w.grid.Set(x, y, Sand)
			}
		}
	}
}
