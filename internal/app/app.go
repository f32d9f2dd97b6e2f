//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandbox/internal/brush"
	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sand"
	"sandbox/internal/ui"
)

// Game adapts a sandbox world to the ebiten.Game interface: it paints
// pointer strokes into the grid, advances the world at the configured tick
// rate, and hands the resulting cells to the renderer once per frame.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	palette *ui.Palette
	overlay *ui.Overlay
	timer   *core.FixedStep

	scale  int
	radius int
	seed   int64

	paused   bool
	tickOnce bool

	prevX, prevY int
	stroking     bool
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config) *Game {
	size := world.Size()
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(world),
		timer:   core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		radius:  cfg.Radius,
		seed:    cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if g.radius < 0 {
		g.radius = 0
	}
	g.palette = ui.NewPalette(world.Catalog(), uint8(world.Brush()), func(id uint8) {
		world.SetBrush(sand.MaterialID(id))
	})
	return g
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles input, paints strokes and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.radius > 0 {
		g.radius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.radius++
	}

	g.overlay.Update()
	consumed := g.palette.Update()
	g.handleStroke(consumed)

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// handleStroke paints the current brush along the pointer path. The palette
// consumes clicks that land on its buttons.
func (g *Game) handleStroke(consumed bool) {
	if consumed || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.stroking = false
		return
	}
	mx, my := ebiten.CursorPosition()
	gx, gy := mx/g.scale, my/g.scale
	if !g.stroking {
		g.prevX, g.prevY = gx, gy
		g.stroking = true
	}
	brush.Stroke(g.prevX, g.prevY, gx, gy, g.radius, g.world.Paint)
	g.prevX, g.prevY = gx, gy
}

// Draw renders the current grid, then the palette and overlay on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Grid().Cells(), g.scale)
	g.palette.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout derives the grid dimensions from the window size. Resizing the
// window reallocates the grid; prior cell state is dropped.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	gw := outsideWidth / g.scale
	gh := outsideHeight / g.scale
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	size := g.world.Size()
	if gw != size.W || gh != size.H {
		g.world.Resize(gw, gh)
		g.painter = render.NewGridPainter(gw, gh)
	}
	return gw * g.scale, gh * g.scale
}
