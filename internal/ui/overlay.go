//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandbox/internal/core"
)

type frameProvider interface {
	Frame() uint64
}

// Overlay draws optional status and help text on top of the simulation view.
type Overlay struct {
	sim      core.Sim
	showHelp bool
	showInfo bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showInfo: true}
}

// Update toggles overlay visibility from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	y := 24
	if o.showInfo {
		size := o.sim.Size()
		line := fmt.Sprintf("%s %dx%d  tps:%0.0f fps:%0.0f", o.sim.Name(), size.W, size.H, ebiten.ActualTPS(), ebiten.ActualFPS())
		if fp, ok := o.sim.(frameProvider); ok {
			line += fmt.Sprintf("  frame:%d", fp.Frame())
		}
		ebitenutil.DebugPrintAt(screen, line, 4, y)
		y += 16
	}
	if o.showHelp {
		for _, line := range []string{
			"drag: paint  click palette: pick material",
			"space: pause  n: single tick  r: reset  s: reshuffle  c: clear",
			"-/=: brush size  i: info  h: help  q/esc: quit",
		} {
			ebitenutil.DebugPrintAt(screen, line, 4, y)
			y += 16
		}
	}
}
