//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sandbox/internal/core"
)

const (
	paletteMargin  = 4
	paletteSwatch  = 12
	paletteGap     = 10
	paletteLabelDY = 10
)

// Palette renders a clickable strip of material buttons along the top edge of
// the screen and tracks the current selection.
type Palette struct {
	entries  []core.CatalogEntry
	rects    []image.Rectangle
	selected uint8
	onSelect func(id uint8)

	pixel *ebiten.Image
}

// NewPalette builds a palette for the given catalog entries. onSelect fires
// whenever a button is clicked.
func NewPalette(entries []core.CatalogEntry, selected uint8, onSelect func(id uint8)) *Palette {
	p := &Palette{
		entries:  entries,
		rects:    make([]image.Rectangle, len(entries)),
		selected: selected,
		onSelect: onSelect,
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	p.layout()
	return p
}

func (p *Palette) layout() {
	x := paletteMargin
	for i, e := range p.entries {
		w := paletteSwatch + 4 + 7*len(e.Name)
		p.rects[i] = image.Rect(x, paletteMargin, x+w, paletteMargin+paletteSwatch)
		x += w + paletteGap
	}
}

// Selected returns the id of the currently selected material.
func (p *Palette) Selected() uint8 { return p.selected }

// Select changes the selection without firing the callback, used when the
// selection changes from the keyboard.
func (p *Palette) Select(id uint8) { p.selected = id }

// Update handles palette clicks. It reports true when the cursor interaction
// was consumed, so callers skip painting for that click.
func (p *Palette) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	for i, r := range p.rects {
		if mx >= r.Min.X && mx < r.Max.X && my >= r.Min.Y && my < r.Max.Y {
			p.selected = p.entries[i].ID
			if p.onSelect != nil {
				p.onSelect(p.selected)
			}
			return true
		}
	}
	return false
}

// Draw paints the button strip.
func (p *Palette) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for i, e := range p.entries {
		r := p.rects[i]
		if e.ID == p.selected {
			p.fillRect(screen, r.Min.X-2, r.Min.Y-2, paletteSwatch+4, paletteSwatch+4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
		p.fillRect(screen, r.Min.X, r.Min.Y, paletteSwatch, paletteSwatch, e.Button)
		text.Draw(screen, e.Name, face, r.Min.X+paletteSwatch+4, r.Min.Y+paletteLabelDY, color.White)
	}
}

func (p *Palette) fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.pixel, op)
}
