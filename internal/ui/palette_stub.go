//go:build !ebiten

package ui

import "sandbox/internal/core"

// Palette is a no-op placeholder for headless builds.
type Palette struct{}

// NewPalette returns nil in the headless build.
func NewPalette([]core.CatalogEntry, uint8, func(uint8)) *Palette { return nil }

// Selected always reports zero in the headless build.
func (p *Palette) Selected() uint8 { return 0 }

// Select is a no-op in the headless build.
func (p *Palette) Select(uint8) {}

// Update never consumes input in the headless build.
func (p *Palette) Update() bool { return false }

// Draw is a no-op placeholder.
func (p *Palette) Draw(any) {}
