package sand

import (
	"image/color"

	"sandbox/internal/core"
)

// ColorSpec describes how display colors are produced for a material: either
// a single fixed color or a hue/saturation/lightness range sampled once per
// placement. Purely cosmetic; physics never reads colors.
type ColorSpec struct {
	fixed   color.RGBA
	isFixed bool

	hueMin, hueMax     float64 // degrees, hueMax may exceed 360 for wrap
	satMin, satMax     float64
	lightMin, lightMax float64
}

// FixedColor returns a spec that always yields the same opaque color.
func FixedColor(r, g, b uint8) ColorSpec {
	return ColorSpec{fixed: color.RGBA{R: r, G: g, B: b, A: 255}, isFixed: true}
}

// HSLRange returns a spec sampled uniformly from the given hue (degrees),
// saturation and lightness intervals.
func HSLRange(hueMin, hueMax, satMin, satMax, lightMin, lightMax float64) ColorSpec {
	return ColorSpec{
		hueMin: hueMin, hueMax: hueMax,
		satMin: satMin, satMax: satMax,
		lightMin: lightMin, lightMax: lightMax,
	}
}

// Sample draws one color from the spec using the provided RNG. The same RNG
// sequence always yields the same colors, keeping placement deterministic
// under a fixed seed.
func (s ColorSpec) Sample(rng *core.RNG) color.RGBA {
	if s.isFixed {
		return s.fixed
	}
	h := rng.Float64In(s.hueMin, s.hueMax)
	sat := rng.Float64In(s.satMin, s.satMax)
	l := rng.Float64In(s.lightMin, s.lightMax)
	return hslToRGBA(h, sat, l)
}

// Button returns the representative color shown on palette buttons: the
// fixed color, or the midpoint of the sampling range.
func (s ColorSpec) Button() color.RGBA {
	if s.isFixed {
		return s.fixed
	}
	return hslToRGBA(
		(s.hueMin+s.hueMax)/2,
		(s.satMin+s.satMax)/2,
		(s.lightMin+s.lightMax)/2,
	)
}

func hslToRGBA(h, s, l float64) color.RGBA {
	h = h - 360*float64(int(h/360))
	if h < 0 {
		h += 360
	}
	if s <= 0 {
		v := uint8(l*255 + 0.5)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(hp-2*float64(int(hp/2))-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.RGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 255,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
