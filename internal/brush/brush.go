// Package brush turns pointer gestures into grid coordinates. It is pure
// geometry: callers decide what to do with each visited cell, typically
// painting it into the simulation grid.
package brush

// Line traces the integer line from (x0, y0) to (x1, y1) inclusive using
// Bresenham's algorithm and calls fn for every visited coordinate.
func Line(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc calls fn for every coordinate within radius r of (cx, cy). A radius
// of zero yields only the center cell.
func Disc(cx, cy, r int, fn func(x, y int)) {
	if r < 0 {
		r = 0
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			fn(cx+dx, cy+dy)
		}
	}
}

// Stroke stamps a disc of radius r at every point on the line between two
// pointer samples, giving gap-free strokes at any pointer speed. Cells may be
// visited more than once; painting is idempotent so that is harmless.
func Stroke(x0, y0, x1, y1, r int, fn func(x, y int)) {
	Line(x0, y0, x1, y1, func(x, y int) {
		Disc(x, y, r, fn)
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
