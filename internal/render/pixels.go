package render

import "sandbox/internal/sand"

// fillCellRGBA copies the stored cell colors into an RGBA pixel buffer. The
// renderer does no color computation of its own; every pixel is exactly the
// color stamped when its cell was placed.
func fillCellRGBA(buf []byte, cells []sand.Cell) {
	for i := range cells {
		base := i * 4
		c := cells[i].Color
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
