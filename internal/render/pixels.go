package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	offPx := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// markGridLines tints every step-th column and row of an RGBA buffer of width
// w so large patterns keep a sense of scale. step <= 1 disables the grid.
func markGridLines(buf []byte, w, h, step int, tint color.Color) {
	if step <= 1 || w <= 0 {
		return
	}
	r, g, b, a := tint.RGBA()
	px := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%step != 0 && y%step != 0 {
				continue
			}
			base := (y*w + x) * 4
			if buf[base] != 0 || buf[base+1] != 0 || buf[base+2] != 0 {
				continue
			}
			copy(buf[base:base+4], px[:])
		}
	}
}
