package app

import "rle-life/internal/core"

// viewSize is the pixel size of a sim drawn at scale with a HUD panel of
// hudWidth pixels to its right.
func viewSize(s core.Size, scale, hudWidth int) (int, int) {
	return s.W*scale + hudWidth, s.H * scale
}
