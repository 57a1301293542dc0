package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0}
	buf := make([]byte, len(cells)*4)
	fillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d (%v)", i, buf[i], want[i], buf)
		}
	}
}

func TestMarkGridLinesSkipsLiveCells(t *testing.T) {
	cells := []uint8{1, 0, 0, 0}
	buf := make([]byte, len(cells)*4)
	fillBinaryRGBA(buf, cells, color.White, color.Black)
	markGridLines(buf, 2, 2, 2, color.RGBA{R: 30, G: 30, B: 30, A: 255})
	if buf[0] != 255 {
		t.Fatal("grid lines must not paint over live cells")
	}
	if buf[4] != 30 {
		t.Fatalf("(1,0) lies on row 0 and should be tinted, got %d", buf[4])
	}
	if buf[12] != 0 {
		t.Fatalf("(1,1) is off the grid lines, got %d", buf[12])
	}
}
