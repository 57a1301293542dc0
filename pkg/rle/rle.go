// Package rle reads and writes Game of Life patterns in the run-length encoded
// text format:
//
//	#C comment
//	#N name
//	#O author
//	x = 3, y = 3, rule = B3/S23
//	bo$2bo$3o!
//
// Input parses the comment block and header, Decoder expands the body into
// single symbols, and Descriptor plus Encoder write a grid back out.
package rle

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"rle-life/pkg/grid"
)

// Pattern is a decoded RLE file.
type Pattern struct {
	Meta   Metadata
	Grid   *grid.Map
	Width  int64
	Height int64
}

// Read parses r and materializes its cells starting at the file's upper-left
// origin. The returned grid is not marked modified.
func Read(r io.Reader) (*Pattern, error) {
	in, err := NewInput(r)
	if err != nil {
		return nil, err
	}
	meta := in.Metadata()
	g := grid.NewMap()
	if err := Materialize(in.Decoder(), meta.UpperLeft, g); err != nil {
		return nil, err
	}
	g.ResetModified()
	return &Pattern{Meta: meta, Grid: g, Width: in.Width(), Height: in.Height()}, nil
}

// ReadFile is Read for a file path.
func ReadFile(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Materialize walks src with a cursor starting at origin. 'b' and '.' are dead,
// '$' moves to the start of the next row and every other symbol is a live
// state.
func Materialize(src ByteSource, origin grid.Point, g *grid.Map) error {
	x, y := origin.X, origin.Y
	for src.HasNext() {
		c, err := src.Next()
		if err != nil {
			return err
		}
		switch c {
		case EndOfData:
			return nil
		case EndOfRow:
			x = origin.X
			y++
		case Dead, '.':
			x++
		default:
			g.Put(x, y, true)
			x++
		}
	}
	return nil
}

// Write writes the descriptor's lines to w, one per line.
func Write(w io.Writer, d *Descriptor) error {
	lines, err := d.Lines()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the descriptor to path, replacing any existing file.
func WriteFile(path string, d *Descriptor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pattern: %w", err)
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
