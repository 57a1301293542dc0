package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"rle-life/internal/config"
	"rle-life/pkg/grid"
	"rle-life/pkg/rle"
)

func TestRunGliderFromStdin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generations = 4
	cfg.EmitOrigin = true
	cfg.Author = "Jane Doe jane@example.com"

	var out bytes.Buffer
	sum, err := run(context.Background(), cfg, strings.NewReader("#N Glider\nx = 3, y = 3\nbo$2bo$3o!\n"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if sum.generation != 4 || sum.population != 5 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.bounds != (grid.Rect{X: 1, Y: 1, Width: 3, Height: 3}) {
		t.Fatalf("glider should move by (1,1), bounds %v", sum.bounds)
	}

	p, err := rle.Read(&out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out.String())
	}
	if p.Meta.Name != "Glider" || p.Meta.AuthorEmail != "jane@example.com" {
		t.Fatalf("metadata = %+v", p.Meta)
	}
	if p.Meta.UpperLeft != (grid.Point{X: 1, Y: 1}) {
		t.Fatalf("#R origin = %v", p.Meta.UpperLeft)
	}
	if got := p.Meta.Comments; len(got) != 1 || got[0] != "generation 4" {
		t.Fatalf("comments = %q", got)
	}
}

func TestRunSoupToFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generations = 0
	cfg.SoupWidth, cfg.SoupHeight = 16, 8
	cfg.Rule = "highlife"
	cfg.Output = filepath.Join(t.TempDir(), "soup.rle")

	sum, err := run(context.Background(), cfg, strings.NewReader(""), nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := rle.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if p.Grid.Len() != sum.population {
		t.Fatalf("wrote %d cells, summary says %d", p.Grid.Len(), sum.population)
	}
	if p.Meta.Rule().String() != "B36/S23" {
		t.Fatalf("rule = %v", p.Meta.Rule())
	}
}

func TestRunErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := run(context.Background(), cfg, strings.NewReader("#Z what\nbo$obo!"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unknown comment tag")
	}

	cfg.Rule = "nope"
	if _, err := run(context.Background(), cfg, strings.NewReader("x = 1, y = 1\no!"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unknown rule")
	}

	cfg = config.DefaultConfig()
	cfg.Generations = 10
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := run(ctx, cfg, strings.NewReader("x = 3, y = 1\n3o!"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected cancellation to surface")
	}
}
