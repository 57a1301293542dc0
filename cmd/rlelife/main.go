package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"rle-life/internal/config"
	"rle-life/pkg/grid"
	"rle-life/pkg/life"
	"rle-life/pkg/rle"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rlelife: ")

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := run(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generation %d, population %d, bounds %v", sum.generation, sum.population, sum.bounds)
}

type summary struct {
	generation int
	population int
	bounds     grid.Rect
}

// run loads the configured pattern, evolves it and writes the result.
func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer) (summary, error) {
	sim, meta, err := load(cfg, stdin)
	if err != nil {
		return summary{}, err
	}
	if cfg.Rule != "" {
		r, err := life.Lookup(cfg.Rule)
		if err != nil {
			return summary{}, err
		}
		sim.SetRule(r)
	}
	sim.SetWorkers(cfg.Workers)

	if err := sim.StepN(ctx, cfg.Generations); err != nil {
		return summary{}, fmt.Errorf("after %d generations: %w", sim.Generation(), err)
	}

	meta.SetRule(sim.Rule())
	if cfg.Name != "" {
		meta.Name = cfg.Name
	}
	if cfg.Author != "" {
		meta.SetAuthor(cfg.Author)
	}
	if sim.Generation() > 0 {
		meta.Comments = append(meta.Comments, fmt.Sprintf("generation %d", sim.Generation()))
	}

	d := rle.NewDescriptor(meta, sim.Grid())
	d.EmitOrigin = cfg.EmitOrigin
	if cfg.Output == "" || cfg.Output == "-" {
		err = rle.Write(stdout, d)
	} else {
		err = rle.WriteFile(cfg.Output, d)
	}
	if err != nil {
		return summary{}, err
	}
	return summary{
		generation: sim.Generation(),
		population: sim.Population(),
		bounds:     sim.Grid().LiveRectangle(),
	}, nil
}

func load(cfg config.Config, stdin io.Reader) (*life.Life, rle.Metadata, error) {
	if cfg.Input == "" && cfg.SoupWidth > 0 && cfg.SoupHeight > 0 {
		meta := rle.DefaultMetadata()
		meta.Name = fmt.Sprintf("Soup %dx%d seed %d", cfg.SoupWidth, cfg.SoupHeight, cfg.Seed)
		area := grid.Rect{Width: cfg.SoupWidth, Height: cfg.SoupHeight}
		return life.NewSoup(area, cfg.SoupDensity, cfg.Seed, life.Conway()), meta, nil
	}

	var (
		p   *rle.Pattern
		err error
	)
	if cfg.Input == "" || cfg.Input == "-" {
		p, err = rle.Read(stdin)
	} else {
		p, err = rle.ReadFile(cfg.Input)
	}
	if err != nil {
		return nil, rle.Metadata{}, err
	}
	return life.New(p.Grid, p.Meta.Rule()), p.Meta, nil
}
