package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"sync"
	"time"

	"rle-life/pkg/grid"
	"rle-life/pkg/life"
	"rle-life/pkg/rle"
)

type censusResult struct {
	path       string
	name       string
	rule       string
	initial    int
	population int
	bounds     grid.Rect
	err        error
}

func main() {
	steps := flag.Int("steps", 100, "generations to evolve each pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rule := flag.String("rule", "", "rule preset or B../S.. string overriding each file's rule")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("usage: lifecensus [flags] pattern.rle...")
	}
	var override *life.Rule
	if *rule != "" {
		r, err := life.Lookup(*rule)
		if err != nil {
			log.Fatal(err)
		}
		override = &r
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Evolving %d patterns (%d workers, %d steps)\n", len(paths), *workers, *steps)
	start := time.Now()
	all := census(ctx, paths, *steps, *workers, override)
	report(os.Stdout, all, time.Since(start))
}

// census evolves every file on a pool of workers. Results are ordered by
// final population, largest first, with failures last.
func census(ctx context.Context, paths []string, steps, workers int, override *life.Rule) []censusResult {
	jobs := make(chan string)
	results := make(chan censusResult)
	var wg sync.WaitGroup

	for i := 0; i < max(workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- evolve(ctx, path, steps, override)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, path := range paths {
			jobs <- path
		}
		close(jobs)
	}()

	var all []censusResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if (all[i].err == nil) != (all[j].err == nil) {
			return all[i].err == nil
		}
		if all[i].population != all[j].population {
			return all[i].population > all[j].population
		}
		return all[i].path < all[j].path
	})
	return all
}

func evolve(ctx context.Context, path string, steps int, override *life.Rule) censusResult {
	res := censusResult{path: path}
	p, err := rle.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	sim := life.New(p.Grid, p.Meta.Rule())
	if override != nil {
		sim.SetRule(*override)
	}
	res.name = p.Meta.DisplayName()
	res.rule = sim.Rule().String()
	res.initial = sim.Population()
	if err := sim.StepN(ctx, steps); err != nil {
		res.err = err
	}
	res.population = sim.Population()
	res.bounds = sim.Grid().LiveRectangle()
	return res
}

func report(w io.Writer, all []censusResult, elapsed time.Duration) {
	fmt.Fprintf(w, "\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		if res.err != nil {
			fmt.Fprintf(w, "%2d) %s: %v\n", i+1, res.path, res.err)
			continue
		}
		fmt.Fprintf(w, "%2d) %s %q rule=%s pop=%d->%d bounds=%dx%d at (%d,%d)\n",
			i+1, res.path, res.name, res.rule, res.initial, res.population,
			res.bounds.Width, res.bounds.Height, res.bounds.X, res.bounds.Y)
	}
}
