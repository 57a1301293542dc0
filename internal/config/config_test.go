package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"generations":  "25",
		"rule":         "highlife",
		"workers":      "0",
		"soup-density": "2",
		"view-width":   "64",
	})
	if c.Generations != 25 || c.Rule != "highlife" || c.ViewWidth != 64 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Workers != DefaultConfig().Workers {
		t.Fatalf("invalid workers should be ignored, got %d", c.Workers)
	}
	if c.SoupDensity != DefaultConfig().SoupDensity {
		t.Fatalf("out of range density should be ignored, got %g", c.SoupDensity)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestParseFlagsOnly(t *testing.T) {
	c, err := Parse(newFlagSet(), []string{"-generations", "7", "-input", "gun.rle", "-emit-origin"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Generations != 7 || c.Input != "gun.rle" || !c.EmitOrigin {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestParseYAMLThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	body := "input: acorn.rle\ngenerations: 100\nrule: B36/S23\nworkers: 4\nsoup_density: 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Parse(newFlagSet(), []string{"-config", path, "-generations", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Generations != 3 {
		t.Fatalf("explicit flag should win over the file, got %d", c.Generations)
	}
	if c.Input != "acorn.rle" || c.Rule != "B36/S23" || c.Workers != 4 || c.SoupDensity != 0.5 {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Scale != DefaultConfig().Scale {
		t.Fatalf("unset values keep their defaults, scale = %d", c.Scale)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"-workers", "0"}); err == nil {
		t.Fatal("expected a validation error for zero workers")
	}
	if _, err := Parse(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("generations: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected a YAML decode error")
	}
}

func TestMapRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Input = "x.rle"
	c.SoupWidth = 40
	c.EmitOrigin = true
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("FromMap(Map()) = %+v, expected %+v", got, c)
	}
}
