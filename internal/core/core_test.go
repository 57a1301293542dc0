package core

import (
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 1)
	g.Set(4, 0, 1)
	g.Set(-1, 0, 1)
	if g.At(3, 2) != 1 {
		t.Fatal("in-range Set was lost")
	}
	total := 0
	for _, v := range g.Cells() {
		total += int(v)
	}
	if total != 1 {
		t.Fatalf("out of range writes leaked, total = %d", total)
	}
	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear left data behind")
	}
}

func TestPacerDue(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return clock }

	if n := p.Due(); n != 0 {
		t.Fatalf("first call should only start the clock, got %d", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := p.Due(); n != 2 {
		t.Fatalf("expected 2 steps after 250ms at 10/s, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := p.Due(); n != 1 {
		t.Fatalf("leftover time should carry over, got %d", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := p.Due(); n != maxCatchUp {
		t.Fatalf("catch-up should be capped at %d, got %d", maxCatchUp, n)
	}
}

func TestPacerRateIsClamped(t *testing.T) {
	p := NewPacer(15)
	for i := 0; i < 40; i++ {
		p.SetRate(p.Rate() * 2)
	}
	if p.Rate() != MaxRate {
		t.Fatalf("rate = %d, expected the %d cap", p.Rate(), MaxRate)
	}
	p.SetRate(-3)
	if p.Rate() != 15 {
		t.Fatalf("non-positive rates fall back to 15, got %d", p.Rate())
	}

	clock := time.Unix(0, 0)
	p.SetRate(MaxRate * 10)
	p.now = func() time.Time { return clock }
	p.Due()
	clock = clock.Add(3 * time.Millisecond)
	if n := p.Due(); n != 3 {
		t.Fatalf("expected 3 steps after 3ms at the cap, got %d", n)
	}
}

type stubSim struct{ steps int }

func (s *stubSim) Name() string { return "stub" }
func (s *stubSim) Size() Size { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64) { s.steps = 0 }
func (s *stubSim) Step() { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("stub", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	sim, err := New("stub", nil)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "stub" {
		t.Fatalf("got sim %q", sim.Name())
	}
	if _, err := New("does-not-exist", nil); err == nil {
		t.Fatal("expected an error for an unknown sim")
	}
}
