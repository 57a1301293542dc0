package rle

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"rle-life/pkg/grid"
)

func TestHeaderPlainRule(t *testing.T) {
	in, err := NewInput(strings.NewReader("x = 36, y = 9, rule = 23/3\n"))
	if err != nil {
		t.Fatal(err)
	}
	meta := in.Metadata()
	if !slices.Equal(meta.Survival, []int{2, 3}) {
		t.Fatalf("survival = %v", meta.Survival)
	}
	if !slices.Equal(meta.Birth, []int{3}) {
		t.Fatalf("birth = %v", meta.Birth)
	}
	if !in.HasHeader() || in.Width() != 36 || in.Height() != 9 {
		t.Fatalf("header dims = %dx%d (found=%v)", in.Width(), in.Height(), in.HasHeader())
	}
	if meta.UpperLeft != (grid.Point{}) {
		t.Fatalf("header must not set the origin, got %v", meta.UpperLeft)
	}
}

func TestHeaderRuleForms(t *testing.T) {
	cases := []struct {
		header   string
		survival []int
		birth    []int
		states   int
	}{
		{"x = 3, y = 3, rule = B3/S23", []int{2, 3}, []int{3}, 0},
		{"X=3,Y=3,RULE=s23/b36", []int{2, 3}, []int{3, 6}, 0},
		{"x = 3, y = 3, rule = 23 / 3", []int{2, 3}, []int{3}, 0},
		{"x = 3, y = 3, rule = 345/2/4", []int{3, 4, 5}, []int{2}, 4},
		{"x = 3, y = 3, rule = B3/S23:T100,100", []int{2, 3}, []int{3}, 0},
		{"x = 3, y = 3", []int{2, 3}, []int{3}, 0},
		{"x = 3, y = 3, rule = B2/S", []int{}, []int{2}, 0},
	}
	for _, tc := range cases {
		in, err := NewInput(strings.NewReader(tc.header + "\nbo$2bo$3o!\n"))
		if err != nil {
			t.Fatalf("%q: %v", tc.header, err)
		}
		meta := in.Metadata()
		if !slices.Equal(meta.Survival, tc.survival) || !slices.Equal(meta.Birth, tc.birth) || meta.States != tc.states {
			t.Fatalf("%q: survival=%v birth=%v states=%d", tc.header, meta.Survival, meta.Birth, meta.States)
		}
		if got := in.Decoder().String(); got != "bo$bbo$ooo" {
			t.Fatalf("%q: body decoded to %q", tc.header, got)
		}
	}
}

func TestUnsupportedHeaderRule(t *testing.T) {
	_, err := NewInput(strings.NewReader("x = 3, y = 3, rule = LifeHistory\n3o!\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestMissingHeaderLeavesLineForBody(t *testing.T) {
	in, err := NewInput(strings.NewReader("#C glider\nbo$2bo$3o!\n"))
	if err != nil {
		t.Fatal(err)
	}
	if in.HasHeader() {
		t.Fatal("no header line was present")
	}
	if got := in.Decoder().String(); got != "bo$bbo$ooo" {
		t.Fatalf("body decoded to %q", got)
	}
}

func TestCommentTags(t *testing.T) {
	src := strings.Join([]string{
		"#C first comment",
		"#c second",
		"#C",
		"#N Gosper glider gun",
		"#O Bill Gosper <gosper@example.org> 1970-11-01",
		"#R -12 7",
		"#r 23/36",
		"x = 36, y = 9",
		"24bo!",
	}, "\n")
	in, err := NewInput(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	meta := in.Metadata()
	if !slices.Equal(meta.Comments, []string{"first comment", "second"}) {
		t.Fatalf("comments = %q", meta.Comments)
	}
	// The tag letter is not part of the name.
	if meta.Name != "Gosper glider gun" {
		t.Fatalf("name = %q", meta.Name)
	}
	if meta.AuthorLine != "Bill Gosper <gosper@example.org> 1970-11-01" {
		t.Fatalf("author line = %q", meta.AuthorLine)
	}
	if meta.AuthorName != "Bill Gosper" || meta.AuthorEmail != "gosper@example.org" {
		t.Fatalf("author = %q email = %q", meta.AuthorName, meta.AuthorEmail)
	}
	if !meta.AuthorTime.Equal(time.Date(1970, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("author time = %v", meta.AuthorTime)
	}
	if meta.UpperLeft != (grid.Point{X: -12, Y: 7}) {
		t.Fatalf("origin = %v", meta.UpperLeft)
	}
	if !slices.Equal(meta.Survival, []int{2, 3}) || !slices.Equal(meta.Birth, []int{3, 6}) {
		t.Fatalf("rule = %v/%v", meta.Survival, meta.Birth)
	}
}

func TestDefaults(t *testing.T) {
	in, err := NewInput(strings.NewReader("o!"))
	if err != nil {
		t.Fatal(err)
	}
	meta := in.Metadata()
	if meta.DisplayName() != "Unnamed" || meta.DisplayAuthor() != "Unknown" {
		t.Fatalf("defaults = %q / %q", meta.DisplayName(), meta.DisplayAuthor())
	}
	if meta.UpperLeft != (grid.Point{}) {
		t.Fatalf("default origin = %v", meta.UpperLeft)
	}
	if meta.Rule().String() != "B3/S23" {
		t.Fatalf("default rule = %v", meta.Rule())
	}
}

func TestCommentErrors(t *testing.T) {
	cases := []string{
		"#Z what is this",
		"#",
		"#P 12",
		"#P 1 2 3",
		"#R x y",
		"#r 23",
		"#r 2a/3",
		"#r 23/3/x",
	}
	for _, line := range cases {
		_, err := NewInput(strings.NewReader("#C ok\n" + line + "\no!\n"))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *ParseError, got %v", line, err)
		}
		if pe.Line != 2 {
			t.Fatalf("%q: error on line %d, expected 2", line, pe.Line)
		}
		if pe.Text != line {
			t.Fatalf("%q: error text = %q", line, pe.Text)
		}
	}
}
