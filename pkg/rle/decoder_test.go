package rle

import (
	"errors"
	"strings"
	"testing"
)

func TestDecoderCountExpansion(t *testing.T) {
	dec, err := NewDecoder(strings.NewReader("3ob5obo3b3$!"))
	if err != nil {
		t.Fatal(err)
	}
	if got := dec.String(); got != "ooobooooobobbb$$$" {
		t.Fatalf("decoded %q", got)
	}
	if dec.HasNext() {
		t.Fatal("decoder should be exhausted")
	}
	if _, err := dec.Next(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	dec, err := NewDecoder(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if dec.Body() != "!" {
		t.Fatalf("body = %q, expected a lone terminator", dec.Body())
	}
	if dec.HasNext() {
		t.Fatal("empty input should produce no symbols")
	}
	if _, err := dec.Next(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestDecoderBodyAssembly(t *testing.T) {
	cases := []struct {
		name string
		in   string
		body string
	}{
		{"skips leading comments", "#C hi\n\n#N x\nbo$\n2bo$\n3o!\n", "bo$2bo$3o!"},
		{"appends terminator", "2o$2o\n", "2o$2o!"},
		{"stops at blank line", "2o\n\n3o!\n", "2o!"},
		{"stops at comment line", "2o\n#C late\n3o!\n", "2o!"},
		{"drops text after terminator", "2o!3o\nbbb\n", "2o!"},
		{"ignores whitespace", "  2o $ \r\n 2 o !", "2o$2o!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := NewDecoder(strings.NewReader(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if dec.Body() != tc.body {
				t.Fatalf("body = %q, expected %q", dec.Body(), tc.body)
			}
		})
	}
}

func TestDecoderSymbols(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"o!", "o"},
		{"obo$!", "obo$"},
		{"2A.B!", "AA.B"},
		{"0o2b!", "bb"},
		{"12!", ""},
		{"o!ooo", "o"},
	}
	for _, tc := range cases {
		if got := newDecoder(tc.in).String(); got != tc.want {
			t.Fatalf("decode(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestDecoderReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := NewDecoder(failingReader{err: boom})
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ReadError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatal("ReadError must wrap the reader's error")
	}
}
