package rle

import (
	"bufio"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

// lineReader yields text lines with one line of lookahead, so the header parser
// can inspect a line and leave it for the body decoder without seeking.
type lineReader struct {
	sc      *bufio.Scanner
	peeked  string
	hasPeek bool
	line    int
	err     error
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{sc: sc}
}

// peek returns the next line without consuming it.
func (lr *lineReader) peek() (string, bool) {
	if lr.hasPeek {
		return lr.peeked, true
	}
	if lr.err != nil {
		return "", false
	}
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			lr.err = &ReadError{Line: lr.line, Err: err}
		}
		return "", false
	}
	lr.peeked = strings.TrimSuffix(lr.sc.Text(), "\r")
	lr.hasPeek = true
	return lr.peeked, true
}

// next consumes and returns the next line.
func (lr *lineReader) next() (string, bool) {
	s, ok := lr.peek()
	if !ok {
		return "", false
	}
	lr.hasPeek = false
	lr.peeked = ""
	lr.line++
	return s, true
}

// lineNo is the number of lines consumed so far.
func (lr *lineReader) lineNo() int { return lr.line }

func (lr *lineReader) Err() error { return lr.err }

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func isComment(s string) bool { return strings.HasPrefix(strings.TrimSpace(s), "#") }
