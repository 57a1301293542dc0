package rle

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by Next once a cell stream has passed its terminator.
	ErrExhausted = errors.New("rle: iterator exhausted")
	// ErrEmptySource is returned by Encoder.Encode when the source yields nothing,
	// not even a terminator.
	ErrEmptySource = errors.New("rle: encode source produced no symbols")
)

// ParseError reports a malformed comment or header line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rle: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// ReadError wraps a failure of the underlying reader.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("rle: read after line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
