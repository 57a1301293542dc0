package rle

import (
	"io"
	"math"
	"strings"
	"unicode"
)

// Symbols of the run-length body.
const (
	Alive     = 'o'
	Dead      = 'b'
	EndOfRow  = '$'
	EndOfData = '!'
)

// ByteSource is a one-shot pull iterator over body symbols.
type ByteSource interface {
	HasNext() bool
	Next() (byte, error)
}

// Decoder expands a run-length body into single symbols. Counts are applied
// lazily; the terminating '!' is never produced. A Decoder is single pass.
type Decoder struct {
	body string
	pos  int

	sym       byte
	remaining int
	done      bool
}

// NewDecoder reads a body from r. Leading blank and '#' lines are skipped.
func NewDecoder(r io.Reader) (*Decoder, error) {
	return decodeFrom(newLineReader(r))
}

func decodeFrom(lr *lineReader) (*Decoder, error) {
	for {
		s, ok := lr.peek()
		if !ok || !(isBlank(s) || isComment(s)) {
			break
		}
		lr.next()
	}

	var b strings.Builder
	for {
		s, ok := lr.peek()
		if !ok || isBlank(s) || isComment(s) {
			break
		}
		lr.next()
		s = stripSpace(s)
		if i := strings.IndexByte(s, EndOfData); i >= 0 {
			b.WriteString(s[:i+1])
			break
		}
		b.WriteString(s)
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}

	body := b.String()
	if body == "" {
		body = string(EndOfData)
	} else if body[len(body)-1] != EndOfData {
		body += string(EndOfData)
	}
	return newDecoder(body), nil
}

func newDecoder(body string) *Decoder {
	d := &Decoder{body: body}
	d.advance()
	return d
}

// Body returns the assembled, '!'-terminated body text.
func (d *Decoder) Body() string { return d.body }

// HasNext reports whether Next will produce another symbol.
func (d *Decoder) HasNext() bool { return !d.done }

// Next returns the next expanded symbol, or ErrExhausted after the terminator.
func (d *Decoder) Next() (byte, error) {
	if d.done {
		return 0, ErrExhausted
	}
	sym := d.sym
	d.remaining--
	if d.remaining == 0 {
		d.advance()
	}
	return sym, nil
}

// String drains the decoder and returns everything it produced.
func (d *Decoder) String() string {
	var b strings.Builder
	for d.HasNext() {
		c, err := d.Next()
		if err != nil {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

// advance loads the next token with a positive count, or marks the decoder done
// at the terminator.
func (d *Decoder) advance() {
	for d.pos < len(d.body) {
		count := 0
		digits := false
		for d.pos < len(d.body) && isDigit(d.body[d.pos]) {
			digits = true
			if count < math.MaxInt32 {
				count = count*10 + int(d.body[d.pos]-'0')
			}
			d.pos++
		}
		if count > math.MaxInt32 {
			count = math.MaxInt32
		}
		if d.pos >= len(d.body) {
			break
		}
		sym := d.body[d.pos]
		d.pos++
		if sym == EndOfData {
			break
		}
		if !digits {
			count = 1
		}
		if count == 0 {
			continue
		}
		d.sym = sym
		d.remaining = count
		return
	}
	d.done = true
	d.remaining = 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
