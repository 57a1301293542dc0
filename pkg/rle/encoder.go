package rle

import "strconv"

// DefaultMaxLine is the widest body line the encoder writes.
const DefaultMaxLine = 70

// Encoder run-length compresses a symbol stream into body lines.
type Encoder struct {
	MaxLine int
}

// NewEncoder returns an encoder wrapping at DefaultMaxLine.
func NewEncoder() *Encoder {
	return &Encoder{MaxLine: DefaultMaxLine}
}

type run struct {
	count int
	sym   byte
}

func (r run) String() string {
	if r.count == 1 {
		return string(r.sym)
	}
	return strconv.Itoa(r.count) + string(r.sym)
}

// Encode drains src into body lines. Runs of one are written without a count,
// dead runs right before '$' or '!' are dropped, and a line is never broken
// inside a count. A missing terminator is appended. An empty source yields
// ErrEmptySource.
func (e *Encoder) Encode(src ByteSource) ([]string, error) {
	var runs []run
	cur := run{}
	seen := false
	for src.HasNext() {
		c, err := src.Next()
		if err != nil {
			return nil, err
		}
		seen = true
		if c == cur.sym && cur.count > 0 {
			cur.count++
			continue
		}
		if cur.count > 0 {
			runs = pushRun(runs, cur)
		}
		cur = run{count: 1, sym: c}
		if c == EndOfData {
			break
		}
	}
	if !seen {
		return nil, ErrEmptySource
	}
	if cur.count > 0 {
		runs = pushRun(runs, cur)
	}
	if runs[len(runs)-1].sym != EndOfData {
		runs = pushRun(runs, run{count: 1, sym: EndOfData})
	}
	return e.wrap(runs), nil
}

func pushRun(runs []run, r run) []run {
	if r.sym == EndOfRow || r.sym == EndOfData {
		if n := len(runs); n > 0 && runs[n-1].sym == Dead {
			runs = runs[:n-1]
		}
		if n := len(runs); n > 0 && r.sym == EndOfRow && runs[n-1].sym == EndOfRow {
			runs[n-1].count += r.count
			return runs
		}
	}
	if r.sym == EndOfData {
		for n := len(runs); n > 0 && (runs[n-1].sym == EndOfRow || runs[n-1].sym == Dead); n = len(runs) {
			runs = runs[:n-1]
		}
		r.count = 1
	}
	return append(runs, r)
}

func (e *Encoder) wrap(runs []run) []string {
	limit := e.MaxLine
	if limit <= 0 {
		limit = DefaultMaxLine
	}
	var lines []string
	var line []byte
	for _, r := range runs {
		tok := r.String()
		if len(line) > 0 && len(line)+len(tok) > limit {
			lines = append(lines, string(line))
			line = line[:0]
		}
		line = append(line, tok...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
