package rle

import (
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`(?i)^\s*x\s*=\s*(\d+)\s*,*\s*y\s*=\s*(\d+)(?:\s*,*\s*rule\s*=\s*(.+?))?\s*$`)

	plainRulePattern = regexp.MustCompile(`^(\d*)/(\d*)(?:/(\d+))?$`)
	bsRulePattern    = regexp.MustCompile(`(?i)^b(\d*)/s(\d*)(?:/(\d+))?$`)
	sbRulePattern    = regexp.MustCompile(`(?i)^s(\d*)/b(\d*)(?:/(\d+))?$`)

	integerPattern = regexp.MustCompile(`-?\d+`)
)

// Input parses the comment block and optional header of an RLE stream at
// construction and leaves the body to a Decoder.
type Input struct {
	meta      Metadata
	width     int64
	height    int64
	hasHeader bool
	dec       *Decoder
}

// NewInput reads comments and header from r and prepares the body decoder.
func NewInput(r io.Reader) (*Input, error) {
	lr := newLineReader(r)
	in := &Input{meta: DefaultMetadata()}

	for {
		s, ok := lr.peek()
		if !ok {
			break
		}
		if isBlank(s) {
			lr.next()
			continue
		}
		if !isComment(s) {
			break
		}
		lr.next()
		if err := in.parseComment(strings.TrimSpace(s), lr.lineNo()); err != nil {
			return nil, err
		}
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}

	if s, ok := lr.peek(); ok {
		if m := headerPattern.FindStringSubmatch(s); m != nil {
			lr.next()
			if err := in.parseHeader(m, s, lr.lineNo()); err != nil {
				return nil, err
			}
		}
	}

	dec, err := decodeFrom(lr)
	if err != nil {
		return nil, err
	}
	in.dec = dec
	return in, nil
}

// Metadata returns the parsed comments, origin and rule.
func (in *Input) Metadata() Metadata { return in.meta }

// Decoder returns the body decoder. It is single pass.
func (in *Input) Decoder() *Decoder { return in.dec }

// HasHeader reports whether an "x = .., y = .." line was found.
func (in *Input) HasHeader() bool { return in.hasHeader }

// Width is the header's x value, 0 without a header.
func (in *Input) Width() int64 { return in.width }

// Height is the header's y value, 0 without a header.
func (in *Input) Height() int64 { return in.height }

func (in *Input) parseComment(s string, line int) error {
	if len(s) < 2 {
		return &ParseError{Line: line, Text: s, Msg: "invalid RLE comment"}
	}
	rest := s[2:]
	switch s[1] {
	case 'C', 'c':
		if text := strings.TrimSpace(rest); text != "" {
			in.meta.Comments = append(in.meta.Comments, text)
		}
	case 'N':
		if name := strings.TrimSpace(rest); name != "" {
			in.meta.Name = name
		}
	case 'O':
		in.meta.SetAuthor(strings.TrimSpace(rest))
	case 'P', 'R':
		nums := integerPattern.FindAllString(rest, -1)
		if len(nums) != 2 {
			return &ParseError{Line: line, Text: s, Msg: "origin needs two integers"}
		}
		x, errX := strconv.ParseInt(nums[0], 10, 64)
		y, errY := strconv.ParseInt(nums[1], 10, 64)
		if errX != nil || errY != nil {
			return &ParseError{Line: line, Text: s, Msg: "origin out of range"}
		}
		in.meta.UpperLeft.X, in.meta.UpperLeft.Y = x, y
	case 'r':
		parts := strings.Split(strings.TrimSpace(rest), "/")
		if len(parts) < 2 || len(parts) > 3 {
			return &ParseError{Line: line, Text: s, Msg: "rule needs survival/birth[/states]"}
		}
		if err := in.setRule(parts[0], parts[1], stateText(parts), line, s); err != nil {
			return err
		}
	default:
		return &ParseError{Line: line, Text: s, Msg: "invalid RLE comment"}
	}
	return nil
}

func (in *Input) parseHeader(m []string, s string, line int) error {
	w, errW := strconv.ParseInt(m[1], 10, 64)
	h, errH := strconv.ParseInt(m[2], 10, 64)
	if errW != nil || errH != nil {
		return &ParseError{Line: line, Text: s, Msg: "header dimensions out of range"}
	}
	in.width, in.height, in.hasHeader = w, h, true
	if m[3] == "" {
		return nil
	}

	rule, _, _ := strings.Cut(stripSpace(m[3]), ":")
	if r := plainRulePattern.FindStringSubmatch(rule); r != nil {
		return in.setRule(r[1], r[2], r[3], line, s)
	}
	if r := bsRulePattern.FindStringSubmatch(rule); r != nil {
		return in.setRule(r[2], r[1], r[3], line, s)
	}
	if r := sbRulePattern.FindStringSubmatch(rule); r != nil {
		return in.setRule(r[1], r[2], r[3], line, s)
	}
	return &ParseError{Line: line, Text: s, Msg: "unsupported rule"}
}

func (in *Input) setRule(survival, birth, states string, line int, text string) error {
	surv, ok := expandDigits(strings.TrimSpace(survival))
	if !ok {
		return &ParseError{Line: line, Text: text, Msg: "survival rule must be digits"}
	}
	born, ok := expandDigits(strings.TrimSpace(birth))
	if !ok {
		return &ParseError{Line: line, Text: text, Msg: "birth rule must be digits"}
	}
	in.meta.Survival = surv
	in.meta.Birth = born
	if states = strings.TrimSpace(states); states != "" {
		n, err := strconv.Atoi(states)
		if err != nil || n < 0 {
			return &ParseError{Line: line, Text: text, Msg: "state count must be a number"}
		}
		in.meta.States = n
	}
	return nil
}

func stateText(parts []string) string {
	if len(parts) == 3 {
		return parts[2]
	}
	return ""
}

// expandDigits turns "23" into [2 3].
func expandDigits(s string) ([]int, bool) {
	out := []int{}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, false
		}
		out = append(out, int(s[i]-'0'))
	}
	return out, true
}
