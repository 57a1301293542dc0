package rle

import (
	"strings"
	"time"

	"rle-life/pkg/grid"
	"rle-life/pkg/life"
)

// Display defaults for patterns that carry no #N or #O line.
const (
	DefaultName   = "Unnamed"
	DefaultAuthor = "Unknown"
)

var authorTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Metadata is everything an RLE file says about a pattern besides its cells.
// A nil Survival or Birth list means the classic rule applies; an empty,
// non-nil list is an explicit empty set.
type Metadata struct {
	Comments []string
	Name     string

	// AuthorLine is the #O line with the tag removed. AuthorName, AuthorEmail
	// and AuthorTime are split out of it.
	AuthorLine  string
	AuthorName  string
	AuthorEmail string
	AuthorTime  time.Time

	UpperLeft grid.Point
	Survival  []int
	Birth     []int
	// States is the state count from a "/states" rule suffix, 0 when absent.
	States int
}

// DefaultMetadata returns metadata for an unnamed pattern under B3/S23.
func DefaultMetadata() Metadata {
	return Metadata{Survival: []int{2, 3}, Birth: []int{3}}
}

// DisplayName returns Name, or DefaultName when it is unset.
func (m Metadata) DisplayName() string {
	if m.Name == "" {
		return DefaultName
	}
	return m.Name
}

// DisplayAuthor returns AuthorName, or DefaultAuthor when it is unset.
func (m Metadata) DisplayAuthor() string {
	if m.AuthorName == "" {
		return DefaultAuthor
	}
	return m.AuthorName
}

// Rule builds the birth/survival rule, falling back to B3/S23 for missing lists.
func (m Metadata) Rule() life.Rule {
	r := life.Conway()
	if m.Survival != nil {
		r.Survival = life.NewSet(m.Survival...)
	}
	if m.Birth != nil {
		r.Birth = life.NewSet(m.Birth...)
	}
	return r
}

// SetRule replaces both rule lists.
func (m *Metadata) SetRule(r life.Rule) {
	m.Survival = digitList(r.Survival)
	m.Birth = digitList(r.Birth)
}

// Author renders "name [email] [time]". It is empty without a name.
func (m Metadata) Author() string {
	if m.AuthorName == "" {
		return ""
	}
	parts := []string{m.AuthorName}
	if m.AuthorEmail != "" {
		parts = append(parts, m.AuthorEmail)
	}
	if !m.AuthorTime.IsZero() {
		parts = append(parts, m.AuthorTime.Format(time.RFC3339))
	}
	return strings.Join(parts, " ")
}

// SetAuthor stores an #O payload and splits it into name, email and time.
func (m *Metadata) SetAuthor(line string) {
	m.AuthorLine = line
	m.AuthorEmail = ""
	m.AuthorTime = time.Time{}
	fields := strings.Fields(line)
	if n := len(fields); n > 0 {
		if ts, ok := parseAuthorTime(fields[n-1]); ok {
			m.AuthorTime = ts
			fields = fields[:n-1]
		}
	}
	var name []string
	for _, f := range fields {
		if m.AuthorEmail == "" && strings.Contains(f, "@") {
			m.AuthorEmail = strings.Trim(f, "<>()")
			continue
		}
		name = append(name, f)
	}
	m.AuthorName = strings.Join(name, " ")
}

func parseAuthorTime(s string) (time.Time, bool) {
	for _, layout := range authorTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func digitList(s life.Set) []int {
	d := s.Digits()
	if d == nil {
		d = []int{}
	}
	return d
}
