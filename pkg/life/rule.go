package life

import (
	"fmt"
	"sort"
	"strings"
)

// MaxNeighbors is the size of the Moore neighbourhood.
const MaxNeighbors = 8

// Set is a set of neighbour counts. Digits 0-9 are representable so rule
// strings round-trip even when they name counts a Moore neighbourhood cannot
// reach.
type Set uint16

// NewSet returns a set holding the given counts. Values outside 0-9 are ignored.
func NewSet(counts ...int) Set {
	var s Set
	for _, n := range counts {
		if n < 0 || n > 9 {
			continue
		}
		s |= 1 << uint(n)
	}
	return s
}

// Contains reports whether n is in the set.
func (s Set) Contains(n int) bool {
	if n < 0 || n > 9 {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Digits returns the members in ascending order.
func (s Set) Digits() []int {
	var out []int
	for n := 0; n <= 9; n++ {
		if s.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the members as concatenated digits, e.g. "23".
func (s Set) String() string {
	var b strings.Builder
	for _, d := range s.Digits() {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Rule is a birth/survival rule for two-state automata.
type Rule struct {
	Survival Set
	Birth    Set
}

// Conway returns the classic B3/S23 rule.
func Conway() Rule {
	return Rule{Survival: NewSet(2, 3), Birth: NewSet(3)}
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// ParseRule accepts "B3/S23", "S23/B3" and the bare "23/3" survival/birth
// form.
func ParseRule(s string) (Rule, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("life: rule %q: want two parts separated by '/'", s)
	}

	if !strings.ContainsAny(text, "BS") {
		surv, err := parseDigits(parts[0])
		if err != nil {
			return Rule{}, fmt.Errorf("life: rule %q: %w", s, err)
		}
		birth, err := parseDigits(parts[1])
		if err != nil {
			return Rule{}, fmt.Errorf("life: rule %q: %w", s, err)
		}
		return Rule{Survival: surv, Birth: birth}, nil
	}

	var r Rule
	var seenB, seenS bool
	for _, p := range parts {
		if p == "" {
			return Rule{}, fmt.Errorf("life: rule %q: empty part", s)
		}
		set, err := parseDigits(p[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("life: rule %q: %w", s, err)
		}
		switch p[0] {
		case 'B':
			if seenB {
				return Rule{}, fmt.Errorf("life: rule %q: duplicate B part", s)
			}
			seenB = true
			r.Birth = set
		case 'S':
			if seenS {
				return Rule{}, fmt.Errorf("life: rule %q: duplicate S part", s)
			}
			seenS = true
			r.Survival = set
		default:
			return Rule{}, fmt.Errorf("life: rule %q: part %q must start with B or S", s, p)
		}
	}
	return r, nil
}

func parseDigits(s string) (Set, error) {
	var set Set
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return 0, fmt.Errorf("invalid neighbour count %q", ch)
		}
		set |= 1 << uint(ch-'0')
	}
	return set, nil
}

var presets = map[string]Rule{}

// Register adds a named rule preset.
func Register(name string, r Rule) {
	if name == "" {
		return
	}
	presets[strings.ToLower(name)] = r
}

// Lookup resolves a preset name or, failing that, parses s as a rule string.
func Lookup(s string) (Rule, error) {
	if r, ok := presets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return ParseRule(s)
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustParse(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func init() {
	Register("life", Conway())
	Register("highlife", mustParse("B36/S23"))
	Register("daynight", mustParse("B3678/S34678"))
	Register("seeds", mustParse("B2/S"))
	Register("lifewithoutdeath", mustParse("B3/S012345678"))
	Register("34life", mustParse("B34/S34"))
	Register("diamoeba", mustParse("B35678/S5678"))
	Register("morley", mustParse("B368/S245"))
	Register("replicator", mustParse("B1357/S1357"))
}
