package scan

import (
	"strings"

	"github.com/joshuapare/scankit/internal/codec"
)

// Kind discriminates the match policy carried by a Target.
type Kind int

const (
	// KindNumeric matches decoded elements against an exact value or a
	// closed interval.
	KindNumeric Kind = iota
	// KindName resolves each decoded 32-bit identifier and matches on the
	// resolved name.
	KindName
)

// Target is a tagged match policy. Construct one with Exact, Between or
// Name; the zero value matches nothing useful and is not a valid target.
type Target struct {
	kind  Kind
	width int

	// numeric bounds; hasHi distinguishes interval matching from equality
	lo    uint64
	hi    uint64
	hasHi bool

	// symbolic query
	name string
	full bool
}

// Exact returns a numeric target matching elements equal to v. width selects
// the element stride and must be 2, 4 or 8; unsupported widths fall back
// to 4.
func Exact(v uint64, width int) Target {
	return Target{kind: KindNumeric, width: normWidth(width), lo: v}
}

// Between returns a numeric target matching elements equal to lo or lying in
// [lo, hi]. A Between target with hi < lo still matches elements equal to lo.
func Between(lo, hi uint64, width int) Target {
	return Target{kind: KindNumeric, width: normWidth(width), lo: lo, hi: hi, hasHi: true}
}

// Name returns a symbolic target. Each 4-byte identifier in the region is
// resolved and the resulting name compared against s: substring containment
// when full is false, exact equality when full is true. Exact equality
// always satisfies the target, even in substring mode.
func Name(s string, full bool) Target {
	return Target{kind: KindName, width: codec.Width32, name: s, full: full}
}

// Kind returns the target's match policy.
func (t Target) Kind() Kind { return t.kind }

// Stride returns the element width the scanner walks with: the chosen
// numeric width, or a fixed 4 bytes for symbolic targets.
func (t Target) Stride() int {
	if t.kind == KindName {
		return codec.Width32
	}
	return t.width
}

// matchValue applies the numeric policy to one decoded element.
func (t Target) matchValue(v uint64) bool {
	if v == t.lo {
		return true
	}
	return t.hasHi && v >= t.lo && v <= t.hi
}

// matchName applies the symbolic policy to one resolved name. Empty names
// never match, even when the requested substring is itself empty.
func (t Target) matchName(resolved string) bool {
	if resolved == "" {
		return false
	}
	if !t.full && strings.Contains(resolved, t.name) {
		return true
	}
	return resolved == t.name
}

func normWidth(w int) int {
	if codec.ValidWidth(w) {
		return w
	}
	return codec.Width32
}
