// Package version parses, compares, and matches dot-separated version
// identifiers with any number of components, such as "1.2", "1.2.3.4", or
// the wildcard forms "1.2.*" and "*".
//
// Concrete versions and wildcard patterns are distinct types. A Version
// holds only numbers and supports ordering; a Pattern may hold wildcards
// and supports only matching. Compatibility testing is the single
// cross-type operation, so a pattern can never end up on the wrong side
// of a comparison.
package version

import (
	"sort"
	"strconv"
	"strings"
)

// Part is one dot-separated component of a Pattern: either a concrete
// number or the wildcard "*". Concrete values are uint64; larger numbers
// do not parse.
type Part struct {
	num  uint64
	wild bool
}

// NumberPart returns a concrete component.
func NumberPart(n uint64) Part { return Part{num: n} }

// WildcardPart returns the "*" component.
func WildcardPart() Part { return Part{wild: true} }

// IsWildcard reports whether the component is "*".
func (p Part) IsWildcard() bool { return p.wild }

// Value returns the numeric value of a concrete component, and 0 for a
// wildcard.
func (p Part) Value() uint64 { return p.num }

func (p Part) String() string {
	if p.wild {
		return "*"
	}
	return strconv.FormatUint(p.num, 10)
}

// Version is a concrete version: an ordered sequence of numeric
// components, most significant first. The zero value is not a valid
// Version; construct one with Parse or New. Versions are immutable and
// safe to share between goroutines.
type Version struct {
	parts []uint64
}

// New builds a Version from explicit components. With no arguments it
// returns version "0".
func New(parts ...uint64) Version {
	if len(parts) == 0 {
		return Version{parts: []uint64{0}}
	}
	owned := make([]uint64, len(parts))
	copy(owned, parts)
	return Version{parts: owned}
}

// Parts returns a copy of the components.
func (v Version) Parts() []uint64 {
	out := make([]uint64, len(v.parts))
	copy(out, v.parts)
	return out
}

// part returns the component at position i, zero-extending past the end.
func (v Version) part(i int) uint64 {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return 0
}

// String renders the dot-joined form, e.g. "1.2.3".
func (v Version) String() string {
	fields := make([]string, len(v.parts))
	for i, n := range v.parts {
		fields[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(fields, ".")
}

// Compare orders two versions component-wise from the most significant
// position, treating the shorter version as zero-padded on the right, so
// "1.2" and "1.2.0" compare equal. It returns -1, 0, or 1.
func (v Version) Compare(o Version) int {
	n := len(v.parts)
	if len(o.parts) > n {
		n = len(o.parts)
	}
	for i := 0; i < n; i++ {
		a, b := v.part(i), o.part(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Equal reports whether v and o denote the same version under Compare's
// zero-padding rule.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// LessThan reports whether v orders before o.
func (v Version) LessThan(o Version) bool { return v.Compare(o) < 0 }

// GreaterThan reports whether v orders after o.
func (v Version) GreaterThan(o Version) bool { return v.Compare(o) > 0 }

// Sort sorts versions in place, ascending.
func Sort(list []Version) {
	sort.Slice(list, func(i, j int) bool { return list[i].LessThan(list[j]) })
}

// Pattern is a version requirement: an ordered sequence of components
// each either a number or a wildcard. A pattern with no wildcards
// behaves as an exact requirement. Patterns are never ordered, only
// matched against concrete Versions.
type Pattern struct {
	parts []Part
}

// NewPattern builds a Pattern from explicit components. With no
// arguments it returns Any.
func NewPattern(parts ...Part) Pattern {
	if len(parts) == 0 {
		return Any()
	}
	owned := make([]Part, len(parts))
	copy(owned, parts)
	return Pattern{parts: owned}
}

// Any returns the pattern "*", which every concrete version matches.
func Any() Pattern {
	return Pattern{parts: []Part{WildcardPart()}}
}

// Parts returns a copy of the components.
func (p Pattern) Parts() []Part {
	out := make([]Part, len(p.parts))
	copy(out, p.parts)
	return out
}

// HasWildcard reports whether any component is "*".
func (p Pattern) HasWildcard() bool {
	for _, part := range p.parts {
		if part.wild {
			return true
		}
	}
	return false
}

// IsConcrete reports whether the pattern contains only numbers.
func (p Pattern) IsConcrete() bool { return !p.HasWildcard() }

// String renders the dot-joined form, e.g. "1.2.*".
func (p Pattern) String() string {
	fields := make([]string, len(p.parts))
	for i, part := range p.parts {
		fields[i] = part.String()
	}
	return strings.Join(fields, ".")
}

// Matches tests a concrete version against the pattern, position by
// position from the most significant component. A wildcard matches any
// number. A pattern shorter than the version matches as a prefix, so
// "1.2" accepts both "1.2.0" and "1.2.3". A pattern longer than the
// version sees the version zero-extended, so "1.2.0" accepts "1.2" but
// "1.2.1" does not.
func (p Pattern) Matches(v Version) bool {
	for i, part := range p.parts {
		if part.wild {
			continue
		}
		if part.num != v.part(i) {
			return false
		}
	}
	return true
}

// LatestCompatible returns the greatest candidate matching the pattern,
// scanning the list once. The second result is false when no candidate
// matches or the list is empty. The candidate list is not retained or
// reordered.
func (p Pattern) LatestCompatible(candidates []Version) (Version, bool) {
	var best Version
	found := false
	for _, c := range candidates {
		if !p.Matches(c) {
			continue
		}
		if !found || c.GreaterThan(best) {
			best = c
			found = true
		}
	}
	return best, found
}
