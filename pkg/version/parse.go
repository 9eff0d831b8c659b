package version

import (
	"strconv"
	"strings"
)

// Parse reads a concrete version such as "1.2.3". Components are split
// on "." and each must be a base-10 uint64: signs, whitespace, empty
// components (as in "1.2." or "1..2"), and values past the uint64 range
// all fail with *InvalidComponentError. A "*" component fails with
// *WildcardComponentError; use ParsePattern for wildcarded input. Empty
// input fails with ErrEmpty.
func Parse(text string) (Version, error) {
	if text == "" {
		return Version{}, ErrEmpty
	}
	fields := strings.Split(text, ".")
	parts := make([]uint64, len(fields))
	for i, f := range fields {
		if f == "*" {
			return Version{}, &WildcardComponentError{Index: i}
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Version{}, &InvalidComponentError{Index: i, Text: f}
		}
		parts[i] = n
	}
	return Version{parts: parts}, nil
}

// ParsePattern reads a version requirement such as "1.2.*". The grammar
// is the same as Parse's with "*" allowed at any position. Empty input
// fails with ErrEmpty, anything else malformed with
// *InvalidComponentError.
func ParsePattern(text string) (Pattern, error) {
	if text == "" {
		return Pattern{}, ErrEmpty
	}
	fields := strings.Split(text, ".")
	parts := make([]Part, len(fields))
	for i, f := range fields {
		if f == "*" {
			parts[i] = WildcardPart()
			continue
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Pattern{}, &InvalidComponentError{Index: i, Text: f}
		}
		parts[i] = NumberPart(n)
	}
	return Pattern{parts: parts}, nil
}
