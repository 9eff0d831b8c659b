package version

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Versions and patterns serialize as their dot-joined string form in
// text, JSON (via the text interfaces), and YAML alike.

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(data []byte) error {
	parsed, err := ParsePattern(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Pattern) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// Slug renders the version with components joined by "_" instead of ".",
// e.g. "1_2_3", for identifiers that cannot contain dots.
func (v Version) Slug() string {
	return strings.ReplaceAll(v.String(), ".", "_")
}

// ParseSlug reads the underscore form produced by Slug. Dots are not
// valid separators here, so a slug and a dotted version never parse
// interchangeably.
func ParseSlug(text string) (Version, error) {
	if text == "" {
		return Version{}, ErrEmpty
	}
	fields := strings.Split(text, "_")
	parts := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Version{}, &InvalidComponentError{Index: i, Text: f}
		}
		parts[i] = n
	}
	return Version{parts: parts}, nil
}
