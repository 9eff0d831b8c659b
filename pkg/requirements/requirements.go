// Package requirements decodes named version requirements from JSON,
// YAML, or HCL documents and answers which concrete versions satisfy
// them. Decoders operate on byte slices; reading files is up to the
// caller.
package requirements

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/david1155/wildver/pkg/version"
	"gopkg.in/yaml.v3"
)

// Requirement names a component and the version pattern it must satisfy.
type Requirement struct {
	Name    string          `json:"name" yaml:"name"`
	Pattern version.Pattern `json:"pattern" yaml:"pattern"`
}

// Set is a collection of requirements keyed by component name.
type Set struct {
	patterns map[string]version.Pattern
}

// NewSet builds a Set from explicit requirements. A repeated name keeps
// the last entry.
func NewSet(reqs ...Requirement) *Set {
	patterns := make(map[string]version.Pattern, len(reqs))
	for _, r := range reqs {
		patterns[r.Name] = r.Pattern
	}
	return &Set{patterns: patterns}
}

// document is the wire shape shared by the JSON and YAML decoders:
//
//	{"requirements": {"toolchain": "1.2.*"}}
type document struct {
	Requirements map[string]string `json:"requirements" yaml:"requirements"`
}

func fromDocument(doc document) (*Set, error) {
	patterns := make(map[string]version.Pattern, len(doc.Requirements))
	for name, text := range doc.Requirements {
		p, err := version.ParsePattern(text)
		if err != nil {
			return nil, fmt.Errorf("requirement %q: %w", name, err)
		}
		patterns[name] = p
	}
	return &Set{patterns: patterns}, nil
}

// DecodeJSON parses a JSON requirements document.
func DecodeJSON(data []byte) (*Set, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing requirements: %w", err)
	}
	return fromDocument(doc)
}

// DecodeYAML parses a YAML requirements document.
func DecodeYAML(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing requirements: %w", err)
	}
	return fromDocument(doc)
}

// Decode parses a requirements document, trying JSON first and YAML if
// that fails.
func Decode(data []byte) (*Set, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty requirements document")
	}
	set, jsonErr := DecodeJSON(data)
	if jsonErr == nil {
		return set, nil
	}
	set, yamlErr := DecodeYAML(data)
	if yamlErr != nil {
		return nil, fmt.Errorf("parsing requirements: %w", yamlErr)
	}
	return set, nil
}

// Len returns the number of requirements in the set.
func (s *Set) Len() int { return len(s.patterns) }

// Names returns the requirement names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern returns the pattern for a named requirement.
func (s *Set) Pattern(name string) (version.Pattern, bool) {
	p, ok := s.patterns[name]
	return p, ok
}

// Satisfied reports whether v satisfies the named requirement. An
// unknown name is never satisfied.
func (s *Set) Satisfied(name string, v version.Version) bool {
	p, ok := s.patterns[name]
	return ok && p.Matches(v)
}

// Resolve picks the latest candidate satisfying the named requirement.
// The second result is false for an unknown name or when no candidate
// matches.
func (s *Set) Resolve(name string, candidates []version.Version) (version.Version, bool) {
	p, ok := s.patterns[name]
	if !ok {
		return version.Version{}, false
	}
	return p.LatestCompatible(candidates)
}
