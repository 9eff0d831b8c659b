package version

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when the input has no components at all.
var ErrEmpty = errors.New("empty version")

// InvalidComponentError reports a component that is neither "*" nor a
// base-10 number representable in a uint64. Index is the zero-based
// position of the offending component.
type InvalidComponentError struct {
	Index int
	Text  string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("invalid version component %q at position %d", e.Text, e.Index)
}

// WildcardComponentError reports a "*" component in input parsed as a
// concrete version. Wildcards are only valid in patterns.
type WildcardComponentError struct {
	Index int
}

func (e *WildcardComponentError) Error() string {
	return fmt.Sprintf("wildcard component at position %d: not allowed in a concrete version", e.Index)
}
