package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Semver converts the version to a Masterminds semver version. Versions
// with one or two components are zero-padded ("1.2" becomes 1.2.0);
// versions with more than three components cannot be represented and
// return an error.
func (v Version) Semver() (*semver.Version, error) {
	if len(v.parts) > 3 {
		return nil, fmt.Errorf("version %q has %d components, semver allows at most 3", v, len(v.parts))
	}
	return semver.New(v.part(0), v.part(1), v.part(2), "", ""), nil
}

// Constraint converts the pattern to a Masterminds semver constraint
// with the same acceptance behavior over three-component versions.
// Wildcards and missing trailing components become a ">=X.Y.Z, <bound"
// range; a full three-component concrete pattern becomes an exact
// constraint. Patterns with more than three components, and patterns
// with a concrete component after a wildcard (such as "1.*.3"), do not
// describe a contiguous range and return an error.
func (p Pattern) Constraint() (*semver.Constraints, error) {
	if len(p.parts) > 3 {
		return nil, fmt.Errorf("pattern %q has %d components, semver allows at most 3", p, len(p.parts))
	}

	var prefix []uint64
	for i, part := range p.parts {
		if !part.wild {
			prefix = append(prefix, part.num)
			continue
		}
		for _, rest := range p.parts[i:] {
			if !rest.wild {
				return nil, fmt.Errorf("pattern %q has a number after a wildcard and is not a contiguous range", p)
			}
		}
		break
	}

	switch len(prefix) {
	case 0:
		return semver.NewConstraint(">=0.0.0")
	case 1:
		return semver.NewConstraint(fmt.Sprintf(">=%d.0.0, <%d.0.0", prefix[0], prefix[0]+1))
	case 2:
		return semver.NewConstraint(fmt.Sprintf(">=%d.%d.0, <%d.%d.0", prefix[0], prefix[1], prefix[0], prefix[1]+1))
	default:
		return semver.NewConstraint(fmt.Sprintf("%d.%d.%d", prefix[0], prefix[1], prefix[2]))
	}
}
