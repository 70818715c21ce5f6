package surface

import (
	"fmt"
	"strings"
)

// Mapping selects how normalized grid coordinates in [0, 1] are placed
// into a surface's domain.
type Mapping int

const (
	// MappingReference computes nu*(Max-Min) - Min and is the default.
	// For domains with Min = 0 it is identical to MappingAffine;
	// otherwise the sampled interval is shifted by -2*Min.
	MappingReference Mapping = iota

	// MappingAffine computes nu*(Max-Min) + Min, sampling exactly [Min, Max].
	MappingAffine
)

// String returns the mapping name used in config files and flags.
func (m Mapping) String() string {
	switch m {
	case MappingReference:
		return "reference"
	case MappingAffine:
		return "affine"
	default:
		return fmt.Sprintf("Mapping(%d)", int(m))
	}
}

// ParseMapping parses a mapping name. The empty string selects
// MappingReference.
func ParseMapping(s string) (Mapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reference":
		return MappingReference, nil
	case "affine":
		return MappingAffine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMapping, s)
	}
}

// apply maps a normalized coordinate into r.
func (m Mapping) apply(n float32, r Range) float32 {
	if m == MappingAffine {
		return n*r.Span() + r.Min
	}
	return n*r.Span() - r.Min
}
