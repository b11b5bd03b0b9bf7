// Package bounds provides Range, an immutable closed interval over float64,
// together with functions that derive new ranges from existing ones.
package bounds

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Range describes a closed interval [lower, upper]
// The zero value is the degenerate range [0, 0]
type Range struct {
	lower float64
	upper float64
}

// New creates a Range, failing with ErrInvalidRange when lower > upper
func New(lower, upper float64) (Range, error) {
	if lower > upper {
		return Range{}, errors.Wrapf(ErrInvalidRange, "lower (%v) must be <= upper (%v)", lower, upper)
	}
	return Range{lower: lower, upper: upper}, nil
}

// MustNew is like New but panics on invalid bounds
func MustNew(lower, upper float64) Range {
	r, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// Point returns the degenerate range [v, v]
func Point(v float64) Range {
	return Range{lower: v, upper: v}
}

func (r Range) Lower() float64 {
	return r.lower
}

func (r Range) Upper() float64 {
	return r.upper
}

// Length returns upper - lower
func (r Range) Length() float64 {
	return r.upper - r.lower
}

// CentralValue returns the midpoint of the range
func (r Range) CentralValue() float64 {
	sum := r.lower + r.upper
	if math.IsInf(sum, 0) {
		// finite bounds whose sum overflows
		return r.lower/2.0 + r.upper/2.0
	}
	return sum / 2.0
}

// Contains reports whether lower <= v <= upper
func (r Range) Contains(v float64) bool {
	return v >= r.lower && v <= r.upper
}

// Intersects reports whether [low, high] overlaps the range.
// Touching at a single point counts. Inverted query bounds never intersect.
func (r Range) Intersects(low, high float64) bool {
	if low > high {
		return false
	}
	return low <= r.upper && high >= r.lower
}

func (r Range) IntersectsRange(other Range) bool {
	return r.Intersects(other.lower, other.upper)
}

// Constrain clamps v into the range
func (r Range) Constrain(v float64) float64 {
	switch {
	case v < r.lower:
		return r.lower
	case v > r.upper:
		return r.upper
	default:
		return v
	}
}

// IsNaN reports whether both bounds are NaN
func (r Range) IsNaN() bool {
	return math.IsNaN(r.lower) && math.IsNaN(r.upper)
}

func (r Range) Equal(other Range) bool {
	return r.lower == other.lower && r.upper == other.upper
}

func (r Range) String() string {
	return fmt.Sprintf("Range[%v,%v]", r.lower, r.upper)
}
