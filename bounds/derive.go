package bounds

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Shift moves both bounds by delta, allowing bounds to cross zero
func Shift(r Opt, delta float64) (Range, error) {
	return ShiftCrossing(r, delta, true)
}

// ShiftCrossing moves both bounds by delta.
// When allowZeroCrossing is false a non-zero bound stops at zero instead of
// changing sign.
func ShiftCrossing(r Opt, delta float64, allowZeroCrossing bool) (Range, error) {
	base, ok := r.Get()
	if !ok {
		return Range{}, errors.Wrap(ErrNullRange, "shift")
	}

	if allowZeroCrossing {
		return New(base.lower+delta, base.upper+delta)
	}
	return New(
		shiftNoZeroCrossing(base.lower, delta),
		shiftNoZeroCrossing(base.upper, delta),
	)
}

func shiftNoZeroCrossing(v, delta float64) float64 {
	switch {
	case v > 0:
		return math.Max(v+delta, 0)
	case v < 0:
		return math.Min(v+delta, 0)
	default:
		return v + delta
	}
}

// Expand widens the range by margins expressed as fractions of its length.
// Negative margins contract the range.
func Expand(r Opt, lowerMargin, upperMargin float64) (Range, error) {
	base, ok := r.Get()
	if !ok {
		return Range{}, errors.Wrap(ErrNullRange, "expand")
	}

	length := base.Length()
	lower := base.lower - marginOf(length, lowerMargin)
	upper := base.upper + marginOf(length, upperMargin)
	if (math.IsNaN(lower) && !math.IsNaN(base.lower)) || (math.IsNaN(upper) && !math.IsNaN(base.upper)) {
		// e.g. contracting an unbounded range
		return Range{}, errors.Wrapf(ErrInvalidRange, "expand %s by (%v, %v): undefined bound", base, lowerMargin, upperMargin)
	}

	expanded, err := New(lower, upper)
	if err != nil {
		return Range{}, errors.Wrapf(err, "expand %s by (%v, %v)", base, lowerMargin, upperMargin)
	}
	return expanded, nil
}

// marginOf scales length by margin. A zero margin moves nothing, even for
// an infinite length.
func marginOf(length, margin float64) float64 {
	if margin == 0 {
		return 0
	}
	return length * margin
}

// ExpandToInclude returns the smallest range containing r and v.
// An absent r yields [v, v]. A NaN v leaves r unchanged.
func ExpandToInclude(r Opt, v float64) Range {
	base, ok := r.Get()
	if !ok {
		return Point(v)
	}
	if v < base.lower {
		base.lower = v
	}
	if v > base.upper {
		base.upper = v
	}
	return base
}

// Combine returns the smallest range containing both operands.
// Absent operands are ignored; the result is absent only when both are.
func Combine(a, b Opt) Opt {
	ra, okA := a.Get()
	rb, okB := b.Get()
	switch {
	case !okA:
		return b
	case !okB:
		return a
	}
	return Some(Range{
		lower: math.Min(ra.lower, rb.lower),
		upper: math.Max(ra.upper, rb.upper),
	})
}

// CombineIgnoringNaN is like Combine but NaN bounds do not take part in
// the min/max. Ranges that are entirely NaN are treated as absent.
func CombineIgnoringNaN(a, b Opt) Opt {
	ra, okA := a.Get()
	rb, okB := b.Get()
	switch {
	case !okA && !okB:
		return None()
	case !okA:
		if rb.IsNaN() {
			return None()
		}
		return b
	case !okB:
		if ra.IsNaN() {
			return None()
		}
		return a
	}

	lower := minIgnoringNaN(ra.lower, rb.lower)
	upper := maxIgnoringNaN(ra.upper, rb.upper)
	if math.IsNaN(lower) && math.IsNaN(upper) {
		return None()
	}
	return Some(Range{lower: lower, upper: upper})
}

func minIgnoringNaN(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

func maxIgnoringNaN(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

// Scale multiplies both bounds by a non-negative factor
func Scale(r Opt, factor float64) (Range, error) {
	base, ok := r.Get()
	if !ok {
		return Range{}, errors.Wrap(ErrNullRange, "scale")
	}
	if factor < 0 {
		return Range{}, errors.Wrapf(ErrInvalidRange, "negative scale factor %v", factor)
	}
	return New(base.lower*factor, base.upper*factor)
}

// Of returns the smallest range containing every non-NaN value
func Of(values ...float64) Opt {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return None()
	}
	return Some(Range{
		lower: floats.Min(finite),
		upper: floats.Max(finite),
	})
}
