package options

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"datarange/bounds"
)

// Creates an empty DecimalRange that matches every value
func NewDecimalRange() *DecimalRange {
	return &DecimalRange{}
}

// DecimalRangeOf converts both bounds of r to decimals.
// A -Inf lower or +Inf upper bound is left open. NaN bounds, a +Inf lower
// bound and a -Inf upper bound have no decimal form and fail.
func DecimalRangeOf(r bounds.Range) (*DecimalRange, error) {
	lower, upper := r.Lower(), r.Upper()
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return nil, errors.Wrapf(bounds.ErrInvalidRange, "no decimal bounds for %s", r)
	}

	result := &DecimalRange{}
	if !math.IsInf(lower, -1) {
		low := decimal.NewFromFloat(lower)
		result.Low = &low
	}
	if !math.IsInf(upper, 1) {
		high := decimal.NewFromFloat(upper)
		result.High = &high
	}
	return result, nil
}

var _ Range = (*DecimalRange)(nil)

// DecimalRange describes a lower and upper bound for Decimal values
// Either bound is optional
type DecimalRange struct {
	Low  *decimal.Decimal
	High *decimal.Decimal
}

func (r *DecimalRange) From() (interface{}, bool) {
	if r != nil && r.Low != nil {
		return r.Low.String(), true
	}
	return nil, false
}

func (r *DecimalRange) To() (interface{}, bool) {
	if r != nil && r.High != nil {
		return r.High.String(), true
	}
	return nil, false
}

// Contains reports whether v lies within the present bounds
func (r *DecimalRange) Contains(v decimal.Decimal) bool {
	if r == nil {
		return true
	}
	if r.Low != nil && v.LessThan(*r.Low) {
		return false
	}
	if r.High != nil && v.GreaterThan(*r.High) {
		return false
	}
	return true
}
