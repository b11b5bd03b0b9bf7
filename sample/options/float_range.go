package options

import (
	"math"

	"datarange/bounds"
)

var _ Range = FloatRange{}

// FloatRange adapts a bounds.Opt to a filter.
// An absent range leaves both bounds open, as do a -Inf lower and a +Inf upper bound.
type FloatRange struct {
	bounds.Opt
}

func NewFloatRange(r bounds.Range) FloatRange {
	return FloatRange{Opt: bounds.Some(r)}
}

func (r FloatRange) From() (interface{}, bool) {
	v, ok := r.Get()
	if !ok || math.IsInf(v.Lower(), -1) {
		return nil, false
	}
	return v.Lower(), true
}

func (r FloatRange) To() (interface{}, bool) {
	v, ok := r.Get()
	if !ok || math.IsInf(v.Upper(), 1) {
		return nil, false
	}
	return v.Upper(), true
}
