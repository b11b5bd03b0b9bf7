package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	base := Some(MustNew(-100, 100))

	tests := []struct {
		name          string
		r             Opt
		delta         float64
		allowCrossing bool
		want          Range
	}{
		{"positive delta", base, 100, true, MustNew(0, 200)},
		{"negative delta", base, -100, true, MustNew(-200, 0)},
		{"positive over lower", base, 150, true, MustNew(50, 250)},
		{"positive over lower without crossing", base, 150, false, MustNew(0, 250)},
		{"positive without crossing", base, 100, false, MustNew(0, 200)},
		{"negative without crossing", base, -100, false, MustNew(-200, 0)},
		{"negative over upper", base, -150, true, MustNew(-250, -50)},
		{"negative over upper without crossing", base, -150, false, MustNew(-250, 0)},
		{"zero delta", base, 0, false, MustNew(-100, 100)},
		{"zero delta crossing", base, 0, true, MustNew(-100, 100)},
		{"zero range without crossing", Some(Point(0)), 100, false, MustNew(100, 100)},
		{"zero range crossing", Some(Point(0)), 100, true, MustNew(100, 100)},
		{"positive range shifted down", Some(MustNew(10, 20)), -50, false, MustNew(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftCrossing(tt.r, tt.delta, tt.allowCrossing)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	got, err := Shift(Some(Point(0)), 100)
	require.NoError(t, err)
	require.Equal(t, MustNew(100, 100), got)

	crossing, err := ShiftCrossing(base, -150, true)
	require.NoError(t, err)
	got, err = Shift(base, -150)
	require.NoError(t, err)
	require.Equal(t, crossing, got)

	_, err = ShiftCrossing(None(), 5, false)
	require.ErrorIs(t, err, ErrNullRange)
	_, err = Shift(None(), 5)
	require.ErrorIs(t, err, ErrNullRange)
}

func TestExpand(t *testing.T) {
	base := Some(MustNew(-100, 100))

	tests := []struct {
		name         string
		lower, upper float64
		want         Range
	}{
		{"no margins", 0, 0, MustNew(-100, 100)},
		{"upper only", 0, 1, MustNew(-100, 300)},
		{"lower only", 1, 0, MustNew(-300, 100)},
		{"both", 1, 1, MustNew(-300, 300)},
		{"contract both", -0.25, -0.25, MustNew(-50, 50)},
		{"contract lower expand upper", -0.25, 1, MustNew(-50, 300)},
		{"expand lower contract upper", 1, -0.25, MustNew(-300, 50)},
		{"collapse to midpoint", -0.5, -0.5, MustNew(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(base, tt.lower, tt.upper)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := Expand(base, -0.25, -1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Expand(None(), 0.25, 0.25)
	require.ErrorIs(t, err, ErrNullRange)
	require.NotErrorIs(t, err, ErrInvalidRange)

	got, err := Expand(Some(Point(5)), 10, 10)
	require.NoError(t, err)
	require.Equal(t, Point(5), got)
}

func TestNonFiniteBounds(t *testing.T) {
	inf := math.Inf(1)
	unbounded := Some(MustNew(-inf, inf))

	got, err := Expand(unbounded, 1, 1)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, inf), got)

	got, err = Expand(unbounded, 0, 0)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, inf), got)

	got, err = Expand(Some(MustNew(0, inf)), 1, 0)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, inf), got)

	_, err = Expand(unbounded, -0.25, -0.25)
	require.ErrorIs(t, err, ErrInvalidRange)

	got, err = ShiftCrossing(unbounded, 5, false)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, inf), got)

	got, err = Shift(Some(MustNew(-inf, 5)), 10)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, 15), got)

	got, err = ShiftCrossing(Some(MustNew(-inf, 5)), -10, false)
	require.NoError(t, err)
	require.Equal(t, MustNew(-inf, 0), got)

	require.Equal(t, MustNew(0, inf), ExpandToInclude(Some(MustNew(0, 1)), inf))
	require.Equal(t, MustNew(0, 1), ExpandToInclude(Some(MustNew(0, 1)), math.NaN()))
	require.True(t, MustNew(-inf, inf).Contains(1e308))
	require.False(t, MustNew(-inf, inf).Contains(math.NaN()))
	require.Equal(t, Some(MustNew(-inf, inf)), Combine(Some(MustNew(-inf, 0)), Some(MustNew(0, inf))))

	nan := Some(MustNew(math.NaN(), math.NaN()))
	got, err = Expand(nan, 1, 1)
	require.NoError(t, err)
	require.True(t, got.IsNaN())
	got, err = Shift(nan, 1)
	require.NoError(t, err)
	require.True(t, got.IsNaN())
}

func TestExpandToInclude(t *testing.T) {
	base := Some(MustNew(-100, 100))

	require.Equal(t, MustNew(-100, -100), ExpandToInclude(None(), -100))
	require.Equal(t, MustNew(-100, 100), ExpandToInclude(base, 100))
	require.Equal(t, MustNew(-100, 100), ExpandToInclude(base, -100))
	require.Equal(t, MustNew(-200, 100), ExpandToInclude(base, -200))
	require.Equal(t, MustNew(-100, 200), ExpandToInclude(base, 200))
	require.Equal(t, MustNew(-100, 100), ExpandToInclude(base, 0))
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		a, b Opt
		want Opt
	}{
		{"equal", Some(MustNew(-1, 1)), Some(MustNew(-1, 1)), Some(MustNew(-1, 1))},
		{"disjoint ascending", Some(MustNew(-1, 1)), Some(MustNew(3, 5)), Some(MustNew(-1, 5))},
		{"disjoint descending", Some(MustNew(3, 5)), Some(MustNew(-1, 1)), Some(MustNew(-1, 5))},
		{"overlapping", Some(MustNew(-6, -2)), Some(MustNew(-4, 4)), Some(MustNew(-6, 4))},
		{"overlapping swapped", Some(MustNew(-4, 4)), Some(MustNew(-6, -2)), Some(MustNew(-6, 4))},
		{"subset", Some(MustNew(-5, 5)), Some(MustNew(-4, 4)), Some(MustNew(-5, 5))},
		{"superset", Some(MustNew(-4, 4)), Some(MustNew(-5, 5)), Some(MustNew(-5, 5))},
		{"touching", Some(MustNew(-3, 3)), Some(MustNew(3, 9)), Some(MustNew(-3, 9))},
		{"touching swapped", Some(MustNew(3, 9)), Some(MustNew(-3, 3)), Some(MustNew(-3, 9))},
		{"first absent", None(), Some(MustNew(-10, 10)), Some(MustNew(-10, 10))},
		{"second absent", Some(MustNew(-10, 10)), None(), Some(MustNew(-10, 10))},
		{"both absent", None(), None(), None()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Combine(tt.a, tt.b))
		})
	}
}

func TestCombineIgnoringNaN(t *testing.T) {
	nan := math.NaN()

	require.Equal(t, None(), CombineIgnoringNaN(None(), None()))
	require.Equal(t, None(), CombineIgnoringNaN(None(), Some(MustNew(nan, nan))))
	require.Equal(t, None(), CombineIgnoringNaN(Some(MustNew(nan, nan)), None()))
	require.Equal(t, Some(MustNew(1, 2)), CombineIgnoringNaN(None(), Some(MustNew(1, 2))))
	require.Equal(t, Some(MustNew(1, 5)), CombineIgnoringNaN(Some(MustNew(nan, 5)), Some(MustNew(1, nan))))
	require.Equal(t, Some(MustNew(-6, 4)), CombineIgnoringNaN(Some(MustNew(-6, -2)), Some(MustNew(-4, 4))))
	require.Equal(t, None(), CombineIgnoringNaN(Some(MustNew(nan, nan)), Some(MustNew(nan, nan))))
}

func TestScale(t *testing.T) {
	got, err := Scale(Some(MustNew(-2, 4)), 2.5)
	require.NoError(t, err)
	require.Equal(t, MustNew(-5, 10), got)

	got, err = Scale(Some(MustNew(-2, 4)), 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Length())

	_, err = Scale(Some(MustNew(-2, 4)), -1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Scale(None(), 2)
	require.ErrorIs(t, err, ErrNullRange)
}

func TestOf(t *testing.T) {
	require.Equal(t, None(), Of())
	require.Equal(t, None(), Of(math.NaN(), math.NaN()))
	require.Equal(t, Some(Point(7)), Of(7))
	require.Equal(t, Some(MustNew(-1, 3)), Of(3, -1, 2))
	require.Equal(t, Some(MustNew(-1, 3)), Of(3, math.NaN(), -1))
}

func TestOpt(t *testing.T) {
	var zero Opt
	require.False(t, zero.IsSome())
	require.Nil(t, zero.Ptr())
	require.Equal(t, "none", zero.String())

	r := MustNew(1, 2)
	o := Some(r)
	got, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, r, got)
	require.Equal(t, o, OptOf(o.Ptr()))
	require.Equal(t, None(), OptOf(nil))
	require.Equal(t, "Range[1,2]", o.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"Range[-10,10]", MustNew(-10, 10)},
		{"[-0.25, 1.5]", MustNew(-0.25, 1.5)},
		{" 3,3 ", Point(3)},
		{"-1e3,1e3", MustNew(-1000, 1000)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	r := MustNew(-6.5, 4)
	got, err := Parse(r.String())
	require.NoError(t, err)
	require.Equal(t, r, got)

	for _, bad := range []string{"", "[1,2", "1;2", "1,2,3", "a,2", "1,b", "Range1,2", "Range 1,2"} {
		_, err := Parse(bad)
		require.Error(t, err, bad)
	}

	_, err = Parse("[5,1]")
	require.ErrorIs(t, err, ErrInvalidRange)
}
