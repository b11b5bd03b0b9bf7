package bounds

// Opt is a Range that may be absent.
// The zero value is absent.
type Opt struct {
	r  Range
	ok bool
}

func Some(r Range) Opt {
	return Opt{r: r, ok: true}
}

func None() Opt {
	return Opt{}
}

// OptOf converts a nil-able pointer into an Opt
func OptOf(r *Range) Opt {
	if r == nil {
		return None()
	}
	return Some(*r)
}

// Get returns the range and whether it is present.
// Follows the "comma ok" idiom.
func (o Opt) Get() (Range, bool) {
	return o.r, o.ok
}

func (o Opt) IsSome() bool {
	return o.ok
}

// Ptr returns nil when absent
func (o Opt) Ptr() *Range {
	if !o.ok {
		return nil
	}
	r := o.r
	return &r
}

func (o Opt) String() string {
	if !o.ok {
		return "none"
	}
	return o.r.String()
}
