package fcheck

// DomainType distinguishes the two physical encodings a Domain may take.
type DomainType int

const (
	// Values is an explicit list of distinct integers.
	Values DomainType = iota
	// Ranges is an even-length list encoding disjoint half-open
	// intervals [min0,max0), [min1,max1), ... in strictly ascending
	// order, with max(i) < min(i+1).
	Ranges
)

func (t DomainType) String() string {
	if t == Ranges {
		return "Ranges"
	}
	return "Values"
}

// Domain is a pure value-type describing the finite feasible integer set
// of one variable. It is copied by value; callers that want to mutate a
// shared Domain must assign the result back.
//
// A Domain in Ranges form only ever narrows into Values form, never back
// (see Intersect/Intersect2 below) — propagation tends toward singletons,
// and a short Values list is cheaper to re-scan than interval arithmetic
// once a domain is small.
type Domain struct {
	Type DomainType
	Data []int
}

// NewValuesDomain builds a Values-form domain from the given integers. The
// slice is copied; duplicates are not deduplicated (callers are expected
// to pass distinct values).
func NewValuesDomain(values ...int) Domain {
	d := Domain{Type: Values, Data: make([]int, len(values))}
	copy(d.Data, values)
	return d
}

// NewRangeDomain builds a single-interval Ranges-form domain [lo, hi).
func NewRangeDomain(lo, hi int) Domain {
	if lo >= hi {
		return Domain{Type: Ranges, Data: nil}
	}
	return Domain{Type: Ranges, Data: []int{lo, hi}}
}

// Clone returns an independent copy of d; its backing slice is never
// shared with the original.
func (d Domain) Clone() Domain {
	c := Domain{Type: d.Type, Data: make([]int, len(d.Data))}
	copy(c.Data, d.Data)
	return c
}

// Size returns the count of encoded values.
func (d Domain) Size() int {
	if d.Type == Values {
		return len(d.Data)
	}
	n := 0
	for i := 0; i < len(d.Data); i += 2 {
		n += d.Data[i+1] - d.Data[i]
	}
	return n
}

// IsEmpty reports whether the domain encodes no values. Per spec, an
// empty domain denotes infeasibility for its variable.
func (d Domain) IsEmpty() bool { return len(d.Data) == 0 }

// IsFixed reports whether the domain is a Values-form singleton.
func (d Domain) IsFixed() bool { return d.Type == Values && len(d.Data) == 1 }

// FixedValue returns the single value of a fixed domain. Behavior is
// undefined if !d.IsFixed().
func (d Domain) FixedValue() int { return d.Data[0] }

// Contains reports whether v is encoded in the domain.
func (d Domain) Contains(v int) bool {
	if d.Type == Values {
		for _, x := range d.Data {
			if x == v {
				return true
			}
		}
		return false
	}
	for i := 0; i < len(d.Data); i += 2 {
		if v >= d.Data[i] && v < d.Data[i+1] {
			return true
		}
	}
	return false
}

// ForEach calls f with every value in on-disk order: Values form as
// stored, Ranges form min to max-1 per interval with intervals visited in
// ascending min. Iteration stops early if f returns false.
func (d Domain) ForEach(f func(val int) bool) {
	if d.Type == Values {
		for _, v := range d.Data {
			if !f(v) {
				return
			}
		}
		return
	}
	for i := 0; i < len(d.Data); i += 2 {
		for v := d.Data[i]; v < d.Data[i+1]; v++ {
			if !f(v) {
				return
			}
		}
	}
}

// Min returns the smallest encoded value; behavior is undefined on an
// empty domain.
func (d Domain) Min() int {
	if d.Type == Ranges {
		return d.Data[0]
	}
	m := d.Data[0]
	for _, v := range d.Data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest encoded value; behavior is undefined on an
// empty domain.
func (d Domain) Max() int {
	if d.Type == Ranges {
		return d.Data[len(d.Data)-1] - 1
	}
	m := d.Data[0]
	for _, v := range d.Data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Intersect narrows the domain to {v} if present, else empties it. This
// always collapses Ranges form to Values form.
func (d Domain) Intersect(v int) Domain {
	if d.Contains(v) {
		return Domain{Type: Values, Data: []int{v}}
	}
	return Domain{Type: Values, Data: nil}
}

// Intersect2 narrows the domain to at most {v0, v1}, preserving the order
// v0-then-v1 for whichever are present. Always collapses to Values form.
func (d Domain) Intersect2(v0, v1 int) Domain {
	out := make([]int, 0, 2)
	if d.Contains(v0) {
		out = append(out, v0)
	}
	if v1 != v0 && d.Contains(v1) {
		out = append(out, v1)
	}
	return Domain{Type: Values, Data: out}
}

// IntersectRange narrows the domain to [lo, hi). On Ranges form this clips
// each interval and drops those that become empty, preserving Ranges
// form; on Values form it returns a filtered copy of the list.
func (d Domain) IntersectRange(lo, hi int) Domain {
	if d.Type == Values {
		out := make([]int, 0, len(d.Data))
		for _, v := range d.Data {
			if v >= lo && v < hi {
				out = append(out, v)
			}
		}
		return Domain{Type: Values, Data: out}
	}
	out := make([]int, 0, len(d.Data))
	for i := 0; i < len(d.Data); i += 2 {
		a, b := d.Data[i], d.Data[i+1]
		if a < lo {
			a = lo
		}
		if b > hi {
			b = hi
		}
		if a < b {
			out = append(out, a, b)
		}
	}
	return Domain{Type: Ranges, Data: out}
}

// Exclude removes v if present. On Ranges form this may split the
// interval that strictly contains v, preserving the disjoint-ascending
// invariant; a length-1 interval that loses its only value is deleted.
func (d Domain) Exclude(v int) Domain {
	if d.Type == Values {
		out := make([]int, 0, len(d.Data))
		for _, x := range d.Data {
			if x != v {
				out = append(out, x)
			}
		}
		return Domain{Type: Values, Data: out}
	}
	out := make([]int, 0, len(d.Data)+2)
	for i := 0; i < len(d.Data); i += 2 {
		a, b := d.Data[i], d.Data[i+1]
		switch {
		case v < a || v >= b:
			out = append(out, a, b)
		case v == a && v == b-1:
			// length-1 interval losing its only value: drop it.
		case v == a:
			out = append(out, a+1, b)
		case v == b-1:
			out = append(out, a, b-1)
		default:
			out = append(out, a, v, v+1, b)
		}
	}
	return Domain{Type: Ranges, Data: out}
}

// ExcludeSup removes every value >= hi.
func (d Domain) ExcludeSup(hi int) Domain {
	if d.Type == Values {
		out := make([]int, 0, len(d.Data))
		for _, v := range d.Data {
			if v < hi {
				out = append(out, v)
			}
		}
		return Domain{Type: Values, Data: out}
	}
	out := make([]int, 0, len(d.Data))
	for i := 0; i < len(d.Data); i += 2 {
		a, b := d.Data[i], d.Data[i+1]
		if b > hi {
			b = hi
		}
		if a < b {
			out = append(out, a, b)
		}
	}
	return Domain{Type: Ranges, Data: out}
}

// ExcludeInf removes every value < lo.
func (d Domain) ExcludeInf(lo int) Domain {
	if d.Type == Values {
		out := make([]int, 0, len(d.Data))
		for _, v := range d.Data {
			if v >= lo {
				out = append(out, v)
			}
		}
		return Domain{Type: Values, Data: out}
	}
	out := make([]int, 0, len(d.Data))
	for i := 0; i < len(d.Data); i += 2 {
		a, b := d.Data[i], d.Data[i+1]
		if a < lo {
			a = lo
		}
		if a < b {
			out = append(out, a, b)
		}
	}
	return Domain{Type: Ranges, Data: out}
}
