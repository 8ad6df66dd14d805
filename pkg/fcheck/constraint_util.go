package fcheck

// domainsOverlap reports whether a and b share at least one value.
func domainsOverlap(a, b Domain) bool {
	small, large := a, b
	if small.Size() > large.Size() {
		small, large = large, small
	}
	overlap := false
	small.ForEach(func(v int) bool {
		if large.Contains(v) {
			overlap = true
			return false
		}
		return true
	})
	return overlap
}

// unionDomain returns the Values-form union of every domain in ds.
func unionDomain(ds []Domain) Domain {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, d := range ds {
		d.ForEach(func(v int) bool {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			return true
		})
	}
	return Domain{Type: Values, Data: out}
}

// filterDomain returns a Values-form domain of every value in d for which
// keep returns true.
func filterDomain(d Domain, keep func(int) bool) Domain {
	out := make([]int, 0)
	d.ForEach(func(v int) bool {
		if keep(v) {
			out = append(out, v)
		}
		return true
	})
	return Domain{Type: Values, Data: out}
}
