package kb

// A ReductionOrder reports whether p is strictly greater than q. It must be a
// well-founded total order on words compatible with concatenation, so that
// orienting every rule from greater to smaller side guarantees rewriting
// terminates.
type ReductionOrder func(p, q string) bool

// ShortLex is the default reduction order: longer words are greater, and
// words of equal length compare lexicographically by generator index.
func ShortLex() ReductionOrder {
	return func(p, q string) bool {
		return len(p) > len(q) || (len(p) == len(q) && p > q)
	}
}

// ShortLexBy is shortlex derived from a custom total order on letters.
// less must be a strict total order on the generator bytes in use.
func ShortLexBy(less func(a, b byte) bool) ReductionOrder {
	return func(p, q string) bool {
		if len(p) != len(q) {
			return len(p) > len(q)
		}
		for i := 0; i < len(p); i++ {
			if p[i] != q[i] {
				return less(q[i], p[i])
			}
		}
		return false
	}
}
