package descendants

// Navigation helpers for roving focus. All of them operate over the
// ordinals [0, n) filtered by the eligible predicate (typically "not
// disabled"), wrap at both ends, and return -1 when no ordinal is
// eligible.

// wrapIndex wraps an index into [0, n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the first eligible ordinal after current, wrapping past the
// end. When current is outside [0, n) the search starts from the first
// ordinal.
func Next(current, n int, eligible func(int) bool) int {
	return step(current, n, 1, eligible)
}

// Prev returns the first eligible ordinal before current, wrapping past
// the start.
func Prev(current, n int, eligible func(int) bool) int {
	return step(current, n, -1, eligible)
}

func step(current, n, delta int, eligible func(int) bool) int {
	if n <= 0 {
		return -1
	}
	if current < 0 || current >= n {
		// No meaningful anchor: scan from one end.
		if delta > 0 {
			return First(n, eligible)
		}
		return Last(n, eligible)
	}
	for offset := 1; offset <= n; offset++ {
		candidate := wrapIndex(current+delta*offset, n)
		if eligible(candidate) {
			return candidate
		}
	}
	return -1
}

// First returns the lowest eligible ordinal, or -1.
func First(n int, eligible func(int) bool) int {
	for i := 0; i < n; i++ {
		if eligible(i) {
			return i
		}
	}
	return -1
}

// Last returns the highest eligible ordinal, or -1.
func Last(n int, eligible func(int) bool) int {
	for i := n - 1; i >= 0; i-- {
		if eligible(i) {
			return i
		}
	}
	return -1
}
