package graphset

// Equal reports whether a and b contain exactly the same members.
func Equal(a, b VSet) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b.Contains(v) {
			return false
		}
	}

	return true
}
