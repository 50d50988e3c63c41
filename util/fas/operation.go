package fas

// TernaryOp is ternary operation like max = a > b ? a : b
func TernaryOp[T any](condition bool, a, b T) T {
	if condition {
		return a
	}
	return b
}

// ZeroOr returns fallback when v is the zero value.
func ZeroOr[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
