package utils

import "math"

const (
	// Epsilon is the global tolerance of the extent comparisons
	Epsilon = 1e-8
	// RelTol is the relative tolerance used for coordinate tests
	RelTol = 1e-10

	safeDivideFractionTol = 1e-15
)

// SafeDivide returns num/den, or defaultValue and false if den is too small relative to num.
// It never returns Inf or NaN for finite inputs.
func SafeDivide(num, den, defaultValue float64) (float64, bool) {
	if den == 0 || math.Abs(den) <= safeDivideFractionTol*math.Abs(num) {
		return defaultValue, false
	}
	return num / den, true
}

// EqualEps returns true if a and b are equal up to eps
func EqualEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// GreaterOrEqualEps returns a >= b - eps
func GreaterOrEqualEps(a, b, eps float64) bool {
	return a >= b-eps
}

// LessOrEqualEps returns a <= b + eps
func LessOrEqualEps(a, b, eps float64) bool {
	return a <= b+eps
}

// GreaterEps returns a > b + eps: a is greater than b by a real margin
func GreaterEps(a, b, eps float64) bool {
	return a > b+eps
}

// LessEps returns a < b - eps: a is less than b by a real margin
func LessEps(a, b, eps float64) bool {
	return a < b-eps
}
