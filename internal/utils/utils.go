package utils

import "strconv"

// F64ToS converts float to string using the maximum accuracy
func F64ToS(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MinElemF computes the min value of vs.
// MinElemF panics if len(vs) = 0
func MinElemF(vs ...float64) float64 {
	vm := vs[0]
	for _, v := range vs {
		if v < vm {
			vm = v
		}
	}
	return vm
}

// MaxElemF computes the max value of vs
// MaxElemF panics if len(vs)=0
func MaxElemF(vs ...float64) float64 {
	vm := vs[0]
	for _, v := range vs {
		if v > vm {
			vm = v
		}
	}
	return vm
}

// Clamp returns v bounded to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
