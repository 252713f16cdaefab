package utils

import (
	"errors"

	"github.com/airbusgeo/geokernel/internal/geokernel"
)

// Require panics with a PreconditionViolation error if cond is false.
// Preconditions are programmer errors: they are not meant to be recovered in regular code paths.
func Require(cond bool, desc string, a ...interface{}) {
	if !cond {
		panic(geokernel.NewPreconditionViolation(desc, a...))
	}
}

// RecoverPrecondition turns a PreconditionViolation panic into an error stored in *err.
// Other panics are propagated.
// Usage:
// defer utils.RecoverPrecondition(&err)
func RecoverPrecondition(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && geokernel.IsError(e, geokernel.PreconditionViolation) {
		*err = errors.Join(*err, e)
		return
	}
	panic(r)
}
