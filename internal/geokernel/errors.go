package geokernel

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	PreconditionViolation ErrorCode = iota
	InvalidEncoding
	UnknownCoordSys
	NoTransformPath
	TransformFailed
	ShouldNeverHappen
)

// Access details
const (
	DetailCoordSysFrom = 0
	DetailCoordSysTo   = 1
	DetailUnknownName  = 0
)

type Error struct {
	code    ErrorCode
	desc    string
	details []string
}

// NewPreconditionViolation creates a new error stating that a caller broke an operation contract
func NewPreconditionViolation(desc string, a ...interface{}) error {
	return Error{code: PreconditionViolation, desc: fmt.Sprintf(desc, a...)}
}

// NewInvalidEncoding creates a new error stating that a binary or textual encoding cannot be decoded
func NewInvalidEncoding(desc string, a ...interface{}) error {
	return Error{code: InvalidEncoding, desc: fmt.Sprintf(desc, a...)}
}

// NewUnknownCoordSys creates a new error stating that a coordinate system has not been found
func NewUnknownCoordSys(name string) error {
	return Error{code: UnknownCoordSys, desc: "coordinate system " + name, details: []string{name}}
}

// NewNoTransformPath creates a new error stating that two coordinate systems are not connected
func NewNoTransformPath(from, to string) error {
	return Error{
		code:    NoTransformPath,
		desc:    fmt.Sprintf("no transform from %s to %s", from, to),
		details: []string{from, to},
	}
}

// NewTransformFailed creates a new error stating that a point could not be transformed
func NewTransformFailed(desc string, a ...interface{}) error {
	return Error{code: TransformFailed, desc: fmt.Sprintf(desc, a...)}
}

// NewShouldNeverHappen creates a new error that should never happen...
func NewShouldNeverHappen(desc string, a ...interface{}) error {
	return Error{code: ShouldNeverHappen, desc: fmt.Sprintf(desc, a...)}
}

// Error implements error
func (e Error) Error() string {
	var s string
	switch e.code {
	case PreconditionViolation:
		s = "PreconditionViolation"
	case InvalidEncoding:
		s = "InvalidEncoding"
	case UnknownCoordSys:
		s = "UnknownCoordSys"
	case NoTransformPath:
		s = "NoTransformPath"
	case TransformFailed:
		s = "TransformFailed"
	case ShouldNeverHappen:
		s = "ShouldNeverHappen"
	}
	return s + ": " + e.desc
}

// Desc returns a description of the error
func (e Error) Desc() string {
	return e.desc
}

// Code returns the code of the error
func (e Error) Code() ErrorCode {
	return e.code
}

// Detail returns a detail of the error (see const above)
func (e Error) Detail(i int) string {
	if i >= len(e.details) {
		return ""
	}
	return e.details[i]
}

// IsError tests whether error is a geokernel Error with the given code
func IsError(err error, code ErrorCode) bool {
	var gkerr Error
	return errors.As(err, &gkerr) && gkerr.Code() == code
}

// AsError tests whether error is a geokernel Error with the given code and returns it
func AsError(err error, code ErrorCode) (Error, bool) {
	var gkerr Error
	return gkerr, errors.As(err, &gkerr) && gkerr.Code() == code
}
