package termalg

import (
	"errors"
)

// The error taxonomy shared by all packages of the module. Every error
// returned by a monomial or codec operation wraps exactly one of these
// sentinels, so that callers can branch with errors.Is.
var (
	// ErrInvalidArgument is returned on size mismatches between vectors, symbol
	// sets, masks or maps, on out-of-range indices and on malformed inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when a value does not fit the bounds of the
	// Kronecker codec or when an integer computation overflows.
	ErrOverflow = errors.New("overflow")

	// ErrDomain is returned when an operation is mathematically undefined for
	// its inputs (e.g. the cosine of a non-zero rational).
	ErrDomain = errors.New("domain error")
)
