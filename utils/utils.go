package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MinSigned returns the smallest value representable by T.
func MinSigned[T constraints.Signed]() T {
	var t T
	/* #nosec G103 -- only the size of the type is read */
	return T(-1) << (8*unsafe.Sizeof(t) - 1)
}

// MaxSigned returns the largest value representable by T.
func MaxSigned[T constraints.Signed]() T {
	return ^MinSigned[T]()
}

// BitWidth returns the size in bits of T.
func BitWidth[T constraints.Integer]() int {
	var t T
	/* #nosec G103 -- only the size of the type is read */
	return int(8 * unsafe.Sizeof(t))
}

// AddSigned returns a+b and false if the sum overflows T.
func AddSigned[T constraints.Signed](a, b T) (c T, ok bool) {
	c = a + b
	return c, (c > a) == (b > 0)
}

// SubSigned returns a-b and false if the difference overflows T.
func SubSigned[T constraints.Signed](a, b T) (c T, ok bool) {
	c = a - b
	return c, (c < a) == (b > 0)
}

// MulSigned returns a*b and false if the product overflows T.
func MulSigned[T constraints.Signed](a, b T) (c T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	min := MinSigned[T]()

	if (a == -1 && b == min) || (b == -1 && a == min) {
		return 0, false
	}

	c = a * b
	return c, c/b == a
}

// NegSigned returns -a and false if the negation overflows T.
func NegSigned[T constraints.Signed](a T) (T, bool) {
	if a == MinSigned[T]() {
		return 0, false
	}
	return -a, true
}

// AbsSigned returns |a| and false if the absolute value overflows T.
func AbsSigned[T constraints.Signed](a T) (T, bool) {
	if a < 0 {
		return NegSigned(a)
	}
	return a, true
}

// Narrow converts x to T and returns false if x is not representable by T.
func Narrow[T constraints.Signed](x int64) (T, bool) {
	t := T(x)
	return t, int64(t) == x
}

// SumSigned returns the sum of the components of v as an int64 and false if
// the sum overflows.
func SumSigned[T constraints.Signed](v []T) (s int64, ok bool) {
	for _, x := range v {
		if s, ok = AddSigned(s, int64(x)); !ok {
			return 0, false
		}
	}
	return s, true
}
