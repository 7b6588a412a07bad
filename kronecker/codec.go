package kronecker

import (
	"fmt"

	"github.com/termalg/termalg"
)

// Encode returns the code of v.
// It returns an error wrapping termalg.ErrInvalidArgument if len(v) is larger
// than the table's MaxSize and termalg.ErrOverflow if a component of v is
// outside its bound.
func Encode[T Integer](v []T) (n T, err error) {

	l, ok := GetLimits[T]().Get(len(v))

	if !ok {
		return 0, fmt.Errorf("%w: cannot Encode: size %d is larger than the maximum size %d", termalg.ErrInvalidArgument, len(v), GetLimits[T]().MaxSize())
	}

	for i, x := range v {
		if h := l.Bounds[i]; x > h || x < -h {
			return 0, fmt.Errorf("%w: cannot Encode: component %d (%d) is outside of the bounds [%d, %d]", termalg.ErrOverflow, i, x, -h, h)
		}
		n += x * l.Weights[i]
	}

	return
}

// Decode returns the vector of size components encoded by n.
func Decode[T Integer](n T, size int) (v []T, err error) {

	if size < 0 {
		return nil, fmt.Errorf("%w: cannot Decode: negative size %d", termalg.ErrInvalidArgument, size)
	}

	v = make([]T, size)

	if err = DecodeInto(n, v); err != nil {
		return nil, err
	}

	return
}

// DecodeInto decodes n on out, the dimension being len(out).
// It returns an error wrapping termalg.ErrInvalidArgument if len(out) is larger
// than the table's MaxSize or if len(out) is zero while n is not, and
// termalg.ErrOverflow if n is outside [HMin, HMax].
// out is left unchanged when an error is returned.
func DecodeInto[T Integer](n T, out []T) (err error) {

	l, ok := GetLimits[T]().Get(len(out))

	if !ok {
		return fmt.Errorf("%w: cannot Decode: size %d is larger than the maximum size %d", termalg.ErrInvalidArgument, len(out), GetLimits[T]().MaxSize())
	}

	if len(out) == 0 {
		if n != 0 {
			return fmt.Errorf("%w: cannot Decode: only the code 0 can be decoded into an empty vector, but the code is %d", termalg.ErrInvalidArgument, n)
		}
		return
	}

	if n < l.HMin || n > l.HMax {
		return fmt.Errorf("%w: cannot Decode: code %d is outside of the bounds [%d, %d]", termalg.ErrOverflow, n, l.HMin, l.HMax)
	}

	// Shifted code in [0, HMax-HMin], which fits T.
	code := n - l.HMin

	for i, h := range l.Bounds {
		radix := 2*h + 1
		out[i] = code%radix - h
		code /= radix
	}

	return
}
