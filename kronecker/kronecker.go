// Package kronecker implements the Kronecker (mixed-radix) codec that packs a
// bounded vector of signed integers into a single signed integer.
//
// For every dimension n up to MaxSize the codec holds a vector of component
// bounds h_i and mixed-radix weights c_i with c_0 = 1 and
// c_i = c_{i-1}(2h_{i-1}+1). A vector v with |v_i| <= h_i is encoded as
// sum_i v_i*c_i, which is a bijection onto [HMin, HMax].
package kronecker

// Integer is the set of widths supported by the codec.
type Integer interface {
	int8 | int16 | int32 | int64
}
