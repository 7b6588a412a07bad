package trig

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/coefficient"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
)

// Subs substitutes the symbols at the indices of smap with the mapped values.
// Writing the argument of m as theta + L, where theta = sum n_i*smap[i] and L
// is the argument left over, the result is the expansion of cos(theta + L) or
// sin(theta + L) over {cos(L), sin(L)}. It always returns two pairs, cosine
// first, unless smap is empty in which case it returns (1, m).
func Subs[T kronecker.Integer, C any](f coefficient.Field[C], m Monomial[T], smap symbols.IndexMap[C], ss symbols.Set) (p []Pair[T, C], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	if err = smap.Check(len(v)); err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	if len(smap) == 0 {
		return []Pair[T, C]{{Coefficient: f.One(), Monomial: m}}, nil
	}

	theta := f.Zero()

	for _, i := range smap.Keys() {
		theta = f.Add(theta, f.Mul(f.FromInt64(int64(v[i])), smap[i]))
		v[i] = 0
	}

	cos, err := f.Cos(theta)
	if err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	sin, err := f.Sin(theta)
	if err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	if p, err = expand(f, cos, sin, v, m.sine, ss); err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	return
}

// TSubs substitutes cos(x_idx) and sin(x_idx) with c and s, which must satisfy
// c^2 + s^2 = 1. Writing the argument of m as n*x_idx + L, the result is the
// expansion of cos(n*x_idx + L) or sin(n*x_idx + L) over {cos(L), sin(L)},
// where cos(n*x_idx) and sin(n*x_idx) are computed from c and s.
// It always returns two pairs, cosine first.
func TSubs[T kronecker.Integer, C any](f coefficient.Field[C], m Monomial[T], idx int, c, s C, ss symbols.Set) (p []Pair[T, C], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot TSubs: %w", err)
	}

	if idx < 0 || idx >= len(v) {
		return nil, fmt.Errorf("%w: cannot TSubs: the substitution index %d must be smaller than the monomial's size (%d)", termalg.ErrInvalidArgument, idx, len(v))
	}

	if !f.IsOne(f.Add(f.Mul(c, c), f.Mul(s, s))) {
		return nil, fmt.Errorf("%w: cannot TSubs: (%s, %s) is not a valid (cos, sin) pair", termalg.ErrDomain, f.String(c), f.String(s))
	}

	cos, sin := multipleAngle(f, c, s, int64(v[idx]))

	v[idx] = 0

	if p, err = expand(f, cos, sin, v, m.sine, ss); err != nil {
		return nil, fmt.Errorf("cannot TSubs: %w", err)
	}

	return
}

// multipleAngle returns (cos(n*x), sin(n*x)) given (cos(x), sin(x)) by
// exponentiation by squaring of cos(x) + i*sin(x).
func multipleAngle[C any](f coefficient.Field[C], c, s C, n int64) (cos, sin C) {

	neg := n < 0

	cos, sin = f.One(), f.Zero()

	for k := n; k != 0; k /= 2 {

		if k&1 != 0 {
			cos, sin = f.Sub(f.Mul(cos, c), f.Mul(sin, s)), f.Add(f.Mul(cos, s), f.Mul(sin, c))
		}

		c, s = f.Sub(f.Mul(c, c), f.Mul(s, s)), f.Mul(f.FromInt64(2), f.Mul(c, s))
	}

	if neg {
		sin = f.Neg(sin)
	}

	return
}

// expand returns the two pairs of the expansion of cos(theta + L) (or
// sin(theta + L) if sine is true) where L is the argument of multiplier
// vector v, which is canonicalised in place.
//
//	cos(theta + L) = cos(theta)cos(L) - sin(theta)sin(L)
//	sin(theta + L) = sin(theta)cos(L) + cos(theta)sin(L)
func expand[T kronecker.Integer, C any](f coefficient.Field[C], cos, sin C, v []T, sine bool, ss symbols.Set) (p []Pair[T, C], err error) {

	changed := canonicalise(v)

	key, err := monomial.New(v, ss)
	if err != nil {
		return
	}

	var cc, cs C

	if sine {
		cc, cs = sin, cos
	} else {
		cc, cs = cos, f.Neg(sin)
	}

	// sin(L) = -sin(-L)
	if changed {
		cs = f.Neg(cs)
	}

	return []Pair[T, C]{
		{Coefficient: cc, Monomial: Monomial[T]{key: key}},
		{Coefficient: cs, Monomial: Monomial[T]{key: key, sine: true}},
	}, nil
}
