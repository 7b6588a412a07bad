package monomial

import (
	"fmt"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/coefficient"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
)

// Pair is the result of a substitution: Coefficient * Monomial.
type Pair[T kronecker.Integer, C any] struct {
	Coefficient C
	Monomial    Monomial[T]
}

// Subs substitutes the symbols at the indices of smap with the mapped values.
// The result is a single pair whose coefficient is the product of the values
// raised to their exponents and whose monomial has these exponents zeroed.
func Subs[T kronecker.Integer, C any](f coefficient.Field[C], m Monomial[T], smap symbols.IndexMap[C], ss symbols.Set) (p []Pair[T, C], err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	if err = smap.Check(len(v)); err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	c := f.One()

	for _, i := range smap.Keys() {

		x, err := f.Pow(smap[i], int64(v[i]))
		if err != nil {
			return nil, fmt.Errorf("cannot Subs: %w", err)
		}

		c = f.Mul(c, x)
		v[i] = 0
	}

	var r Monomial[T]
	if r.value, err = kronecker.Encode(v); err != nil {
		return nil, fmt.Errorf("cannot Subs: %w", err)
	}

	return []Pair[T, C]{{Coefficient: c, Monomial: r}}, nil
}

// IPowSubs substitutes x_idx^n with x. If the exponent e of x_idx satisfies
// k = e/n >= 1 (truncated division), the result is x^k times m with the
// exponent replaced by e - k*n. Otherwise the result is m unchanged.
func IPowSubs[T kronecker.Integer, C any](f coefficient.Field[C], m Monomial[T], idx int, n int64, x C, ss symbols.Set) (p []Pair[T, C], err error) {

	if n == 0 {
		return nil, fmt.Errorf("%w: cannot IPowSubs: cannot substitute the zeroth power of a symbol", termalg.ErrInvalidArgument)
	}

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot IPowSubs: %w", err)
	}

	if idx < 0 || idx >= len(v) {
		return nil, fmt.Errorf("%w: cannot IPowSubs: the substitution index %d must be smaller than the monomial's size (%d)", termalg.ErrInvalidArgument, idx, len(v))
	}

	e := int64(v[idx])
	k := e / n

	if k <= 0 {
		return []Pair[T, C]{{Coefficient: f.One(), Monomial: m}}, nil
	}

	c, err := f.Pow(x, k)
	if err != nil {
		return nil, fmt.Errorf("cannot IPowSubs: %w", err)
	}

	// |e - k*n| < |n| and has the sign of e, so it fits T.
	v[idx] = T(e - k*n)

	var r Monomial[T]
	if r.value, err = kronecker.Encode(v); err != nil {
		return nil, fmt.Errorf("cannot IPowSubs: %w", err)
	}

	return []Pair[T, C]{{Coefficient: c, Monomial: r}}, nil
}
