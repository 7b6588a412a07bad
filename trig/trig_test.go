package trig

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/coefficient"
	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils/sampling"
)

func mustNew[T kronecker.Integer](t *testing.T, v []T, cos bool, ss symbols.Set) Monomial[T] {
	m, err := New(v, cos, ss)
	require.NoError(t, err)
	return m
}

func requireMonomial[T kronecker.Integer](t *testing.T, want []T, cos bool, m Monomial[T], ss symbols.Set) {
	v, err := m.Unpack(ss)
	require.NoError(t, err)
	require.Equal(t, want, v)
	require.Equal(t, cos, m.Flavour())
}

// eval returns the value of m at x.
func eval[T kronecker.Integer](t *testing.T, m Monomial[T], ss symbols.Set, x []float64) float64 {
	v, err := m.Unpack(ss)
	require.NoError(t, err)
	var theta float64
	for i := range v {
		theta += float64(v[i]) * x[i]
	}
	if m.Flavour() {
		return math.Cos(theta)
	}
	return math.Sin(theta)
}

func newTestPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'t', 'r', 'i', 'g'})
	require.NoError(t, err)
	return prng
}

func TestTrig(t *testing.T) {

	xy := symbols.NewSet("x", "y")

	t.Run("Construction", func(t *testing.T) {
		var one Monomial[int64]
		require.True(t, one.IsUnitary())
		require.False(t, one.IsZero())
		require.True(t, one.Flavour())
		require.True(t, one.IsCompatible(symbols.Set{}))

		m, err := NewFromSymbols[int64](xy)
		require.NoError(t, err)
		require.True(t, m.Equal(one))

		zero := mustNew(t, []int64{0, 0}, false, xy)
		require.True(t, zero.IsZero())
		require.False(t, zero.IsUnitary())
		require.False(t, zero.Equal(one))
		require.Equal(t, one.Hash(), zero.Hash())

		m, err = NewFromSeq(slices.Values([]int64{1, -1}), true, xy)
		require.NoError(t, err)
		requireMonomial(t, []int64{1, -1}, true, m, xy)

		_, err = New([]int64{1}, true, xy)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))

		m.SetFlavour(false)
		requireMonomial(t, []int64{1, -1}, false, m, xy)

		r := FromInt(m.Int(), false)
		require.True(t, r.Equal(m))
		r.SetInt(0)
		require.True(t, r.IsZero())

		c, err := Convert[int8](m, xy)
		require.NoError(t, err)
		requireMonomial(t, []int8{1, -1}, false, c, xy)
	})

	t.Run("Canonicalise", func(t *testing.T) {
		m := mustNew(t, []int32{0, -2, 1}, false, symbols.NewSet("x", "y", "z"))
		require.False(t, m.IsCompatible(symbols.NewSet("x", "y", "z")))

		changed, err := m.Canonicalise(symbols.NewSet("x", "y", "z"))
		require.NoError(t, err)
		require.True(t, changed)
		requireMonomial(t, []int32{0, 2, -1}, false, m, symbols.NewSet("x", "y", "z"))
		require.True(t, m.IsCompatible(symbols.NewSet("x", "y", "z")))

		changed, err = m.Canonicalise(symbols.NewSet("x", "y", "z"))
		require.NoError(t, err)
		require.False(t, changed)
		requireMonomial(t, []int32{0, 2, -1}, false, m, symbols.NewSet("x", "y", "z"))

		m = FromInt[int32](1, true)
		_, err = m.Canonicalise(symbols.Set{})
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})

	t.Run("Print", func(t *testing.T) {
		for _, tc := range []struct {
			v   []int64
			cos bool
			str string
			tex string
		}{
			{[]int64{1, -1}, true, "cos(x-y)", `\cos{\left({x}-{y}\right)}`},
			{[]int64{1, 2}, false, "sin(x+2*y)", `\sin{\left({x}+2{y}\right)}`},
			{[]int64{-2, 1}, true, "cos(-2*x+y)", `\cos{\left(-2{x}+{y}\right)}`},
			{[]int64{0, 3}, false, "sin(3*y)", `\sin{\left(3{y}\right)}`},
			{[]int64{0, 0}, true, "", ""},
			{[]int64{0, 0}, false, "0", "0"},
		} {
			m := mustNew(t, tc.v, tc.cos, xy)

			str, err := m.String(xy)
			require.NoError(t, err)
			require.Equal(t, tc.str, str)

			tex, err := m.Tex(xy)
			require.NoError(t, err)
			require.Equal(t, tc.tex, tex)
		}
	})

	t.Run("Multiply/Literal", func(t *testing.T) {
		x := symbols.NewSet("x")
		cx := mustNew(t, []int64{1}, true, x)

		p, err := Multiply(cx, cx, x)
		require.NoError(t, err)

		require.Equal(t, p[0].Sign, p[1].Sign)
		requireMonomial(t, []int64{0}, true, p[0].Monomial, x)
		requireMonomial(t, []int64{2}, true, p[1].Monomial, x)
	})

	t.Run("Multiply/Overflow", func(t *testing.T) {
		x := symbols.NewSet("x")
		l, _ := kronecker.GetLimits[int8]().Get(1)
		m := mustNew(t, []int8{l.Bounds[0]}, true, x)
		_, err := m.Mul(m, x)
		require.True(t, errors.Is(err, termalg.ErrOverflow))
	})

	t.Run("Partial", func(t *testing.T) {
		m := mustNew(t, []int64{1, 2}, true, xy)

		c, r, err := m.Partial(1, xy)
		require.NoError(t, err)
		require.Equal(t, int64(-2), c)
		requireMonomial(t, []int64{1, 2}, false, r, xy)

		c, r, err = r.Partial(0, xy)
		require.NoError(t, err)
		require.Equal(t, int64(1), c)
		requireMonomial(t, []int64{1, 2}, true, r, xy)

		c, r, err = mustNew(t, []int64{0, 2}, false, xy).Partial(0, xy)
		require.NoError(t, err)
		require.Equal(t, int64(0), c)
		require.True(t, r.IsUnitary())

		_, _, err = m.Partial(2, xy)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))

		_, _, err = FromInt[int64](3, true).Partial(0, symbols.Set{})
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})

	t.Run("Integrate", func(t *testing.T) {
		m := mustNew(t, []int64{2, 1}, true, xy)

		c, r, err := m.Integrate("x", xy)
		require.NoError(t, err)
		require.Equal(t, int64(2), c)
		requireMonomial(t, []int64{2, 1}, false, r, xy)

		c, r, err = r.Integrate("y", xy)
		require.NoError(t, err)
		require.Equal(t, int64(-1), c)
		requireMonomial(t, []int64{2, 1}, true, r, xy)

		for _, name := range []string{"a", "z"} {
			c, r, err = m.Integrate(name, xy)
			require.NoError(t, err)
			require.Equal(t, int64(0), c)
			require.True(t, r.IsUnitary())
		}

		// Integrating the derivative recovers the monomial.
		for _, cos := range []bool{true, false} {
			m := mustNew(t, []int64{3, -1}, cos, xy)
			c, d, err := m.Partial(1, xy)
			require.NoError(t, err)
			div, r, err := d.Integrate("y", xy)
			require.NoError(t, err)
			require.Equal(t, c, div)
			require.True(t, m.Equal(r))
		}
	})

	t.Run("Degree", func(t *testing.T) {
		xyz := symbols.NewSet("x", "y", "z")
		m := mustNew(t, []int16{2, -3, 1}, false, xyz)

		for _, tc := range []struct {
			f    func(symbols.Set) (int64, error)
			want int64
		}{
			{m.TDegree, 0},
			{m.TLDegree, 0},
			{m.TOrder, 6},
			{m.TLOrder, 6},
		} {
			d, err := tc.f(xyz)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		}

		idx := xyz.IndicesOf("y", "z")

		for _, tc := range []struct {
			f    func(symbols.IndexSet, symbols.Set) (int64, error)
			want int64
		}{
			{m.PartialTDegree, -2},
			{m.PartialTLDegree, -2},
			{m.PartialTOrder, 4},
			{m.PartialTLOrder, 4},
		} {
			d, err := tc.f(idx, xyz)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)

			_, err = tc.f(symbols.IndexSet{3}, xyz)
			require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
		}
	})

	t.Run("Symbols", func(t *testing.T) {
		m := mustNew(t, []int64{1, -1}, false, xy)

		merged, ins, _ := symbols.Merge(xy, symbols.NewSet("a", "z"))
		r, err := m.MergeSymbols(ins, xy)
		require.NoError(t, err)
		requireMonomial(t, []int64{0, 1, -1, 0}, false, r, merged)

		mask := []bool{true, true, true, true}
		require.NoError(t, r.TrimIdentify(mask, merged))
		require.Equal(t, []bool{true, false, false, true}, mask)

		trimmed, err := merged.Trim(mask)
		require.NoError(t, err)
		r, err = r.Trim(mask, merged)
		require.NoError(t, err)
		require.True(t, trimmed.Equal(xy))
		require.True(t, r.Equal(m))

		_, err = m.MergeSymbols(nil, xy)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
		_, err = m.Trim([]bool{true}, xy)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})

	t.Run("Cmp", func(t *testing.T) {
		a := mustNew(t, []int64{1, 0}, true, xy)
		b := mustNew(t, []int64{1, 0}, false, xy)
		c := mustNew(t, []int64{1, 1}, true, xy)

		r, err := a.Cmp(b, xy)
		require.NoError(t, err)
		require.Equal(t, -1, r)

		r, err = b.Cmp(a, xy)
		require.NoError(t, err)
		require.Equal(t, 1, r)

		r, err = c.Cmp(b, xy)
		require.NoError(t, err)
		require.Equal(t, 1, r)

		r, err = a.Cmp(a, xy)
		require.NoError(t, err)
		require.Equal(t, 0, r)

		_, err = mustNew(t, []int64{-1, 0}, true, xy).Cmp(a, xy)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})

	t.Run("Serialization", func(t *testing.T) {
		for _, cos := range []bool{true, false} {
			m := mustNew(t, []int32{2, -1}, cos, xy)

			data, err := m.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, m.BinarySize())

			var r Monomial[int32]
			require.NoError(t, r.UnmarshalBinaryWithSymbols(data, xy))
			require.True(t, m.Equal(r))

			r = Monomial[int32]{}
			require.True(t, errors.Is(r.UnmarshalBinaryWithSymbols(data, symbols.Set{}), termalg.ErrInvalidArgument))
			require.True(t, r.IsUnitary())

			data, err = m.MarshalPortable(xy)
			require.NoError(t, err)

			var r16 Monomial[int16]
			require.NoError(t, r16.UnmarshalPortable(data, xy))
			requireMonomial(t, []int16{2, -1}, cos, r16, xy)

			err = r.UnmarshalPortable(data, symbols.NewSet("x"))
			require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
			require.EqualError(t, err, "invalid argument: invalid size detected in deserialization: the deserialized size (2) differs from the size of the reference symbol set (1)")
		}

		// Non-canonical monomials are rejected.
		data, err := mustNew(t, []int32{-2, 1}, true, xy).MarshalBinary()
		require.NoError(t, err)
		var r Monomial[int32]
		require.True(t, errors.Is(r.UnmarshalBinaryWithSymbols(data, xy), termalg.ErrInvalidArgument))

		// Invalid flavour byte.
		data[len(data)-1] = 2
		require.Error(t, r.UnmarshalBinary(data))
	})
}

// TestMultiplySigns checks the product-to-sum expansion numerically for every
// pair of flavours, over random multipliers covering every outcome of the
// canonicalisation of a-b and a+b.
func TestMultiplySigns(t *testing.T) {

	ss := symbols.NewSet("x", "y", "z")
	prng := newTestPRNG(t)

	randomVector := func() []int64 {
		v := make([]int64, ss.Len())
		for i := range v {
			v[i] = sampling.Int64(prng, -3, 3)
		}
		return v
	}

	outcomes := map[string]bool{}

	for _, fa := range []bool{true, false} {
		for _, fb := range []bool{true, false} {
			for k := 0; k < 256; k++ {

				va, vb := randomVector(), randomVector()

				a := mustNew(t, va, fa, ss)
				b := mustNew(t, vb, fb, ss)

				p, err := Multiply(a, b, ss)
				require.NoError(t, err)

				d := make([]int64, len(va))
				s := make([]int64, len(va))
				for i := range va {
					d[i], s[i] = va[i]-vb[i], va[i]+vb[i]
				}
				outcomes[fmt.Sprintf("%t/%t/%t/%t", fa, fb, isCanonical(d), isCanonical(s))] = true

				for i := range p {
					require.True(t, p[i].Monomial.IsCompatible(ss))
					require.Contains(t, []int{-1, 1}, p[i].Sign)
				}

				x := []float64{
					sampling.Float64(prng, -math.Pi, math.Pi),
					sampling.Float64(prng, -math.Pi, math.Pi),
					sampling.Float64(prng, -math.Pi, math.Pi),
				}

				want := eval(t, a, ss, x) * eval(t, b, ss, x)

				var have float64
				for i := range p {
					have += float64(p[i].Sign) / 2 * eval(t, p[i].Monomial, ss, x)
				}

				require.InDelta(t, want, have, 1e-12, "a=%v (cos=%t) b=%v (cos=%t)", va, fa, vb, fb)
			}
		}
	}

	require.Len(t, outcomes, 16)
}

func TestMultiplyTerms(t *testing.T) {

	ss := symbols.NewSet("x")
	f := coefficient.BigRat{}

	// 3*cos(x) * 2*sin(2x) = 3*sin(x) + 3*sin(3x)
	t1 := Pair[int64, *big.Rat]{Coefficient: big.NewRat(3, 1), Monomial: mustNew(t, []int64{1}, true, ss)}
	t2 := Pair[int64, *big.Rat]{Coefficient: big.NewRat(2, 1), Monomial: mustNew(t, []int64{2}, false, ss)}

	p, err := MultiplyTerms[int64, *big.Rat](f, t1, t2, ss)
	require.NoError(t, err)

	require.Equal(t, "3", f.String(p[0].Coefficient))
	requireMonomial(t, []int64{1}, false, p[0].Monomial, ss)

	require.Equal(t, "3", f.String(p[1].Coefficient))
	requireMonomial(t, []int64{3}, false, p[1].Monomial, ss)

	// Integer coefficients must be even.
	i1 := Pair[int64, *big.Int]{Coefficient: big.NewInt(3), Monomial: t1.Monomial}
	i2 := Pair[int64, *big.Int]{Coefficient: big.NewInt(1), Monomial: t2.Monomial}
	_, err = MultiplyTerms[int64, *big.Int](coefficient.BigInt{}, i1, i2, ss)
	require.True(t, errors.Is(err, termalg.ErrDomain))
}

func TestSubs(t *testing.T) {

	ss := symbols.NewSet("x", "y", "z")
	f := coefficient.Float64{}
	prng := newTestPRNG(t)

	for _, tc := range []struct {
		v    []int64
		smap symbols.IndexMap[float64]
	}{
		{[]int64{2, 1, 0}, symbols.IndexMap[float64]{0: 0.3}},
		{[]int64{2, -1, 3}, symbols.IndexMap[float64]{0: 0.3}},
		{[]int64{1, -2, 1}, symbols.IndexMap[float64]{0: -1.1, 2: 0.25}},
		{[]int64{0, 1, -1}, symbols.IndexMap[float64]{1: 0.5, 2: 0.5}},
	} {
		for _, cos := range []bool{true, false} {
			m := mustNew(t, tc.v, cos, ss)

			p, err := Subs[int64, float64](f, m, tc.smap, ss)
			require.NoError(t, err)
			require.Len(t, p, 2)
			require.True(t, p[0].Monomial.Flavour())
			require.False(t, p[1].Monomial.Flavour())
			require.True(t, p[0].Monomial.IsCompatible(ss))

			x := []float64{sampling.Float64(prng, -3, 3), sampling.Float64(prng, -3, 3), sampling.Float64(prng, -3, 3)}
			for i, val := range tc.smap {
				x[i] = val
			}

			var have float64
			for i := range p {
				have += p[i].Coefficient * eval(t, p[i].Monomial, ss, x)
			}

			require.InDelta(t, eval(t, m, ss, x), have, 1e-12)
		}
	}

	m := mustNew(t, []int64{1, 1, 0}, false, ss)

	p, err := Subs[int64, float64](f, m, nil, ss)
	require.NoError(t, err)
	require.Len(t, p, 1)
	require.Equal(t, 1.0, p[0].Coefficient)
	require.True(t, m.Equal(p[0].Monomial))

	_, err = Subs[int64, float64](f, m, symbols.IndexMap[float64]{3: 1}, ss)
	require.True(t, errors.Is(err, termalg.ErrInvalidArgument))

	_, err = Subs[int64, *big.Rat](coefficient.BigRat{}, m, symbols.IndexMap[*big.Rat]{0: big.NewRat(1, 2)}, ss)
	require.True(t, errors.Is(err, termalg.ErrDomain))
}

func TestTSubs(t *testing.T) {

	ss := symbols.NewSet("x", "y")

	t.Run("Float64", func(t *testing.T) {
		f := coefficient.Float64{}
		prng := newTestPRNG(t)

		for _, v := range [][]int64{{3, 1}, {-5, 2}, {1, -2}, {0, 1}, {4, 0}, {-2, 0}} {
			for _, cos := range []bool{true, false} {
				m := mustNew(t, v, cos, ss)

				x := []float64{sampling.Float64(prng, -3, 3), sampling.Float64(prng, -3, 3)}

				p, err := TSubs[int64, float64](f, m, 0, math.Cos(x[0]), math.Sin(x[0]), ss)
				require.NoError(t, err)
				require.Len(t, p, 2)

				var have float64
				for i := range p {
					have += p[i].Coefficient * eval(t, p[i].Monomial, ss, x)
				}

				require.InDelta(t, eval(t, m, ss, x), have, 1e-12, "v=%v cos=%t", v, cos)
			}
		}

		_, err := TSubs[int64, float64](f, mustNew(t, []int64{1, 1}, true, ss), 0, 1, 1, ss)
		require.True(t, errors.Is(err, termalg.ErrDomain))

		_, err = TSubs[int64, float64](f, mustNew(t, []int64{1, 1}, true, ss), 2, 1, 0, ss)
		require.True(t, errors.Is(err, termalg.ErrInvalidArgument))
	})

	t.Run("BigRat", func(t *testing.T) {
		f := coefficient.BigRat{}

		// cos(2x + y) with cos(x) = 3/5, sin(x) = 4/5:
		// cos(2x) = -7/25, sin(2x) = 24/25.
		m := mustNew(t, []int64{2, 1}, true, ss)

		p, err := TSubs[int64, *big.Rat](f, m, 0, big.NewRat(3, 5), big.NewRat(4, 5), ss)
		require.NoError(t, err)

		require.Equal(t, "-7/25", f.String(p[0].Coefficient))
		requireMonomial(t, []int64{0, 1}, true, p[0].Monomial, ss)
		require.Equal(t, "-24/25", f.String(p[1].Coefficient))
		requireMonomial(t, []int64{0, 1}, false, p[1].Monomial, ss)

		// sin(2x - y): the remaining monomial sin(-y) is canonicalised to -sin(y).
		m = mustNew(t, []int64{2, -1}, false, ss)

		p, err = TSubs[int64, *big.Rat](f, m, 0, big.NewRat(3, 5), big.NewRat(4, 5), ss)
		require.NoError(t, err)

		require.Equal(t, "24/25", f.String(p[0].Coefficient))
		requireMonomial(t, []int64{0, 1}, true, p[0].Monomial, ss)
		require.Equal(t, "7/25", f.String(p[1].Coefficient))
		requireMonomial(t, []int64{0, 1}, false, p[1].Monomial, ss)
	})
}
