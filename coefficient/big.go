package coefficient

import (
	"fmt"
	"math/big"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/utils/bignum"
)

// BigFloat is the Field of *big.Float with Prec bits of precision.
type BigFloat struct {
	Prec uint
}

// NewBigFloat returns a BigFloat of the given precision.
func NewBigFloat(prec uint) BigFloat {
	return BigFloat{Prec: prec}
}

func (f BigFloat) prec() uint {
	if f.Prec == 0 {
		return 53
	}
	return f.Prec
}

func (f BigFloat) new() *big.Float {
	return new(big.Float).SetPrec(f.prec())
}

func (f BigFloat) Zero() *big.Float { return f.new() }

func (f BigFloat) One() *big.Float { return bignum.NewFloat(1, f.prec()) }

func (f BigFloat) FromInt64(x int64) *big.Float { return bignum.NewFloat(x, f.prec()) }

func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.new().Add(a, b) }

func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.new().Sub(a, b) }

func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.new().Mul(a, b) }

func (f BigFloat) Neg(a *big.Float) *big.Float { return f.new().Neg(a) }

func (f BigFloat) Quo(a, b *big.Float) (*big.Float, error) {
	if b.Sign() == 0 {
		return nil, errZeroDivision(a)
	}
	return f.new().Quo(a, b), nil
}

// Pow returns x^n. Negative bases are raised to |x|^n and the sign is
// restored for odd n.
func (f BigFloat) Pow(x *big.Float, n int64) (*big.Float, error) {

	switch {
	case n == 0:
		return f.One(), nil
	case x.Sign() == 0:
		if n < 0 {
			return nil, fmt.Errorf("%w: cannot Pow: zero raised to the negative power %d", termalg.ErrDomain, n)
		}
		return f.Zero(), nil
	}

	abs := f.new().Abs(x)

	y := bignum.Pow(abs, bignum.NewFloat(n, f.prec()))

	if x.Sign() < 0 && n&1 == 1 {
		y.Neg(y)
	}

	return y, nil
}

func (f BigFloat) Cos(x *big.Float) (*big.Float, error) {
	return bignum.Cos(f.new().Set(x)), nil
}

func (f BigFloat) Sin(x *big.Float) (*big.Float, error) {
	return bignum.Sin(f.new().Set(x)), nil
}

func (f BigFloat) IsZero(x *big.Float) bool { return x.Sign() == 0 }

// IsOne returns true if |x-1| <= 2^(8-Prec).
func (f BigFloat) IsOne(x *big.Float) bool {
	d := f.new().Sub(x, f.One())
	tol := new(big.Float).SetMantExp(big.NewFloat(1), 8-int(f.prec()))
	return d.Abs(d).Cmp(tol) <= 0
}

func (f BigFloat) Equal(a, b *big.Float) bool { return a.Cmp(b) == 0 }

func (f BigFloat) String(x *big.Float) string { return x.Text('g', -1) }

// BigRat is the Field of *big.Rat.
// Cos and Sin are only defined at zero.
type BigRat struct{}

func (BigRat) Zero() *big.Rat { return new(big.Rat) }

func (BigRat) One() *big.Rat { return big.NewRat(1, 1) }

func (BigRat) FromInt64(x int64) *big.Rat { return new(big.Rat).SetInt64(x) }

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (BigRat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (BigRat) Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, errZeroDivision(a)
	}
	return new(big.Rat).Quo(a, b), nil
}

func (f BigRat) Pow(x *big.Rat, n int64) (*big.Rat, error) {
	return pow[*big.Rat](f, x, n, func(x *big.Rat) (*big.Rat, error) {
		return new(big.Rat).Inv(x), nil
	})
}

func (BigRat) Cos(x *big.Rat) (*big.Rat, error) {
	if x.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot Cos: cos(%s) is not rational", termalg.ErrDomain, x.RatString())
	}
	return big.NewRat(1, 1), nil
}

func (BigRat) Sin(x *big.Rat) (*big.Rat, error) {
	if x.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot Sin: sin(%s) is not rational", termalg.ErrDomain, x.RatString())
	}
	return new(big.Rat), nil
}

func (BigRat) IsZero(x *big.Rat) bool { return x.Sign() == 0 }

func (BigRat) IsOne(x *big.Rat) bool { return x.Cmp(big.NewRat(1, 1)) == 0 }

func (BigRat) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (BigRat) String(x *big.Rat) string { return x.RatString() }

// BigInt is the Field of *big.Int.
// Quo and negative powers are only defined when the result is an integer,
// Cos and Sin only at zero.
type BigInt struct{}

func (BigInt) Zero() *big.Int { return new(big.Int) }

func (BigInt) One() *big.Int { return big.NewInt(1) }

func (BigInt) FromInt64(x int64) *big.Int { return big.NewInt(x) }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (BigInt) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (BigInt) Quo(a, b *big.Int) (*big.Int, error) {

	if b.Sign() == 0 {
		return nil, errZeroDivision(a)
	}

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))

	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot Quo: %s is not divisible by %s", termalg.ErrDomain, a, b)
	}

	return q, nil
}

func (f BigInt) Pow(x *big.Int, n int64) (*big.Int, error) {
	return pow[*big.Int](f, x, n, func(x *big.Int) (*big.Int, error) {
		return f.Quo(big.NewInt(1), x)
	})
}

func (BigInt) Cos(x *big.Int) (*big.Int, error) {
	if x.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot Cos: cos(%s) is not an integer", termalg.ErrDomain, x)
	}
	return big.NewInt(1), nil
}

func (BigInt) Sin(x *big.Int) (*big.Int, error) {
	if x.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot Sin: sin(%s) is not an integer", termalg.ErrDomain, x)
	}
	return new(big.Int), nil
}

func (BigInt) IsZero(x *big.Int) bool { return x.Sign() == 0 }

func (BigInt) IsOne(x *big.Int) bool { return x.IsInt64() && x.Int64() == 1 }

func (BigInt) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (BigInt) String(x *big.Int) string { return x.String() }
