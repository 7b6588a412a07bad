package kronecker

import (
	"math/big"
	"sync"

	"github.com/termalg/termalg/utils"
	"github.com/termalg/termalg/utils/bignum"
	"github.com/termalg/termalg/utils/sampling"
)

// Limit stores the codec parameters of one dimension.
type Limit[T Integer] struct {
	// Bounds are the component bounds h_i.
	Bounds []T
	// Weights are the mixed-radix weights c_i.
	Weights []T
	// HMin and HMax are the smallest and largest codes.
	HMin, HMax T
}

// Size returns the dimension of the Limit.
func (l Limit[T]) Size() int {
	return len(l.Bounds)
}

// Limits is the table of Limit indexed by dimension.
// Entry 0 is the empty vector, which only admits the code 0.
type Limits[T Integer] struct {
	entries []Limit[T]
}

// MaxSize returns the largest dimension supported by the table.
func (l *Limits[T]) MaxSize() int {
	return len(l.entries) - 1
}

// Get returns the Limit of dimension n and false if n is not supported.
func (l *Limits[T]) Get(n int) (Limit[T], bool) {
	if n < 0 || n >= len(l.entries) {
		return Limit[T]{}, false
	}
	return l.entries[n], true
}

var (
	limits8  = sync.OnceValue(newLimits[int8])
	limits16 = sync.OnceValue(newLimits[int16])
	limits32 = sync.OnceValue(newLimits[int32])
	limits64 = sync.OnceValue(newLimits[int64])
)

// GetLimits returns the process-wide table of T.
// The table is built on the first call and is read-only afterwards.
func GetLimits[T Integer]() *Limits[T] {
	var t T
	switch any(t).(type) {
	case int8:
		return any(limits8()).(*Limits[T])
	case int16:
		return any(limits16()).(*Limits[T])
	case int32:
		return any(limits32()).(*Limits[T])
	default:
		return any(limits64()).(*Limits[T])
	}
}

func newLimits[T Integer]() *Limits[T] {

	width := utils.BitWidth[T]()
	maxT := bignum.NewInt(int64(utils.MaxSigned[T]()))

	l := &Limits[T]{entries: []Limit[T]{{Bounds: []T{}, Weights: []T{}}}}

	for m := 1; ; m++ {
		bounds, ok := determineBounds(width, m, maxT)
		if !ok {
			break
		}
		l.entries = append(l.entries, newLimit[T](bounds))
	}

	logger().Debug("kronecker limits table built", "width", width, "max_size", l.MaxSize())

	return l
}

// determineBounds returns the largest perturbed power-of-two bounds of
// dimension m whose full code range fits in maxT. It returns false if
// even the all-ones bounds do not fit.
func determineBounds(width, m int, maxT *big.Int) (bounds []*big.Int, ok bool) {

	prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey("kronecker", int64(width), int64(m)))

	// Sanity check: the key has KeySize bytes.
	if err != nil {
		panic(err)
	}

	cur := make([]*big.Int, m)
	for i := range cur {
		cur[i] = big.NewInt(1)
	}

	random := make([]byte, m)

	for fits(cur, maxT) {

		bounds = cur

		/* #nosec G104 -- reads from a blake2b XOF never fail */
		prng.Read(random)

		next := make([]*big.Int, m)
		for i := range next {
			arg := bignum.MulInt64(cur[i], 2)
			delta := bignum.MulInt64(arg, int64(random[i]%11)-5)
			arg.Add(arg, delta.Quo(delta, big.NewInt(100)))
			next[i] = arg.Abs(arg)
		}

		cur = next
	}

	return bounds, bounds != nil
}

// fits returns true if prod_i (2h_i+1) - 1 <= maxT.
func fits(bounds []*big.Int, maxT *big.Int) bool {
	prod := big.NewInt(1)
	for _, h := range bounds {
		radix := bignum.MulInt64(h, 2)
		prod.Mul(prod, radix.Add(radix, big.NewInt(1)))
	}
	return prod.Sub(prod, big.NewInt(1)).Cmp(maxT) <= 0
}

func newLimit[T Integer](bounds []*big.Int) (l Limit[T]) {

	m := len(bounds)

	l.Bounds = make([]T, m)
	l.Weights = make([]T, m)

	w := big.NewInt(1)
	hmax := new(big.Int)

	for i, h := range bounds {
		l.Bounds[i] = T(h.Int64())
		l.Weights[i] = T(w.Int64())
		hmax.Add(hmax, new(big.Int).Mul(h, w))
		radix := bignum.MulInt64(h, 2)
		w.Mul(w, radix.Add(radix, big.NewInt(1)))
	}

	l.HMax = T(hmax.Int64())
	l.HMin = -l.HMax

	return
}
