package fibonacci

import (
	"math"
	"math/big"
)

var lowWordMask = new(big.Int).SetUint64(math.MaxUint64)

// NarrowIndex converts an arbitrary-precision index into the int64 consumed by
// the Fixed-domain generators, keeping the low 64 bits (two's complement).
// Indices above math.MaxInt64 therefore wrap, which is the accepted precision
// loss of the Fixed domain.
func NarrowIndex(n *big.Int) int64 {
	if n.IsInt64() {
		return n.Int64()
	}
	low := new(big.Int).And(n, lowWordMask)
	return int64(low.Uint64())
}

// FixedIterative returns F(n) using int64 arithmetic and a rolling
// (prev, curr) pair. Results wrap for n > MaxFixedIndex.
func FixedIterative(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	prev, curr := int64(0), int64(1)
	for i := int64(1); i < n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// FixedRecursive returns F(n) using the accumulator-passing recursion
// (target, current, prev, curr). The recursion is unrolled into a loop so
// large indices cannot exhaust the goroutine stack.
func FixedRecursive(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	target, current := n, int64(2)
	prev, curr := int64(0), int64(1)
	for {
		// fib(target, current, prev, curr):
		//   current == target -> prev + curr
		//   otherwise         -> fib(target, current+1, curr, prev+curr)
		if current == target {
			return prev + curr
		}
		current++
		prev, curr = curr, prev+curr
	}
}

// FixedDirect evaluates Binet's formula in float64:
//
//	F(n) = (phi^n - (-phi)^(-n)) / sqrt(5)
//
// The float result is rounded half-to-even and narrowed to int64, saturating
// at math.MaxInt64 once phi^n leaves the int64 range. Precision loss makes
// the result drift from the true value past MaxFixedDirectExactIndex.
func FixedDirect(n int64) int64 {
	if n < 0 {
		return 0
	}
	sqrt5 := math.Sqrt(5)
	phi := (1 + sqrt5) / 2
	nf := float64(n)
	value := (math.Pow(phi, nf) - math.Pow(-phi, -nf)) / sqrt5
	return saturateInt64(math.RoundToEven(value))
}

// saturateInt64 narrows f to int64 the way a float-to-long cast does:
// NaN becomes 0 and out-of-range values clamp to the nearest bound.
func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
