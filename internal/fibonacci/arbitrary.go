package fibonacci

import (
	"math/big"
)

var bigOne = big.NewInt(1)

// forEachStep calls step n-1 times. Indices that fit a uint64 use a machine
// counter; larger ones fall back to a big.Int counter.
func forEachStep(n *big.Int, step func()) {
	if n.IsUint64() {
		count := n.Uint64()
		for i := uint64(1); i < count; i++ {
			step()
		}
		return
	}
	for i := big.NewInt(1); i.Cmp(n) < 0; i.Add(i, bigOne) {
		step()
	}
}

// isBaseCase reports whether n is 0 or 1 (or negative, which callers treat
// as 0) and returns F(n) for those cases.
func isBaseCase(n *big.Int) (*big.Int, bool) {
	if n.Sign() <= 0 {
		return new(big.Int), true
	}
	if n.Cmp(bigOne) == 0 {
		return big.NewInt(1), true
	}
	return nil, false
}

// recursionState is one frame of the accumulator-passing recursion
// fib(target, current, prev, curr).
type recursionState struct {
	target  *big.Int
	current *big.Int
	prev    *big.Int
	curr    *big.Int
}

// step evaluates one frame. It returns the final value and true when
// current has reached target; otherwise it advances the frame in place to
// fib(target, current+1, curr, prev+curr).
func (s *recursionState) step() (*big.Int, bool) {
	sum := new(big.Int).Add(s.prev, s.curr)
	if s.current.Cmp(s.target) == 0 {
		return sum, true
	}
	s.current.Add(s.current, bigOne)
	s.prev, s.curr = s.curr, sum
	return nil, false
}

// ArbitraryRecursive returns F(n) with math/big using the accumulator-passing
// recursion. Frames are evaluated in a loop, so the call depth stays constant
// whatever the index.
func ArbitraryRecursive(n *big.Int) *big.Int {
	if v, ok := isBaseCase(n); ok {
		return v
	}

	state := &recursionState{
		target:  n,
		current: big.NewInt(2),
		prev:    big.NewInt(0),
		curr:    big.NewInt(1),
	}
	for {
		if v, done := state.step(); done {
			return v
		}
	}
}

// newDirectFloat returns a big.Float configured with the Direct generator's
// precision and half-to-even rounding.
func newDirectFloat() *big.Float {
	return new(big.Float).SetPrec(directPrecisionBits).SetMode(big.ToNearestEven)
}

// powFloat returns x^n for a non-negative integer exponent by repeated
// squaring over the bits of n.
func powFloat(x *big.Float, n *big.Int) *big.Float {
	result := newDirectFloat().SetInt64(1)
	base := newDirectFloat().Set(x)
	bits := n.BitLen()
	for i := 0; i < bits; i++ {
		if n.Bit(i) == 1 {
			result.Mul(result, base)
		}
		if i+1 < bits {
			base.Mul(base, base)
		}
	}
	return result
}

// ArbitraryDirect evaluates Binet's formula with big.Float carrying
// DirectDecimalDigits significant digits:
//
//	F(n) = (phi^n - (-phi)^(-n)) / sqrt(5)
//
// The negative power is computed as (-1)^n / phi^n, so only non-negative
// integer exponents are ever raised. The result is rounded to the nearest
// integer. It stays exact while F(n) has noticeably fewer digits than the
// working precision and drifts beyond that. If phi^n overflows the big.Float
// exponent range the result is 0.
func ArbitraryDirect(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}

	one := newDirectFloat().SetInt64(1)
	sqrt5 := newDirectFloat().Sqrt(newDirectFloat().SetInt64(5))
	phi := newDirectFloat().Add(one, sqrt5)
	phi.Quo(phi, newDirectFloat().SetInt64(2))

	phiN := powFloat(phi, n)
	if phiN.IsInf() {
		return new(big.Int)
	}
	correction := newDirectFloat().Quo(one, phiN)
	if n.Bit(0) == 1 {
		correction.Neg(correction)
	}

	value := newDirectFloat().Sub(phiN, correction)
	value.Quo(value, sqrt5)
	return roundToInt(value)
}

// roundToInt rounds a non-negative big.Float to the nearest integer.
func roundToInt(x *big.Float) *big.Int {
	half := newDirectFloat().SetFloat64(0.5)
	shifted := newDirectFloat().Add(x, half)
	result, _ := shifted.Int(nil)
	if result == nil {
		return new(big.Int)
	}
	return result
}
