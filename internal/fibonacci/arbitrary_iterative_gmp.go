//go:build gmp

// This file provides a GMP-backed Arbitrary Iterative generator, compiled
// with the "gmp" build tag. It requires libgmp:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package fibonacci

import (
	"math/big"

	"github.com/ncw/gmp"
)

// ArbitraryIterative returns F(n) using a rolling (prev, curr) pair of GMP
// integers, converting the final value back to math/big.
func ArbitraryIterative(n *big.Int) *big.Int {
	if v, ok := isBaseCase(n); ok {
		return v
	}

	prev, curr := gmp.NewInt(0), gmp.NewInt(1)
	forEachStep(n, func() {
		prev.Add(prev, curr)
		prev, curr = curr, prev
	})
	return new(big.Int).SetBytes(curr.Bytes())
}
