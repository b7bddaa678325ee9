//go:build !gmp

package fibonacci

import "math/big"

// ArbitraryIterative returns F(n) with math/big using a rolling (prev, curr)
// pair. Build with -tags=gmp to run the additions on GMP integers instead.
func ArbitraryIterative(n *big.Int) *big.Int {
	if v, ok := isBaseCase(n); ok {
		return v
	}

	prev, curr := big.NewInt(0), big.NewInt(1)
	forEachStep(n, func() {
		prev.Add(prev, curr)
		prev, curr = curr, prev
	})
	return curr
}
