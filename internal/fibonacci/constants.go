package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Domain Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxFixedIndex is the largest index whose Fibonacci number fits in an
	// int64. F(93) overflows and Fixed-domain generators wrap from there on.
	MaxFixedIndex = 92

	// MaxFixedDirectExactIndex is the largest index at which the float64
	// Binet formula is still guaranteed to round to the exact value.
	// Beyond it the Fixed Direct generator drifts from the true sequence.
	MaxFixedDirectExactIndex = 70
)

// ─────────────────────────────────────────────────────────────────────────────
// Direct (Binet) Precision
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DirectDecimalDigits is the number of significant decimal digits carried
	// by the Arbitrary Direct generator.
	DirectDecimalDigits = 100

	// directPrecisionBits is the big.Float mantissa size used by the
	// Arbitrary Direct generator: ceil(100 * log2(10)) = 333 bits, plus
	// guard bits absorbing the rounding of sqrt(5), phi and the powers.
	directPrecisionBits = 333 + 32
)
