// Package fibonacci implements the six Fibonacci generators benchmarked by
// fibfinder: Iterative, Recursive and Direct (Binet) strategies, each in a
// Fixed (int64) and an Arbitrary (math/big) domain.
//
// Fixed-domain generators wrap on overflow past F(92) and the Direct
// strategies lose precision for large indices. Both effects are intentional:
// the benchmark exists to measure them against a reference value.
//
// Build with -tags=gmp to run the Arbitrary Iterative generator on GMP.
package fibonacci
