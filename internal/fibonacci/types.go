package fibonacci

import (
	"fmt"
	"math/big"
	"strings"
)

// Algorithm identifies the strategy used to produce a Fibonacci number.
type Algorithm int

const (
	// Iterative advances a rolling (prev, curr) pair.
	Iterative Algorithm = iota
	// Recursive carries (target, current, prev, curr) as an accumulator.
	Recursive
	// Direct evaluates Binet's closed-form formula.
	Direct
)

// Algorithms lists every algorithm in report order.
var Algorithms = []Algorithm{Iterative, Recursive, Direct}

// String returns the lower-case name used on the command line.
func (a Algorithm) String() string {
	switch a {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Title returns the capitalized name used in reports.
func (a Algorithm) Title() string {
	s := a.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseAlgorithm converts a command-line token into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q (accepted values: iterative, recursive, direct)", s)
}

// Domain identifies the numeric representation a generator works in.
type Domain int

const (
	// Fixed generators use int64 arithmetic and overflow beyond F(92).
	Fixed Domain = iota
	// Arbitrary generators use math/big and never overflow.
	Arbitrary
)

// Domains lists every domain in report order.
var Domains = []Domain{Fixed, Arbitrary}

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case Fixed:
		return "fixed"
	case Arbitrary:
		return "arbitrary"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// Mode returns the command-line mode token selecting the domain:
// "naive" for Fixed and "dynamic" for Arbitrary.
func (d Domain) Mode() string {
	if d == Arbitrary {
		return "dynamic"
	}
	return "naive"
}

// ParseMode converts a command-line mode token ("naive" or "dynamic") into
// a Domain.
func ParseMode(s string) (Domain, error) {
	switch s {
	case "naive":
		return Fixed, nil
	case "dynamic":
		return Arbitrary, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (accepted values: naive, dynamic)", s)
	}
}

// Value is the output of a generator. Fixed is meaningful for the Fixed
// domain, Arbitrary for the Arbitrary domain.
type Value struct {
	Domain    Domain
	Fixed     int64
	Arbitrary *big.Int
}

// BigInt returns the value as a big.Int regardless of domain. The result is
// a fresh copy the caller may modify.
func (v Value) BigInt() *big.Int {
	if v.Domain == Fixed {
		return big.NewInt(v.Fixed)
	}
	if v.Arbitrary == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.Arbitrary)
}

// String returns the decimal representation of the value.
func (v Value) String() string {
	if v.Domain == Fixed {
		return fmt.Sprintf("%d", v.Fixed)
	}
	return v.BigInt().String()
}
