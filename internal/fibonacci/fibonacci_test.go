package fibonacci

import (
	"math"
	"math/big"
	"testing"
)

// knownValues maps indices to F(n) for cross-checking every generator.
var knownValues = map[int64]string{
	0:   "0",
	1:   "1",
	2:   "1",
	3:   "2",
	10:  "55",
	20:  "6765",
	50:  "12586269025",
	70:  "190392490709135",
	90:  "2880067194370816120",
	92:  "7540113804746346429",
	100: "354224848179261915075",
	200: "280571172992510140037611932413038677189525",
	300: "222232244629420445529739893461909967206666939096499764990979600",
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid integer literal %q", s)
	}
	return v
}

func TestFixedGenerators_KnownValues(t *testing.T) {
	t.Parallel()
	generators := map[string]func(int64) int64{
		"iterative": FixedIterative,
		"recursive": FixedRecursive,
	}
	for name, fn := range generators {
		for n, want := range knownValues {
			if n > MaxFixedIndex {
				continue
			}
			if got := fn(n); big.NewInt(got).Cmp(mustBig(t, want)) != 0 {
				t.Errorf("%s(%d) = %d, want %s", name, n, got, want)
			}
		}
	}
}

func TestFixedGenerators_BaseCases(t *testing.T) {
	t.Parallel()
	for _, fn := range []func(int64) int64{FixedIterative, FixedRecursive, FixedDirect} {
		if got := fn(0); got != 0 {
			t.Errorf("F(0) = %d, want 0", got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("F(1) = %d, want 1", got)
		}
		if got := fn(-5); got != 0 {
			t.Errorf("F(-5) = %d, want 0", got)
		}
	}
}

func TestFixedGenerators_WrapIdentically(t *testing.T) {
	t.Parallel()
	if got := FixedIterative(93); got != -6246583658587674878 {
		t.Errorf("FixedIterative(93) = %d, want wrapped -6246583658587674878", got)
	}
	for n := int64(MaxFixedIndex + 1); n <= 300; n++ {
		if it, rec := FixedIterative(n), FixedRecursive(n); it != rec {
			t.Fatalf("n=%d: iterative %d != recursive %d", n, it, rec)
		}
	}
}

func TestFixedDirect_ExactForSmallIndices(t *testing.T) {
	t.Parallel()
	for n := int64(0); n <= MaxFixedDirectExactIndex; n++ {
		if got, want := FixedDirect(n), FixedIterative(n); got != want {
			t.Errorf("FixedDirect(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestFixedDirect_Saturates(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{93, 100, 1000, 100000} {
		if got := FixedDirect(n); got != math.MaxInt64 {
			t.Errorf("FixedDirect(%d) = %d, want MaxInt64", n, got)
		}
	}
}

func TestSaturateInt64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want int64
	}{
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
		{1e30, math.MaxInt64},
		{-1e30, math.MinInt64},
		{42, 42},
		{-7, -7},
	}
	for _, tt := range tests {
		if got := saturateInt64(tt.in); got != tt.want {
			t.Errorf("saturateInt64(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNarrowIndex(t *testing.T) {
	t.Parallel()
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	huge.Add(huge, big.NewInt(10))

	tests := []struct {
		name string
		in   *big.Int
		want int64
	}{
		{"small", big.NewInt(10), 10},
		{"max int64", big.NewInt(math.MaxInt64), math.MaxInt64},
		{"2^63 wraps negative", new(big.Int).Lsh(big.NewInt(1), 63), math.MinInt64},
		{"2^64+10 keeps low word", huge, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NarrowIndex(tt.in); got != tt.want {
				t.Errorf("NarrowIndex(%s) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestArbitraryGenerators_KnownValues(t *testing.T) {
	t.Parallel()
	generators := map[string]func(*big.Int) *big.Int{
		"iterative": ArbitraryIterative,
		"recursive": ArbitraryRecursive,
		"direct":    ArbitraryDirect,
	}
	for name, fn := range generators {
		for n, want := range knownValues {
			if got := fn(big.NewInt(n)); got.Cmp(mustBig(t, want)) != 0 {
				t.Errorf("%s(%d) = %s, want %s", name, n, got, want)
			}
		}
	}
}

func TestArbitraryDirect_ExactThroughThreeHundred(t *testing.T) {
	t.Parallel()
	for n := int64(0); n <= 300; n++ {
		idx := big.NewInt(n)
		if got, want := ArbitraryDirect(idx), ArbitraryIterative(idx); got.Cmp(want) != 0 {
			t.Fatalf("ArbitraryDirect(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestArbitraryDirect_DivergesBeyondPrecision(t *testing.T) {
	t.Parallel()
	idx := big.NewInt(1000)
	direct, exact := ArbitraryDirect(idx), ArbitraryIterative(idx)
	if direct.Cmp(exact) == 0 {
		t.Fatal("ArbitraryDirect(1000) should lose precision past 100 digits")
	}
	if len(direct.String()) != len(exact.String()) {
		t.Errorf("ArbitraryDirect(1000) has %d digits, want %d", len(direct.String()), len(exact.String()))
	}
}

func TestArbitraryGenerators_NegativeIndex(t *testing.T) {
	t.Parallel()
	for _, fn := range []func(*big.Int) *big.Int{ArbitraryIterative, ArbitraryRecursive, ArbitraryDirect} {
		if got := fn(big.NewInt(-3)); got.Sign() != 0 {
			t.Errorf("F(-3) = %s, want 0", got)
		}
	}
}

func TestForEachStep_BigCounter(t *testing.T) {
	t.Parallel()
	count := 0
	forEachStep(big.NewInt(5), func() { count++ })
	if count != 4 {
		t.Errorf("forEachStep(5) ran %d steps, want 4", count)
	}
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	all := factory.All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d generators, want 6", len(all))
	}
	wantOrder := []string{
		"fixed/iterative", "fixed/recursive", "fixed/direct",
		"arbitrary/iterative", "arbitrary/recursive", "arbitrary/direct",
	}
	for i, g := range all {
		if g.Name() != wantOrder[i] {
			t.Errorf("All()[%d] = %s, want %s", i, g.Name(), wantOrder[i])
		}
		if got := g.Generate(big.NewInt(10)).String(); got != "55" {
			t.Errorf("%s.Generate(10) = %s, want 55", g.Name(), got)
		}
	}

	if _, err := factory.Get(Domain(9), Iterative); err == nil {
		t.Error("Get with an unknown domain should fail")
	}
	if _, err := NewGenerator(Fixed, Algorithm(9)); err == nil {
		t.Error("NewGenerator with an unknown algorithm should fail")
	}
}

func TestDefaultFactory_Register(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()
	factory.Register(fixedGenerator{algorithm: Direct, fn: func(int64) int64 { return -1 }})

	g, err := factory.Get(Fixed, Direct)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := g.Generate(big.NewInt(10)).Fixed; got != -1 {
		t.Errorf("replaced generator returned %d, want -1", got)
	}
	if n := len(factory.List()); n != 6 {
		t.Errorf("List() has %d names after replacement, want 6", n)
	}
}

func TestParseAlgorithmAndMode(t *testing.T) {
	t.Parallel()
	for _, a := range Algorithms {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAlgorithm("matrix"); err == nil {
		t.Error("ParseAlgorithm(matrix) should fail")
	}
	for _, d := range Domains {
		got, err := ParseMode(d.Mode())
		if err != nil || got != d {
			t.Errorf("ParseMode(%q) = %v, %v", d.Mode(), got, err)
		}
	}
	if _, err := ParseMode("all"); err == nil {
		t.Error("ParseMode(all) should fail")
	}
	if Direct.Title() != "Direct" {
		t.Errorf("Direct.Title() = %q", Direct.Title())
	}
}

func TestValue_BigInt(t *testing.T) {
	t.Parallel()
	fixed := Value{Domain: Fixed, Fixed: -42}
	if fixed.BigInt().Int64() != -42 || fixed.String() != "-42" {
		t.Errorf("fixed value = %s", fixed)
	}
	arb := Value{Domain: Arbitrary, Arbitrary: big.NewInt(7)}
	copyOf := arb.BigInt()
	copyOf.SetInt64(8)
	if arb.Arbitrary.Int64() != 7 {
		t.Error("BigInt must return a copy")
	}
	if (Value{Domain: Arbitrary}).String() != "0" {
		t.Error("nil arbitrary value should render as 0")
	}
}
