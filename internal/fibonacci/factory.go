package fibonacci

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Generator produces F(n) for one (Domain, Algorithm) pair.
type Generator interface {
	// Name returns the identifier "<domain>/<algorithm>", e.g. "fixed/direct".
	Name() string
	Algorithm() Algorithm
	Domain() Domain
	// Generate returns F(n). Fixed-domain generators narrow n with
	// NarrowIndex before computing.
	Generate(n *big.Int) Value
}

// GeneratorFactory resolves generators by domain and algorithm.
type GeneratorFactory interface {
	Get(domain Domain, algorithm Algorithm) (Generator, error)
	// List returns the registered generator names in sorted order.
	List() []string
	// All returns every registered generator in report order: Fixed before
	// Arbitrary, each as Iterative, Recursive, Direct.
	All() []Generator
}

type fixedGenerator struct {
	algorithm Algorithm
	fn        func(int64) int64
}

func (g fixedGenerator) Name() string         { return generatorName(Fixed, g.algorithm) }
func (g fixedGenerator) Algorithm() Algorithm { return g.algorithm }
func (g fixedGenerator) Domain() Domain       { return Fixed }

func (g fixedGenerator) Generate(n *big.Int) Value {
	return Value{Domain: Fixed, Fixed: g.fn(NarrowIndex(n))}
}

type arbitraryGenerator struct {
	algorithm Algorithm
	fn        func(*big.Int) *big.Int
}

func (g arbitraryGenerator) Name() string         { return generatorName(Arbitrary, g.algorithm) }
func (g arbitraryGenerator) Algorithm() Algorithm { return g.algorithm }
func (g arbitraryGenerator) Domain() Domain       { return Arbitrary }

func (g arbitraryGenerator) Generate(n *big.Int) Value {
	return Value{Domain: Arbitrary, Arbitrary: g.fn(n)}
}

func generatorName(d Domain, a Algorithm) string {
	return d.String() + "/" + a.String()
}

// NewGenerator returns the built-in generator for the given pair.
func NewGenerator(domain Domain, algorithm Algorithm) (Generator, error) {
	switch domain {
	case Fixed:
		switch algorithm {
		case Iterative:
			return fixedGenerator{algorithm, FixedIterative}, nil
		case Recursive:
			return fixedGenerator{algorithm, FixedRecursive}, nil
		case Direct:
			return fixedGenerator{algorithm, FixedDirect}, nil
		}
	case Arbitrary:
		switch algorithm {
		case Iterative:
			return arbitraryGenerator{algorithm, ArbitraryIterative}, nil
		case Recursive:
			return arbitraryGenerator{algorithm, ArbitraryRecursive}, nil
		case Direct:
			return arbitraryGenerator{algorithm, ArbitraryDirect}, nil
		}
	}
	return nil, fmt.Errorf("no generator for %s/%s", domain, algorithm)
}

// DefaultFactory is a thread-safe registry of generators.
type DefaultFactory struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewDefaultFactory returns a factory with the six built-in generators
// registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{generators: make(map[string]Generator)}
	for _, d := range Domains {
		for _, a := range Algorithms {
			g, err := NewGenerator(d, a)
			if err != nil {
				panic(err)
			}
			f.generators[g.Name()] = g
		}
	}
	return f
}

// Register adds or replaces a generator under its Name.
func (f *DefaultFactory) Register(g Generator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generators[g.Name()] = g
}

// Get returns the generator registered for the given pair.
func (f *DefaultFactory) Get(domain Domain, algorithm Algorithm) (Generator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	g, ok := f.generators[generatorName(domain, algorithm)]
	if !ok {
		return nil, fmt.Errorf("generator %q is not registered", generatorName(domain, algorithm))
	}
	return g, nil
}

// List returns the sorted names of all registered generators.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.generators))
	for name := range f.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered generators in report order, skipping pairs that
// have no registration.
func (f *DefaultFactory) All() []Generator {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Generator, 0, len(Domains)*len(Algorithms))
	for _, d := range Domains {
		for _, a := range Algorithms {
			if g, ok := f.generators[generatorName(d, a)]; ok {
				out = append(out, g)
			}
		}
	}
	return out
}

var _ GeneratorFactory = (*DefaultFactory)(nil)
