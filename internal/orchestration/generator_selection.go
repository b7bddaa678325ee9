package orchestration

import (
	"github.com/agbru/fibfinder/internal/fibonacci"
)

// GetGeneratorsToRun returns the generators of a benchmark in report order.
// A nil factory selects the six built-in generators.
func GetGeneratorsToRun(factory fibonacci.GeneratorFactory) []fibonacci.Generator {
	if factory == nil {
		factory = fibonacci.NewDefaultFactory()
	}
	return factory.All()
}

// GetGenerator returns the single generator selected by a mode and an
// algorithm, as used by the naive and dynamic command modes.
func GetGenerator(factory fibonacci.GeneratorFactory, domain fibonacci.Domain, algorithm fibonacci.Algorithm) (fibonacci.Generator, error) {
	if factory == nil {
		factory = fibonacci.NewDefaultFactory()
	}
	return factory.Get(domain, algorithm)
}
