package solver

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the flow algorithms implemented by Solver.
type Algorithm int8

const (
	// EdmondsKarp augments along fewest-arc paths (breadth-first search).
	EdmondsKarp Algorithm = iota

	// CapacityScaling augments along fewest-arc paths restricted to arcs
	// above a threshold that is halved after each phase.
	CapacityScaling

	// MinCostFlow augments along cheapest paths (successive shortest paths)
	// and yields a maximum flow of minimum cost.
	MinCostFlow

	// FordFulkerson augments along the paths found by a depth-first search.
	FordFulkerson
)

var algorithmNames = [...]string{
	EdmondsKarp:     "edmonds-karp",
	CapacityScaling: "capacity-scaling",
	MinCostFlow:     "min-cost-flow",
	FordFulkerson:   "ford-fulkerson",
}

var algorithmAliases = map[string]Algorithm{
	"ek":      EdmondsKarp,
	"scaling": CapacityScaling,
	"mcmf":    MinCostFlow,
	"ff":      FordFulkerson,
}

// Algorithms returns all the algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{EdmondsKarp, CapacityScaling, MinCostFlow, FordFulkerson}
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int8(a))
	}
	return algorithmNames[a]
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// ParseAlgorithm returns the algorithm with the given name. Both full names
// (e.g. "edmonds-karp") and short aliases (e.g. "ek", "mcmf") are accepted,
// regardless of case.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
