package solver

import "errors"

var (
	// ErrSameTerminal is returned when the source and the sink are the same
	// node.
	ErrSameTerminal = errors.New("source and sink are the same node")

	// ErrNegativeCycle is returned by the min-cost solver when the network
	// contains a cycle of negative cost, for which no minimum exists.
	ErrNegativeCycle = errors.New("negative cost cycle")

	// ErrInvariantViolated is returned by Validate when the flow breaks skew
	// symmetry, capacity bounds or flow conservation.
	ErrInvariantViolated = errors.New("flow invariant violated")

	// ErrUnknownAlgorithm is returned for algorithm values or names that do
	// not match any known algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
