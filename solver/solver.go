// Package solver contains augmenting path algorithms to compute maximum flows
// and minimum-cost maximum flows on a network.
package solver

import (
	"fmt"

	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the options of a Solver.
type Config struct {
	// Logger receives a debug entry for each augmentation and scaling phase
	// and an info entry per solve. A nil Logger discards everything.
	Logger *zap.Logger

	// Check enables the validation of the flow invariants (see Validate)
	// after every augmentation, as well as the reduced cost invariant when
	// computing minimum-cost flows. This is slow and meant for debugging.
	Check bool
}

// Result summarizes a solve.
type Result struct {
	Algorithm Algorithm

	// Flow is the value of the maximum flow from the source to the sink.
	Flow int64

	// Cost is the total cost of the flow. It is minimal only for
	// MinCostFlow; other algorithms report the cost of the flow they found.
	Cost int64

	// Augmentations is the number of augmenting paths used.
	Augmentations int

	// Phases is the number of scaling phases (1 for algorithms without
	// scaling, 0 if the network is empty).
	Phases int

	// Empty is true if the network has no positive capacity. No augmentation
	// is attempted in that case.
	Empty bool
}

// Solver runs flow algorithms on a network. The network's flow is reset at
// the beginning of each solve and holds the solution once it returns.
//
// A Solver must not be used by several goroutines at once, and two solvers
// must not share a network concurrently.
type Solver struct {
	net  *network.Network
	cfg  Config
	log  *zap.Logger
	path *paths.Path
}

// NewSolver returns a new solver for the given network.
func NewSolver(net *network.Network, cfg Config) *Solver {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{
		net: net,
		cfg: cfg,
		log: log,
	}
}

// Network returns the network the solver operates on.
func (s *Solver) Network() *network.Network {
	return s.net
}

// MaxFlow computes a maximum flow from source to sink with the Edmonds-Karp
// algorithm.
func (s *Solver) MaxFlow(source, sink string) (Result, error) {
	return s.Solve(EdmondsKarp, source, sink)
}

// ScaledMaxFlow computes a maximum flow from source to sink with capacity
// scaling.
func (s *Solver) ScaledMaxFlow(source, sink string) (Result, error) {
	return s.Solve(CapacityScaling, source, sink)
}

// MinCostMaxFlow computes a maximum flow of minimum cost from source to sink
// with successive shortest paths.
func (s *Solver) MinCostMaxFlow(source, sink string) (Result, error) {
	return s.Solve(MinCostFlow, source, sink)
}

// DepthFirstMaxFlow computes a maximum flow from source to sink with the
// Ford-Fulkerson method.
func (s *Solver) DepthFirstMaxFlow(source, sink string) (Result, error) {
	return s.Solve(FordFulkerson, source, sink)
}

// Solve runs the given algorithm from source to sink.
//
// Unknown labels (ErrUnknownNode), identical terminals (ErrSameTerminal) and
// unknown algorithms are reported before the network is modified. Errors
// returned during the solve itself indicate a negative cost cycle or an
// internal inconsistency; no partial result is returned with them.
func (s *Solver) Solve(alg Algorithm, source, sink string) (Result, error) {
	if !alg.valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	src, dst, err := s.terminals(source, sink)
	if err != nil {
		return Result{}, err
	}

	s.net.ResetFlow()
	res := Result{Algorithm: alg}

	if s.net.MaxCapacity() == 0 {
		res.Empty = true
		s.log.Info("empty network, no flow to compute",
			zap.Stringer("algorithm", alg),
			zap.Stringer("network", s.net),
		)
		return res, nil
	}

	if s.path == nil || cap(s.path.Nodes()) < s.net.NumNodes() {
		s.path = paths.New(s.net.NumNodes())
	}

	switch alg {
	case EdmondsKarp:
		res.Phases = 1
		err = s.exhaust(NewBFSFinder(s.net), src, dst, &res)
	case FordFulkerson:
		res.Phases = 1
		err = s.exhaust(NewDFSFinder(s.net), src, dst, &res)
	case CapacityScaling:
		err = s.scale(src, dst, &res)
	case MinCostFlow:
		res.Phases = 1
		var finder *CostFinder
		if finder, err = NewCostFinder(s.net); err == nil {
			err = s.exhaust(finder, src, dst, &res)
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s from %q to %q: %w", alg, source, sink, err)
	}

	s.log.Info("flow computed",
		zap.Stringer("algorithm", alg),
		zap.Int64("flow", res.Flow),
		zap.Int64("cost", res.Cost),
		zap.Int("augmentations", res.Augmentations),
		zap.Int("phases", res.Phases),
	)
	return res, nil
}

// terminals resolves the labels of the source and the sink.
func (s *Solver) terminals(source, sink string) (int, int, error) {
	src, ok := s.net.Node(source)
	if !ok {
		return 0, 0, fmt.Errorf("source: %w", network.UnknownNode(source))
	}
	dst, ok := s.net.Node(sink)
	if !ok {
		return 0, 0, fmt.Errorf("sink: %w", network.UnknownNode(sink))
	}
	if src == dst {
		return 0, 0, fmt.Errorf("%w: %q", ErrSameTerminal, source)
	}
	return src, dst, nil
}

// exhaust augments along the paths returned by finder until it finds none.
func (s *Solver) exhaust(finder PathFinder, source, sink int, res *Result) error {
	for finder.FindPath(source, sink, s.path) {
		amount := s.path.Bottleneck()
		cost, err := Augment(s.net, s.path)
		if err != nil {
			return err
		}
		res.Flow += amount
		res.Cost += cost
		res.Augmentations++

		if ce := s.log.Check(zapcore.DebugLevel, "augmenting path"); ce != nil {
			ce.Write(
				zap.String("path", s.path.Format(s.net.Label)),
				zap.Int64("amount", amount),
				zap.Int64("cost", cost),
				zap.Int64("flow", res.Flow),
			)
		}

		if s.cfg.Check {
			if err := s.check(finder, source, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Solver) check(finder PathFinder, source, sink int) error {
	if err := Validate(s.net, source, sink); err != nil {
		return err
	}
	if cf, ok := finder.(*CostFinder); ok {
		if a, bad := cf.Potentials().Violation(s.net); bad {
			arc := s.net.Arc(a)
			return fmt.Errorf("%w: arc %d (%s -> %s) has reduced cost %d",
				ErrInvariantViolated, a, s.net.Label(arc.From), s.net.Label(arc.To),
				cf.Potentials().Reduced(s.net, a))
		}
	}
	return nil
}
