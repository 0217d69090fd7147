package solver

import (
	"fmt"

	"github.com/rhartert/flowcore/network"
)

// Validate checks that the current flow of net is a valid source-sink flow:
//
//   - skew symmetry: the flow of every arc is the opposite of the flow of its
//     paired arc;
//   - capacity: 0 <= flow <= capacity on every forward arc;
//   - conservation: inflow equals outflow at every node other than source and
//     sink, and the outflow of the source equals the inflow of the sink.
//
// The returned error wraps ErrInvariantViolated.
func Validate(net *network.Network, source, sink int) error {
	excess := make([]int64, net.NumNodes())

	for a := 0; a < net.NumArcs(); a += 2 {
		arc := net.Arc(a)
		f := net.Flow(a)
		if rf := net.Flow(arc.Rev); rf != -f {
			return fmt.Errorf("%w: arc %d has flow %d but its reverse has flow %d",
				ErrInvariantViolated, a, f, rf)
		}
		if f < 0 || f > arc.Capacity {
			return fmt.Errorf("%w: arc %d (%s -> %s) has flow %d outside [0, %d]",
				ErrInvariantViolated, a, net.Label(arc.From), net.Label(arc.To), f, arc.Capacity)
		}
		excess[arc.From] -= f
		excess[arc.To] += f
	}

	for v, e := range excess {
		if v == source || v == sink || e == 0 {
			continue
		}
		return fmt.Errorf("%w: node %q has excess %d", ErrInvariantViolated, net.Label(v), e)
	}
	if excess[source] != -excess[sink] {
		return fmt.Errorf("%w: source sends %d but sink receives %d",
			ErrInvariantViolated, -excess[source], excess[sink])
	}
	return nil
}

// OutFlow returns the net flow leaving node: the flow of the edges leaving
// node minus the flow of the edges entering it. The reverse arc of an
// entering edge carries the opposite of that edge's flow, so the sum over all
// the arcs leaving node is exactly that.
func OutFlow(net *network.Network, node int) int64 {
	total := int64(0)
	for _, a := range net.Nexts(node) {
		total += net.Flow(a)
	}
	return total
}
