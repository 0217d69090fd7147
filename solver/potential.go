package solver

import (
	"fmt"

	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/sparsesets"
)

// Potentials maintains one potential per node such that the reduced cost
// cost(u,v) + potential(u) - potential(v) of every arc with a positive
// residual capacity is non-negative. This is what allows shortest paths to
// be computed with Dijkstra's algorithm even though reverse arcs have
// negative costs.
type Potentials struct {
	values []int64
}

// NewPotentials returns n potentials, all set to 0.
func NewPotentials(n int) *Potentials {
	return &Potentials{values: make([]int64, n)}
}

// Get returns the potential of node.
func (p *Potentials) Get(node int) int64 {
	return p.values[node]
}

// Values returns the potential of every node.
//
// Important: the slice is a view on the tracker's internal structure and
// should only be used in read-only operations.
func (p *Potentials) Values() []int64 {
	return p.values
}

// Reduced returns the reduced cost of arc a.
func (p *Potentials) Reduced(net *network.Network, a int) int64 {
	arc := net.Arc(a)
	return arc.Cost + p.values[arc.From] - p.values[arc.To]
}

// Seed initializes the potentials so that the invariant holds on the current
// residual graph. Zero potentials already satisfy it unless some arc with a
// positive residual has a negative cost; in that case the potentials are set
// to shortest distances from a virtual node linked to every node with a zero
// cost arc (Johnson's technique), computed with Bellman-Ford.
//
// Seed returns an error wrapping ErrNegativeCycle if the residual graph has a
// cycle of negative cost.
func (p *Potentials) Seed(net *network.Network) error {
	for i := range p.values {
		p.values[i] = 0
	}

	negative := false
	for a := 0; a < net.NumArcs(); a++ {
		if net.ArcResidual(a) > 0 && net.Arc(a).Cost < 0 {
			negative = true
			break
		}
	}
	if !negative {
		return nil
	}

	// All distances start at 0: the virtual node reaches every node for free.
	for round := 0; round <= len(p.values); round++ {
		changed := false
		for a := 0; a < net.NumArcs(); a++ {
			if net.ArcResidual(a) <= 0 {
				continue
			}
			arc := net.Arc(a)
			if d := p.values[arc.From] + arc.Cost; d < p.values[arc.To] {
				p.values[arc.To] = d
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}

	return fmt.Errorf("%w: distances still decrease after %d rounds", ErrNegativeCycle, len(p.values)+1)
}

// Update reweights the potentials after a shortest path search whose
// distances (in reduced costs) are given by dist. Reached nodes get their
// distance added. Nodes that were not reached get the largest distance found,
// which keeps the reduced cost of arcs leaving them non-negative as well.
func (p *Potentials) Update(dist []int64, reached *sparsesets.Set) {
	maxDist := int64(0)
	for _, v := range reached.Content() {
		maxDist = max(maxDist, dist[v])
	}
	for v := range p.values {
		if reached.Contains(v) {
			p.values[v] += dist[v]
		} else {
			p.values[v] += maxDist
		}
	}
}

// Violation returns the first arc with a positive residual capacity and a
// negative reduced cost. The second value is false if there is none.
func (p *Potentials) Violation(net *network.Network) (int, bool) {
	for a := 0; a < net.NumArcs(); a++ {
		if net.ArcResidual(a) > 0 && p.Reduced(net, a) < 0 {
			return a, true
		}
	}
	return -1, false
}
