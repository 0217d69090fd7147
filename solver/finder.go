package solver

import (
	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
)

// PathFinder finds augmenting paths in the residual graph of a network.
//
// FindPath stores in p a path from source to sink whose arcs all have a
// positive residual capacity, together with its bottleneck, and returns true.
// It returns false if the sink cannot be reached, in which case p is left in
// an unspecified state.
type PathFinder interface {
	FindPath(source, sink int, p *paths.Path) bool
}

// tracePath rebuilds in p the path from source to sink by following the arcs
// recorded in parent, where parent[v] is the arc used to reach node v.
func tracePath(net *network.Network, parent []int, source, sink int, p *paths.Path) {
	p.Reset(sink)
	for v := sink; v != source; {
		a := parent[v]
		u := net.Arc(a).From
		p.Extend(a, u)
		v = u
	}
	p.Reverse()
}

// pathBottleneck returns the minimum residual capacity of the arcs of p.
func pathBottleneck(net *network.Network, p *paths.Path) int64 {
	b := network.Infinity
	for _, a := range p.Arcs() {
		b = min(b, net.ArcResidual(a))
	}
	return b
}
