// Package paths provides the representation of augmenting paths found in a
// residual network.
package paths

import (
	"fmt"
	"strings"
)

// Path represents an augmenting path from a source node to a sink node.
//
// A Path is a sequence of nodes together with the sequence of arcs joining
// consecutive nodes: arc i goes from node i to node i+1. Paths are built
// backward, from the sink to the source, by following the parent arcs
// recorded during a search. It respects the following invariants:
//
//   - Minimum length: 1 (a path that has not been extended yet)
//   - Length() == len(Arcs()) + 1
//   - Source node: First element of Nodes()
//   - Sink node: Last element of Nodes()
//
// A Path is meant to be reused across searches to avoid allocations.
type Path struct {
	nodes      []int
	arcs       []int
	bottleneck int64
	reversed   bool
}

// New instantiates and returns a new empty Path with room for maxNodes
// nodes. The path must be reset before use.
func New(maxNodes int) *Path {
	return &Path{
		nodes: make([]int, 0, maxNodes),
		arcs:  make([]int, 0, max(maxNodes-1, 0)),
	}
}

// Reset clears the path and starts a new backward construction from the sink.
func (p *Path) Reset(sink int) {
	p.nodes = append(p.nodes[:0], sink)
	p.arcs = p.arcs[:0]
	p.bottleneck = 0
	p.reversed = false
}

// Extend prepends arc and its tail node to the path under construction.
// Extend must be called before Reverse.
func (p *Path) Extend(arc int, tail int) {
	p.arcs = append(p.arcs, arc)
	p.nodes = append(p.nodes, tail)
}

// Reverse finalizes the backward construction so that nodes and arcs are
// listed from the source to the sink.
func (p *Path) Reverse() {
	if p.reversed {
		return
	}
	for i, j := 0, len(p.nodes)-1; i < j; i, j = i+1, j-1 {
		p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
	}
	for i, j := 0, len(p.arcs)-1; i < j; i, j = i+1, j-1 {
		p.arcs[i], p.arcs[j] = p.arcs[j], p.arcs[i]
	}
	p.reversed = true
}

// Length returns the length of the path in terms of nodes.
func (p *Path) Length() int {
	return len(p.nodes)
}

// Node returns the node at position pos starting from 0 (the source) and
// ending at Length()-1 (the sink).
func (p *Path) Node(pos int) int {
	return p.nodes[pos]
}

// Nodes returns the sequence of nodes in the path.
//
// Important: the slice is a view on one of the path's internal structure and
// should only be used in read-only operations. Modifying the slice will most
// likely results in incorrect behavior.
func (p *Path) Nodes() []int {
	return p.nodes
}

// Arcs returns the sequence of arcs in the path. The same warning as for
// Nodes applies.
func (p *Path) Arcs() []int {
	return p.arcs
}

// Bottleneck returns the minimum residual capacity along the path, as set by
// the search that found it.
func (p *Path) Bottleneck() int64 {
	return p.bottleneck
}

// SetBottleneck sets the bottleneck capacity of the path.
func (p *Path) SetBottleneck(b int64) {
	p.bottleneck = b
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (p *Path) String() string {
	if len(p.nodes) == 0 {
		return ""
	}
	sb := strings.Builder{}
	for i := 0; i < len(p.nodes)-1; i++ {
		sb.WriteString(fmt.Sprintf("%d -> ", p.nodes[i]))
	}
	sb.WriteString(fmt.Sprintf("%d", p.nodes[len(p.nodes)-1]))
	return sb.String()
}

// Format returns a representation of the path where each node is rendered by
// the label function. For example: "Source -> A -> Sink".
func (p *Path) Format(label func(node int) string) string {
	parts := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		parts[i] = label(n)
	}
	return strings.Join(parts, " -> ")
}
