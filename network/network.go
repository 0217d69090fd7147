// Package network provides the residual graph used by the flow solvers: a
// table of node labels, an arena of paired arcs and the reversible flow state
// of those arcs.
package network

import (
	"fmt"
	"math"
)

// DefaultCost is the per-unit cost given to edges added without a cost.
const DefaultCost = 1

// Infinity is the residual capacity of an unbounded path, used as the initial
// bottleneck of path searches.
const Infinity = int64(math.MaxInt64)

// Arc represents one direction of an edge in the residual graph. Each edge
// added to a Network produces two arcs, stored next to each other in the arena:
// the forward arc (even index) with the declared capacity and cost, and the
// reverse arc (odd index) with capacity 0 and the opposite cost. Rev is the
// arena index of the paired arc.
type Arc struct {
	From     int
	To       int
	Capacity int64
	Cost     int64
	Rev      int
}

// EdgeSpec is a logical edge as produced by network loaders and generators.
type EdgeSpec struct {
	From     string
	To       string
	Capacity int64
	Cost     int64
}

// EdgeFlow reports the flow carried by a logical edge.
type EdgeFlow struct {
	From     string
	To       string
	Flow     int64
	Capacity int64
	Cost     int64
}

// Network is a directed capacitated graph whose nodes are identified by string
// labels externally and by dense integer indices internally.
//
// A Network is not safe for concurrent use: solves mutate its flow state.
type Network struct {
	labels []string
	index  map[string]int

	nexts [][]int
	arcs  []Arc
	state *FlowState
}

// New returns an empty network.
func New() *Network {
	return &Network{
		index: map[string]int{},
		state: NewFlowState(0),
	}
}

// Build returns a network made of the given edges, added in order.
func Build(edges []EdgeSpec) (*Network, error) {
	n := New()
	for _, e := range edges {
		if _, err := n.AddCostEdge(e.From, e.To, e.Capacity, e.Cost); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// AddNode returns the index of the node with the given label, creating the
// node if it does not exist yet.
func (n *Network) AddNode(label string) int {
	if i, ok := n.index[label]; ok {
		return i
	}
	i := len(n.labels)
	n.labels = append(n.labels, label)
	n.index[label] = i
	n.nexts = append(n.nexts, nil)
	return i
}

// Node returns the index of the node with the given label. The second value
// is false if no such node exists.
func (n *Network) Node(label string) (int, bool) {
	i, ok := n.index[label]
	return i, ok
}

// Label returns the label of the node at the given index.
func (n *Network) Label(node int) string {
	return n.labels[node]
}

// NumNodes returns the number of nodes in the network.
func (n *Network) NumNodes() int {
	return len(n.labels)
}

// NumArcs returns the number of arcs, that is twice the number of edges.
func (n *Network) NumArcs() int {
	return len(n.arcs)
}

// NumEdges returns the number of edges added to the network.
func (n *Network) NumEdges() int {
	return len(n.arcs) / 2
}

// Arc returns the arc at the given arena index.
func (n *Network) Arc(a int) Arc {
	return n.arcs[a]
}

// IsForward returns true if the arc at index a was declared by an edge, false
// if it is the implicit reverse of one.
func IsForward(a int) bool {
	return a%2 == 0
}

// Nexts returns the indices of the arcs leaving node, forward and reverse
// arcs alike, in insertion order.
//
// Important: the slice is a view on the network's internal structure and
// should only be used in read-only operations.
func (n *Network) Nexts(node int) []int {
	return n.nexts[node]
}

// AddEdge adds an edge with the default cost. See AddCostEdge.
func (n *Network) AddEdge(from, to string, capacity int64) (int, error) {
	return n.AddCostEdge(from, to, capacity, DefaultCost)
}

// AddCostEdge adds an edge from -> to with the given capacity and per-unit
// cost, together with its implicit reverse arc. It returns the arena index of
// the forward arc. Negative capacities and self-loops are rejected with an
// *EdgeError.
func (n *Network) AddCostEdge(from, to string, capacity, cost int64) (int, error) {
	if capacity < 0 {
		return -1, &EdgeError{From: from, To: to, Capacity: capacity, Reason: "negative capacity"}
	}
	if from == to {
		return -1, &EdgeError{From: from, To: to, Capacity: capacity, Reason: "self-loop"}
	}

	u := n.AddNode(from)
	v := n.AddNode(to)

	fwd := len(n.arcs)
	rev := fwd + 1
	n.arcs = append(n.arcs,
		Arc{From: u, To: v, Capacity: capacity, Cost: cost, Rev: rev},
		Arc{From: v, To: u, Capacity: 0, Cost: -cost, Rev: fwd},
	)
	n.nexts[u] = append(n.nexts[u], fwd)
	n.nexts[v] = append(n.nexts[v], rev)
	n.state.Grow(2)

	return fwd, nil
}

// Flow returns the flow currently carried by the arc. The flow of an arc is
// always the opposite of the flow of its paired arc.
func (n *Network) Flow(a int) int64 {
	return n.state.Flow(a)
}

// ArcResidual returns the residual capacity of the arc.
func (n *Network) ArcResidual(a int) int64 {
	return n.arcs[a].Capacity - n.state.Flow(a)
}

// Residual returns the total residual capacity from node u to node v, summed
// over parallel arcs. It returns 0 if there is no arc from u to v.
func (n *Network) Residual(u, v int) int64 {
	total := int64(0)
	for _, a := range n.nexts[u] {
		if n.arcs[a].To == v {
			total += n.ArcResidual(a)
		}
	}
	return total
}

// Push increases the flow of arc a by amount and decreases the flow of its
// paired arc by the same amount. The change is journaled: it becomes
// permanent with Commit or is undone by Rollback.
//
// Push fails with a *ResidualError if amount is negative or larger than the
// residual capacity of the arc. In that case the flow state is unchanged.
func (n *Network) Push(a int, amount int64) error {
	if r := n.ArcResidual(a); amount < 0 || amount > r {
		return &ResidualError{
			Arc:      a,
			From:     n.arcs[a].From,
			To:       n.arcs[a].To,
			Amount:   amount,
			Residual: r,
		}
	}
	if amount == 0 {
		return nil
	}
	n.state.AddFlow(a, amount)
	n.state.AddFlow(n.arcs[a].Rev, -amount)
	return nil
}

// Commit makes all the pushes since the last commit permanent.
func (n *Network) Commit() {
	n.state.Commit()
}

// Rollback undoes all the pushes since the last commit.
func (n *Network) Rollback() {
	n.state.Rollback()
}

// Changes returns the arcs whose flow changed since the last commit, together
// with their flow at that time. See FlowState.Changes.
func (n *Network) Changes() []FlowChange {
	return n.state.Changes()
}

// ApplyFlow sends amount units of flow from node u to node v, spreading it
// over the arcs from u to v in insertion order. Either the whole amount is
// applied or nothing is.
//
// ApplyFlow commits its own pushes, so it refuses to run while other pushes
// are pending and returns an error wrapping ErrPendingPushes instead.
func (n *Network) ApplyFlow(u, v int, amount int64) error {
	if c := len(n.state.Changes()); c > 0 {
		return fmt.Errorf("applying flow %d -> %d: %w (%d arcs changed)", u, v, ErrPendingPushes, c)
	}
	if amount < 0 {
		return &ResidualError{Arc: -1, From: u, To: v, Amount: amount, Residual: n.Residual(u, v)}
	}
	if r := n.Residual(u, v); amount > r {
		return &ResidualError{Arc: -1, From: u, To: v, Amount: amount, Residual: r}
	}

	left := amount
	for _, a := range n.nexts[u] {
		if left == 0 {
			break
		}
		if n.arcs[a].To != v {
			continue
		}
		push := min(left, n.ArcResidual(a))
		if err := n.Push(a, push); err != nil {
			n.Rollback()
			return err
		}
		left -= push
	}
	n.Commit()
	return nil
}

// MaxCapacity returns the largest capacity declared on an edge, 0 if the
// network has no edge.
func (n *Network) MaxCapacity() int64 {
	maxCap := int64(0)
	for a := 0; a < len(n.arcs); a += 2 {
		maxCap = max(maxCap, n.arcs[a].Capacity)
	}
	return maxCap
}

// ResetFlow sets the flow of every arc to zero.
func (n *Network) ResetFlow() {
	n.state.Reset()
}

// Edges returns the logical edges of the network in insertion order.
func (n *Network) Edges() []EdgeSpec {
	edges := make([]EdgeSpec, 0, n.NumEdges())
	for a := 0; a < len(n.arcs); a += 2 {
		arc := n.arcs[a]
		edges = append(edges, EdgeSpec{
			From:     n.labels[arc.From],
			To:       n.labels[arc.To],
			Capacity: arc.Capacity,
			Cost:     arc.Cost,
		})
	}
	return edges
}

// UsedFlows returns the edges that carry a positive flow, in insertion order.
func (n *Network) UsedFlows() []EdgeFlow {
	used := []EdgeFlow{}
	for a := 0; a < len(n.arcs); a += 2 {
		f := n.state.Flow(a)
		if f <= 0 {
			continue
		}
		arc := n.arcs[a]
		used = append(used, EdgeFlow{
			From:     n.labels[arc.From],
			To:       n.labels[arc.To],
			Flow:     f,
			Capacity: arc.Capacity,
			Cost:     arc.Cost,
		})
	}
	return used
}

// String returns a short description of the network, e.g. "network(4 nodes,
// 5 edges)".
func (n *Network) String() string {
	return fmt.Sprintf("network(%d nodes, %d edges)", n.NumNodes(), n.NumEdges())
}
