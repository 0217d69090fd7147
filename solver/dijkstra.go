package solver

import (
	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// CostFinder finds cheapest augmenting paths with Dijkstra's algorithm on
// reduced costs. Each search also reweights the node potentials so that
// reduced costs stay non-negative for the next search.
//
// Augmenting along the paths it finds until none remain is the successive
// shortest paths algorithm, which yields a maximum flow of minimum cost.
type CostFinder struct {
	net        *network.Network
	potentials *Potentials

	dist    []int64
	parent  []int
	reached *sparsesets.Set
}

// NewCostFinder returns a finder over net with seeded potentials. It returns
// an error wrapping ErrNegativeCycle if the network has a negative cycle.
func NewCostFinder(net *network.Network) (*CostFinder, error) {
	n := net.NumNodes()
	potentials := NewPotentials(n)
	if err := potentials.Seed(net); err != nil {
		return nil, err
	}
	return &CostFinder{
		net:        net,
		potentials: potentials,
		dist:       make([]int64, n),
		parent:     make([]int, n),
		reached:    sparsesets.New(n),
	}, nil
}

// Potentials returns the potentials maintained by the finder.
func (f *CostFinder) Potentials() *Potentials {
	return f.potentials
}

// Distance returns the reduced-cost distance from the source to node computed
// by the last search, network.Infinity if node was not reached.
func (f *CostFinder) Distance(node int) int64 {
	return f.dist[node]
}

func (f *CostFinder) FindPath(source, sink int, p *paths.Path) bool {
	for i := range f.dist {
		f.dist[i] = network.Infinity
	}
	f.reached.Clear()

	// Heap elements are arcs, keyed by the distance of their head through
	// them. The source is reached through a sentinel element. An element is
	// put at most once per search: the arcs leaving a node are relaxed when
	// that node is settled, which happens once.
	sentinel := f.net.NumArcs()
	h := yagh.New[int64](sentinel + 1)
	h.Put(sentinel, 0)
	f.dist[source] = 0

	// The search is not stopped at the sink: potentials need the distance
	// of every reachable node.
	for h.Size() > 0 {
		entry := h.Pop()
		a, d := entry.Elem, entry.Cost

		u, arc := source, -1
		if a != sentinel {
			u, arc = f.net.Arc(a).To, a
		}
		if f.reached.Contains(u) {
			continue // settled through a cheaper arc
		}
		f.reached.Insert(u)
		f.dist[u] = d
		f.parent[u] = arc

		for _, next := range f.net.Nexts(u) {
			if f.net.ArcResidual(next) <= 0 {
				continue
			}
			v := f.net.Arc(next).To
			if f.reached.Contains(v) {
				continue
			}

			newDist := d + f.potentials.Reduced(f.net, next)

			// Path source -> u -> v is not better than the best known path.
			if f.dist[v] <= newDist {
				continue
			}

			f.dist[v] = newDist
			h.Put(next, newDist)
		}
	}

	// Tentative distances of unreached nodes are never set: every node with
	// a finite distance was settled.
	f.potentials.Update(f.dist, f.reached)

	if !f.reached.Contains(sink) {
		return false
	}
	tracePath(f.net, f.parent, source, sink, p)
	p.SetBottleneck(pathBottleneck(f.net, p))
	return true
}
