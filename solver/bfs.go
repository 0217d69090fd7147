package solver

import (
	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
	"github.com/rhartert/sparsesets"
)

// BFSFinder finds augmenting paths with the fewest arcs using a breadth-first
// search of the residual graph. Only arcs whose residual capacity is at least
// the finder's threshold are followed.
//
// Repeatedly augmenting along such paths is the Edmonds-Karp algorithm, which
// needs at most O(V·E) augmentations.
type BFSFinder struct {
	net       *network.Network
	threshold int64

	visited    *sparsesets.Set
	parent     []int   // arc used to reach each node
	bottleneck []int64 // min residual from the source to each node
	queue      []int
}

// NewBFSFinder returns a finder over net with a threshold of 1. The network
// must not gain nodes while the finder is in use.
func NewBFSFinder(net *network.Network) *BFSFinder {
	n := net.NumNodes()
	return &BFSFinder{
		net:        net,
		threshold:  1,
		visited:    sparsesets.New(n),
		parent:     make([]int, n),
		bottleneck: make([]int64, n),
		queue:      make([]int, 0, n),
	}
}

// SetThreshold restricts the search to arcs with a residual capacity of at
// least delta. Values below 1 are treated as 1.
func (f *BFSFinder) SetThreshold(delta int64) {
	f.threshold = max(delta, 1)
}

// Threshold returns the current residual threshold.
func (f *BFSFinder) Threshold() int64 {
	return f.threshold
}

func (f *BFSFinder) FindPath(source, sink int, p *paths.Path) bool {
	f.visited.Clear()
	f.visited.Insert(source)
	f.parent[source] = -1
	f.bottleneck[source] = network.Infinity
	f.queue = append(f.queue[:0], source)

	for i := 0; i < len(f.queue); i++ {
		u := f.queue[i]
		for _, a := range f.net.Nexts(u) {
			r := f.net.ArcResidual(a)
			if r < f.threshold {
				continue
			}
			v := f.net.Arc(a).To
			if f.visited.Contains(v) {
				continue
			}

			f.visited.Insert(v)
			f.parent[v] = a
			f.bottleneck[v] = min(f.bottleneck[u], r)

			// Early exit: the first time the sink is reached is through a
			// path with the fewest arcs.
			if v == sink {
				tracePath(f.net, f.parent, source, sink, p)
				p.SetBottleneck(f.bottleneck[sink])
				return true
			}
			f.queue = append(f.queue, v)
		}
	}

	return false
}
