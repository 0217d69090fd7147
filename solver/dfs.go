package solver

import (
	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
	"github.com/rhartert/sparsesets"
)

// DFSFinder finds augmenting paths with a depth-first search that follows the
// arcs of each node in insertion order. Augmenting along such paths is the
// Ford-Fulkerson method: correct on integer capacities but with a number of
// augmentations bounded only by the value of the maximum flow.
type DFSFinder struct {
	net *network.Network

	visited *sparsesets.Set
	parent  []int
	cursor  []int // position of the next arc to explore in Nexts(node)
	stack   []int
}

// NewDFSFinder returns a depth-first finder over net.
func NewDFSFinder(net *network.Network) *DFSFinder {
	n := net.NumNodes()
	return &DFSFinder{
		net:     net,
		visited: sparsesets.New(n),
		parent:  make([]int, n),
		cursor:  make([]int, n),
		stack:   make([]int, 0, n),
	}
}

func (f *DFSFinder) FindPath(source, sink int, p *paths.Path) bool {
	f.visited.Clear()
	f.visited.Insert(source)
	f.parent[source] = -1
	f.cursor[source] = 0
	f.stack = append(f.stack[:0], source)

	for len(f.stack) > 0 {
		u := f.stack[len(f.stack)-1]
		if u == sink {
			tracePath(f.net, f.parent, source, sink, p)
			p.SetBottleneck(pathBottleneck(f.net, p))
			return true
		}

		nexts := f.net.Nexts(u)
		descended := false
		for f.cursor[u] < len(nexts) {
			a := nexts[f.cursor[u]]
			f.cursor[u]++
			v := f.net.Arc(a).To
			if f.net.ArcResidual(a) <= 0 || f.visited.Contains(v) {
				continue
			}
			f.visited.Insert(v)
			f.parent[v] = a
			f.cursor[v] = 0
			f.stack = append(f.stack, v)
			descended = true
			break
		}

		if !descended {
			f.stack = f.stack[:len(f.stack)-1] // dead end
		}
	}

	return false
}
