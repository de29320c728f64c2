package pathsearch

import (
	"github.com/katalvlaran/planetpath/planet"
)

// partial is a path under construction together with its cumulative score.
type partial struct {
	nodes []planet.NodeID // north pole first; never contains duplicates
	score float64         // sum of intrinsic scores over nodes
	seq   uint64          // insertion sequence, last-resort tie-break
}

// last returns the node the path currently ends at.
func (p *partial) last() planet.NodeID { return p.nodes[len(p.nodes)-1] }

// contains reports whether id is already on the path.
func (p *partial) contains(id planet.NodeID) bool {
	for _, n := range p.nodes {
		if n == id {
			return true
		}
	}
	return false
}

// extend returns a new partial with id appended. p is left untouched.
func (p *partial) extend(id planet.NodeID, s float64) *partial {
	nodes := make([]planet.NodeID, len(p.nodes)+1)
	copy(nodes, p.nodes)
	nodes[len(p.nodes)] = id

	return &partial{nodes: nodes, score: p.score + s}
}

// frontier is a max-heap of partial paths implementing heap.Interface.
// coords resolves NodeIDs for the lexicographic tie-break.
type frontier struct {
	items  []*partial
	coords []planet.Coord
}

// Len returns the number of queued partial paths.
func (f *frontier) Len() int { return len(f.items) }

// Less puts a before b when a has the higher score; ties go to the shorter
// path, then the smaller coordinate sequence, then the earlier insertion.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.score != b.score {
		return a.score > b.score
	}
	if len(a.nodes) != len(b.nodes) {
		return len(a.nodes) < len(b.nodes)
	}
	for k := range a.nodes {
		if a.nodes[k] == b.nodes[k] {
			continue
		}
		if c := f.coords[a.nodes[k]].Compare(f.coords[b.nodes[k]]); c != 0 {
			return c < 0
		}
	}

	return a.seq < b.seq
}

// Swap swaps two queued paths.
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds x, which must be a *partial. Called by heap.Push.
func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(*partial)) }

// Pop removes the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]

	return item
}
