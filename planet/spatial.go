package planet

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// spatialTolerance is the half-width of the box around each node and the
// margin added to query rectangles. It must stay below 0.5 so that
// neighboring integer columns and rows never overlap a query.
const spatialTolerance = 0.1

// spatialEntry wraps a node for R-tree storage.
type spatialEntry struct {
	id   NodeID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *spatialEntry) Bounds() rtreego.Rect { return e.bbox }

// spatialIndex answers rectangular region queries over node coordinates.
type spatialIndex struct {
	tree *rtreego.Rtree
}

// newSpatialIndex bulk-loads every node of g.
func newSpatialIndex(g *Graph) *spatialIndex {
	objs := make([]rtreego.Spatial, 0, len(g.nodes))
	for i := range g.nodes {
		c := g.nodes[i].coord
		p := rtreego.Point{float64(c.X), float64(c.Y)}
		objs = append(objs, &spatialEntry{id: NodeID(i), bbox: p.ToRect(spatialTolerance)})
	}

	return &spatialIndex{tree: rtreego.NewTree(2, 25, 50, objs...)}
}

// Within returns the nodes whose coordinates lie in the closed rectangle
// spanned by a and b (corners in any order), sorted by Coord.Compare.
//
// The index is built on first use and rebuilt after AddNode.
// Complexity: O(log V + k) per query once the index exists.
func (g *Graph) Within(a, b Coord) []Node {
	if len(g.nodes) == 0 {
		return nil
	}
	if g.spatial == nil {
		g.spatial = newSpatialIndex(g)
	}

	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	origin := rtreego.Point{float64(minX) - spatialTolerance, float64(minY) - spatialTolerance}
	lengths := []float64{
		float64(maxX-minX) + 2*spatialTolerance,
		float64(maxY-minY) + 2*spatialTolerance,
	}
	rect, err := rtreego.NewRect(origin, lengths)
	if err != nil {
		// lengths are always positive; an error here means an unusable input.
		return nil
	}

	hits := g.spatial.tree.SearchIntersect(rect)
	out := make([]Node, 0, len(hits))
	for _, h := range hits {
		n := g.Node(h.(*spatialEntry).id)
		if n.Coord.X < minX || n.Coord.X > maxX || n.Coord.Y < minY || n.Coord.Y > maxY {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coord.Compare(out[j].Coord) < 0 })

	return out
}
