package planet

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DeriveToroidalTopology wires the grid adjacency of every node and designates
// the poles. It must be called once, after all nodes are added.
//
// Behavior:
//  1. North pole = (0,maxY), south pole = (0,minY). A missing pole is a
//     structural error (ErrPoleNotFound) and leaves the graph without edges
//     from this call.
//  2. The distinct x-values are sorted so horizontal neighbors follow the
//     actual column spacing rather than x±1.
//  3. Every node (x,y) gets, in this order: (x,y+1), (x,y-1) when present,
//     then the next column east and the previous column west at the same y,
//     wrapping maxX → minX and minX → maxX.
//  4. Every node in row minY+1 is linked both ways with the south pole, then
//     every node in row maxY-1 both ways with the north pole.
//
// Complexity: O(V log V) time, O(V) extra memory.
func (g *Graph) DeriveToroidalTopology() error {
	if g.derived {
		return ErrTopologyDerived
	}
	if g.north != NoNode {
		return ErrPolesDesignated
	}
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}

	// 1) Bounds and poles.
	minY, maxY := g.nodes[0].coord.Y, g.nodes[0].coord.Y
	seenX := make(map[int]struct{})
	for i := range g.nodes {
		c := g.nodes[i].coord
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
		seenX[c.X] = struct{}{}
	}

	northC, southC := Coord{X: 0, Y: maxY}, Coord{X: 0, Y: minY}
	north, ok := g.index[northC]
	if !ok {
		return fmt.Errorf("%w: north %s", ErrPoleNotFound, northC)
	}
	south, ok := g.index[southC]
	if !ok {
		return fmt.Errorf("%w: south %s", ErrPoleNotFound, southC)
	}

	// 2) Sorted distinct x-values and their positions.
	xs := make([]int, 0, len(seenX))
	for x := range seenX {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	pos := make(map[int]int, len(xs))
	for i, x := range xs {
		pos[x] = i
	}
	last := len(xs) - 1

	// 3) Grid adjacency.
	for i := range g.nodes {
		u := NodeID(i)
		c := g.nodes[i].coord

		g.linkIfPresent(u, Coord{X: c.X, Y: c.Y + 1})
		g.linkIfPresent(u, Coord{X: c.X, Y: c.Y - 1})

		p := pos[c.X]
		east, west := xs[0], xs[last]
		if p < last {
			east = xs[p+1]
		}
		if p > 0 {
			west = xs[p-1]
		}
		g.linkIfPresent(u, Coord{X: east, Y: c.Y})
		g.linkIfPresent(u, Coord{X: west, Y: c.Y})
	}

	// 4) Pole shortcuts.
	for i := range g.nodes {
		if g.nodes[i].coord.Y == minY+1 {
			g.link(NodeID(i), south)
			g.link(south, NodeID(i))
		}
	}
	for i := range g.nodes {
		if g.nodes[i].coord.Y == maxY-1 {
			g.link(NodeID(i), north)
			g.link(north, NodeID(i))
		}
	}

	g.north, g.south = north, south
	g.derived = true

	g.log.Debug("toroidal topology derived",
		zap.Int("nodes", len(g.nodes)),
		zap.Int("edges", g.edges),
		zap.Int("columns", len(xs)),
		zap.Stringer("north", northC),
		zap.Stringer("south", southC),
	)

	return nil
}

// linkIfPresent adds u → c when c is a known coordinate.
func (g *Graph) linkIfPresent(u NodeID, c Coord) {
	if v, ok := g.index[c]; ok {
		g.link(u, v)
	}
}

// DesignatePoles sets the poles of a graph whose edges are wired by hand
// with AddSuccessor instead of DeriveToroidalTopology. Both coordinates must
// exist (ErrPoleNotFound); poles can be set only once (ErrPolesDesignated).
// north and south may be the same node.
func (g *Graph) DesignatePoles(north, south Coord) error {
	if g.north != NoNode {
		return ErrPolesDesignated
	}
	n, ok := g.index[north]
	if !ok {
		return fmt.Errorf("%w: north %s", ErrPoleNotFound, north)
	}
	s, ok := g.index[south]
	if !ok {
		return fmt.Errorf("%w: south %s", ErrPoleNotFound, south)
	}
	g.north, g.south = n, s

	return nil
}
