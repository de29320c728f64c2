// File: graph.go
// Role: Node arena, coordinate index and directed successor lists.
// Determinism:
//   - Nodes() and NodeIDs are in insertion order.
//   - Successors(id) preserves edge insertion order, duplicates included.
// Concurrency:
//   - None. Build from one goroutine, then share read-only.

package planet

import (
	"go.uber.org/zap"
)

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithLogger routes construction diagnostics to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph owns every node of a planet together with its directed successor
// relation and, once the topology is derived, the two poles.
//
// Nodes live in an arena (nodes) addressed by NodeID; index maps a Coord to
// its NodeID. Successor lists hold NodeIDs, so nodes never point at each other.
type Graph struct {
	nodes []node
	index map[Coord]NodeID
	edges int

	north, south NodeID
	derived      bool

	spatial *spatialIndex // lazily built by Within, dropped by AddNode

	log *zap.Logger
}

// NewGraph creates an empty Graph with no poles.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		index: make(map[Coord]NodeID),
		north: NoNode,
		south: NoNode,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode inserts a node at c unless one already exists there.
//
// The first write wins: a later call with the same coordinate leaves the
// stored biome and quality untouched and returns the existing ID. Biome range
// and quality sign are not validated.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(c Coord, biome int, quality float64) NodeID {
	if id, ok := g.index[c]; ok {
		return id
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{coord: c, biome: biome, quality: quality})
	g.index[c] = id
	g.spatial = nil

	return id
}

// AddSuccessor appends a directed edge from → to when both coordinates are
// present and reports whether the edge was added. A missing endpoint is a
// silent no-op so callers can probe neighbors that may not exist.
//
// Parallel edges and self-loops are kept as given.
// Complexity: O(1) amortized.
func (g *Graph) AddSuccessor(from, to Coord) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	g.link(u, v)

	return true
}

// link appends v to u's successors. Both IDs must be valid.
func (g *Graph) link(u, v NodeID) {
	g.nodes[u].successors = append(g.nodes[u].successors, v)
	g.edges++
}

// Lookup returns the node stored at c.
// Complexity: O(1).
func (g *Graph) Lookup(c Coord) (Node, bool) {
	id, ok := g.index[c]
	if !ok {
		return Node{}, false
	}

	return g.Node(id), true
}

// Has reports whether c is present.
func (g *Graph) Has(c Coord) bool {
	_, ok := g.index[c]
	return ok
}

// Node returns the node with the given ID. It panics if id is out of range,
// like a slice index.
func (g *Graph) Node(id NodeID) Node {
	n := &g.nodes[id]
	return Node{ID: id, Coord: n.coord, Biome: n.biome, Quality: n.quality}
}

// Successors returns a copy of id's successor list in insertion order.
func (g *Graph) Successors(id NodeID) []NodeID {
	src := g.nodes[id].successors
	out := make([]NodeID, len(src))
	copy(out, src)

	return out
}

// successors exposes the arena slice without copying; callers must not mutate it.
func (g *Graph) successors(id NodeID) []NodeID {
	return g.nodes[id].successors
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns every node in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.Node(NodeID(i))
	}

	return out
}

// Poles returns the north and south pole IDs. ok is false until
// DeriveToroidalTopology has succeeded.
func (g *Graph) Poles() (north, south NodeID, ok bool) {
	if g.north == NoNode || g.south == NoNode {
		return NoNode, NoNode, false
	}

	return g.north, g.south, true
}

// NorthPole returns the node designated as north pole, if any.
func (g *Graph) NorthPole() (Node, bool) {
	if g.north == NoNode {
		return Node{}, false
	}
	return g.Node(g.north), true
}

// SouthPole returns the node designated as south pole, if any.
func (g *Graph) SouthPole() (Node, bool) {
	if g.south == NoNode {
		return Node{}, false
	}
	return g.Node(g.south), true
}
