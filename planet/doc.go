// Package planet models the surface of a planet as a directed graph of
// locations laid out on a horizontally wrapped grid.
//
// What:
//
//   - Graph owns every location (Node) in an arena indexed by NodeID.
//   - Nodes are keyed by a structured Coord; the "x,y" text form exists only
//     at the boundary (Coord.String, ParseCoord).
//   - Successor lists are directed, ordered and may contain duplicates.
//   - DeriveToroidalTopology wires grid adjacency (vertical without wrap,
//     horizontal with wrap) and designates the north and south poles.
//
// Topology:
//
//	    x=0   x=1   x=2          north pole = (0,maxY)
//	y=2  N ─── ○ ─── ○ ─┐         south pole = (0,minY)
//	     │     │     │  │ wrap
//	y=1  ○ ─── ○ ─── ○ ─┘         every node in row maxY-1 ⇄ N
//	     │     │     │            every node in row minY+1 ⇄ S
//	y=0  S ─── ○ ─── ○
//
// Complexity:
//
//   - AddNode, AddSuccessor, Lookup: O(1) amortized.
//   - DeriveToroidalTopology:        O(V log V) for the sorted x-values, O(V) otherwise.
//   - Reachable:                     O(V + E).
//   - Within:                        O(log V + k) after an O(V log V) index build.
//
// Errors:
//
//   - ErrEmptyGraph:      topology derivation on a graph with no nodes.
//   - ErrPoleNotFound:    (0,maxY) or (0,minY) is missing from the grid.
//   - ErrTopologyDerived: topology derivation was already performed.
//   - ErrPolesDesignated: poles were already set by DesignatePoles.
//   - ErrBadCoord:        ParseCoord input is not an "x,y" integer pair.
//
// Concurrency:
//
//	A Graph is built once by a single goroutine and is read-only afterwards.
//	It performs no locking; synchronize externally if you share a Graph that
//	is still being mutated.
package planet
