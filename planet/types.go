package planet

import (
	"errors"
	"fmt"
)

// Sentinel errors for planet graph operations.
var (
	// ErrEmptyGraph indicates topology derivation on a graph without nodes.
	ErrEmptyGraph = errors.New("planet: graph has no nodes")

	// ErrPoleNotFound indicates that a pole coordinate is absent from the grid.
	ErrPoleNotFound = errors.New("planet: pole not found")

	// ErrTopologyDerived indicates DeriveToroidalTopology was called twice.
	ErrTopologyDerived = errors.New("planet: topology already derived")

	// ErrPolesDesignated indicates an attempt to designate poles twice.
	ErrPolesDesignated = errors.New("planet: poles already designated")

	// ErrBadCoord indicates a coordinate string that is not an "x,y" integer pair.
	ErrBadCoord = errors.New("planet: malformed coordinate")
)

// NodeID is the stable arena index of a node, assigned in insertion order.
type NodeID int

// NoNode is the zero value for "no such node".
const NoNode NodeID = -1

// Coord is a grid position. It is the unique key of a node.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Compare orders coordinates by X, then Y.
// It returns -1, 0 or +1.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	}
	return 0
}

// Node is a read-only view of a location.
type Node struct {
	ID      NodeID  // arena index
	Coord   Coord   // grid position, unique within the graph
	Biome   int     // index into a biome weight table
	Quality float64 // base desirability
}

// node is the arena record behind Node.
type node struct {
	coord      Coord
	biome      int
	quality    float64
	successors []NodeID // directed out-edges, insertion ordered, duplicates allowed
}
