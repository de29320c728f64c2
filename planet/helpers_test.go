package planet_test

import (
	"github.com/katalvlaran/planetpath/planet"
)

// buildGrid adds a w×h block of nodes with x in [0,w) and y in [minY,minY+h).
// Biome and quality are zero; the topology is not derived.
func buildGrid(w, h, minY int) *planet.Graph {
	g := planet.NewGraph()
	for y := minY; y < minY+h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(planet.Coord{X: x, Y: y}, 0, 0)
		}
	}

	return g
}

// coordsOf maps successor IDs back to coordinates.
func coordsOf(g *planet.Graph, ids []planet.NodeID) []planet.Coord {
	out := make([]planet.Coord, len(ids))
	for i, id := range ids {
		out[i] = g.Node(id).Coord
	}

	return out
}

// boolInt converts a predicate to 0 or 1.
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
