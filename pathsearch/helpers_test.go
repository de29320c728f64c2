package pathsearch_test

import (
	"math/rand"

	"github.com/katalvlaran/planetpath/pathsearch"
	"github.com/katalvlaran/planetpath/planet"
)

// cell describes one node of a hand-built planet.
type cell struct {
	c       planet.Coord
	biome   int
	quality float64
}

// grid builds a w×h planet with x in [0,w), y in [0,h) and derives its topology.
// value returns the biome and quality of each cell.
func grid(w, h int, value func(x, y int) (int, float64)) *planet.Graph {
	g := planet.NewGraph()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, q := value(x, y)
			g.AddNode(planet.Coord{X: x, Y: y}, b, q)
		}
	}
	if err := g.DeriveToroidalTopology(); err != nil {
		panic(err)
	}

	return g
}

// randomGrid builds a w×h planet with random biomes and small integer qualities.
func randomGrid(w, h int, seed int64) *planet.Graph {
	rng := rand.New(rand.NewSource(seed))
	return grid(w, h, func(_, _ int) (int, float64) {
		return rng.Intn(len(pathsearch.DefaultBiomeWeights)), float64(rng.Intn(5))
	})
}

// fractionalGrid is randomGrid with non-integer qualities, so summation
// order shows up in the low bits of a score.
func fractionalGrid(w, h int, seed int64) *planet.Graph {
	rng := rand.New(rand.NewSource(seed))
	return grid(w, h, func(_, _ int) (int, float64) {
		return rng.Intn(len(pathsearch.DefaultBiomeWeights)), rng.Float64() * 10
	})
}

// handGraph adds cells, wires edges between consecutive coordinate pairs and
// designates the poles.
func handGraph(cells []cell, edges [][2]planet.Coord, north, south planet.Coord) *planet.Graph {
	g := planet.NewGraph()
	for _, c := range cells {
		g.AddNode(c.c, c.biome, c.quality)
	}
	for _, e := range edges {
		g.AddSuccessor(e[0], e[1])
	}
	if err := g.DesignatePoles(north, south); err != nil {
		panic(err)
	}

	return g
}

// bruteForceBest enumerates every simple north→south path holding at most
// maxVisits nodes and returns the best score and whether any path exists.
func bruteForceBest(g *planet.Graph, w pathsearch.BiomeWeights, maxVisits int) (float64, bool) {
	north, south, _ := g.Poles()
	onPath := make(map[planet.NodeID]bool)
	best, found := 0.0, false

	var walk func(u planet.NodeID, depth int, score float64)
	walk = func(u planet.NodeID, depth int, score float64) {
		s, _ := w.Intrinsic(g.Node(u))
		score += s
		if u == south {
			if !found || score > best {
				best, found = score, true
			}
			return
		}
		if depth == maxVisits {
			return
		}
		onPath[u] = true
		for _, v := range g.Successors(u) {
			if !onPath[v] {
				walk(v, depth+1, score)
			}
		}
		onPath[u] = false
	}
	walk(north, 1, 0)

	return best, found
}

// c is shorthand for planet.Coord.
func c(x, y int) planet.Coord { return planet.Coord{X: x, Y: y} }
