package pathsearch

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/planetpath/planet"
)

// Intrinsic returns n.Quality × w[n.Biome].
// Returns ErrUnknownBiome when the biome index has no weight.
func (w BiomeWeights) Intrinsic(n planet.Node) (float64, error) {
	if n.Biome < 0 || n.Biome >= len(w) {
		return 0, fmt.Errorf("%w: node %s has biome %d, table has %d entries",
			ErrUnknownBiome, n.Coord, n.Biome, len(w))
	}

	return n.Quality * w[n.Biome], nil
}

// intrinsicTable precomputes the intrinsic score of every node, indexed by NodeID.
func (w BiomeWeights) intrinsicTable(g *planet.Graph) ([]float64, error) {
	scores := make([]float64, g.Size())
	for _, n := range g.Nodes() {
		s, err := w.Intrinsic(n)
		if err != nil {
			return nil, err
		}
		scores[n.ID] = s
	}

	return scores, nil
}

// pathScore sums the intrinsic scores of ids in path order, the same way
// Score does, so both report bit-identical totals.
func pathScore(scores []float64, ids []planet.NodeID) float64 {
	parts := make([]float64, len(ids))
	for i, id := range ids {
		parts[i] = scores[id]
	}

	return floats.Sum(parts)
}

// Score recomputes the score of the path through coords from scratch: the
// sum of the intrinsic scores of its nodes. Every coordinate must exist in g.
func Score(g *planet.Graph, w BiomeWeights, coords []planet.Coord) (float64, error) {
	parts := make([]float64, len(coords))
	for i, c := range coords {
		n, ok := g.Lookup(c)
		if !ok {
			return 0, fmt.Errorf("pathsearch: node %s not in graph", c)
		}
		s, err := w.Intrinsic(n)
		if err != nil {
			return 0, err
		}
		parts[i] = s
	}

	return floats.Sum(parts), nil
}
