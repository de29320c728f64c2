package pathsearch_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/planetpath/pathsearch"
	"github.com/katalvlaran/planetpath/planet"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := pathsearch.Search(nil, 1)
	assert.ErrorIs(t, err, pathsearch.ErrNilGraph)
}

func TestSearch_BadDays(t *testing.T) {
	g := grid(3, 3, func(_, _ int) (int, float64) { return 0, 1 })
	for _, days := range []int{0, -1} {
		_, err := pathsearch.Search(g, days)
		assert.ErrorIs(t, err, pathsearch.ErrBadDays, "days=%d", days)
	}
}

func TestSearch_PolesUndefined(t *testing.T) {
	g := planet.NewGraph()
	for y := 0; y < 3; y++ {
		g.AddNode(c(0, y), 0, 1)
	}
	res, err := pathsearch.Search(g, 1)
	require.ErrorIs(t, err, pathsearch.ErrPolesUndefined)
	assert.Contains(t, err.Error(), "poles are undefined")
	assert.Equal(t, pathsearch.Result{}, res, "structural errors carry no partial result")
}

func TestSearch_UnknownBiome(t *testing.T) {
	g := grid(3, 3, func(x, y int) (int, float64) {
		if x == 2 && y == 2 {
			return 7, 1
		}
		return 0, 1
	})
	_, err := pathsearch.Search(g, 1)
	require.ErrorIs(t, err, pathsearch.ErrUnknownBiome)
	assert.Contains(t, err.Error(), "2,2")
}

func TestSearch_BadOptions(t *testing.T) {
	g := grid(3, 3, func(_, _ int) (int, float64) { return 0, 1 })

	_, err := pathsearch.Search(g, 1, pathsearch.WithBiomeWeights(nil))
	assert.ErrorIs(t, err, pathsearch.ErrBadWeights)

	_, err = pathsearch.Search(g, 1, pathsearch.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, pathsearch.ErrBadMaxExpansions)

	// Option errors win over graph validation.
	_, err = pathsearch.Search(nil, 1, pathsearch.WithMaxExpansions(-5))
	assert.ErrorIs(t, err, pathsearch.ErrBadMaxExpansions)
}

// ------------------------------------------------------------------------
// 2. Outcomes
// ------------------------------------------------------------------------

// TestSearch_SingleColumn runs the three-row single-column planet:
// (0,0) q1 b0, (0,1) q2 b1, (0,2) q1 b0 with one day of travel.
func TestSearch_SingleColumn(t *testing.T) {
	g := grid(1, 3, func(_, y int) (int, float64) {
		if y == 1 {
			return 1, 2
		}
		return 0, 1
	})

	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err)
	require.True(t, res.Found())

	want := []planet.Coord{c(0, 2), c(0, 1), c(0, 0)}
	if diff := cmp.Diff(want, res.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 30.0, res.Score)
	assert.Equal(t, 3, res.MaxVisits)
	// Parallel pole shortcuts produce duplicate candidates.
	assert.Equal(t, 4, res.Candidates)
	assert.Equal(t, 7, res.Expanded)
	assert.False(t, res.Truncated)
	assert.Equal(t, "[(0,2)(0,1)(0,0)] with score: 30", res.String())
}

func TestSearch_BudgetTooSmall(t *testing.T) {
	g := grid(3, 5, func(_, _ int) (int, float64) { return 0, 1 })

	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err, "running out of budget is not an error")
	assert.Equal(t, pathsearch.NoPath, res.Outcome)
	assert.Nil(t, res.Path)
	assert.Zero(t, res.Candidates)
	assert.Positive(t, res.Expanded)
	assert.Equal(t, "No valid path found", res.String())

	res, err = pathsearch.Search(g, 2)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.LessOrEqual(t, len(res.Path), 6)
}

func TestSearch_SouthPoleUnreachable(t *testing.T) {
	g := handGraph(
		[]cell{{c(0, 1), 0, 1}, {c(0, 0), 0, 1}, {c(1, 1), 0, 1}},
		[][2]planet.Coord{{c(0, 1), c(1, 1)}, {c(1, 1), c(0, 1)}},
		c(0, 1), c(0, 0),
	)
	res, err := pathsearch.Search(g, 5)
	require.NoError(t, err)
	assert.Equal(t, pathsearch.NoPath, res.Outcome)
	assert.Zero(t, res.Expanded, "unreachable goal needs no expansion")
}

func TestSearch_SinglePoleNode(t *testing.T) {
	// A single row: both poles are (0,0).
	g := grid(3, 1, func(x, _ int) (int, float64) { return 2, float64(x + 1) })
	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []planet.Coord{c(0, 0)}, res.Path)
	assert.Equal(t, 28.0, res.Score)
}

// ------------------------------------------------------------------------
// 3. Ordering and scoring
// ------------------------------------------------------------------------

func TestSearch_PrefersHighBiome(t *testing.T) {
	g := grid(3, 3, func(x, y int) (int, float64) {
		if x == 1 && y == 1 {
			return 6, 1
		}
		return 0, 1
	})
	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []planet.Coord{c(0, 2), c(1, 1), c(0, 0)}, res.Path)
	assert.Equal(t, 102.0, res.Score)
}

func TestSearch_CustomWeights(t *testing.T) {
	g := grid(3, 3, func(x, y int) (int, float64) {
		switch {
		case x == 1 && y == 1:
			return 1, 1
		case x == 2 && y == 1:
			return 2, 1
		}
		return 0, 1
	})

	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err)
	assert.Equal(t, c(2, 1), res.Path[1])
	assert.Equal(t, 30.0, res.Score)

	res, err = pathsearch.Search(g, 1, pathsearch.WithBiomeWeights(pathsearch.BiomeWeights{1, 50, 2}))
	require.NoError(t, err)
	assert.Equal(t, c(1, 1), res.Path[1])
	assert.Equal(t, 52.0, res.Score)
}

// TestSearch_TieBreakByCoordinates checks that equally scored candidates are
// ordered by coordinate sequence, not by edge insertion order.
func TestSearch_TieBreakByCoordinates(t *testing.T) {
	north, south := c(5, 5), c(5, 0)
	a, b := c(1, 0), c(0, 5)
	g := handGraph(
		[]cell{{north, 0, 0}, {south, 0, 0}, {a, 0, 1}, {b, 0, 1}},
		[][2]planet.Coord{{north, a}, {north, b}, {a, south}, {b, south}},
		north, south,
	)

	res, err := pathsearch.Search(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []planet.Coord{north, b, south}, res.Path)
	assert.Equal(t, 2, res.Candidates)
}

func TestSearch_Deterministic(t *testing.T) {
	g := randomGrid(4, 4, 7)
	first, err := pathsearch.Search(g, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := pathsearch.Search(g, 2)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Properties against brute force
// ------------------------------------------------------------------------

func TestSearch_MatchesBruteForce(t *testing.T) {
	cases := []struct{ w, h, days int }{
		{3, 3, 1}, {3, 3, 2}, {3, 3, 3}, {4, 3, 2}, {3, 4, 2}, {5, 3, 1},
	}
	for _, tc := range cases {
		for seed := int64(1); seed <= 4; seed++ {
			name := fmt.Sprintf("%dx%d/days=%d/seed=%d", tc.w, tc.h, tc.days, seed)
			t.Run(name, func(t *testing.T) {
				g := randomGrid(tc.w, tc.h, seed)
				res, err := pathsearch.Search(g, tc.days)
				require.NoError(t, err)

				want, ok := bruteForceBest(g, pathsearch.DefaultBiomeWeights, tc.days*pathsearch.VisitsPerDay)
				require.Equal(t, ok, res.Found())
				if !ok {
					return
				}
				assert.Equal(t, want, res.Score)
				assertValidPath(t, g, res)
			})
		}
	}
}

func TestSearch_ScoreMatchesRecomputation(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := fractionalGrid(4, 4, seed)
		res, err := pathsearch.Search(g, 2)
		require.NoError(t, err)
		require.True(t, res.Found(), "seed %d", seed)

		score, err := pathsearch.Score(g, pathsearch.DefaultBiomeWeights, res.Path)
		require.NoError(t, err)
		assert.Equal(t, score, res.Score, "seed %d", seed)
	}
}

func TestSearch_WithoutLengthPruningSameResult(t *testing.T) {
	for _, days := range []int{1, 2} {
		t.Run(fmt.Sprintf("days=%d", days), func(t *testing.T) {
			g := randomGrid(3, 3, 11)
			pruned, err := pathsearch.Search(g, days)
			require.NoError(t, err)
			faithful, err := pathsearch.Search(g, days, pathsearch.WithoutLengthPruning())
			require.NoError(t, err)

			assert.Equal(t, pruned.Path, faithful.Path)
			assert.Equal(t, pruned.Score, faithful.Score)
			assert.Equal(t, pruned.Candidates, faithful.Candidates)
			assert.GreaterOrEqual(t, faithful.Expanded, pruned.Expanded)
		})
	}
}

func assertValidPath(t *testing.T, g *planet.Graph, res pathsearch.Result) {
	t.Helper()
	north, _ := g.NorthPole()
	south, _ := g.SouthPole()

	require.NotEmpty(t, res.Path)
	assert.Equal(t, north.Coord, res.Path[0], "path starts at the north pole")
	assert.Equal(t, south.Coord, res.Path[len(res.Path)-1], "path ends at the south pole")
	assert.LessOrEqual(t, len(res.Path), res.MaxVisits)

	seen := make(map[planet.Coord]bool, len(res.Path))
	for i, pc := range res.Path {
		assert.False(t, seen[pc], "duplicate node %s", pc)
		seen[pc] = true
		if i == 0 {
			continue
		}
		from, _ := g.Lookup(res.Path[i-1])
		to, _ := g.Lookup(pc)
		assert.Contains(t, g.Successors(from.ID), to.ID, "edge %s→%s", from.Coord, pc)
	}

	score, err := pathsearch.Score(g, pathsearch.DefaultBiomeWeights, res.Path)
	require.NoError(t, err)
	assert.Equal(t, score, res.Score)
}

// ------------------------------------------------------------------------
// 5. Safety valve and logging
// ------------------------------------------------------------------------

func TestSearch_MaxExpansions(t *testing.T) {
	g := randomGrid(4, 4, 3)

	res, err := pathsearch.Search(g, 2, pathsearch.WithMaxExpansions(1))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, pathsearch.NoPath, res.Outcome)

	full, err := pathsearch.Search(g, 2)
	require.NoError(t, err)
	res, err = pathsearch.Search(g, 2, pathsearch.WithMaxExpansions(full.Expanded))
	require.NoError(t, err)
	assert.False(t, res.Truncated, "cap equal to the full run must not truncate")
	assert.Equal(t, full.Path, res.Path)
}

func TestSearch_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := randomGrid(3, 3, 5)

	_, err := pathsearch.Search(g, 1, pathsearch.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("search complete").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["max_visits"])
	assert.Contains(t, fields, "expanded")
	assert.Contains(t, fields, "frontier_peak")
}
