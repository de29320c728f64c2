package pathsearch

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/katalvlaran/planetpath/planet"
)

// Search looks for the highest-scoring path from g's north pole to its
// south pole holding at most days × VisitsPerDay nodes.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadWeights, ErrBadMaxExpansions).
//  2. g must be non-nil (ErrNilGraph).
//  3. days must be ≥ 1 (ErrBadDays).
//  4. g must have both poles (ErrPolesUndefined).
//  5. Every node's biome must index the weight table (ErrUnknownBiome).
//
// A search that records no candidate returns Outcome NoPath and a nil error.
//
// Complexity: exponential in the budget in the worst case; every simple
// path within budget may be enumerated. Memory is bounded by the frontier.
func Search(g *planet.Graph, days int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if days < 1 {
		return Result{}, ErrBadDays
	}
	north, south, ok := g.Poles()
	if !ok {
		return Result{}, ErrPolesUndefined
	}

	// 3) Precompute intrinsic scores.
	scores, err := cfg.Weights.intrinsicTable(g)
	if err != nil {
		return Result{}, err
	}

	coords := make([]planet.Coord, g.Size())
	for _, n := range g.Nodes() {
		coords[n.ID] = n.Coord
	}

	r := &runner{
		g:         g,
		opts:      cfg,
		scores:    scores,
		north:     north,
		south:     south,
		maxVisits: days * VisitsPerDay,
		pq:        &frontier{coords: coords},
	}
	r.res.MaxVisits = r.maxVisits

	// 4) Unreachable goal: nothing to enumerate.
	if !g.Reachable(north, south) {
		r.summary("south pole unreachable")
		return r.res, nil
	}

	// 5) Run.
	r.init()
	r.process()
	r.finish(coords)
	r.summary("search complete")

	return r.res, nil
}

// runner holds the mutable state of one Search execution.
type runner struct {
	g         *planet.Graph
	opts      Options
	scores    []float64 // intrinsic score by NodeID
	north     planet.NodeID
	south     planet.NodeID
	maxVisits int

	pq   *frontier
	seq  uint64   // next insertion sequence
	best *partial // best candidate so far
	peak int      // largest frontier size seen
	res  Result
}

// init pushes the single-node path [north].
func (r *runner) init() {
	heap.Init(r.pq)
	r.push(&partial{
		nodes: []planet.NodeID{r.north},
		score: r.scores[r.north],
	})
}

// push stamps p with the next sequence number and queues it.
func (r *runner) push(p *partial) {
	p.seq = r.seq
	r.seq++
	heap.Push(r.pq, p)
	if n := r.pq.Len(); n > r.peak {
		r.peak = n
	}
}

// process drains the frontier, recording candidates and expanding the rest.
// It stops early only when the expansion cap is reached.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			r.res.Truncated = true
			return
		}

		p := heap.Pop(r.pq).(*partial)
		r.res.Expanded++

		if p.last() == r.south && len(p.nodes) <= r.maxVisits {
			r.record(p)
			continue
		}
		r.expand(p)
	}
}

// record keeps p as a candidate; the first of equally scored candidates wins.
func (r *runner) record(p *partial) {
	r.res.Candidates++
	if r.best == nil || p.score > r.best.score {
		r.best = p
	}
}

// expand pushes every extension of p by a successor that is not on p yet.
func (r *runner) expand(p *partial) {
	if r.opts.LengthPruning && len(p.nodes) >= r.maxVisits {
		return
	}
	for _, v := range r.g.Successors(p.last()) {
		if p.contains(v) {
			continue
		}
		r.push(p.extend(v, r.scores[v]))
	}
}

// finish converts the best candidate into the public result.
func (r *runner) finish(coords []planet.Coord) {
	if r.best == nil {
		r.res.Outcome = NoPath
		return
	}
	path := make([]planet.Coord, len(r.best.nodes))
	for i, id := range r.best.nodes {
		path[i] = coords[id]
	}
	r.res.Outcome = Found
	r.res.Path = path
	r.res.Score = pathScore(r.scores, r.best.nodes)
}

// summary logs the run statistics at debug level.
func (r *runner) summary(msg string) {
	r.opts.Logger.Debug(msg,
		zap.Int("max_visits", r.maxVisits),
		zap.Int("expanded", r.res.Expanded),
		zap.Int("candidates", r.res.Candidates),
		zap.Int("frontier_peak", r.peak),
		zap.Bool("truncated", r.res.Truncated),
		zap.Stringer("outcome", r.res.Outcome),
	)
}
