// Package pathsearch finds a high-scoring route between the poles of a
// planet.Graph within a visit budget.
//
// Overview:
//
//   - Every node has an intrinsic score: quality × biome weight.
//   - A path scores the sum of the intrinsic scores of its nodes.
//   - The visit budget is days × 3 nodes, poles included.
//
// Algorithm (best-first over partial paths):
//
//  1. Seed the frontier with the single-node path [north pole].
//  2. Pop the partial path with the highest cumulative score.
//  3. If it ends at the south pole within budget, record it as a candidate
//     and do not extend it.
//  4. Otherwise append every successor not already on the path and push the
//     extensions.
//  5. Stop when the frontier is empty; the best candidate wins.
//
// Frontier ordering is deterministic: higher score first, then the shorter
// path, then the lexicographically smaller coordinate sequence, then the
// earlier insertion. Among candidates with equal score the first one recorded
// is kept.
//
// Pruning and safety valves:
//
//   - By default a partial path that already holds budget-many nodes is not
//     extended: none of its extensions can fit the budget. The set of recorded
//     candidates is unchanged by this; only the frontier stays small.
//     WithoutLengthPruning restores the unpruned expansion where the budget
//     is checked only when the south pole is reached.
//   - If the south pole is unreachable from the north pole the search reports
//     NoPath without expanding anything.
//   - WithMaxExpansions caps the number of frontier pops. A capped run may
//     miss better candidates and is flagged with Result.Truncated.
//
// Because the frontier is drained completely, an uncapped run visits every
// simple north→south path within budget and therefore returns the best one.
// Its cost is exponential in the budget on dense grids.
//
// Errors:
//
//   - ErrNilGraph:         graph pointer is nil.
//   - ErrPolesUndefined:   the topology (and so the poles) was never derived.
//   - ErrBadDays:          days < 1.
//   - ErrUnknownBiome:     a node's biome index is outside the weight table.
//   - ErrBadWeights:       an empty weight table was supplied.
//   - ErrBadMaxExpansions: a negative expansion cap was supplied.
//
// "No valid path" is not an error: it is Result.Outcome == NoPath.
//
// Thread safety:
//
//	Search only reads the graph. Concurrent searches over the same graph are
//	fine as long as nobody mutates it.
package pathsearch
