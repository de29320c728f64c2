package pathsearch

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/planetpath/planet"
)

// Outcome classifies a finished search.
type Outcome int

const (
	// NoPath means the frontier was drained without reaching the south pole
	// within budget.
	NoPath Outcome = iota
	// Found means at least one candidate path was recorded.
	Found
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no path"
	}
	return "unknown"
}

// Result is the outcome of a Search run.
type Result struct {
	Outcome    Outcome        // Found or NoPath
	Path       []planet.Coord // best path, north pole first; nil when NoPath
	Score      float64        // score of Path
	MaxVisits  int            // visit budget, days × VisitsPerDay
	Candidates int            // completed paths recorded
	Expanded   int            // partial paths taken off the frontier
	Truncated  bool           // stopped by WithMaxExpansions before the frontier emptied
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == Found }

// String renders the path as "[(x,y)(x,y)...] with score: S", or
// "No valid path found".
func (r Result) String() string {
	if r.Outcome != Found {
		return "No valid path found"
	}

	var b strings.Builder
	b.WriteByte('[')
	for _, c := range r.Path {
		b.WriteByte('(')
		b.WriteString(c.String())
		b.WriteByte(')')
	}
	b.WriteString("] with score: ")
	b.WriteString(FormatScore(r.Score))

	return b.String()
}

// FormatScore prints a score with the fewest digits that round-trip,
// without an exponent: 42.5, 30, 0.125.
func FormatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
