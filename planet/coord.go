package planet

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoord parses an "x,y" pair. Surrounding whitespace and a single pair
// of parentheses are tolerated, so "(3,-1)" and " 3,-1 " are both accepted.
// Returns ErrBadCoord (wrapped with the input) on any other shape.
func ParseCoord(s string) (Coord, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")

	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: x: %v", ErrBadCoord, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: y: %v", ErrBadCoord, s, err)
	}

	return Coord{X: x, Y: y}, nil
}
