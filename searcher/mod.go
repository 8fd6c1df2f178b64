package searcher

import (
	"errors"
	"math"
)

// Infinity bounds every score the evaluation can produce. Negate it for the
// lower bound; math.MinInt is avoided so that negation stays in range.
const Infinity = math.MaxInt

var (
	ErrGameOver     = errors.New("game is over - no moves to search")
	ErrNoLegalMoves = errors.New("side to move has no legal moves")
)
