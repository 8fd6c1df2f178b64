package searcher

import "rowrace/game"

// Minimax is the unpruned reference search. It shares the base case of
// AlphaBeta.Search; a node with no successors is worth -Infinity to the
// maximizer and Infinity to the minimizer.
func Minimax(state game.GameState, depth int, maximize bool, evaluate game.Evaluate) int {
	if depth == 0 || state.IsFinal() {
		return evaluate(state)
	}

	best := Infinity
	if maximize {
		best = -Infinity
	}
	for _, child := range state.Successors() {
		value := Minimax(child, depth-1, !maximize, evaluate)
		if maximize {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}
