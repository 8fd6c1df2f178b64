package agent

import (
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/searcher"
)

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta best move.
func NewSearchAgent(s *searcher.AlphaBeta) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.GameState) (game.GameState, metrics.SearchMetric, error) {
	return a.searcher.BestMove(state)
}
