package agent

import (
	"rowrace/experiments/metrics"
	"rowrace/game"
)

type Agent interface {
	// FindMove returns the state after this agent's move and search metrics (if collected)
	FindMove(state game.GameState) (game.GameState, metrics.SearchMetric, error)
}
