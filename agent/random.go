package agent

import (
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/searcher"

	"golang.org/x/exp/rand"
)

// randomAgent picks a successor uniformly at random. It is the baseline
// opponent in experiments.
type randomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState) (game.GameState, metrics.SearchMetric, error) {
	if state.IsFinal() {
		return game.GameState{}, metrics.SearchMetric{}, searcher.ErrGameOver
	}
	successors := state.Successors()
	if len(successors) == 0 {
		return game.GameState{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return successors[a.rng.Intn(len(successors))], metrics.SearchMetric{Candidates: len(successors)}, nil
}
