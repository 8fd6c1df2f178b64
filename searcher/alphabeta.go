package searcher

import (
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *AlphaBeta)

// AlphaBeta picks moves by depth-limited minimax with alpha-beta pruning.
// Player1 maximizes the evaluation and Player2 minimizes it.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		depth:    meta.SearchDepth,
		evaluate: game.EvaluateAdvancement,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Depth is the number of plies searched below each root candidate.
func (s *AlphaBeta) Depth() int {
	return s.depth
}

// BestMove returns the successor of state that is best for the side to move.
// Each candidate is scored as the opponent's turn, searched Depth plies deep.
// Among equally scored candidates the first in Successors order wins.
func (s *AlphaBeta) BestMove(state game.GameState) (game.GameState, metrics.SearchMetric, error) {
	if state.IsFinal() {
		return game.GameState{}, metrics.SearchMetric{}, ErrGameOver
	}
	successors := state.Successors()
	if len(successors) == 0 {
		return game.GameState{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	s.metrics.Start(s.depth, len(successors))

	maximize := state.Next == game.Player1
	alpha, beta := -Infinity, Infinity
	best := successors[0]
	for i, child := range successors {
		// The child is the opponent's turn, so it minimizes when we maximize.
		value := s.Search(child, alpha, beta, s.depth, !maximize)
		if maximize && value > alpha {
			alpha = value
			best = child
		} else if !maximize && value < beta {
			beta = value
			best = child
		}
		log.Debug().Msgf("candidate %d of %d scored %d (alpha=%d beta=%d)", i+1, len(successors), value, alpha, beta)
	}

	if maximize {
		s.metrics.SetScore(alpha)
	} else {
		s.metrics.SetScore(beta)
	}
	return best, s.metrics.Complete(), nil
}

// Search returns the fail-hard alpha-beta value of state searched depth plies
// deep. Leaves and finished games are scored by the static evaluation alone,
// so a won position is worth no more than its piece advancement.
func (s *AlphaBeta) Search(state game.GameState, alpha, beta, depth int, maximize bool) int {
	s.metrics.AddNode()
	if depth == 0 || state.IsFinal() {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}

	if maximize {
		for _, child := range state.Successors() {
			alpha = max(alpha, s.Search(child, alpha, beta, depth-1, false))
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return alpha
	}

	for _, child := range state.Successors() {
		beta = min(beta, s.Search(child, alpha, beta, depth-1, true))
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return beta
}
