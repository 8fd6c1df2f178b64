package engine

import (
	"fmt"
	"rowrace/agent"
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/meta"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State  game.GameState
	Agents []agent.Agent // Agents[0] plays Player1, Agents[1] plays Player2

	// Observer, if set, sees every state the game passes through, the initial one included
	Observer func(step int, state game.GameState)

	maxTurns int
}

func LocalEngine(starting game.Player, agents []agent.Agent) *Engine {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}
	return &Engine{
		State:    game.NewGameState(starting),
		Agents:   agents,
		maxTurns: meta.MaxTurns,
	}
}

// Run executes the game loop until the game is decided or cannot go on.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Next,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.State.Next)
	e.observe(0)

	turn := 1
	for !e.State.IsFinal() && turn <= e.maxTurns {
		player := e.State.Next
		successors := e.State.Successors()
		if len(successors) == 0 {
			log.Warn().Msgf("%v has no legal moves, stopping at turn %d", player, turn)
			break
		}

		next, searchMetric, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return game.NoWinner, e.finish(gameMetric, turn-1), moveMetrics, fmt.Errorf("%v failed to move at turn %d: %w", player, turn, err)
		}
		if !slices.Contains(successors, next) {
			return game.NoWinner, e.finish(gameMetric, turn-1), moveMetrics, fmt.Errorf("%v at turn %d: %w", player, turn, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %v moved, evaluation now %d", turn, player, next.Evaluate())

		e.State = next
		e.observe(turn)
		turn++
	}

	if turn > e.maxTurns && !e.State.IsFinal() {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	winner := e.State.Winner()
	gameMetric = e.finish(gameMetric, turn-1)
	if winner != game.NoWinner {
		log.Info().Msgf("game ended after %d moves, winner: %v", gameMetric.TotalMoves, winner)
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *Engine) observe(step int) {
	if e.Observer != nil {
		e.Observer(step, e.State)
	}
}

func (e *Engine) finish(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	return gameMetric
}
