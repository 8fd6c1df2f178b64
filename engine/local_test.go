package engine

import (
	"errors"
	"rowrace/agent"
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// firstMoveAgent always plays the first successor.
type firstMoveAgent struct {
	calls int
}

func (a *firstMoveAgent) FindMove(state game.GameState) (game.GameState, metrics.SearchMetric, error) {
	a.calls++
	return state.Successors()[0], metrics.SearchMetric{Candidates: len(state.Successors())}, nil
}

// stubAgent returns a fixed state or error.
type stubAgent struct {
	state game.GameState
	err   error
}

func (a stubAgent) FindMove(game.GameState) (game.GameState, metrics.SearchMetric, error) {
	return a.state, metrics.SearchMetric{}, a.err
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without exactly two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(game.Player1, []agent.Agent{&firstMoveAgent{}}) })
	})

	t.Run("starts from the initial layout", func(t *testing.T) {
		e := LocalEngine(game.Player2, []agent.Agent{&firstMoveAgent{}, &firstMoveAgent{}})
		require.Equal(t, game.NewGameState(game.Player2), e.State)
	})
}

func TestRun(t *testing.T) {
	t.Run("plays a full game between search and random agents", func(t *testing.T) {
		agents := []agent.Agent{
			agent.NewSearchAgent(searcher.NewAlphaBeta()),
			agent.NewRandomAgent(3),
		}
		e := LocalEngine(game.Player1, agents)
		var observed []int
		e.Observer = func(step int, state game.GameState) {
			observed = append(observed, step)
		}

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, game.Player1, gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Len(t, observed, gameMetric.TotalMoves+1, "Observer should see the initial state and every move")
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, game.Player1, mm.Player, "Players should alternate")
			} else {
				require.Equal(t, game.Player2, mm.Player, "Players should alternate")
			}
		}
	})

	t.Run("agents move for their own side", func(t *testing.T) {
		p1, p2 := &firstMoveAgent{}, &firstMoveAgent{}
		e := LocalEngine(game.Player2, []agent.Agent{p1, p2})
		e.maxTurns = 3

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoWinner, winner, "Turn cap should stop the game without a winner")
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Equal(t, 1, p1.calls)
		require.Equal(t, 2, p2.calls, "Player2 starts, so moves twice in three turns")
	})

	t.Run("rejects a state that is not a successor", func(t *testing.T) {
		bogus := game.NewGameState(game.Player1) // Same layout, turn not passed
		e := LocalEngine(game.Player1, []agent.Agent{stubAgent{state: bogus}, &firstMoveAgent{}})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, game.NewGameState(game.Player1), e.State, "State should not advance")
	})

	t.Run("propagates agent errors", func(t *testing.T) {
		boom := errors.New("boom")
		e := LocalEngine(game.Player1, []agent.Agent{stubAgent{err: boom}, &firstMoveAgent{}})

		_, gameMetric, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, boom)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})

	t.Run("stops when the side to move is stuck", func(t *testing.T) {
		p1, p2 := &firstMoveAgent{}, &firstMoveAgent{}
		e := LocalEngine(game.Player1, []agent.Agent{p1, p2})
		e.State = game.GameState{Next: game.Player1}
		e.State.Board[0][0] = game.Player1
		e.State.Board[0][1] = game.Player2
		e.State.Board[1][0] = game.Player2
		e.State.Board[1][1] = game.Player2

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoWinner, winner)
		require.Zero(t, gameMetric.TotalMoves)
		require.Zero(t, p1.calls)
	})

	t.Run("finished game is absorbing", func(t *testing.T) {
		p1, p2 := &firstMoveAgent{}, &firstMoveAgent{}
		e := LocalEngine(game.Player1, []agent.Agent{p1, p2})
		e.State = game.GameState{Next: game.Player1}
		for col := 0; col < game.Size; col++ {
			e.State.Board[0][col] = game.Player2
		}

		winner, _, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player2, winner)
		require.Zero(t, p1.calls+p2.calls)
	})
}
