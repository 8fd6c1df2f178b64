package experiments

import (
	"fmt"
	"rowrace/agent"
	"rowrace/engine"
	"rowrace/experiments/metrics"
	"rowrace/game"
	"rowrace/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run plays every matchup of setup NumGames times and writes the agent
// configs, game records and move records under OutputDir/Name/<timestamp>.
// It returns the directory written to.
func Run(setup *Setup) (string, error) {
	err := setup.Validate()
	if err != nil {
		return "", err
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.Matchups {
		config1 := setup.agent(matchup[0])
		config2 := setup.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.Matchups), config1, config2)

		for i := 0; i < setup.NumGames; i++ {
			// Alternate who opens so neither seat keeps the first move
			starting := game.Player1
			if i%2 == 1 {
				starting = game.Player2
			}
			id := uuid.NewString()

			winner, gameMetric, moveMetrics, err := runGame(config1, config2, starting, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d (%s) with winner: %v", mi+1, len(setup.Matchups), i+1, id, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	writer, err := metrics.NewWriter(setup.OutputDir, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(setup.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, starting game.Player, round uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		NewAgent(config1, round),
		NewAgent(config2, round),
	}
	e := engine.LocalEngine(starting, agents)
	return e.Run()
}

// NewAgent builds the agent described by config. round offsets the seed of
// random agents so repeated games differ.
func NewAgent(config metrics.AgentConfig, round uint64) agent.Agent {
	switch config.Kind {
	case metrics.SearchAgent:
		return agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + round)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
