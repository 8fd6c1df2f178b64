package experiments

import (
	"errors"
	"fmt"
	"os"
	"rowrace/experiments/metrics"
	"rowrace/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSetup = errors.New("invalid experiment setup")

// Setup describes an experiment: a pool of agents and the pairs of them that
// play each other. In a matchup [a, b], a plays Player1 and b Player2.
type Setup struct {
	Name      string                `yaml:"name"`
	NumGames  int                   `yaml:"num_games"` // Per matchup
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	Matchups  [][]int               `yaml:"matchups"` // Pairs of AgentConfig.ID
}

// DefaultSetup pits the full-depth engine against a random player and a
// one-ply engine.
func DefaultSetup() *Setup {
	return &Setup{
		Name:      "depth",
		NumGames:  meta.NumGames,
		OutputDir: "experiments",
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.SearchAgent, Depth: meta.SearchDepth},
			{ID: 2, Kind: metrics.RandomAgent, Seed: 1},
			{ID: 3, Kind: metrics.SearchAgent, Depth: 1},
		},
		Matchups: [][]int{{1, 2}, {2, 1}, {1, 3}, {3, 1}},
	}
}

// LoadSetup reads a YAML setup file. Missing fields fall back to DefaultSetup.
func LoadSetup(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup: %w", err)
	}

	setup := DefaultSetup()
	err = yaml.Unmarshal(data, setup)
	if err != nil {
		return nil, fmt.Errorf("failed to parse setup %s: %w", path, err)
	}
	err = setup.Validate()
	if err != nil {
		return nil, err
	}
	return setup, nil
}

func (s *Setup) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSetup)
	}
	if s.NumGames <= 0 {
		return fmt.Errorf("%w: num_games must be positive, got %d", ErrInvalidSetup, s.NumGames)
	}

	ids := make(map[int]bool, len(s.Agents))
	for _, config := range s.Agents {
		if ids[config.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidSetup, config.ID)
		}
		ids[config.ID] = true
		switch config.Kind {
		case metrics.SearchAgent, metrics.RandomAgent:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidSetup, config.ID, config.Kind)
		}
	}

	if len(s.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidSetup)
	}
	for _, matchup := range s.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("%w: matchup %v must name two agents", ErrInvalidSetup, matchup)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup %v names unknown agent %d", ErrInvalidSetup, matchup, id)
			}
		}
	}
	return nil
}

func (s *Setup) agent(id int) metrics.AgentConfig {
	for _, config := range s.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
