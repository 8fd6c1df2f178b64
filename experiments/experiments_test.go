package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"rowrace/experiments/metrics"
	"rowrace/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestLoadSetup(t *testing.T) {
	t.Run("reads agents and matchups", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
name: shallow
num_games: 4
agents:
  - id: 7
    kind: search
    depth: 2
  - id: 8
    kind: random
    seed: 99
matchups:
  - [7, 8]
`), 0644))

		setup, err := LoadSetup(path)

		require.NoError(t, err)
		require.Equal(t, "shallow", setup.Name)
		require.Equal(t, 4, setup.NumGames)
		require.Equal(t, "experiments", setup.OutputDir, "Missing fields should keep defaults")
		require.Equal(t, []metrics.AgentConfig{
			{ID: 7, Kind: metrics.SearchAgent, Depth: 2},
			{ID: 8, Kind: metrics.RandomAgent, Seed: 99},
		}, setup.Agents)
		require.Equal(t, [][]int{{7, 8}}, setup.Matchups)
	})

	t.Run("rejects an unknown agent in a matchup", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
agents:
  - id: 1
    kind: random
matchups:
  - [1, 2]
`), 0644))

		_, err := LoadSetup(path)

		require.ErrorIs(t, err, ErrInvalidSetup)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSetup(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultSetup().Validate())
	require.Equal(t, meta.NumGames, DefaultSetup().NumGames)

	cases := map[string]func(s *Setup){
		"empty name":        func(s *Setup) { s.Name = "" },
		"no games":          func(s *Setup) { s.NumGames = 0 },
		"duplicate agent":   func(s *Setup) { s.Agents = append(s.Agents, s.Agents[0]) },
		"unknown kind":      func(s *Setup) { s.Agents[0].Kind = "oracle" },
		"no matchups":       func(s *Setup) { s.Matchups = nil },
		"three-way matchup": func(s *Setup) { s.Matchups = [][]int{{1, 2, 3}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			setup := DefaultSetup()
			mutate(setup)
			require.ErrorIs(t, setup.Validate(), ErrInvalidSetup)
		})
	}
}

func TestRun(t *testing.T) {
	setup := &Setup{
		Name:      "smoke",
		NumGames:  2,
		OutputDir: t.TempDir(),
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.SearchAgent, Depth: 1},
			{ID: 2, Kind: metrics.RandomAgent, Seed: 5},
		},
		Matchups: [][]int{{1, 2}},
	}

	dir, err := Run(setup)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(setup.OutputDir, "smoke"), filepath.Dir(dir))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "depth", "seed"}, configs[0])
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+setup.NumGames)
	require.Equal(t, "1", games[1][3], "First game should open with Player1")
	require.Equal(t, "2", games[2][3], "Second game should open with Player2")
	require.NotEqual(t, games[1][0], games[2][0], "Game ids should be unique")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Equal(t, "game", moves[0][0])
	require.Greater(t, len(moves), 1)
}

func TestNewAgent(t *testing.T) {
	require.NotNil(t, NewAgent(metrics.AgentConfig{Kind: metrics.SearchAgent, Depth: 2}, 0))
	require.NotNil(t, NewAgent(metrics.AgentConfig{Kind: metrics.RandomAgent}, 0))
	require.Panics(t, func() { NewAgent(metrics.AgentConfig{Kind: "oracle"}, 0) })
}
