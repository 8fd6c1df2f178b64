package main

import (
	"flag"
	"fmt"
	"os"
	"rowrace/agent"
	"rowrace/engine"
	"rowrace/experiments"
	"rowrace/game"
	"rowrace/meta"
	"rowrace/player"
	"rowrace/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play (human vs engine), selfplay (engine vs engine) or experiment")
	starting := flag.Int("starting", int(game.DefaultStarting), "Player that moves first (1 or 2)")
	enginePlayer := flag.Int("engine", int(game.Player1), "Player the engine controls in play mode (1 or 2)")
	depth := flag.Int("depth", meta.SearchDepth, "Plies searched below each candidate move")
	config := flag.String("config", "", "YAML experiment setup (experiment mode)")
	debug := flag.Bool("debug", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		err = runPlay(game.Player(*starting), game.Player(*enginePlayer), *depth)
	case "selfplay":
		err = runSelfPlay(game.Player(*starting), *depth)
	case "experiment":
		err = runExperiment(*config)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("rowrace failed")
	}
}

func runPlay(starting, enginePlayer game.Player, depth int) error {
	if !starting.Valid() || !enginePlayer.Valid() {
		return fmt.Errorf("players must be 1 or 2, got starting=%d engine=%d", starting, enginePlayer)
	}
	computer := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(depth)))
	human := player.NewConsole(os.Stdin, os.Stdout)

	agents := []agent.Agent{computer, human}
	if enginePlayer == game.Player2 {
		agents = []agent.Agent{human, computer}
	}

	e := engine.LocalEngine(starting, agents)
	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Println(e.State.String())
	fmt.Printf("Winner: %v\n", winner)
	return nil
}

func runSelfPlay(starting game.Player, depth int) error {
	if !starting.Valid() {
		return fmt.Errorf("starting player must be 1 or 2, got %d", starting)
	}
	agents := []agent.Agent{
		agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())),
		agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())),
	}

	e := engine.LocalEngine(starting, agents)
	e.Observer = func(step int, state game.GameState) {
		fmt.Printf("Step %d\n%v\n", step, state)
	}
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	nodes := 0
	for _, mm := range moveMetrics {
		nodes += mm.Nodes
	}
	log.Info().Msgf("winner: %v after %d moves in %v, %d nodes searched", winner, gameMetric.TotalMoves, gameMetric.Duration, nodes)
	return nil
}

func runExperiment(config string) error {
	setup := experiments.DefaultSetup()
	if config != "" {
		var err error
		setup, err = experiments.LoadSetup(config)
		if err != nil {
			return err
		}
	}
	_, err := experiments.Run(setup)
	return err
}
