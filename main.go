package main

import (
	"context"
	"flag"
	"os"
	"time"

	"adversarial/engine"
	"adversarial/experiments"
	"adversarial/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := experiments.DefaultConfig()

	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of random games")
	flag.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "Number of games searched in parallel")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the first game")
	flag.IntVar(&cfg.Cutoff, "cutoff", cfg.Cutoff, "Plies searched exactly by alpha-beta-cutoff")
	flag.IntVar(&cfg.Tree.Depth, "depth", cfg.Tree.Depth, "Depth of the random games in plies")
	flag.IntVar(&cfg.Tree.Branching, "branching", cfg.Tree.Branching, "Maximum actions per state")
	flag.IntVar(&cfg.Tree.Players, "players", cfg.Tree.Players, "Number of players")
	flag.BoolVar(&cfg.Tree.ConstantSum, "zero-sum", cfg.Tree.ConstantSum, "Make every game zero-sum")
	flag.BoolVar(&cfg.Tree.Alternate, "alternate", cfg.Tree.Alternate, "Let players move in turn instead of at random")
	flag.BoolVar(&cfg.Paranoid, "paranoid", cfg.Paranoid, "Use the paranoid opponent model in general-minimax")
	out := flag.String("out", "results", "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log every search")
	tictactoe := flag.Bool("tictactoe", false, "Play one tic-tac-toe match between alpha-beta agents instead")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *tictactoe {
		if err := play(); err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		return
	}

	if err := run(cfg, *out); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func play() error {
	agent := engine.AlphaBetaAgent[game.TicTacToeState, int]()
	e := engine.LocalEngine[game.TicTacToeState, int](game.NewTicTacToe(), map[game.Player]engine.Agent[game.TicTacToeState, int]{
		game.X: agent,
		game.O: agent,
	})

	result, err := e.Run()
	if err != nil {
		return err
	}
	log.Info().Ints("moves", result.Moves).Msgf("final board %s", result.Final)
	return nil
}

func run(cfg experiments.Config, out string) error {
	start := time.Now()
	records, err := experiments.Run(context.Background(), cfg)
	if err != nil {
		return err
	}
	end := time.Now()

	summaries := experiments.Summarize(records)
	for _, s := range summaries {
		log.Info().
			Str("strategy", s.Strategy).
			Float64("nodes", s.MeanNodes).
			Float64("terminals", s.MeanTerminals).
			Float64("heuristics", s.MeanHeuristics).
			Float64("agreement", s.Agreement).
			Msg("summary")
	}

	writer, err := experiments.NewWriter(out)
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(cfg, start, end); err != nil {
		return err
	}
	if err := writer.WriteRecords(records); err != nil {
		return err
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}
