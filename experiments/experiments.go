package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adversarial/game"
	"adversarial/meta"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch means alpha-beta backed up a different value than minimax on
// the same game, which pruning must never cause.
var ErrMismatch = errors.New("alpha-beta disagrees with minimax")

// Strategies lists every strategy in the order each game runs them.
var Strategies = []string{
	searcher.MinimaxStrategy,
	searcher.AlphaBetaStrategy,
	searcher.AlphaBetaCutoffStrategy,
	searcher.GeneralMinimaxStrategy,
}

type Config struct {
	Games      int             `json:"games"`
	Goroutines int             `json:"goroutines"`
	Seed       uint64          `json:"seed"`   // Game i uses Seed+i
	Cutoff     int             `json:"cutoff"` // Plies searched by alpha-beta-cutoff
	Tree       game.TreeConfig `json:"tree"`
	Paranoid   bool            `json:"paranoid"` // Opponent model of general-minimax
}

// DefaultConfig runs the meta defaults on small zero-sum trees.
func DefaultConfig() Config {
	tree := game.DefaultTreeConfig
	tree.Depth = meta.TREE_DEPTH
	tree.Branching = meta.BRANCHING
	return Config{
		Games:      meta.GAMES,
		Goroutines: meta.GO_ROUTINES,
		Seed:       meta.SEED,
		Cutoff:     meta.CUTOFF,
		Tree:       tree,
	}
}

// Record is the outcome of one strategy on one game.
type Record struct {
	Game   int
	Seed   uint64
	Action int  // Chosen child node id
	Agrees bool // Same action as minimax
	searcher.SearchMetric
}

// Run plays every strategy on cfg.Games random trees, spreading the games over
// cfg.Goroutines workers. Records come back ordered by game, then strategy.
func Run(ctx context.Context, cfg Config) ([]Record, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("need a positive number of games, got %d", cfg.Games)
	}
	goroutines := max(cfg.Goroutines, 1)

	log.Info().Msgf("starting %d games on %d goroutines...", cfg.Games, goroutines)
	start := time.Now()

	records := make([]Record, cfg.Games*len(Strategies))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(goroutines)
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results, err := runGame(i, cfg)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			copy(records[i*len(Strategies):], results)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %d games in %s", cfg.Games, time.Since(start))
	return records, nil
}

// runGame searches one random tree with every strategy.
func runGame(i int, cfg Config) ([]Record, error) {
	seed := cfg.Seed + uint64(i)
	dag := game.RandomTree(rand.New(rand.NewSource(seed)), cfg.Tree)
	root := dag.StartState().PlayerToMove()

	model := searcher.MaxN
	if cfg.Paranoid {
		model = searcher.Paranoid
	}

	searches := map[string]func(opts ...searcher.Option) (int, error){
		searcher.MinimaxStrategy: func(opts ...searcher.Option) (int, error) {
			return searcher.Minimax(dag, opts...)
		},
		searcher.AlphaBetaStrategy: func(opts ...searcher.Option) (int, error) {
			return searcher.AlphaBeta(dag, opts...)
		},
		searcher.AlphaBetaCutoffStrategy: func(opts ...searcher.Option) (int, error) {
			return searcher.AlphaBetaCutoff(dag, cfg.Cutoff, game.MeanReward(dag, root), opts...)
		},
		searcher.GeneralMinimaxStrategy: func(opts ...searcher.Option) (int, error) {
			return searcher.GeneralMinimax(dag, append(opts, searcher.WithOpponentModel(model))...)
		},
	}

	records := make([]Record, 0, len(Strategies))
	for _, strategy := range Strategies {
		collector := searcher.NewCollector()
		action, err := searches[strategy](searcher.WithMetrics(collector))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strategy, err)
		}
		records = append(records, Record{
			Game:         i,
			Seed:         seed,
			Action:       action,
			SearchMetric: collector.Metric(),
		})
	}

	exact := records[0]
	for j := range records {
		records[j].Agrees = records[j].Action == exact.Action
	}
	if pruned := records[1]; pruned.Value != exact.Value {
		log.Warn().Msgf("game %d: minimax value %v, alpha-beta value %v", i, exact.Value, pruned.Value)
		return nil, fmt.Errorf("%w: %v != %v", ErrMismatch, exact.Value, pruned.Value)
	}
	return records, nil
}
