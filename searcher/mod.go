package searcher

import (
	"errors"
	"fmt"

	"adversarial/game"

	"github.com/rs/zerolog/log"
)

// Strategy names reported in metrics and logs.
const (
	MinimaxStrategy         = "minimax"
	AlphaBetaStrategy       = "alpha-beta"
	AlphaBetaCutoffStrategy = "alpha-beta-cutoff"
	GeneralMinimaxStrategy  = "general-minimax"
)

var (
	// ErrNoAction is returned, with the zero action, when the start state is
	// terminal or has no available actions.
	ErrNoAction = errors.New("no action to choose from the start state")

	// ErrNoActions reports a non-terminal state below the root without any
	// available action, which the Problem contract forbids.
	ErrNoActions = errors.New("non-terminal state has no available actions")

	// ErrMissingReward reports a terminal reward vector without an entry for a
	// player the search needs.
	ErrMissingReward = errors.New("terminal rewards missing player")

	ErrInvalidCutoff = errors.New("cutoff ply must be positive")
	ErrNilEvaluate   = errors.New("evaluation function is nil")
)

// search carries what every recursion needs. It is passed by value and never
// modified once built; only the metrics collector counts.
type search[S game.State, A any] struct {
	problem game.Problem[S, A]
	player  game.Player // Player to move at the start state
	metrics Collector
}

// begin validates the start state and returns it with its actions.
func begin[S game.State, A any](p game.Problem[S, A], strategy string, metrics Collector) (search[S, A], S, []A, error) {
	metrics.Start(strategy)

	start := p.StartState()
	s := search[S, A]{
		problem: p,
		player:  start.PlayerToMove(),
		metrics: metrics,
	}
	if p.IsTerminal(start) {
		return s, start, nil, fmt.Errorf("%w: start state is terminal", ErrNoAction)
	}
	actions := p.AvailableActions(start)
	if len(actions) == 0 {
		return s, start, nil, ErrNoAction
	}
	metrics.AddNode()
	return s, start, actions, nil
}

// evaluate returns the start player's reward at a terminal state.
func (s search[S, A]) evaluate(state S) (float64, error) {
	s.metrics.AddTerminal()
	return reward(s.problem.EvaluateState(state), s.player)
}

// expand returns the actions of a non-terminal state.
func (s search[S, A]) expand(state S) ([]A, error) {
	actions := s.problem.AvailableActions(state)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: player %d to move", ErrNoActions, state.PlayerToMove())
	}
	s.metrics.AddNode()
	return actions, nil
}

// prune records a cutoff that skipped the remaining sibling actions.
func (s search[S, A]) prune(skipped int) {
	if skipped > 0 {
		s.metrics.AddPrune()
	}
}

func (s search[S, A]) complete(strategy string, actions int, value float64) {
	metric := s.metrics.Complete(value)
	log.Debug().
		Str("strategy", strategy).
		Int("player", int(s.player)).
		Int("actions", actions).
		Float64("value", value).
		Int64("terminals", metric.Terminals).
		Msg("search complete")
}

func reward(rewards game.Rewards, player game.Player) (float64, error) {
	v, ok := rewards[player]
	if !ok {
		return 0, fmt.Errorf("%w %d", ErrMissingReward, player)
	}
	return v, nil
}
