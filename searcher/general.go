package searcher

import (
	"math"

	"adversarial/game"
)

type generalSearch[S game.State, A any] struct {
	search[S, A]
	opponents OpponentModel
}

// GeneralMinimax picks the start player's best action without assuming two
// players or constant-sum rewards. Nodes are backed up with whole reward
// vectors: the start player always maximizes their own reward, and other
// players follow the configured OpponentModel (MaxN unless changed with
// WithOpponentModel). There is no pruning.
//
// On two-player constant-sum games both models agree with Minimax.
func GeneralMinimax[S game.State, A any](p game.Problem[S, A], options ...Option) (A, error) {
	cfg := newConfig(options)

	var best A
	s, start, actions, err := begin(p, GeneralMinimaxStrategy, cfg.metrics)
	if err != nil {
		return best, err
	}
	g := generalSearch[S, A]{search: s, opponents: cfg.opponents}

	value := math.Inf(-1)
	for i, action := range actions {
		rewards, err := g.child(p.Transition(start, action))
		if err != nil {
			var zero A
			return zero, err
		}
		v, err := reward(rewards, g.player)
		if err != nil {
			var zero A
			return zero, err
		}
		if i == 0 || v > value {
			value = v
			best = action
		}
	}

	s.complete(GeneralMinimaxStrategy, len(actions), value)
	return best, nil
}

// child dispatches on who moves at state.
func (g generalSearch[S, A]) child(state S) (game.Rewards, error) {
	if state.PlayerToMove() == g.player {
		return g.generalMax(state)
	}
	return g.generalOpponent(state)
}

func (g generalSearch[S, A]) terminal(state S) (game.Rewards, error) {
	g.metrics.AddTerminal()
	rewards := g.problem.EvaluateState(state)
	if _, err := reward(rewards, g.player); err != nil {
		return nil, err
	}
	return rewards, nil
}

// generalMax backs up the child with the highest reward for the start player.
func (g generalSearch[S, A]) generalMax(state S) (game.Rewards, error) {
	if g.problem.IsTerminal(state) {
		return g.terminal(state)
	}
	actions, err := g.expand(state)
	if err != nil {
		return nil, err
	}

	var best game.Rewards
	value := math.Inf(-1)
	for i, action := range actions {
		rewards, err := g.child(g.problem.Transition(state, action))
		if err != nil {
			return nil, err
		}
		v, err := reward(rewards, g.player)
		if err != nil {
			return nil, err
		}
		if i == 0 || v > value {
			value = v
			best = rewards
		}
	}
	return best, nil
}

// generalOpponent backs up the child chosen by a player other than the start
// player. Under MaxN the mover takes their own highest reward; under Paranoid
// the mover takes the start player's lowest reward. Ties keep the first child.
func (g generalSearch[S, A]) generalOpponent(state S) (game.Rewards, error) {
	if g.problem.IsTerminal(state) {
		return g.terminal(state)
	}
	actions, err := g.expand(state)
	if err != nil {
		return nil, err
	}

	mover := state.PlayerToMove()
	var best game.Rewards
	value := math.Inf(-1)
	for i, action := range actions {
		rewards, err := g.child(g.problem.Transition(state, action))
		if err != nil {
			return nil, err
		}

		var v float64
		if g.opponents == Paranoid {
			v, err = reward(rewards, g.player)
			v = -v
		} else {
			v, err = reward(rewards, mover)
		}
		if err != nil {
			return nil, err
		}
		if i == 0 || v > value {
			value = v
			best = rewards
		}
	}
	return best, nil
}
