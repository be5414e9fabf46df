package searcher

import (
	"math"

	"adversarial/game"
)

// Minimax returns the start player's best action in a two-player constant-sum
// game by exhaustive search. Every terminal is valued by the reward of the
// player to move at the start state. Among equally valued actions the first
// one wins.
//
// ErrNoAction is returned when the start state offers nothing to choose.
func Minimax[S game.State, A any](p game.Problem[S, A], options ...Option) (A, error) {
	cfg := newConfig(options)

	var best A
	s, start, actions, err := begin(p, MinimaxStrategy, cfg.metrics)
	if err != nil {
		return best, err
	}

	value := math.Inf(-1)
	for i, action := range actions {
		v, err := s.minValue(p.Transition(start, action))
		if err != nil {
			var zero A
			return zero, err
		}
		if i == 0 || v > value {
			value = v
			best = action
		}
	}

	s.complete(MinimaxStrategy, len(actions), value)
	return best, nil
}

func (s search[S, A]) maxValue(state S) (float64, error) {
	if s.problem.IsTerminal(state) {
		return s.evaluate(state)
	}
	actions, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(-1)
	for _, action := range actions {
		child, err := s.minValue(s.problem.Transition(state, action))
		if err != nil {
			return 0, err
		}
		v = max(v, child)
	}
	return v, nil
}

func (s search[S, A]) minValue(state S) (float64, error) {
	if s.problem.IsTerminal(state) {
		return s.evaluate(state)
	}
	actions, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(1)
	for _, action := range actions {
		child, err := s.maxValue(s.problem.Transition(state, action))
		if err != nil {
			return 0, err
		}
		v = min(v, child)
	}
	return v, nil
}
