package searcher

import (
	"math"

	"adversarial/game"
)

// AlphaBeta returns the same decision as Minimax while skipping subtrees that
// cannot change it. The returned action only differs from Minimax's when
// several actions share the best value.
func AlphaBeta[S game.State, A any](p game.Problem[S, A], options ...Option) (A, error) {
	cfg := newConfig(options)

	var best A
	s, start, actions, err := begin(p, AlphaBetaStrategy, cfg.metrics)
	if err != nil {
		return best, err
	}

	value := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, action := range actions {
		v, err := s.alphaBetaMin(p.Transition(start, action), alpha, beta)
		if err != nil {
			var zero A
			return zero, err
		}
		if i == 0 || v > value {
			value = v
			best = action
		}
		// Beta stays +Inf at the root, so this only fires on a +Inf reward.
		if v >= beta {
			s.prune(len(actions) - i - 1)
			break
		}
		alpha = max(alpha, v)
	}

	s.complete(AlphaBetaStrategy, len(actions), value)
	return best, nil
}

func (s search[S, A]) alphaBetaMax(state S, alpha, beta float64) (float64, error) {
	if s.problem.IsTerminal(state) {
		return s.evaluate(state)
	}
	actions, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(-1)
	for i, action := range actions {
		child, err := s.alphaBetaMin(s.problem.Transition(state, action), alpha, beta)
		if err != nil {
			return 0, err
		}
		v = max(v, child)
		if v >= beta {
			s.prune(len(actions) - i - 1)
			return v, nil
		}
		alpha = max(alpha, v)
	}
	return v, nil
}

func (s search[S, A]) alphaBetaMin(state S, alpha, beta float64) (float64, error) {
	if s.problem.IsTerminal(state) {
		return s.evaluate(state)
	}
	actions, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(1)
	for i, action := range actions {
		child, err := s.alphaBetaMax(s.problem.Transition(state, action), alpha, beta)
		if err != nil {
			return 0, err
		}
		v = min(v, child)
		if v <= alpha {
			s.prune(len(actions) - i - 1)
			return v, nil
		}
		beta = min(beta, v)
	}
	return v, nil
}
