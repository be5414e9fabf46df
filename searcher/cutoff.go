package searcher

import (
	"fmt"
	"math"

	"adversarial/game"
)

type cutoffSearch[S game.State, A any] struct {
	search[S, A]
	cutoff    int
	heuristic game.Evaluate[S]
}

// AlphaBetaCutoff runs alpha-beta search for at most cutoffPly plies. States
// reached by the start player's first move are at ply 1; non-terminal states at
// ply cutoffPly are scored by evaluate instead of being expanded. Terminal
// states always get their exact reward, even at the cutoff.
func AlphaBetaCutoff[S game.State, A any](p game.Problem[S, A], cutoffPly int, evaluate game.Evaluate[S], options ...Option) (A, error) {
	var best A
	if cutoffPly <= 0 {
		return best, fmt.Errorf("%w: got %d", ErrInvalidCutoff, cutoffPly)
	}
	if evaluate == nil {
		return best, ErrNilEvaluate
	}
	cfg := newConfig(options)

	s, start, actions, err := begin(p, AlphaBetaCutoffStrategy, cfg.metrics)
	if err != nil {
		return best, err
	}
	c := cutoffSearch[S, A]{search: s, cutoff: cutoffPly, heuristic: evaluate}

	value := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, action := range actions {
		v, err := c.cutoffMin(p.Transition(start, action), alpha, beta, 1)
		if err != nil {
			var zero A
			return zero, err
		}
		if i == 0 || v > value {
			value = v
			best = action
		}
		if v >= beta {
			s.prune(len(actions) - i - 1)
			break
		}
		alpha = max(alpha, v)
	}

	s.complete(AlphaBetaCutoffStrategy, len(actions), value)
	return best, nil
}

// leaf reports whether state ends the recursion at depth and its value if so.
func (c cutoffSearch[S, A]) leaf(state S, depth int) (float64, bool, error) {
	if c.problem.IsTerminal(state) {
		v, err := c.evaluate(state)
		return v, true, err
	}
	if depth == c.cutoff {
		c.metrics.AddHeuristic()
		return c.heuristic(state), true, nil
	}
	return 0, false, nil
}

func (c cutoffSearch[S, A]) cutoffMax(state S, alpha, beta float64, depth int) (float64, error) {
	if v, ok, err := c.leaf(state, depth); ok || err != nil {
		return v, err
	}
	actions, err := c.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(-1)
	for i, action := range actions {
		child, err := c.cutoffMin(c.problem.Transition(state, action), alpha, beta, depth+1)
		if err != nil {
			return 0, err
		}
		v = max(v, child)
		if v >= beta {
			c.prune(len(actions) - i - 1)
			return v, nil
		}
		alpha = max(alpha, v)
	}
	return v, nil
}

func (c cutoffSearch[S, A]) cutoffMin(state S, alpha, beta float64, depth int) (float64, error) {
	if v, ok, err := c.leaf(state, depth); ok || err != nil {
		return v, err
	}
	actions, err := c.expand(state)
	if err != nil {
		return 0, err
	}

	v := math.Inf(1)
	for i, action := range actions {
		child, err := c.cutoffMax(c.problem.Transition(state, action), alpha, beta, depth+1)
		if err != nil {
			return 0, err
		}
		v = min(v, child)
		if v <= alpha {
			c.prune(len(actions) - i - 1)
			return v, nil
		}
		beta = min(beta, v)
	}
	return v, nil
}
