package engine

import (
	"errors"

	"adversarial/game"
	"adversarial/searcher"
)

const MaxMoves = 10000

var (
	ErrNoAgent       = errors.New("no agent for player")
	ErrTooManyMoves  = errors.New("game did not end within the move limit")
	ErrIllegalAction = errors.New("agent chose an action that is not available")
)

// Agent chooses the action for the player to move at p's start state.
type Agent[S game.State, A any] interface {
	FindMove(p game.Problem[S, A]) (A, error)
}

// AgentFunc adapts a search function to Agent.
type AgentFunc[S game.State, A any] func(p game.Problem[S, A]) (A, error)

func (f AgentFunc[S, A]) FindMove(p game.Problem[S, A]) (A, error) {
	return f(p)
}

func MinimaxAgent[S game.State, A any](options ...searcher.Option) Agent[S, A] {
	return AgentFunc[S, A](func(p game.Problem[S, A]) (A, error) {
		return searcher.Minimax(p, options...)
	})
}

func AlphaBetaAgent[S game.State, A any](options ...searcher.Option) Agent[S, A] {
	return AgentFunc[S, A](func(p game.Problem[S, A]) (A, error) {
		return searcher.AlphaBeta(p, options...)
	})
}

// CutoffAgent searches cutoffPly plies and scores the frontier with the
// evaluation function built for the player to move.
func CutoffAgent[S game.State, A any](cutoffPly int, evaluate func(game.Player) game.Evaluate[S], options ...searcher.Option) Agent[S, A] {
	return AgentFunc[S, A](func(p game.Problem[S, A]) (A, error) {
		player := p.StartState().PlayerToMove()
		return searcher.AlphaBetaCutoff(p, cutoffPly, evaluate(player), options...)
	})
}

func GeneralMinimaxAgent[S game.State, A any](options ...searcher.Option) Agent[S, A] {
	return AgentFunc[S, A](func(p game.Problem[S, A]) (A, error) {
		return searcher.GeneralMinimax(p, options...)
	})
}

// FirstActionAgent always plays the first available action.
func FirstActionAgent[S game.State, A any]() Agent[S, A] {
	return AgentFunc[S, A](func(p game.Problem[S, A]) (A, error) {
		actions := p.AvailableActions(p.StartState())
		if len(actions) == 0 {
			var zero A
			return zero, searcher.ErrNoAction
		}
		return actions[0], nil
	})
}
