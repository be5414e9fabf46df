package engine

import (
	"fmt"
	"slices"

	"adversarial/game"

	"github.com/rs/zerolog/log"
)

// Engine plays a game to the end, asking each player's agent for a move.
type Engine[S game.State, A comparable] struct {
	problem game.Problem[S, A]
	agents  map[game.Player]Agent[S, A]
}

// Result is a finished game.
type Result[S game.State, A comparable] struct {
	Final   S
	Moves   []A
	Rewards game.Rewards
}

// rooted is problem with its start state moved to the current position, so
// every agent searches from where the game actually is.
type rooted[S game.State, A any] struct {
	game.Problem[S, A]
	start S
}

func (r rooted[S, A]) StartState() S {
	return r.start
}

func LocalEngine[S game.State, A comparable](problem game.Problem[S, A], agents map[game.Player]Agent[S, A]) *Engine[S, A] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Engine[S, A]{
		problem: problem,
		agents:  agents,
	}
}

// Run plays from the problem's start state until a terminal state.
func (e *Engine[S, A]) Run() (Result[S, A], error) {
	state := e.problem.StartState()
	result := Result[S, A]{}

	log.Info().Msgf("player %d is starting", state.PlayerToMove())

	for !e.problem.IsTerminal(state) {
		if len(result.Moves) >= MaxMoves {
			return result, ErrTooManyMoves
		}

		player := state.PlayerToMove()
		agent, ok := e.agents[player]
		if !ok {
			return result, fmt.Errorf("%w %d", ErrNoAgent, player)
		}

		move, err := agent.FindMove(rooted[S, A]{Problem: e.problem, start: state})
		if err != nil {
			return result, fmt.Errorf("player %d: %w", player, err)
		}
		if !slices.Contains(e.problem.AvailableActions(state), move) {
			return result, fmt.Errorf("%w: player %d chose %v", ErrIllegalAction, player, move)
		}

		log.Debug().Msgf("player %d chose move %v", player, move)
		state = e.problem.Transition(state, move)
		result.Moves = append(result.Moves, move)
	}

	result.Final = state
	result.Rewards = e.problem.EvaluateState(state)
	log.Info().Msgf("game over after %d moves with rewards %v", len(result.Moves), result.Rewards)
	return result, nil
}
