package game

// Player identifies whose turn it is and whose reward is being evaluated.
type Player int

// Rewards maps each player to their payoff at a terminal state.
type Rewards map[Player]float64

// State is an opaque game position. Implementations should be immutable:
// Problem.Transition always returns a new value.
type State interface {
	PlayerToMove() Player
}

// Problem describes a finite, deterministic game to the searcher package.
//
// AvailableActions must be non-empty for every non-terminal state, and every
// path from the start state must reach a terminal state. EvaluateState is only
// defined for terminal states.
type Problem[S State, A any] interface {
	StartState() S
	AvailableActions(state S) []A
	Transition(state S, action A) S
	IsTerminal(state S) bool
	EvaluateState(state S) Rewards
}

// Evaluate scores a non-terminal state from the perspective of the player
// that started the search. Higher is better.
type Evaluate[S State] func(S) float64
