package game

import (
	"errors"
	"fmt"
	"strings"
)

// Tic-tac-toe players. X always moves first from an empty board.
const (
	X Player = 0
	O Player = 1
)

const (
	empty cell = iota
	markX
	markO
)

var ErrInvalidBoard = errors.New("invalid tic-tac-toe board")

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6},            // diagonals
}

type cell int8

// TicTacToeState is a board and the player to move. Cells are indexed 0-8 row
// by row.
type TicTacToeState struct {
	Board  [9]cell
	Player Player
}

func (s TicTacToeState) PlayerToMove() Player {
	return s.Player
}

// Winner returns the player owning a full line, if any.
func (s TicTacToeState) Winner() (Player, bool) {
	for _, line := range lines {
		c := s.Board[line[0]]
		if c != empty && c == s.Board[line[1]] && c == s.Board[line[2]] {
			return c.player(), true
		}
	}
	return 0, false
}

func (s TicTacToeState) full() bool {
	for _, c := range s.Board {
		if c == empty {
			return false
		}
	}
	return true
}

func (s TicTacToeState) String() string {
	var b strings.Builder
	for i, c := range s.Board {
		switch c {
		case markX:
			b.WriteByte('X')
		case markO:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if i%3 == 2 && i < 8 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func (c cell) player() Player {
	if c == markO {
		return O
	}
	return X
}

func markOf(p Player) cell {
	if p == O {
		return markO
	}
	return markX
}

// TicTacToe is the zero-sum game: a win is worth 1, a loss -1 and a draw 0.
type TicTacToe struct {
	start TicTacToeState
}

func NewTicTacToe() *TicTacToe {
	return &TicTacToe{start: TicTacToeState{Player: X}}
}

// ParseTicTacToe starts a game from a board written as nine cells of 'X', 'O'
// or '.', optionally split into rows by '/'. The player to move is derived
// from the mark counts.
func ParseTicTacToe(board string) (*TicTacToe, error) {
	board = strings.ReplaceAll(board, "/", "")
	if len(board) != 9 {
		return nil, fmt.Errorf("%w: expected 9 cells, got %d", ErrInvalidBoard, len(board))
	}

	var state TicTacToeState
	xs, os := 0, 0
	for i, r := range board {
		switch r {
		case 'X', 'x':
			state.Board[i] = markX
			xs++
		case 'O', 'o':
			state.Board[i] = markO
			os++
		case '.':
		default:
			return nil, fmt.Errorf("%w: unexpected cell %q", ErrInvalidBoard, r)
		}
	}

	switch xs - os {
	case 0:
		state.Player = X
	case 1:
		state.Player = O
	default:
		return nil, fmt.Errorf("%w: %d X marks and %d O marks", ErrInvalidBoard, xs, os)
	}
	return &TicTacToe{start: state}, nil
}

func (t *TicTacToe) StartState() TicTacToeState {
	return t.start
}

func (t *TicTacToe) AvailableActions(state TicTacToeState) []int {
	if t.IsTerminal(state) {
		return nil
	}
	actions := make([]int, 0, 9)
	for i, c := range state.Board {
		if c == empty {
			actions = append(actions, i)
		}
	}
	return actions
}

func (t *TicTacToe) Transition(state TicTacToeState, action int) TicTacToeState {
	if action < 0 || action > 8 || state.Board[action] != empty {
		panic(fmt.Sprintf("illegal move %d on %s", action, state))
	}
	state.Board[action] = markOf(state.Player)
	state.Player = 1 - state.Player
	return state
}

func (t *TicTacToe) IsTerminal(state TicTacToeState) bool {
	if _, ok := state.Winner(); ok {
		return true
	}
	return state.full()
}

func (t *TicTacToe) EvaluateState(state TicTacToeState) Rewards {
	winner, ok := state.Winner()
	if !ok {
		if !state.full() {
			panic(fmt.Sprintf("state %s is not terminal", state))
		}
		return Rewards{X: 0, O: 0}
	}
	return Rewards{winner: 1, 1 - winner: -1}
}
