package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTicTacToe(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		player Player
		err    bool
	}{
		{name: "empty board", board: ".........", player: X},
		{name: "rows separated by slashes", board: "X../.O./...", player: X},
		{name: "O to move", board: "X../.../...", player: O},
		{name: "lower case marks", board: "x../.o./..x", player: O},
		{name: "too short", board: "X..", err: true},
		{name: "unknown cell", board: "X?./.../...", err: true},
		{name: "too many O marks", board: "OO./.../...", err: true},
		{name: "too many X marks", board: "XXX/O../...", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTicTacToe(tt.board)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidBoard)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.player, got.StartState().PlayerToMove())
		})
	}
}

func TestTicTacToe(t *testing.T) {
	t.Run("starting with X on an empty board", func(t *testing.T) {
		g := NewTicTacToe()
		start := g.StartState()

		require.Equal(t, X, start.PlayerToMove())
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, g.AvailableActions(start))
		require.Equal(t, ".../.../...", start.String())
	})

	t.Run("alternating marks", func(t *testing.T) {
		g := NewTicTacToe()
		s := g.Transition(g.StartState(), 4)
		s = g.Transition(s, 0)

		require.Equal(t, "O../.X./...", s.String())
		require.Equal(t, X, s.PlayerToMove())
		require.NotContains(t, g.AvailableActions(s), 4)
	})

	t.Run("rewarding a completed line", func(t *testing.T) {
		g, err := ParseTicTacToe("XX./OO./...")
		require.NoError(t, err)

		end := g.Transition(g.StartState(), 2)

		require.True(t, g.IsTerminal(end))
		require.Empty(t, g.AvailableActions(end))
		winner, ok := end.Winner()
		require.True(t, ok)
		require.Equal(t, X, winner)
		require.Equal(t, Rewards{X: 1, O: -1}, g.EvaluateState(end))
	})

	t.Run("scoring a full board without a line as a draw", func(t *testing.T) {
		g, err := ParseTicTacToe("XOX/XOO/OXX")
		require.NoError(t, err)

		require.True(t, g.IsTerminal(g.StartState()))
		require.Equal(t, Rewards{X: 0, O: 0}, g.EvaluateState(g.StartState()))
	})

	t.Run("panicking on misuse", func(t *testing.T) {
		g := NewTicTacToe()
		s := g.Transition(g.StartState(), 4)

		require.Panics(t, func() { g.Transition(s, 4) }, "Should panic on an occupied cell")
		require.Panics(t, func() { g.Transition(s, 9) }, "Should panic on an off-board cell")
		require.Panics(t, func() { g.EvaluateState(s) }, "Should panic on evaluating an open game")
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("preferring open lines", func(t *testing.T) {
		g, err := ParseTicTacToe("XX./O../O..")
		require.NoError(t, err)
		s := g.StartState()

		forX := EvaluateLines(X)(s)
		forO := EvaluateLines(O)(s)

		require.Equal(t, -forX, forO, "The heuristic should be symmetric")
		require.Greater(t, forX, 0.0, "X's open pair should outweigh O's single marks")
	})

	t.Run("staying within bounds", func(t *testing.T) {
		g := NewTicTacToe()
		for _, evaluate := range []Evaluate[TicTacToeState]{EvaluateLines(X), EvaluateCenter(X)} {
			s := g.StartState()
			require.Equal(t, 0.0, evaluate(s), "An empty board is even")
			for _, cell := range []int{4, 0, 8, 2, 6} {
				s = g.Transition(s, cell)
				v := evaluate(s)
				require.LessOrEqual(t, v, 1.0)
				require.GreaterOrEqual(t, v, -1.0)
			}
		}
	})

	t.Run("valuing the centre", func(t *testing.T) {
		g := NewTicTacToe()
		center := g.Transition(g.StartState(), 4)
		edge := g.Transition(g.StartState(), 1)

		require.Greater(t, EvaluateCenter(X)(center), EvaluateCenter(X)(edge))
		require.Greater(t, EvaluateLines(X)(center), EvaluateLines(X)(edge))
	})
}

func TestMeanReward(t *testing.T) {
	d := NewDAG()
	root := d.AddNode(0)
	mid := d.AddNode(1)
	d.AddEdge(root, mid)
	d.AddEdge(root, d.AddTerminal(1, Rewards{0: 4, 1: -4}))
	d.AddEdge(mid, d.AddTerminal(0, Rewards{0: 1, 1: -1}))
	d.AddEdge(mid, d.AddTerminal(0, Rewards{0: 3, 1: -3}))

	evaluate := MeanReward(d, 0)

	require.Equal(t, 2.0, evaluate(d.Transition(d.StartState(), mid)))
	require.Equal(t, 3.0, evaluate(d.StartState()), "The root averages its children, not its leaves")
	require.Equal(t, -3.0, MeanReward(d, 1)(d.StartState()))
}
