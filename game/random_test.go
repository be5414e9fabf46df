package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// walk visits every node reachable from the start, with its depth.
func walk(d *DAG, visit func(s DAGState, depth int)) {
	var rec func(s DAGState, depth int)
	rec = func(s DAGState, depth int) {
		visit(s, depth)
		for _, a := range d.AvailableActions(s) {
			rec(d.Transition(s, a), depth+1)
		}
	}
	rec(d.StartState(), 0)
}

func TestRandomTree(t *testing.T) {
	t.Run("respecting depth and branching", func(t *testing.T) {
		cfg := DefaultTreeConfig
		cfg.Depth = 5
		cfg.Branching = 3

		for seed := uint64(1); seed <= 20; seed++ {
			d := RandomTree(rand.New(rand.NewSource(seed)), cfg)
			walk(d, func(s DAGState, depth int) {
				require.LessOrEqual(t, depth, cfg.Depth)
				require.LessOrEqual(t, len(d.AvailableActions(s)), cfg.Branching)
				if depth == cfg.Depth {
					require.True(t, d.IsTerminal(s), "Nodes at full depth should be leaves")
				}
			})
			require.False(t, d.IsTerminal(d.StartState()), "The root should never be a leaf")
		}
	})

	t.Run("alternating two players with zero-sum rewards", func(t *testing.T) {
		d := RandomTree(rand.New(rand.NewSource(7)), DefaultTreeConfig)

		walk(d, func(s DAGState, depth int) {
			require.Equal(t, Player(depth%2), s.PlayerToMove())
			if d.IsTerminal(s) {
				r := d.EvaluateState(s)
				require.Len(t, r, 2)
				require.Equal(t, 0.0, r[0]+r[1], "Rewards should cancel out")
				require.LessOrEqual(t, r[0], float64(DefaultTreeConfig.MaxReward))
				require.GreaterOrEqual(t, r[0], -float64(DefaultTreeConfig.MaxReward))
			}
		})
	})

	t.Run("giving every player a reward in general-sum games", func(t *testing.T) {
		cfg := TreeConfig{Depth: 3, Branching: 2, Players: 4, MaxReward: 3}
		d := RandomTree(rand.New(rand.NewSource(3)), cfg)

		walk(d, func(s DAGState, depth int) {
			require.Less(t, int(s.PlayerToMove()), cfg.Players)
			if d.IsTerminal(s) {
				require.Len(t, d.EvaluateState(s), cfg.Players)
			}
		})
	})

	t.Run("reproducing a tree from its seed", func(t *testing.T) {
		a := RandomTree(rand.New(rand.NewSource(11)), DefaultTreeConfig)
		b := RandomTree(rand.New(rand.NewSource(11)), DefaultTreeConfig)

		require.Equal(t, a, b)
	})

	t.Run("rejecting empty configurations", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))

		require.Panics(t, func() { RandomTree(r, TreeConfig{Depth: 2, Branching: 2}) })
		require.Panics(t, func() { RandomTree(r, TreeConfig{Players: 2, Branching: 2}) })
	})
}
