package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting one search", func(t *testing.T) {
		c := NewCollector()
		c.Start(AlphaBetaStrategy)
		c.AddNode()
		c.AddNode()
		c.AddTerminal()
		c.AddHeuristic()
		c.AddPrune()

		got := c.Complete(2.5)

		require.Equal(t, AlphaBetaStrategy, got.Strategy)
		require.Equal(t, int64(2), got.Nodes)
		require.Equal(t, int64(1), got.Terminals)
		require.Equal(t, int64(1), got.Heuristics)
		require.Equal(t, int64(1), got.Prunes)
		require.Equal(t, 2.5, got.Value)
		require.False(t, got.StartTime.IsZero(), "Start should stamp the start time")
		require.Equal(t, got, c.Metric(), "Metric should return the last completed search")
	})

	t.Run("resetting counters between searches", func(t *testing.T) {
		dag, _, _ := textbookTree()
		c := NewCollector()

		_, err := Minimax(dag, WithMetrics(c))
		require.NoError(t, err)
		_, err = AlphaBeta(dag, WithMetrics(c))
		require.NoError(t, err)

		require.Equal(t, AlphaBetaStrategy, c.Metric().Strategy)
		require.Equal(t, int64(3), c.Metric().Terminals, "Counts from the minimax run should not leak")
	})

	t.Run("ignoring everything in the dummy collector", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(MinimaxStrategy)
		c.AddTerminal()

		require.Equal(t, SearchMetric{}, c.Complete(1))
		require.Equal(t, SearchMetric{}, c.Metric())
	})

	t.Run("keeping the default collector when given nil", func(t *testing.T) {
		cfg := newConfig([]Option{WithMetrics(nil)})

		require.NotNil(t, cfg.metrics)
		require.Equal(t, MaxN, cfg.opponents)
	})
}
