package game

import (
	"golang.org/x/exp/rand"
)

// TreeConfig shapes the trees built by RandomTree.
type TreeConfig struct {
	Depth       int     // Plies from the root to the deepest leaf
	Branching   int     // Maximum children per decision node
	Players     int     // Number of players, at least 1
	ConstantSum bool    // Rewards of every leaf sum to zero
	Alternate   bool    // Players move in turn; otherwise the mover is random
	LeafChance  float64 // Chance that an interior node below the root is a leaf
	MaxReward   int     // Rewards are integers in [-MaxReward, MaxReward]
}

// DefaultTreeConfig is a small two-player zero-sum game.
var DefaultTreeConfig = TreeConfig{
	Depth:       4,
	Branching:   3,
	Players:     2,
	ConstantSum: true,
	Alternate:   true,
	LeafChance:  0.1,
	MaxReward:   10,
}

// RandomTree builds a random game tree. The same source seed always yields the
// same tree.
func RandomTree(r *rand.Rand, cfg TreeConfig) *DAG {
	if cfg.Players < 1 {
		panic("need at least one player")
	}
	if cfg.Depth < 1 || cfg.Branching < 1 {
		panic("depth and branching must be positive")
	}

	g := &treeGenerator{r: r, cfg: cfg, dag: NewDAG()}
	g.grow(0, 0)
	return g.dag
}

type treeGenerator struct {
	r   *rand.Rand
	cfg TreeConfig
	dag *DAG
}

func (g *treeGenerator) grow(depth int, player Player) int {
	if depth == g.cfg.Depth || (depth > 0 && g.r.Float64() < g.cfg.LeafChance) {
		return g.dag.AddTerminal(player, g.rewards())
	}

	id := g.dag.AddNode(player)
	children := 1 + g.r.Intn(g.cfg.Branching)
	for i := 0; i < children; i++ {
		child := g.grow(depth+1, g.next(player))
		g.dag.AddEdge(id, child)
	}
	return id
}

func (g *treeGenerator) next(player Player) Player {
	if g.cfg.Alternate {
		return (player + 1) % Player(g.cfg.Players)
	}
	return Player(g.r.Intn(g.cfg.Players))
}

func (g *treeGenerator) rewards() Rewards {
	rewards := make(Rewards, g.cfg.Players)
	sum := 0.0
	for p := 0; p < g.cfg.Players; p++ {
		if g.cfg.ConstantSum && p == g.cfg.Players-1 && p > 0 {
			rewards[Player(p)] = -sum
			break
		}
		v := float64(g.r.Intn(2*g.cfg.MaxReward+1) - g.cfg.MaxReward)
		rewards[Player(p)] = v
		sum += v
	}
	return rewards
}
