package searcher

import (
	"adversarial/game"

	"golang.org/x/exp/rand"
)

type mockState struct {
	id     int
	player game.Player
}

func (m mockState) PlayerToMove() game.Player {
	return m.player
}

// mockProblem is a hand-wired game used to break the Problem contract on
// purpose: terminal flags, actions and rewards are looked up by state id.
type mockProblem struct {
	players  map[int]game.Player
	actions  map[int][]int
	terminal map[int]bool
	rewards  map[int]game.Rewards
}

func (m mockProblem) StartState() mockState {
	return m.state(0)
}

func (m mockProblem) AvailableActions(state mockState) []int {
	return m.actions[state.id]
}

func (m mockProblem) Transition(state mockState, action int) mockState {
	return m.state(action)
}

func (m mockProblem) IsTerminal(state mockState) bool {
	return m.terminal[state.id]
}

func (m mockProblem) EvaluateState(state mockState) game.Rewards {
	return m.rewards[state.id]
}

func (m mockProblem) state(id int) mockState {
	return mockState{id: id, player: m.players[id]}
}

// zeroSum returns two-player rewards worth v to player 0.
func zeroSum(v float64) game.Rewards {
	return game.Rewards{0: v, 1: -v}
}

// addLeaves hangs one zero-sum leaf per value under parent.
func addLeaves(d *game.DAG, parent int, values ...float64) []int {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		leaf := d.AddTerminal(0, zeroSum(v))
		d.AddEdge(parent, leaf)
		ids = append(ids, leaf)
	}
	return ids
}

// textbookTree is the depth-2 game where the root player chooses between min
// nodes with leaves {3, 5} and {1, 9}.
func textbookTree() (dag *game.DAG, left, right int) {
	dag = game.NewDAG()
	root := dag.AddNode(0)
	left = dag.AddNode(1)
	right = dag.AddNode(1)
	dag.AddEdge(root, left)
	dag.AddEdge(root, right)
	addLeaves(dag, left, 3, 5)
	addLeaves(dag, right, 1, 9)
	return dag, left, right
}

func randomZeroSumTree(seed uint64) *game.DAG {
	r := rand.New(rand.NewSource(seed))
	cfg := game.DefaultTreeConfig
	cfg.Depth = 5
	cfg.Branching = 4
	cfg.LeafChance = 0.15
	return game.RandomTree(r, cfg)
}
