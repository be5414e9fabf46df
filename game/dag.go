package game

import (
	"fmt"
	"slices"
)

// DAGState is a position in a DAG game: a node id and the player to move there.
type DAGState struct {
	ID     int
	Player Player
}

func (s DAGState) PlayerToMove() Player {
	return s.Player
}

type dagNode struct {
	player   Player
	children []int
	rewards  Rewards // nil for non-terminal nodes
}

// DAG is a game given explicitly as a directed acyclic graph. Actions are the
// ids of the child nodes. A node without children is terminal.
type DAG struct {
	start int
	nodes []dagNode
}

// NewDAG returns an empty DAG. The first node added becomes the start state
// unless SetStart is called.
func NewDAG() *DAG {
	return &DAG{}
}

// AddNode adds a decision node where player moves and returns its id.
func (d *DAG) AddNode(player Player) int {
	d.nodes = append(d.nodes, dagNode{player: player})
	return len(d.nodes) - 1
}

// AddTerminal adds a leaf carrying rewards and returns its id. The player to
// move at a leaf only matters to searchers that inspect it.
func (d *DAG) AddTerminal(player Player, rewards Rewards) int {
	d.nodes = append(d.nodes, dagNode{player: player, rewards: rewards})
	return len(d.nodes) - 1
}

// AddEdge makes to reachable from from. Edges keep insertion order, which is
// the order AvailableActions reports them in.
func (d *DAG) AddEdge(from, to int) {
	d.mustExist(from)
	d.mustExist(to)
	if d.nodes[from].rewards != nil {
		panic(fmt.Sprintf("node %d is terminal", from))
	}
	if from == to {
		panic(fmt.Sprintf("self loop on node %d", from))
	}
	d.nodes[from].children = append(d.nodes[from].children, to)
}

func (d *DAG) SetStart(id int) {
	d.mustExist(id)
	d.start = id
}

func (d *DAG) Len() int {
	return len(d.nodes)
}

func (d *DAG) StartState() DAGState {
	return d.state(d.start)
}

func (d *DAG) AvailableActions(state DAGState) []int {
	return slices.Clone(d.nodes[state.ID].children)
}

func (d *DAG) Transition(state DAGState, action int) DAGState {
	if !slices.Contains(d.nodes[state.ID].children, action) {
		panic(fmt.Sprintf("illegal action %d from node %d", action, state.ID))
	}
	return d.state(action)
}

func (d *DAG) IsTerminal(state DAGState) bool {
	return len(d.nodes[state.ID].children) == 0
}

func (d *DAG) EvaluateState(state DAGState) Rewards {
	node := d.nodes[state.ID]
	if len(node.children) > 0 {
		panic(fmt.Sprintf("node %d is not terminal", state.ID))
	}
	return node.rewards
}

func (d *DAG) state(id int) DAGState {
	d.mustExist(id)
	return DAGState{ID: id, Player: d.nodes[id].player}
}

func (d *DAG) mustExist(id int) {
	if id < 0 || id >= len(d.nodes) {
		panic(fmt.Sprintf("unknown node %d", id))
	}
}
