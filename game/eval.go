package game

const openLines = float64(len(lines) * 2)

// EvaluateLines scores a tic-tac-toe position between -1 and 1 from player's
// perspective: every line still open to one side counts once per mark that
// side has in it.
func EvaluateLines(player Player) Evaluate[TicTacToeState] {
	own := markOf(player)
	return func(s TicTacToeState) float64 {
		score := 0.0
		for _, line := range lines {
			mine, theirs := 0, 0
			for _, i := range line {
				switch s.Board[i] {
				case empty:
				case own:
					mine++
				default:
					theirs++
				}
			}
			if theirs == 0 {
				score += float64(mine)
			}
			if mine == 0 {
				score -= float64(theirs)
			}
		}
		return clamp(score / openLines)
	}
}

// EvaluateCenter prefers holding the centre, then corners. It is a weaker
// heuristic than EvaluateLines.
func EvaluateCenter(player Player) Evaluate[TicTacToeState] {
	own := markOf(player)
	weights := [9]float64{0.5, 0.25, 0.5, 0.25, 1, 0.25, 0.5, 0.25, 0.5}
	return func(s TicTacToeState) float64 {
		score := 0.0
		for i, c := range s.Board {
			switch c {
			case empty:
			case own:
				score += weights[i]
			default:
				score -= weights[i]
			}
		}
		return clamp(score / 3)
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// MeanReward scores a DAG state by player's expected reward when every move
// from it is picked uniformly at random. Results are memoized, so the returned
// function must not be shared between goroutines.
func MeanReward(d *DAG, player Player) Evaluate[DAGState] {
	memo := make(map[int]float64)
	var mean func(id int) float64
	mean = func(id int) float64 {
		if v, ok := memo[id]; ok {
			return v
		}
		node := d.nodes[id]
		v := node.rewards[player]
		if len(node.children) > 0 {
			v = 0
			for _, child := range node.children {
				v += mean(child)
			}
			v /= float64(len(node.children))
		}
		memo[id] = v
		return v
	}
	return func(s DAGState) float64 {
		return mean(s.ID)
	}
}
