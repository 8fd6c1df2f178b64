package game

// EvaluateAdvancement sums how far Player1's pieces have advanced toward the
// bottom row and subtracts how far Player2's pieces have advanced toward the
// top. It does not look at whether the game is over.
func EvaluateAdvancement(gs GameState) int {
	score := 0
	for row, line := range gs.Board {
		for _, cell := range line {
			switch cell {
			case Player1:
				score += row
			case Player2:
				score -= (Size - 1) - row
			}
		}
	}
	return score
}

func (gs GameState) Evaluate() int {
	return EvaluateAdvancement(gs)
}
