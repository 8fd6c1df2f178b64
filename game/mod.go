package game

import "fmt"

// Size is the width and height of the board.
const Size = 4

// Player identifies a side, and doubles as the content of a board cell.
type Player int8

const (
	Empty Player = iota
	Player1
	Player2
)

// NoWinner is reported by non-terminal states.
const NoWinner = Empty

// DefaultStarting is the side that moves first when none is given.
const DefaultStarting = Player2

// Opponent returns the other side. Only meaningful for Player1 and Player2.
func (p Player) Opponent() Player {
	return 3 - p
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return fmt.Sprintf("Player(%d)", int8(p))
	}
}

// Evaluate scores a state from Player1's perspective: positive favors
// Player1, negative favors Player2.
type Evaluate func(GameState) int
