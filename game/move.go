package game

import "fmt"

// Move names a piece by its origin cell and the direction it steps in. The
// destination is derived from the state the move is played on.
type Move struct {
	Row       int
	Col       int
	Direction Direction
}

// Destination returns the cell the move lands on, which may be off the board.
func (m Move) Destination() (row, col int) {
	dr, dc := m.Direction.Offset()
	return m.Row + dr, m.Col + dc
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d %s", m.Row, m.Col, m.Direction)
}
