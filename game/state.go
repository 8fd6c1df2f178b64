package game

import (
	"fmt"
	"strings"
)

// Board is the piece layout, indexed [row][col] with row 0 at the top.
type Board [Size][Size]Player

// GameState is a position plus the side to move. It is a plain value:
// transitions return a new GameState and never modify the receiver, and two
// states are equal exactly when == says so.
type GameState struct {
	Board Board
	Next  Player
}

// NewGameState returns the starting layout, Player1 along the top row and
// Player2 along the bottom, with starting to move.
func NewGameState(starting Player) GameState {
	if !starting.Valid() {
		panic(fmt.Sprintf("starting player must be Player1 or Player2, got %v", starting))
	}
	gs := GameState{Next: starting}
	for col := 0; col < Size; col++ {
		gs.Board[0][col] = Player1
		gs.Board[Size-1][col] = Player2
	}
	return gs
}

// Winner returns Player2 if the top row is all Player2, Player1 if the
// bottom row is all Player1, and NoWinner otherwise.
func (gs GameState) Winner() Player {
	if gs.rowFilledBy(0, Player2) {
		return Player2
	}
	if gs.rowFilledBy(Size-1, Player1) {
		return Player1
	}
	return NoWinner
}

func (gs GameState) IsFinal() bool {
	return gs.Winner() != NoWinner
}

func (gs GameState) rowFilledBy(row int, p Player) bool {
	for _, cell := range gs.Board[row] {
		if cell != p {
			return false
		}
	}
	return true
}

// ApplyMove steps the piece at (row, col) one cell in direction d. The move
// fails if it leaves the board, the origin is not a piece of the side to
// move, or the destination is taken. There are no captures.
func (gs GameState) ApplyMove(row, col int, d Direction) (GameState, error) {
	return gs.Play(Move{Row: row, Col: col, Direction: d})
}

func (gs GameState) Play(m Move) (GameState, error) {
	if !m.Direction.Valid() {
		return GameState{}, fmt.Errorf("%v: %w", m, ErrInvalidDirection)
	}
	if !onBoard(m.Row, m.Col) {
		return GameState{}, fmt.Errorf("%v: %w", m, ErrInvalidOrigin)
	}
	row, col := m.Destination()
	if !onBoard(row, col) {
		return GameState{}, fmt.Errorf("%v: %w", m, ErrInvalidDestination)
	}
	if gs.Board[m.Row][m.Col] != gs.Next {
		return GameState{}, fmt.Errorf("%v: %w", m, ErrWrongPiece)
	}
	if gs.Board[row][col] != Empty {
		return GameState{}, fmt.Errorf("%v: %w", m, ErrOccupied)
	}

	next := gs // Board is an array, so this copies every cell
	next.Board[row][col] = gs.Board[m.Row][m.Col]
	next.Board[m.Row][m.Col] = Empty
	next.Next = gs.Next.Opponent()
	return next, nil
}

// LegalMoves returns every move Play accepts, origins in row-major order and
// directions in enumeration order.
func (gs GameState) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.Board[row][col] != gs.Next {
				continue
			}
			for _, d := range Directions {
				m := Move{Row: row, Col: col, Direction: d}
				if _, err := gs.Play(m); err == nil {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Successors returns the distinct states reachable in one move. Order follows
// LegalMoves; when two moves lead to the same state only the first is kept.
func (gs GameState) Successors() []GameState {
	moves := gs.LegalMoves()
	seen := make(map[GameState]struct{}, len(moves))
	successors := make([]GameState, 0, len(moves))
	for _, m := range moves {
		next, _ := gs.Play(m)
		if _, dup := seen[next]; dup {
			continue
		}
		seen[next] = struct{}{}
		successors = append(successors, next)
	}
	return successors
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (gs GameState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Next: %d\n", gs.Next)
	for _, line := range gs.Board {
		cells := make([]string, len(line))
		for i, cell := range line {
			cells[i] = fmt.Sprint(int8(cell))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
