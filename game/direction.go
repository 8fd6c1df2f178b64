package game

import (
	"fmt"
	"strings"
)

// Direction is one of the 8 compass steps a piece can take.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists every direction in enumeration order.
var Directions = [...]Direction{N, NE, E, SE, S, SW, W, NW}

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Row and column offsets, indexed by Direction. Row 0 is the top.
var directionOffsets = [...][2]int{
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
}

func (d Direction) Valid() bool {
	return d >= N && d <= NW
}

// Offset returns the row and column deltas of d. It panics on an invalid
// direction; use Valid first for untrusted values.
func (d Direction) Offset() (dr, dc int) {
	if !d.Valid() {
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a compass token such as "NE" to its Direction.
func ParseDirection(token string) (Direction, error) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	for i, name := range directionNames {
		if name == upper {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", token, ErrInvalidDirection)
}
