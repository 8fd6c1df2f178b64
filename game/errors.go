package game

import (
	"errors"
	"fmt"
)

// ErrMoveRejected is wrapped by every reason a move can be refused, so callers
// that only care whether a move went through can test for it alone.
var ErrMoveRejected = errors.New("move rejected")

var (
	ErrInvalidDirection   = fmt.Errorf("%w: unknown direction", ErrMoveRejected)
	ErrInvalidOrigin      = fmt.Errorf("%w: origin is off the board", ErrMoveRejected)
	ErrInvalidDestination = fmt.Errorf("%w: destination is off the board", ErrMoveRejected)
	ErrWrongPiece         = fmt.Errorf("%w: origin holds no piece of the side to move", ErrMoveRejected)
	ErrOccupied           = fmt.Errorf("%w: destination is occupied", ErrMoveRejected)
)
