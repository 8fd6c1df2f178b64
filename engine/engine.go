package engine

import "errors"

var ErrIllegalMove = errors.New("illegal move: agent returned a state that is not a successor")
