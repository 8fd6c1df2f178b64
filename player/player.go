package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"rowrace/experiments/metrics"
	"rowrace/game"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	promptMessage       = "Input a move (row, col, dir) (e.g. 0 2 NE)"
	tokenCountMessage   = "Expected three values: row col dir"
	notNumberMessage    = "Row/col is not number (did you mistype?)"
	badDirectionMessage = "Dir is not in {N, NE, E, SE, S, SW, W, NW}"
	rejectedMoveMessage = "Move is invalid (out of bounds / over another piece?)"
)

var (
	ErrTokenCount = errors.New("expected row, col and dir")
	ErrNotNumber  = errors.New("row/col is not a number")
)

// Console is a human player typing moves on a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove prints the position and reads lines until one holds a legal move.
func (c *Console) FindMove(state game.GameState) (game.GameState, metrics.SearchMetric, error) {
	for {
		fmt.Fprintln(c.out, state.String())
		fmt.Fprintln(c.out, promptMessage)

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return game.GameState{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.GameState{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.EOF)
		}

		move, err := ParseMove(c.in.Text())
		if err != nil {
			fmt.Fprintln(c.out, describe(err))
			continue
		}

		next, err := state.Play(move)
		if err != nil {
			log.Debug().Err(err).Msg("rejected console move")
			fmt.Fprintln(c.out, rejectedMoveMessage)
			continue
		}
		return next, metrics.SearchMetric{}, nil
	}
}

// ParseMove reads "row col dir", e.g. "0 2 NE".
func ParseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Move{}, fmt.Errorf("%w: got %d values", ErrTokenCount, len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("%q: %w", fields[0], ErrNotNumber)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("%q: %w", fields[1], ErrNotNumber)
	}
	dir, err := game.ParseDirection(fields[2])
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{Row: row, Col: col, Direction: dir}, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, ErrNotNumber):
		return notNumberMessage
	case errors.Is(err, game.ErrInvalidDirection):
		return badDirectionMessage
	default:
		return tokenCountMessage
	}
}
