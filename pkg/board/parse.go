package board

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is returned by Parse when a row has the wrong length
// or contains an unknown symbol.
var ErrInvalidPosition = errors.New("board: invalid position")

// Parse builds a board from its rows, top to bottom, written with the
// symbols of the sides (X, O, and . for empty cells). The piece counters
// are set from the pieces found on the board.
func Parse(rows ...string) (*Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}

	b.count = [SideN]int{}
	for line, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPosition, line+1, len(row), b.size)
		}

		for column := 0; column < b.size; column++ {
			side, ok := parseSymbol(row[column])
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q in row %d", ErrInvalidPosition, row[column], line+1)
			}

			b.grid[line][column] = side
			if side != Empty {
				b.count[side]++
			}
		}
	}

	return b, nil
}

// ParseSide returns the side represented by the given symbol.
func ParseSide(symbol string) (Side, error) {
	if len(symbol) == 1 {
		if side, ok := parseSymbol(symbol[0]); ok && side != Empty {
			return side, nil
		}
	}

	return Empty, fmt.Errorf("board: invalid side %q", symbol)
}

func parseSymbol(symbol byte) (Side, bool) {
	for side := Side(0); side < SideN; side++ {
		if symbols[side] == symbol {
			return side, true
		}
	}

	return Empty, false
}
