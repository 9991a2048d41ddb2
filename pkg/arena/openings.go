package arena

import (
	"math/rand"

	"laptudirm.com/x/othello/pkg/board"
)

// Opening builds the starting position of a game pair by playing the given
// number of random legal placements from the initial position. Both games
// of a pair use the same seed, so they start from the same position. It
// returns the board and the side to play next.
func Opening(size, plies int, seed int64) (*board.Board, board.Side, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, board.Empty, err
	}

	rng := rand.New(rand.NewSource(seed))
	side := board.Black

	for ply := 0; ply < plies && b.Winner() == board.Undecided; ply++ {
		cells := legal(b, side)
		if len(cells) == 0 {
			side = side.Other()
			continue
		}

		cell := cells[rng.Intn(len(cells))]
		b.TryPlace(side, cell.column, cell.line)
		side = side.Other()
	}

	return b, side, nil
}

type cell struct {
	column, line int
}

func legal(b *board.Board, side board.Side) []cell {
	var cells []cell
	for line := 0; line < b.Size(); line++ {
		for column := 0; column < b.Size(); column++ {
			if b.Score(side, column, line) != 0 {
				cells = append(cells, cell{column, line})
			}
		}
	}

	return cells
}
