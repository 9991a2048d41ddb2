package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, rows ...string) *Board {
	t.Helper()

	b, err := Parse(rows...)
	require.NoError(t, err)
	return b
}

func empties(b *Board) int {
	n := 0
	for line := 0; line < b.Size(); line++ {
		for column := 0; column < b.Size(); column++ {
			if b.At(column, line) == Empty {
				n++
			}
		}
	}

	return n
}

func TestNew(t *testing.T) {
	for _, size := range []int{4, 6, 8, 10, 16} {
		b, err := New(size)
		require.NoError(t, err)

		assert.Equal(t, size, b.Size())
		assert.Equal(t, size*size-4, empties(b), "size %d", size)
		assert.Equal(t, 2, b.Count(Black))
		assert.Equal(t, 2, b.Count(White))
		assert.Equal(t, Undecided, b.Winner(), "size %d", size)

		h := size/2 - 1
		assert.Equal(t, White, b.At(h, h))
		assert.Equal(t, Black, b.At(h+1, h))
		assert.Equal(t, Black, b.At(h, h+1))
		assert.Equal(t, White, b.At(h+1, h+1))
	}
}

func TestNewSmallest(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	assert.Equal(t, 0, empties(b))
	assert.Equal(t, 2, b.Count(Black))
	assert.Equal(t, 2, b.Count(White))

	// A full board with equal counts is already decided.
	assert.Equal(t, Draw, b.Winner())
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, 7, -2} {
		b, err := New(size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
		assert.Nil(t, b)
	}
}

func TestOpeningPlacement(t *testing.T) {
	b, err := New(8)
	require.NoError(t, err)

	require.Equal(t, 2, b.Score(Black, 3, 2))
	require.True(t, b.TryPlace(Black, 3, 2))

	assert.Equal(t, Black, b.At(3, 2))
	assert.Equal(t, Black, b.At(3, 3))
	assert.Equal(t, 4, b.Count(Black))
	assert.Equal(t, 1, b.Count(White))
	assert.Equal(t, 64, b.Count(Black)+b.Count(White)+empties(b))
}

func TestTryPlaceIllegal(t *testing.T) {
	b, err := New(8)
	require.NoError(t, err)

	tests := []struct {
		name         string
		side         Side
		column, line int
	}{
		{"occupied", Black, 3, 3},
		{"occupied by self", Black, 4, 3},
		{"no capture", Black, 0, 0},
		{"adjacent without flank", Black, 2, 2},
		{"outside", Black, 8, 2},
		{"negative", White, -1, 4},
		{"empty side", Empty, 3, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := b.Clone()

			assert.Zero(t, b.Score(test.side, test.column, test.line))
			assert.False(t, b.TryPlace(test.side, test.column, test.line))
			assert.Equal(t, before, b)
		})
	}
}

func TestTryPlaceMultipleDirections(t *testing.T) {
	b := parse(t,
		"X...X...",
		".O..O...",
		"..O.O...",
		"...OOOOX",
		"X.O.....",
		".X......",
		"........",
		"........",
	)

	// (4, 4) captures upwards against (4, 0) and diagonally against (0, 0).
	black, white := b.Count(Black), b.Count(White)

	score := b.Score(Black, 4, 4)
	require.NotZero(t, score)
	require.True(t, b.TryPlace(Black, 4, 4))

	captured := score - 1
	assert.Equal(t, black+captured+1, b.Count(Black))
	assert.Equal(t, white-captured, b.Count(White))

	// up: (4,3) (4,2) (4,1) closed by (4,0)
	for line := 1; line <= 3; line++ {
		assert.Equal(t, Black, b.At(4, line), "line %d", line)
	}

	// up left: (3,3) (2,2) (1,1) closed by (0,0)
	for i := 1; i <= 3; i++ {
		assert.Equal(t, Black, b.At(4-i, 4-i), "diagonal %d", i)
	}

	// right of (4,3) is not a ray from (4,4); it stays white.
	assert.Equal(t, White, b.At(5, 3))
	assert.Equal(t, 6, captured)
}

func TestCountInvariant(t *testing.T) {
	for _, size := range []int{4, 6, 8} {
		b, err := New(size)
		require.NoError(t, err)

		side := Black
		for b.Winner() == Undecided {
			if placed := placeFirst(b, side); placed {
				assert.Equal(t, size*size, b.Count(Black)+b.Count(White)+empties(b))
			}

			side = side.Other()
		}
	}
}

func TestCanMoveAgreesWithTryPlace(t *testing.T) {
	b, err := New(8)
	require.NoError(t, err)

	side := Black
	for b.Winner() == Undecided {
		for _, s := range Sides {
			legal := false
			for line := 0; line < b.Size(); line++ {
				for column := 0; column < b.Size(); column++ {
					if b.Clone().TryPlace(s, column, line) {
						legal = true
					}
				}
			}

			assert.Equal(t, legal, b.CanMove(s))
		}

		placeFirst(b, side)
		side = side.Other()
	}
}

// placeFirst places a piece for side on its first legal cell in row-major
// order, reporting whether one was found.
func placeFirst(b *Board, side Side) bool {
	for line := 0; line < b.Size(); line++ {
		for column := 0; column < b.Size(); column++ {
			if b.TryPlace(side, column, line) {
				return true
			}
		}
	}

	return false
}

func TestWinnerByCount(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Outcome
	}{
		{"black majority", []string{"XXXX", "XXXX", "XXOO", "OOOO"}, BlackWins},
		{"white majority", []string{"OOOO", "OOOO", "OOXX", "XXXX"}, WhiteWins},
		{"draw", []string{"XXXX", "XXXX", "OOOO", "OOOO"}, Draw},
		{"blocked", []string{"X...", "....", "....", "...O"}, Draw},
		{"blocked majority", []string{"XX..", "....", "....", "...O"}, BlackWins},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := parse(t, test.rows...)
			require.False(t, b.CanMove(Black))
			require.False(t, b.CanMove(White))
			assert.Equal(t, test.want, b.Winner())
		})
	}
}

func TestWinnerElimination(t *testing.T) {
	b := parse(t,
		"XO..",
		"....",
		"....",
		"....",
	)
	require.True(t, b.CanMove(Black))
	require.False(t, b.CanMove(White))

	assert.Equal(t, Undecided, b.Winner())

	b.count[Black] = 0
	assert.Equal(t, WhiteWins, b.Winner())

	b.count[Black] = 1
	b.count[White] = 0
	assert.Equal(t, BlackWins, b.Winner())
}

func TestSnapshotRestore(t *testing.T) {
	b, err := New(6)
	require.NoError(t, err)

	before := b.Clone()
	snap := b.Snapshot()

	require.True(t, placeFirst(b, Black))
	require.True(t, placeFirst(b, White))
	require.NotEqual(t, before, b)

	b.Restore(snap)
	assert.Equal(t, before, b)
}

func TestRender(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	want := "" +
		"  1 2 3 4 \n" +
		"1 . . . . \n" +
		"2 . O X . \n" +
		"3 . X O . \n" +
		"4 . . . . \n"
	assert.Equal(t, want, b.String())
}

func TestRenderLarge(t *testing.T) {
	b, err := New(10)
	require.NoError(t, err)

	lines := splitLines(b.String())
	require.Len(t, lines, 12)

	assert.Equal(t, "   0 0 0 0 0 0 0 0 0 1 ", lines[0])
	assert.Equal(t, "   1 2 3 4 5 6 7 8 9 0 ", lines[1])
	assert.Equal(t, "01 . . . . . . . . . . ", lines[2])
	assert.Equal(t, "05 . . . . O X . . . . ", lines[6])
	assert.Equal(t, "10 . . . . . . . . . . ", lines[11])
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range s {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}

	return lines
}

func TestSide(t *testing.T) {
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, Empty, Empty.Other())

	assert.Equal(t, "X", Black.String())
	assert.Equal(t, "O", White.String())
	assert.Equal(t, ".", Empty.String())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, BlackWins, Wins(Black))
	assert.Equal(t, WhiteWins, Wins(White))
	assert.Equal(t, White, WhiteWins.Winner())
	assert.Equal(t, Empty, Draw.Winner())
	assert.Equal(t, "X wins", BlackWins.String())
}

func TestParse(t *testing.T) {
	b := parse(t,
		"X..O",
		".XO.",
		".OX.",
		"....",
	)

	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 3, b.Count(Black))
	assert.Equal(t, 3, b.Count(White))
	assert.Equal(t, White, b.At(3, 0))
	assert.Equal(t, Black, b.At(2, 2))

	_, err := Parse("X..", "...", "...")
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Parse("X...", "..", "....", "....")
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = Parse("X..Z", "....", "....", "....")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("X")
	require.NoError(t, err)
	assert.Equal(t, Black, side)

	side, err = ParseSide("O")
	require.NoError(t, err)
	assert.Equal(t, White, side)

	for _, bad := range []string{".", "", "XO", "x"} {
		_, err := ParseSide(bad)
		assert.Error(t, err, bad)
	}
}
