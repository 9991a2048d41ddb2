// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements an Othello board of any even size along with
// the rules for validating and applying placements.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by New when the requested board size is not
// a positive even number.
var ErrInvalidSize = errors.New("board: invalid size")

// directions is the order in which the eight rays starting from a target
// cell are scanned, as {column, line} steps.
var directions = [8]struct{ column, line int }{
	{+1, +0}, // right
	{+1, -1}, // up right
	{+0, -1}, // up
	{-1, -1}, // up left
	{-1, +0}, // left
	{-1, +1}, // down left
	{+0, +1}, // down
	{+1, +1}, // down right
}

// Board is a square Othello board. The piece counters of both sides are
// kept alongside the grid and are updated with every placement, so they
// are never recomputed by scanning the board.
type Board struct {
	size  int
	grid  [][]Side // grid[line][column]
	count [SideN]int
}

// New creates a size×size board with the four starting pieces placed at
// its centre. The size must be even and greater than zero.
func New(size int) (*Board, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	b := &Board{
		size: size,
		grid: make([][]Side, size),
	}

	for line := range b.grid {
		b.grid[line] = make([]Side, size)
	}

	h := size/2 - 1
	b.grid[h][h] = White
	b.grid[h][h+1] = Black
	b.grid[h+1][h] = Black
	b.grid[h+1][h+1] = White

	b.count[Black] = 2
	b.count[White] = 2

	return b, nil
}

// Size returns the width (and height) of the board.
func (b *Board) Size() int {
	return b.size
}

// At returns the content of the given cell. Cells outside the board
// are reported as Empty.
func (b *Board) At(column, line int) Side {
	if !b.inside(column, line) {
		return Empty
	}

	return b.grid[line][column]
}

// Count returns the number of pieces owned by the given side.
func (b *Board) Count(side Side) int {
	if side != Black && side != White {
		return 0
	}

	return b.count[side]
}

// CanMove reports whether the given side has at least one legal placement.
func (b *Board) CanMove(side Side) bool {
	for line := 0; line < b.size; line++ {
		for column := 0; column < b.size; column++ {
			if b.Score(side, column, line) != 0 {
				return true
			}
		}
	}

	return false
}

// Score returns the number of pieces the given side would win by placing a
// piece at the given cell: every captured piece plus the placed one. It
// returns 0 if the placement is illegal. The board is not modified.
func (b *Board) Score(side Side, column, line int) int {
	if !b.placeable(side, column, line) {
		return 0
	}

	captured := 0
	for _, d := range directions {
		captured += b.run(side, column, line, d.column, d.line)
	}

	if captured == 0 {
		return 0
	}

	return captured + 1
}

// TryPlace places a piece of the given side at the given cell and flips
// every captured run of opposing pieces. The placing side's counter grows
// by the captured pieces plus the placed one while the opponent's shrinks
// by the captured pieces. TryPlace reports false and leaves the board
// untouched if the placement is illegal.
func (b *Board) TryPlace(side Side, column, line int) bool {
	if !b.placeable(side, column, line) {
		return false
	}

	captured := 0
	for _, d := range directions {
		n := b.run(side, column, line, d.column, d.line)
		for i := 1; i <= n; i++ {
			b.grid[line+i*d.line][column+i*d.column] = side
		}

		captured += n
	}

	if captured == 0 {
		return false
	}

	b.grid[line][column] = side

	found := captured + 1
	b.count[side] += found
	b.count[side.Other()] -= found - 1

	return true
}

// Winner decides the state of the game. If neither side can move, the side
// with more pieces wins, or the game is drawn. Otherwise a side whose last
// piece has been captured loses immediately.
func (b *Board) Winner() Outcome {
	if !b.CanMove(Black) && !b.CanMove(White) {
		switch {
		case b.count[White] > b.count[Black]:
			return WhiteWins
		case b.count[Black] > b.count[White]:
			return BlackWins
		default:
			return Draw
		}
	}

	switch {
	case b.count[White] == 0:
		return BlackWins
	case b.count[Black] == 0:
		return WhiteWins
	default:
		return Undecided
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:  b.size,
		grid:  make([][]Side, b.size),
		count: b.count,
	}

	for line := range b.grid {
		clone.grid[line] = make([]Side, b.size)
		copy(clone.grid[line], b.grid[line])
	}

	return clone
}

// inside reports whether the given cell lies on the board.
func (b *Board) inside(column, line int) bool {
	return column >= 0 && column < b.size && line >= 0 && line < b.size
}

// placeable reports whether side is a playing side and the given cell is
// an empty cell of the board.
func (b *Board) placeable(side Side, column, line int) bool {
	if side != Black && side != White {
		return false
	}

	return b.inside(column, line) && b.grid[line][column] == Empty
}

// run returns the number of opposing pieces captured in the direction
// (dc, dl) by a piece of the given side placed at (column, line). A run
// only captures if it is closed by a piece of the same side before an
// empty cell or the edge of the board is reached.
func (b *Board) run(side Side, column, line, dc, dl int) int {
	captured := 0
	for {
		column += dc
		line += dl

		if !b.inside(column, line) {
			return 0
		}

		switch b.grid[line][column] {
		case side:
			return captured
		case Empty:
			return 0
		}

		captured++
	}
}
