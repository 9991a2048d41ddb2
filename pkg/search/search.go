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

// Package search implements the fixed-depth exhaustive search used by
// computer players to choose their placements.
package search

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/othello/pkg/board"
)

// DefaultDepth is the number of replies explored beyond the candidate
// placement itself.
const DefaultDepth = 4

// Proposal is a candidate placement along with its net score: the pieces
// it wins minus the pieces the opponent's best reply wins back.
type Proposal struct {
	Line, Column int
	Score        int
}

// BestMove returns the placement with the highest net score for the given
// side, looking depth replies ahead. Ties go to the first candidate in
// row-major order. It reports false if the side has no legal placement.
//
// The board is used as a sandbox while searching and is always brought
// back to its original state before BestMove returns.
func BestMove(b *board.Board, side board.Side, depth int) (Proposal, bool) {
	var s searcher
	best, found := s.search(b, side, depth)

	logrus.WithFields(logrus.Fields{
		"side":  side,
		"depth": depth,
		"nodes": s.nodes,
	}).Trace("search complete")

	return best, found
}

type searcher struct {
	nodes int
}

func (s *searcher) search(b *board.Board, side board.Side, depth int) (Proposal, bool) {
	var best Proposal
	found := false

	size := b.Size()
	for line := 0; line < size; line++ {
		for column := 0; column < size; column++ {
			score := b.Score(side, column, line)
			if score == 0 {
				continue
			}

			s.nodes++
			snap := b.Snapshot()
			b.TryPlace(side, column, line)

			if depth > 0 {
				if reply, ok := s.search(b, side.Other(), depth-1); ok {
					score -= reply.Score
				}
			}

			b.Restore(snap)

			if !found || score > best.Score {
				best = Proposal{Line: line, Column: column, Score: score}
				found = true
			}
		}
	}

	return best, found
}
