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

// Package game implements the turn sequencing of an Othello game between
// human and computer players.
package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/search"
)

// Player describes who controls a side.
type Player struct {
	Human bool

	// Depth of the search used by a computer player.
	Depth int
}

// Game is a single game of Othello played on a Board.
type Game struct {
	board   *board.Board
	players [board.SideN]Player
	console Console

	current board.Side
}

// New creates a Game on the given board, with Black to play first. The
// players array is indexed by the side each player controls.
func New(b *board.Board, players [board.SideN]Player, console Console) *Game {
	return &Game{
		board:   b,
		players: players,
		console: console,
		current: board.Black,
	}
}

// Board returns the board the game is played on.
func (game *Game) Board() *board.Board {
	return game.board
}

// Turn returns the side to play.
func (game *Game) Turn() board.Side {
	return game.current
}

// SetTurn changes the side to play.
func (game *Game) SetTurn(side board.Side) {
	game.current = side
}

// Play runs the game until it is decided and returns its Outcome. An error
// is only returned if the console fails to provide a coordinate.
func (game *Game) Play() (board.Outcome, error) {
	for {
		game.display()

		// A side which can't play passes, and the other side is asked for
		// its placement without checking if it can play either.
		if !game.board.CanMove(game.current) {
			logrus.WithField("side", game.current).Debug("no legal placement")
			game.console.Notify(CannotPlay, game.current)
			game.current = game.current.Other()
		}

		game.console.Notify(Turn, game.current)

		line, column, err := game.coordinates()
		if err != nil {
			return board.Undecided, fmt.Errorf("game: %w", err)
		}

		placed := game.board.TryPlace(game.current, column-1, line-1)
		logrus.WithFields(logrus.Fields{
			"side":   game.current,
			"line":   line,
			"column": column,
			"placed": placed,
		}).Debug("placement")

		if !placed {
			game.console.Notify(TurnPassed, game.current)
		}

		if outcome := game.board.Winner(); outcome != board.Undecided {
			game.display()

			if outcome == board.Draw {
				game.console.Notify(NoWinner)
			} else {
				game.console.Notify(Win, outcome.Winner())
			}

			logrus.WithFields(logrus.Fields{
				"outcome": outcome,
				"black":   game.board.Count(board.Black),
				"white":   game.board.Count(board.White),
			}).Debug("game over")

			return outcome, nil
		}

		game.current = game.current.Other()
	}
}

// display shows the scores, side to play first, and the board.
func (game *Game) display() {
	game.console.Clear()

	for _, side := range [2]board.Side{game.current, game.current.Other()} {
		game.console.DisplayScore(side, game.board.Count(side))
	}

	game.console.DisplayBoard(game.board)
}

// coordinates returns the 1-based line and column of the placement chosen
// by the player of the current side. A computer player without any legal
// placement returns an off-board coordinate.
func (game *Game) coordinates() (line, column int, err error) {
	player := game.players[game.current]

	if player.Human {
		size := game.board.Size()

		if line, err = game.console.RequestCoordinate(PromptLine, 1, size); err != nil {
			return 0, 0, err
		}

		if column, err = game.console.RequestCoordinate(PromptColumn, 1, size); err != nil {
			return 0, 0, err
		}

		return line, column, nil
	}

	done := game.console.Thinking(game.current)
	proposal, found := search.BestMove(game.board, game.current, player.Depth)
	done()

	if !found {
		return 0, 0, nil
	}

	line, column = proposal.Line+1, proposal.Column+1
	game.console.Notify(PromptLine+"%d", line)
	game.console.Notify(PromptColumn+"%d", column)

	return line, column, nil
}
