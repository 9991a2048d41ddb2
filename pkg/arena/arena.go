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

// Package arena plays series of games between two computer players of
// different search depths and tallies their results.
package arena

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/config"
	"laptudirm.com/x/othello/pkg/console"
	"laptudirm.com/x/othello/pkg/game"
)

// New creates an Arena playing on boards of the given size.
func New(size int, conf config.Arena) (*Arena, error) {
	if _, err := board.New(size); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Arena{
		Config: conf,
		Size:   size,
	}, nil
}

// Arena is a series of games between two computer players.
type Arena struct {
	Config config.Arena
	Size   int

	games   chan *Match
	results chan GameResult

	// Score of the first player.
	Score Score
}

// Match is a single game of the series.
type Match struct {
	// Number of the game and of the pair it belongs to, starting from 1.
	Number, Pair int

	// Side played by the first player. The players swap sides between
	// the two games of a pair.
	Side board.Side
}

// GameResult is the result of a played Match.
type GameResult struct {
	Match *Match

	Result       Result
	Black, White int // final piece counts

	Err error
}

func (report GameResult) String() string {
	if report.Err != nil {
		return report.Err.Error()
	}

	return fmt.Sprintf("%s (%d-%d)", report.Result, report.Black, report.White)
}

// Start plays every game of the series, Config.Concurrency games at a
// time, and returns the first player's Score.
func (arena *Arena) Start() (Score, error) {
	// 1 Series    = {GAMES} Games
	// 1 Game Pair = 2 Games from the same opening

	arena.games = make(chan *Match)
	arena.results = make(chan GameResult)

	var threads sync.WaitGroup
	for i := 0; i < arena.Config.Concurrency; i++ {
		threads.Add(1)
		go func() {
			defer threads.Done()
			arena.Thread()
		}()
	}

	go func() {
		for number := 0; number < arena.Config.Games; number++ {
			side := board.Black
			if number%2 == 1 {
				side = board.White
			}

			arena.games <- &Match{
				Number: number + 1,
				Pair:   number/2 + 1,
				Side:   side,
			}
		}

		close(arena.games)
		threads.Wait()
		close(arena.results)
	}()

	return arena.ResultHandler()
}

// Thread plays the matches it receives until there are none left.
func (arena *Arena) Thread() {
	for match := range arena.games {
		arena.results <- arena.RunGame(match)
	}
}

// RunGame plays a single match.
func (arena *Arena) RunGame(match *Match) GameResult {
	logrus.Infof(
		"%s Game #%d: %s vs %s\n",
		color.YellowString("Starting"),
		match.Number,
		arena.name(match.Side, board.Black),
		arena.name(match.Side, board.White),
	)

	report := GameResult{Match: match}

	b, side, err := Opening(arena.Size, arena.Config.Openings, arena.Config.Seed+int64(match.Pair))
	if err != nil {
		report.Err = err
		return report
	}

	var players [board.SideN]game.Player
	players[match.Side] = game.Player{Depth: arena.Config.Depths[0]}
	players[match.Side.Other()] = game.Player{Depth: arena.Config.Depths[1]}

	g := game.New(b, players, console.Discard())
	g.SetTurn(side)

	outcome, err := g.Play()
	if err != nil {
		report.Err = fmt.Errorf("game #%d: %w", match.Number, err)
		return report
	}

	switch outcome.Winner() {
	case match.Side:
		report.Result = Win
	case match.Side.Other():
		report.Result = Loss
	default:
		report.Result = Draw
	}

	report.Black = b.Count(board.Black)
	report.White = b.Count(board.White)
	return report
}

// ResultHandler tallies the reports of the played games until every
// thread is done.
func (arena *Arena) ResultHandler() (Score, error) {
	var errs *multierror.Error

	for report := range arena.results {
		if report.Err != nil {
			logrus.Error(report.Err)
			errs = multierror.Append(errs, report.Err)
			continue
		}

		arena.Score.Add(report.Result)

		logrus.Infof(
			"%s Game #%d: %s vs %s: %s\n",
			color.GreenString("Finished"),
			report.Match.Number,
			arena.name(report.Match.Side, board.Black),
			arena.name(report.Match.Side, board.White),
			report,
		)
	}

	return arena.Score, errs.ErrorOrNil()
}

// Name returns the display name of the given player, 0 or 1.
func (arena *Arena) Name(player int) string {
	return fmt.Sprintf("depth %d", arena.Config.Depths[player])
}

// name returns the name of the player playing side, given the side played
// by the first player.
func (arena *Arena) name(first, side board.Side) string {
	if side == first {
		return arena.Name(0)
	}

	return arena.Name(1)
}
