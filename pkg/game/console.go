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

package game

import "laptudirm.com/x/othello/pkg/board"

// Console is the interface through which a Game talks to its players.
type Console interface {
	// RequestCoordinate asks for a number in [min, max], asking again
	// until one is entered. An error is only returned when no more input
	// can be read.
	RequestCoordinate(prompt string, min, max int) (int, error)

	// DisplayBoard shows the board along with its coordinates.
	DisplayBoard(b *board.Board)

	// DisplayScore shows the number of pieces owned by a side.
	DisplayScore(side board.Side, count int)

	// Notify shows a single line message.
	Notify(format string, a ...any)

	// Clear clears the display before a new board is shown.
	Clear()

	// Thinking is called when a computer player starts searching for its
	// placement. The returned function is called once the search is done.
	Thinking(side board.Side) (done func())
}
