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

package board

// Side represents the state of a single cell of the board, and doubles as
// the identity of the two players. The zero value is an Empty cell.
type Side uint8

const (
	Empty Side = iota
	Black      // first player, moves first
	White      // second player
)

// SideN is the number of Side values, used to size arrays indexed by Side.
const SideN = 3

// Sides lists the two playing sides in turn order.
var Sides = [2]Side{Black, White}

var symbols = [SideN]byte{
	Empty: '.',
	White: 'O',
	Black: 'X',
}

// Other returns the opponent of the given side. The opponent of Empty is
// Empty itself.
func (side Side) Other() Side {
	switch side {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Symbol returns the single character used to render the side.
func (side Side) Symbol() byte {
	if side >= SideN {
		return '?'
	}

	return symbols[side]
}

// String returns the side's symbol as a string.
func (side Side) String() string {
	return string(side.Symbol())
}
