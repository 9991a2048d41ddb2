package console

import (
	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/game"
)

// Discard returns a game.Console which shows nothing and has no input,
// for games played between computers only.
func Discard() game.Console {
	return discard{}
}

type discard struct{}

func (discard) RequestCoordinate(string, int, int) (int, error) {
	return 0, ErrInputClosed
}

func (discard) DisplayBoard(*board.Board) {}
func (discard) DisplayScore(board.Side, int) {}
func (discard) Notify(string, ...any) {}
func (discard) Clear() {}
func (discard) Thinking(board.Side) func() { return func() {} }
