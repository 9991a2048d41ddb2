package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/othello/pkg/board"
)

// script is a Console which answers coordinate requests from a fixed list
// of inputs and records everything it is asked to show.
type script struct {
	inputs  []int
	notices []string
	scores  []string
	boards  int
	clears  int
	thinks  int
}

func (s *script) RequestCoordinate(prompt string, min, max int) (int, error) {
	if len(s.inputs) == 0 {
		return 0, io.EOF
	}

	n := s.inputs[0]
	s.inputs = s.inputs[1:]
	if n < min || n > max {
		return 0, fmt.Errorf("script: %d outside [%d, %d]", n, min, max)
	}

	return n, nil
}

func (s *script) DisplayBoard(b *board.Board) { s.boards++ }

func (s *script) DisplayScore(side board.Side, count int) {
	s.scores = append(s.scores, fmt.Sprintf("%d %s", count, side))
}

func (s *script) Notify(format string, a ...any) {
	s.notices = append(s.notices, fmt.Sprintf(format, a...))
}

func (s *script) Clear() { s.clears++ }

func (s *script) Thinking(side board.Side) func() {
	s.thinks++
	return func() {}
}

func computers(depth int) [board.SideN]Player {
	return [board.SideN]Player{
		board.Black: {Depth: depth},
		board.White: {Depth: depth},
	}
}

func TestComputerGame(t *testing.T) {
	for _, size := range []int{4, 6} {
		b, err := board.New(size)
		require.NoError(t, err)

		console := &script{}
		outcome, err := New(b, computers(1), console).Play()
		require.NoError(t, err)

		assert.NotEqual(t, board.Undecided, outcome)
		assert.Equal(t, outcome, b.Winner())
		assert.NotContains(t, console.notices, fmt.Sprintf(TurnPassed, board.Black))
		assert.NotContains(t, console.notices, fmt.Sprintf(TurnPassed, board.White))

		last := console.notices[len(console.notices)-1]
		if outcome == board.Draw {
			assert.Equal(t, NoWinner, last)
		} else {
			assert.Equal(t, fmt.Sprintf(Win, outcome.Winner()), last)
		}

		assert.Equal(t, console.clears, console.boards)
		assert.Equal(t, 2*console.boards, len(console.scores))
	}
}

func TestHumanPlacement(t *testing.T) {
	b, err := board.New(8)
	require.NoError(t, err)

	players := [board.SideN]Player{
		board.Black: {Human: true},
		board.White: {Human: true},
	}

	console := &script{inputs: []int{3, 4}}
	_, err = New(b, players, console).Play()
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 4, b.Count(board.Black))
	assert.Equal(t, 1, b.Count(board.White))
	assert.Equal(t, board.Black, b.At(3, 2))

	assert.Equal(t, []string{
		fmt.Sprintf(Turn, board.Black),
		fmt.Sprintf(Turn, board.White),
	}, console.notices)

	// The side to play is shown first.
	assert.Equal(t, []string{"2 X", "2 O", "1 O", "4 X"}, console.scores)
	assert.Zero(t, console.thinks)
}

func TestBadPlacementPassesTurn(t *testing.T) {
	b, err := board.New(8)
	require.NoError(t, err)

	players := [board.SideN]Player{
		board.Black: {Human: true},
		board.White: {Depth: 0},
	}

	console := &script{inputs: []int{1, 1}}
	game := New(b, players, console)

	_, err = game.Play()
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []string{
		fmt.Sprintf(Turn, board.Black),
		fmt.Sprintf(TurnPassed, board.Black),
		fmt.Sprintf(Turn, board.White),
		PromptLine + "3",
		PromptColumn + "5",
		fmt.Sprintf(Turn, board.Black),
	}, console.notices)

	assert.Equal(t, 1, b.Count(board.Black))
	assert.Equal(t, 4, b.Count(board.White))
	assert.Equal(t, 1, console.thinks)
	assert.Equal(t, board.Black, game.Turn())
}

func TestCannotPlayPasses(t *testing.T) {
	b, err := board.Parse(
		"OX..",
		"....",
		"....",
		"....",
	)
	require.NoError(t, err)
	require.False(t, b.CanMove(board.Black))

	console := &script{}
	outcome, err := New(b, computers(2), console).Play()
	require.NoError(t, err)

	assert.Equal(t, board.WhiteWins, outcome)
	assert.Equal(t, []string{
		fmt.Sprintf(CannotPlay, board.Black),
		fmt.Sprintf(Turn, board.White),
		PromptLine + "1",
		PromptColumn + "3",
		fmt.Sprintf(Win, board.White),
	}, console.notices)

	assert.Equal(t, 3, b.Count(board.White))
	assert.Equal(t, 0, b.Count(board.Black))
}

func TestComputerWithoutPlacement(t *testing.T) {
	// Neither side can play: Black passes, and White, which is asked
	// without being checked, finds nothing and passes its turn too.
	b, err := board.Parse(
		"XX..",
		"....",
		"....",
		"...O",
	)
	require.NoError(t, err)

	console := &script{}
	outcome, err := New(b, computers(0), console).Play()
	require.NoError(t, err)

	assert.Equal(t, board.BlackWins, outcome)
	assert.Equal(t, []string{
		fmt.Sprintf(CannotPlay, board.Black),
		fmt.Sprintf(Turn, board.White),
		fmt.Sprintf(TurnPassed, board.White),
		fmt.Sprintf(Win, board.Black),
	}, console.notices)
}

func TestSetTurn(t *testing.T) {
	b, err := board.New(4)
	require.NoError(t, err)

	game := New(b, computers(0), &script{})
	assert.Equal(t, board.Black, game.Turn())
	assert.Same(t, b, game.Board())

	game.SetTurn(board.White)
	assert.Equal(t, board.White, game.Turn())
}
