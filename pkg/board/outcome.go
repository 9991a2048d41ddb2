package board

// Outcome is the state of a game as decided by Board.Winner.
type Outcome uint8

const (
	Undecided Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

// Wins returns the Outcome in which the given side is the winner.
func Wins(side Side) Outcome {
	switch side {
	case Black:
		return BlackWins
	case White:
		return WhiteWins
	default:
		return Draw
	}
}

// Winner returns the winning side of a decided Outcome, or Empty for a
// Draw and an Undecided game.
func (outcome Outcome) Winner() Side {
	switch outcome {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		return Empty
	}
}

func (outcome Outcome) String() string {
	switch outcome {
	case Undecided:
		return "undecided"
	case BlackWins:
		return Black.String() + " wins"
	case WhiteWins:
		return White.String() + " wins"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}
