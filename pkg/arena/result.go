package arena

// Result is the result of a single game from the first player's point of
// view.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Score tallies the results of the first player.
type Score struct {
	Wins, Losses, Draws int
}

// Add records a single result.
func (score *Score) Add(result Result) {
	switch result {
	case Win:
		score.Wins++
	case Loss:
		score.Losses++
	case Draw:
		score.Draws++
	}
}

// Games returns the number of results recorded.
func (score Score) Games() int {
	return score.Wins + score.Losses + score.Draws
}

// Inverse returns the same tally from the second player's point of view.
func (score Score) Inverse() Score {
	return Score{Wins: score.Losses, Losses: score.Wins, Draws: score.Draws}
}
