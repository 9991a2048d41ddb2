package arena

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"laptudirm.com/x/othello/pkg/stats"
)

// Report writes a table of both players' scores and elo estimates to w.
func (arena *Arena) Report(w io.Writer) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")

	for i, score := range [2]Score{arena.Score, arena.Score.Inverse()} {
		lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)

		line := fmt.Sprintf(
			"%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d",
			i+1, arena.Name(i),
			elo, stats.Error(lower, elo, upper),
			score.Wins, score.Losses, score.Draws,
			score.Games(),
		)

		if i == 0 {
			if elo >= 0 {
				line = color.GreenString(line)
			} else {
				line = color.RedString(line)
			}
		}

		fmt.Fprintf(w, "║ %s ║\n", line)
	}

	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}
