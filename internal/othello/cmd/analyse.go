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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/search"
)

func Analyse() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyse row...",
		Short: "Find the best placement in a position",
		Args:  cobra.MinimumNArgs(2),
		Long: heredoc.Doc(`analyse searches the given position for the best placement
			of a side, as a computer player would.

			The position is given as one argument per row, from top to
			bottom, using X for Black, O for White, and . for empty
			cells. For example, the starting position of a 4x4 board is:

			    othello analyse .... .OX. .XO. ....`),

		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args...)
			if err != nil {
				return err
			}

			symbol, _ := cmd.Flags().GetString("side")
			side, err := board.ParseSide(symbol)
			if err != nil {
				return err
			}

			depth, _ := cmd.Flags().GetInt("depth")

			out := cmd.OutOrStdout()
			if err := b.Render(out); err != nil {
				return err
			}

			best, found := search.BestMove(b, side, depth)
			if !found {
				fmt.Fprintf(out, "%s has no legal placement\n", side)
				return nil
			}

			fmt.Fprintf(out, "bestmove line %d column %d score %+d\n", best.Line+1, best.Column+1, best.Score)
			return nil
		},
	}

	cmd.Flags().String("side", board.Black.String(), "Side to search for: X or O")
	cmd.Flags().IntP("depth", "d", search.DefaultDepth, "Search depth")

	return cmd
}
