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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/othello/pkg/arena"
)

func Arena() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play a series of games between two computer players",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`arena plays a series of games between two computer players
			searching at different depths and reports their scores along
			with an elo estimate of their difference in strength.

			Games are played in pairs starting from the same random
			opening, the players swapping sides between the two games
			of a pair.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			if flags.Changed("size") {
				conf.Size, _ = flags.GetInt("size")
			}

			if flags.Changed("games") {
				conf.Arena.Games, _ = flags.GetInt("games")
			}

			if flags.Changed("concurrency") {
				conf.Arena.Concurrency, _ = flags.GetInt("concurrency")
			}

			if flags.Changed("depths") {
				conf.Arena.Depths, _ = flags.GetIntSlice("depths")
			}

			if flags.Changed("openings") {
				conf.Arena.Openings, _ = flags.GetInt("openings")
			}

			if flags.Changed("seed") {
				conf.Arena.Seed, _ = flags.GetInt64("seed")
			}

			series, err := arena.New(conf.Size, conf.Arena)
			if err != nil {
				return err
			}

			_, err = series.Start()
			series.Report(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntP("size", "s", 0, "Width and height of the board (even)")
	cmd.Flags().IntP("games", "g", 0, "Number of games to play")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of games played at the same time")
	cmd.Flags().IntSlice("depths", nil, "Search depths of the two players")
	cmd.Flags().Int("openings", 0, "Number of random placements starting each game pair")
	cmd.Flags().Int64("seed", 0, "Seed of the random openings")

	return cmd
}
