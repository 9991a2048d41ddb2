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

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/config"
	"laptudirm.com/x/othello/pkg/console"
	"laptudirm.com/x/othello/pkg/game"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of Othello in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of Othello between two players, each
			either a human entering placements in the terminal or the
			computer. Black (X) plays first, White (O) second.

			Placements are entered as a line number followed by a column
			number, both starting from 1. A placement which doesn't capture
			any piece passes the turn.

			Defaults are read from the configuration file and can be
			overridden by the flags.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			if flags.Changed("size") {
				conf.Size, _ = flags.GetInt("size")
			}

			if flags.Changed("depth") {
				conf.Depth, _ = flags.GetInt("depth")
			}

			for _, name := range []string{"black", "white"} {
				if !flags.Changed(name) {
					continue
				}

				value, _ := flags.GetString(name)
				controller, err := config.ParseController(value)
				if err != nil {
					return err
				}

				if name == "black" {
					conf.Black = controller
				} else {
					conf.White = controller
				}
			}

			b, err := board.New(conf.Size)
			if err != nil {
				return err
			}

			if err := conf.Validate(); err != nil {
				return err
			}

			players := [board.SideN]game.Player{
				board.Black: {Human: conf.Black.IsHuman(), Depth: conf.Depth},
				board.White: {Human: conf.White.IsHuman(), Depth: conf.Depth},
			}

			term := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = game.New(b, players, term).Play()
			return err
		},
	}

	cmd.Flags().IntP("size", "s", 0, "Width and height of the board (even)")
	cmd.Flags().IntP("depth", "d", 0, "Search depth of computer players")
	cmd.Flags().String("black", "", "Controller of Black: human or computer")
	cmd.Flags().String("white", "", "Controller of White: human or computer")

	return cmd
}
