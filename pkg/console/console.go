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

// Package console implements the game.Console interface on top of a text
// terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/game"
)

// ErrInputClosed is returned when a coordinate is requested after the
// input has been exhausted.
var ErrInputClosed = errors.New("console: input closed")

// SPIN is the spinner.CharSets entry shown while a computer thinks.
const SPIN = 11

// Terminal is a game.Console reading entries line by line from its input
// and writing to its output. Escape sequences and colours are only used
// if the output is a terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	tty bool

	notice *color.Color
	failed *color.Color
}

var _ game.Console = (*Terminal)(nil)

// New creates a Terminal console.
func New(in io.Reader, out io.Writer) *Terminal {
	term := &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		tty:    isTerminal(out),
		notice: color.New(color.FgYellow),
		failed: color.New(color.FgRed),
	}

	if !term.tty {
		term.notice.DisableColor()
		term.failed.DisableColor()
	}

	return term
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequestCoordinate implements game.Console. Only the first word of each
// entered line is considered.
func (term *Terminal) RequestCoordinate(prompt string, min, max int) (int, error) {
	for {
		fmt.Fprint(term.out, prompt)

		line, err := term.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return 0, ErrInputClosed
			}

			return 0, err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			term.failed.Fprintln(term.out, game.BadEntry)
			continue
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			logrus.WithField("entry", fields[0]).Debug("bad coordinate")
			term.failed.Fprintln(term.out, game.BadEntry)
			continue
		}

		if n >= min && n <= max {
			return n, nil
		}
	}
}

// DisplayBoard implements game.Console.
func (term *Terminal) DisplayBoard(b *board.Board) {
	if err := b.Render(term.out); err != nil {
		logrus.Error(err)
	}
}

// DisplayScore implements game.Console.
func (term *Terminal) DisplayScore(side board.Side, count int) {
	fmt.Fprintf(term.out, "%d %s\n", count, side)
}

// Notify implements game.Console.
func (term *Terminal) Notify(format string, a ...any) {
	term.notice.Fprintf(term.out, format+"\n", a...)
}

// Clear implements game.Console.
func (term *Terminal) Clear() {
	if term.tty {
		fmt.Fprint(term.out, "\x1b[H\x1b[2J")
	}
}

// Thinking implements game.Console by showing a spinner until the
// computer has chosen its placement.
func (term *Terminal) Thinking(side board.Side) func() {
	if !term.tty {
		return func() {}
	}

	s := spinner.New(
		spinner.CharSets[SPIN], 100*time.Millisecond,
		spinner.WithWriter(term.out),
		spinner.WithSuffix(fmt.Sprintf(" %s is thinking", side)),
	)

	s.Start()
	return s.Stop
}
