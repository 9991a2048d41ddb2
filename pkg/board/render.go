package board

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the board to w: the column numbers, split into a tens row
// and a units row for boards of ten or more columns, followed by every
// line prefixed with its 1-based number.
func (b *Board) Render(w io.Writer) error {
	var sb strings.Builder

	margin := "%d "
	if b.size >= 10 {
		margin = "%02d "

		sb.WriteString("   ")
		for i := 1; i <= b.size; i++ {
			fmt.Fprintf(&sb, "%d ", i/10)
		}

		sb.WriteString("\n ")
	}

	sb.WriteString("  ")
	for i := 1; i <= b.size; i++ {
		fmt.Fprintf(&sb, "%d ", i%10)
	}

	sb.WriteString("\n")

	for line := 0; line < b.size; line++ {
		fmt.Fprintf(&sb, margin, line+1)
		for column := 0; column < b.size; column++ {
			sb.WriteByte(b.grid[line][column].Symbol())
			sb.WriteByte(' ')
		}

		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the rendered board.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}
