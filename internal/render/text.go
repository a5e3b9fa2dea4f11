// Package render draws a game as plain text for terminals and logs.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// CellSymbol is what a single cell looks like: 'M' for a shown mine, the
// neighbor count for an opened cell ('.' for zero), the mark otherwise.
func CellSymbol(g *mines.Game, row, col int, showMines bool) string {
	cell := g.Board().CellAt(row, col)
	if cell == nil {
		return " "
	}
	switch {
	case showMines && cell.Mined:
		return "M"
	case cell.Opened:
		n := g.NeighborMineCount(row, col)
		if n == 0 {
			return "."
		}
		return strconv.Itoa(n)
	default:
		return cell.Mark.String()
	}
}

// Field draws the grid with a column header and row labels.
func Field(w io.Writer, g *mines.Game, showMines bool) error {
	var b strings.Builder

	b.WriteString("  | ")
	for col := range g.Cols() {
		fmt.Fprintf(&b, "%d ", col)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("--", g.Cols()+1))
	b.WriteString("-\n")

	for row := range g.Rows() {
		fmt.Fprintf(&b, "%d | ", row)
		for col := range g.Cols() {
			b.WriteString(CellSymbol(g, row, col, showMines))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func Stats(g *mines.Game) string {
	return fmt.Sprintf("Mines set: %d", g.SelectedMineCount())
}

func Result(g *mines.Game) string {
	switch g.Status() {
	case mines.Won:
		return "You win"
	case mines.Lost:
		return "You lose"
	default:
		return "Game in process"
	}
}

// Game draws the field followed by the stats and result lines. Mines are
// shown once the game is lost.
func Game(w io.Writer, g *mines.Game) error {
	if err := Field(w, g, g.ShowMines()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", Stats(g), Result(g))
	return err
}
