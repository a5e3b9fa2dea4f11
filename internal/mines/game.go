package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Game is one session over a board it owns exclusively. remainingMines goes
// down when a mine gets flagged and back up when the flag is taken off it.
type Game struct {
	board          *Board
	remainingMines int
	over, won      bool
}

func NewGame(board *Board) *Game {
	return &Game{
		board:          board,
		remainingMines: board.MineCount(),
	}
}

// NewRandomGame builds a board for params with r and starts a game on it.
func NewRandomGame(params GameParams, r *rand.Rand) (*Game, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, fmt.Errorf("unable to create board: %w", err)
	}
	return NewGame(board), nil
}

func (g *Game) Board() *Board       { return g.board }
func (g *Game) Rows() int           { return g.board.Rows() }
func (g *Game) Cols() int           { return g.board.Cols() }
func (g *Game) RemainingMines() int { return g.remainingMines }
func (g *Game) Over() bool          { return g.over }
func (g *Game) Won() bool           { return g.won }

func (g *Game) Status() Status {
	switch {
	case !g.over:
		return InProgress
	case g.won:
		return Won
	default:
		return Lost
	}
}

// ShowMines reports whether mines may be drawn, which is only after a loss.
func (g *Game) ShowMines() bool {
	return g.over && !g.won
}

func (g *Game) SelectedMineCount() int {
	return g.board.SelectedMineCount()
}

func (g *Game) NeighborMineCount(row, col int) int {
	return g.board.NeighborMineCount(row, col)
}

func (g *Game) check(row, col int) error {
	if g.over {
		return ErrGameOver
	}
	if !g.board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board",
			ErrOutOfBounds, row, col, g.Rows(), g.Cols())
	}
	return nil
}

// CycleMark advances the mark of a cell and keeps the mine counter in step.
func (g *Game) CycleMark(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	mark := g.board.CycleMarkState(row, col)
	if g.board.CellAt(row, col).Mined {
		switch mark {
		case Flagged:
			g.remainingMines--
		case Questioned:
			g.remainingMines++
		}
	}
	g.evaluateWin()
	return nil
}

// Reveal opens a cell, cascading over the zero-count area when the cell is
// safe and has no mines around it.
func (g *Game) Reveal(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	outcome := g.board.Open(row, col)
	switch outcome {
	case Detonated:
		g.over, g.won = true, false
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine detonated")
		return nil
	case Safe:
		if g.board.NeighborMineCount(row, col) == 0 {
			n := g.board.RevealArea(row, col)
			Log.WithFields(logrus.Fields{
				"row": row, "col": col, "opened": n,
			}).Debug("revealed area")
		}
	}
	g.evaluateWin()
	return nil
}

func (g *Game) evaluateWin() {
	if g.board.UnresolvedSafeCount() == 0 && g.remainingMines == 0 {
		g.over, g.won = true, true
		Log.Debug("game won")
	}
}
