package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	rows, cols, mineCount int
	cells                 []Cell
	rnd                   *rand.Rand
}

// NewBoard allocates an empty board for params and places params.MineCount
// mines on it using r.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNoRand
	}
	b := &Board{
		rows:      params.Rows,
		cols:      params.Cols,
		mineCount: params.MineCount,
		cells:     make([]Cell, params.Rows*params.Cols),
		rnd:       r,
	}
	b.placeMines(params.MineCount)

	Log.WithField("params", params.String()).Debugf("new board\n%s", b)
	return b, nil
}

// placeMines picks uniformly random cells until count of them that were not
// yet mined have been mined. The caller guarantees count does not exceed the
// number of unmined cells.
func (b *Board) placeMines(count int) {
	for range count {
		i := b.rnd.IntN(len(b.cells))
		for b.cells[i].Mined {
			i = b.rnd.IntN(len(b.cells))
		}
		b.cells[i].Mined = true
	}
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Cols() int      { return b.cols }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) coords(i int) (row, col int) {
	return i / b.cols, i % b.cols
}

// CellAt returns the cell at row, col or nil when the position is off the
// board. Every neighbor lookup goes through here.
func (b *Board) CellAt(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.cells[b.index(row, col)]
}

// NeighborMineCount counts mines among the up to 8 cells around row, col.
func (b *Board) NeighborMineCount(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if cell := b.CellAt(row+dr, col+dc); cell != nil && cell.Mined {
				n++
			}
		}
	}
	return n
}

// CycleMarkState advances the mark of the cell at row, col and returns the
// new mark. Off-board positions are left alone and reported as Closed.
func (b *Board) CycleMarkState(row, col int) MarkState {
	cell := b.CellAt(row, col)
	if cell == nil {
		return Closed
	}
	return cell.cycleMark()
}

// Open opens a single cell. Flagged and off-board cells are Rejected.
func (b *Board) Open(row, col int) Outcome {
	cell := b.CellAt(row, col)
	if cell == nil {
		return Rejected
	}
	return cell.open()
}

// RevealArea opens the region around an opened zero-count cell: every
// unopened, unmined, unflagged neighbor is opened, and neighbors that have no
// mines around them are expanded in turn. A cell is opened when it is queued,
// so nothing is queued twice. It returns the number of cells opened.
func (b *Board) RevealArea(row, col int) int {
	seed := b.CellAt(row, col)
	if seed == nil || !seed.Opened || seed.Mined || b.NeighborMineCount(row, col) != 0 {
		return 0
	}

	opened := 0
	todo := newCellTodo(len(b.cells))
	todo.add(b.index(row, col))

	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		r, c := b.coords(i)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				cell := b.CellAt(r+dr, c+dc)
				if cell == nil || cell.Opened || cell.Mined || cell.Mark == Flagged {
					continue
				}
				cell.Opened = true
				opened++
				if b.NeighborMineCount(r+dr, c+dc) == 0 {
					todo.add(b.index(r+dr, c+dc))
				}
			}
		}
	}

	return opened
}

// SelectedMineCount is the number of flagged cells, right or wrong.
func (b *Board) SelectedMineCount() (count int) {
	for _, cell := range b.cells {
		if cell.Mark == Flagged {
			count++
		}
	}
	return
}

// UnresolvedSafeCount is the number of cells that are both unmarked and
// unopened.
func (b *Board) UnresolvedSafeCount() (count int) {
	for _, cell := range b.cells {
		if cell.Mark == Closed && !cell.Opened {
			count++
		}
	}
	return
}

// String draws the mine layout, one row per line: '*' for mines, '-' for
// safe cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			ch := "- "
			if b.cells[b.index(row, col)].Mined {
				ch = "* "
			}
			fmt.Fprint(&sb, ch)
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
