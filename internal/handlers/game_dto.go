package handlers

import (
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseNewGameParams reads rows, cols and mine_count from the query. Missing
// keys keep their value from defaults. Boards larger than maxRows x maxCols
// are rejected.
func ParseNewGameParams(
	src map[string][]string,
	defaults mines.GameParams,
	maxRows, maxCols int,
) (mines.GameParams, error) {
	params := defaults
	if err := decoder.Decode(&params, src); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", mines.ErrInvalidParams, err)
	}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	if err := params.Within(maxRows, maxCols); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

type CellDTO struct {
	Mark   string `json:"mark"`
	Opened bool   `json:"opened"`
	Count  *int   `json:"count,omitempty"`
	Mined  bool   `json:"mined,omitempty"`
}

type GameDTO struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	MineCount      int          `json:"mine_count"`
	RemainingMines int          `json:"remaining_mines"`
	SelectedMines  int          `json:"selected_mines"`
	Status         mines.Status `json:"status"`
	Cells          [][]CellDTO  `json:"cells"`
	Error          string       `json:"error,omitempty"`
}

func markName(m mines.MarkState) string {
	switch m {
	case mines.Flagged:
		return "flagged"
	case mines.Questioned:
		return "questioned"
	default:
		return "closed"
	}
}

// NewGameDTO snapshots g. Neighbor counts are only given for opened safe
// cells and mines only once the game is lost.
func NewGameDTO(g *mines.Game) *GameDTO {
	board := g.Board()
	showMines := g.ShowMines()

	cells := make([][]CellDTO, g.Rows())
	for row := range g.Rows() {
		cells[row] = make([]CellDTO, g.Cols())
		for col := range g.Cols() {
			cell := board.CellAt(row, col)
			dto := CellDTO{
				Mark:   markName(cell.Mark),
				Opened: cell.Opened,
				Mined:  showMines && cell.Mined,
			}
			if cell.Opened && !cell.Mined {
				n := g.NeighborMineCount(row, col)
				dto.Count = &n
			}
			cells[row][col] = dto
		}
	}

	return &GameDTO{
		Rows:           g.Rows(),
		Cols:           g.Cols(),
		MineCount:      board.MineCount(),
		RemainingMines: g.RemainingMines(),
		SelectedMines:  g.SelectedMineCount(),
		Status:         g.Status(),
		Cells:          cells,
	}
}
