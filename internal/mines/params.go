package mines

import (
	"fmt"
	"math"
	"strings"
)

type GameParams struct {
	Rows      int `schema:"rows" mapstructure:"rows" json:"rows"`
	Cols      int `schema:"cols" mapstructure:"cols" json:"cols"`
	MineCount int `schema:"mine_count" mapstructure:"mine_count" json:"mine_count"`
}

// DefaultParams is a 10x10 board with 10 mines.
var DefaultParams = GameParams{Rows: 10, Cols: 10, MineCount: 10}

func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.Rows > math.MaxInt/p.Cols {
		return fmt.Errorf("%w: board %dx%d is too large",
			ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.MineCount < 0 || p.MineCount > p.Rows*p.Cols {
		return fmt.Errorf("%w: mine count %d must be in [0, %d]",
			ErrInvalidParams, p.MineCount, p.Rows*p.Cols)
	}
	return nil
}

// String encodes params as rows:cols:mines.
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseParams(s string) (GameParams, error) {
	var p GameParams
	ss := strings.ReplaceAll(strings.TrimSpace(s), ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`%w: cannot parse "%s" (n = %d, err = %v)`, ErrInvalidParams, s, n, err,
		)
	}
	return p, p.Validate()
}

// Within checks that params fit on a board of at most maxRows x maxCols.
// A non-positive limit is not enforced.
func (p GameParams) Within(maxRows, maxCols int) error {
	if (maxRows > 0 && p.Rows > maxRows) || (maxCols > 0 && p.Cols > maxCols) {
		return fmt.Errorf("%w: board %dx%d exceeds %dx%d",
			ErrInvalidParams, p.Rows, p.Cols, maxRows, maxCols)
	}
	return nil
}
