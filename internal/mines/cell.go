package mines

// MarkState is the player annotation of a cell. It is independent of whether
// the cell has been opened.
type MarkState int8

const (
	Closed MarkState = iota
	Flagged
	Questioned

	markStateCount = 3
)

func (s MarkState) String() string {
	switch s {
	case Closed:
		return "X"
	case Flagged:
		return "!"
	case Questioned:
		return "?"
	default:
		return "~"
	}
}

// Next returns the state following s in the cycle
// Closed -> Flagged -> Questioned -> Closed.
func (s MarkState) Next() MarkState {
	return (s + 1) % markStateCount
}

// Cell is one grid position. Mined is fixed once the board is built and
// Opened never goes back to false.
type Cell struct {
	Mark   MarkState
	Mined  bool
	Opened bool
}

func (c *Cell) cycleMark() MarkState {
	c.Mark = c.Mark.Next()
	return c.Mark
}

func (c *Cell) open() Outcome {
	if c.Mark == Flagged {
		return Rejected
	}
	c.Opened = true
	if c.Mined {
		return Detonated
	}
	return Safe
}

// Outcome is the result of opening a single cell.
type Outcome int8

const (
	Rejected Outcome = iota - 1
	Safe
	Detonated
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Safe:
		return "safe"
	case Detonated:
		return "detonated"
	default:
		return "unknown"
	}
}
