package mines

import "errors"

var (
	ErrInvalidParams = errors.New("invalid game params")
	ErrOutOfBounds   = errors.New("cell coordinates out of bounds")
	ErrGameOver      = errors.New("game is over")
	ErrNoRand        = errors.New("no random source")
)
