package board

import "errors"

var (
	ErrUnknownTerrain = errors.New("board: unknown terrain")
	ErrTooManyRows    = errors.New("board: more rows than the board size")
	ErrTooManyColumns = errors.New("board: more columns than the board size")
	ErrPortalCount    = errors.New("board: teleport cells must come in exactly one pair")
	ErrBadSize        = errors.New("board: size out of range")
	ErrOutOfBounds    = errors.New("board: position out of bounds")
	ErrBadPosition    = errors.New("board: malformed position")
	ErrInvalidConfig  = errors.New("board: invalid board config")
)
