package game

import "errors"

// Set of errors a move or a board construction can fail with. All of the
// move errors are recoverable: the grid is left untouched.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutOfRange    = errors.New("column out of range")
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidMarker = errors.New("invalid marker")
	ErrInvalidConfig = errors.New("invalid config")
)

// IsRejectedMove reports whether the error is a move the board refused:
// a column outside the board or a full column.
func IsRejectedMove(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrColumnFull)
}
