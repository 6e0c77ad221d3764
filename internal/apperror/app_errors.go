package apperror

import "errors"

var (
	ErrInvalidInput     = errors.New("input is not a number")
	ErrInvalidCell      = errors.New("invalid cell position")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input is closed")
)
