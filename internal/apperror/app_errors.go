package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("cell index out of range")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameNotFound     = errors.New("game not found")
)
