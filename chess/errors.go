package chess

import "errors"

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidMove     = errors.New("invalid move notation")
	ErrNoPiece         = errors.New("no piece")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game over")
	ErrInvalidFEN      = errors.New("invalid FEN")
	ErrInvalidSetup    = errors.New("invalid setup")
)
