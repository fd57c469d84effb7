package apperror

import "errors"

var (
	ErrInvariantViolation = errors.New("board invariant violated")
	ErrEmptyMoveList      = errors.New("no moves generated for a position that is not terminal")
	ErrIllegalMove        = errors.New("illegal move")
	ErrIllegalWall        = errors.New("illegal wall placement")
	ErrOffBoard           = errors.New("location is off the board")

	ErrSearchInProgress = errors.New("a search is already in progress")
	ErrNotSearching     = errors.New("no search is running")
	ErrNotPaused        = errors.New("search is not paused")
	ErrSearchCancelled  = errors.New("search was cancelled")

	ErrInvalidOptions = errors.New("invalid search options")
	ErrUnknownGame    = errors.New("unknown game")
)
