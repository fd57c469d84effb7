package search

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

// Method names a search algorithm.
type Method string

const (
	MethodNegamax       Method = "negamax"
	MethodMinimax       Method = "minimax"
	MethodNegamaxMemory Method = "negamax-memory"
)

const (
	// WinningValue is the sentinel magnitude of a decided position.
	WinningValue = 4096

	defaultMaxQuiescentDepth = 4
	infinity                 = 1 << 30
)

// Options control a single search.
type Options struct {
	Method            Method
	LookAhead         int
	PercentBestMoves  int
	MinBestMoves      int
	AlphaBeta         bool
	Quiescence        bool
	MaxQuiescentDepth int
	BuildTree         bool
}

func DefaultOptions() Options {
	return Options{
		Method:            MethodNegamax,
		LookAhead:         2,
		PercentBestMoves:  100,
		MinBestMoves:      10,
		AlphaBeta:         true,
		Quiescence:        false,
		MaxQuiescentDepth: defaultMaxQuiescentDepth,
	}
}

// Validate - checks the ranges of all options.
func (that Options) Validate() error {
	switch that.Method {
	case MethodNegamax, MethodMinimax, MethodNegamaxMemory:
	default:
		return fmt.Errorf("%w: unknown method %q", apperror.ErrInvalidOptions, that.Method)
	}

	if that.LookAhead < 1 {
		return fmt.Errorf("%w: look-ahead must be at least 1, got %d", apperror.ErrInvalidOptions, that.LookAhead)
	}

	if that.PercentBestMoves < 1 || that.PercentBestMoves > 100 {
		return fmt.Errorf("%w: percent best moves must be in 1..100, got %d", apperror.ErrInvalidOptions, that.PercentBestMoves)
	}

	if that.MinBestMoves < 1 {
		return fmt.Errorf("%w: min best moves must be at least 1, got %d", apperror.ErrInvalidOptions, that.MinBestMoves)
	}

	if that.Quiescence && that.MaxQuiescentDepth < 1 {
		return fmt.Errorf("%w: max quiescent depth must be at least 1, got %d", apperror.ErrInvalidOptions, that.MaxQuiescentDepth)
	}

	return nil
}
