package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

const defaultTableSize = 1 << 16

// player2ToMoveKey separates identical boards with different sides to move.
const player2ToMoveKey uint64 = 0x9e3779b97f4a7c15

// Strategy chooses a move for the player after lastMove.
// The returned value is from player1's perspective.
type Strategy interface {
	Search(ctx context.Context, lastMove entity.Move, root *TreeNode) (entity.Move, int, error)
	MovesConsidered() int64
	PercentDone() int

	base() *strategy
}

// NewStrategy - builds the strategy named by opts.Method.
func NewStrategy(
	logger *slog.Logger,
	opts Options,
	searchable Searchable,
	weights *entity.Weights,
	profiler *Profiler,
	checkpoint Checkpoint,
) (Strategy, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if checkpoint == nil {
		checkpoint = contextCheckpoint{}
	}

	s := &strategy{
		logger:     logger.With("component", "strategy", "method", string(opts.Method)),
		opts:       opts,
		searchable: searchable,
		weights:    weights,
		profiler:   profiler,
		checkpoint: checkpoint,
	}

	switch opts.Method {
	case MethodNegamax:
		return &negamaxStrategy{strategy: s}, nil
	case MethodNegamaxMemory:
		return &negamaxStrategy{strategy: s, table: NewTranspositionTable(defaultTableSize)}, nil
	case MethodMinimax:
		return &minimaxStrategy{strategy: s}, nil
	}

	return nil, fmt.Errorf("%w: unknown method %q", apperror.ErrInvalidOptions, opts.Method)
}

// strategy holds what every algorithm shares: the move stack, counters and the failure record.
type strategy struct {
	logger     *slog.Logger
	opts       Options
	searchable Searchable
	weights    *entity.Weights
	profiler   *Profiler
	checkpoint Checkpoint

	applied         []entity.Move
	movesConsidered atomic.Int64
	percentDone     atomic.Int32
	failure         *entity.Snapshot
}

func (that *strategy) base() *strategy {
	return that
}

func (that *strategy) MovesConsidered() int64 {
	return that.movesConsidered.Load()
}

func (that *strategy) PercentDone() int {
	return int(that.percentDone.Load())
}

func (that *strategy) begin() {
	that.movesConsidered.Store(0)
	that.percentDone.Store(0)
	that.failure = nil
	that.applied = that.applied[:0]
	that.profiler.Start(PhaseSearch)
}

func (that *strategy) end() {
	that.profiler.Stop(PhaseSearch)
}

func (that *strategy) wait(ctx context.Context) error {
	return that.checkpoint.Wait(ctx)
}

func (that *strategy) makeMove(m entity.Move) error {
	that.profiler.Start(PhaseMakeMove)
	err := that.searchable.MakeInternalMove(m)
	that.profiler.Stop(PhaseMakeMove)

	if err != nil {
		return that.fail(fmt.Errorf("make %s: %w", m, err))
	}

	that.applied = append(that.applied, m)

	return nil
}

func (that *strategy) undoMove(m entity.Move) error {
	that.profiler.Start(PhaseUndoMove)
	err := that.searchable.UndoInternalMove(m)
	that.profiler.Stop(PhaseUndoMove)

	if err != nil {
		return that.fail(fmt.Errorf("undo %s: %w", m, err))
	}

	that.applied = that.applied[:len(that.applied)-1]

	return nil
}

// generate returns the candidate moves for the side to move, best first and truncated.
func (that *strategy) generate(lastMove entity.Move) ([]entity.Move, error) {
	that.profiler.Start(PhaseGenerateMoves)
	moves, err := that.searchable.GenerateMoves(lastMove, that.weights)
	that.profiler.Stop(PhaseGenerateMoves)

	if err != nil {
		return nil, that.fail(fmt.Errorf("generate moves: %w", err))
	}

	if len(moves) == 0 {
		return nil, that.fail(fmt.Errorf("%w: %w after %v", apperror.ErrInvariantViolation, apperror.ErrEmptyMoveList, lastMove))
	}

	that.movesConsidered.Add(int64(len(moves)))

	return BestMoves(moves, playerToMove(lastMove), that.opts), nil
}

func (that *strategy) generateUrgent(lastMove entity.Move) ([]entity.Move, error) {
	that.profiler.Start(PhaseGenerateMoves)
	moves, err := that.searchable.GenerateUrgentMoves(lastMove, that.weights)
	that.profiler.Stop(PhaseGenerateMoves)

	if err != nil {
		return nil, that.fail(fmt.Errorf("generate urgent moves: %w", err))
	}

	that.movesConsidered.Add(int64(len(moves)))

	return moves, nil
}

// leafValue is the static value of the position after lastMove, from player1's perspective.
func (that *strategy) leafValue(lastMove entity.Move) int {
	if lastMove != nil {
		return lastMove.Value()
	}

	that.profiler.Start(PhaseCalcWorth)
	defer that.profiler.Stop(PhaseCalcWorth)

	return that.searchable.Worth(nil, that.weights)
}

func (that *strategy) terminal(lastMove entity.Move) bool {
	return lastMove != nil && that.searchable.Done(lastMove, false)
}

func (that *strategy) reportProgress(done, total int) {
	that.percentDone.Store(int32(100 * done / total))
}

// fail records a diagnostic snapshot the first time an invariant breaks, before any unwinding.
func (that *strategy) fail(err error) error {
	if that.failure == nil && !errors.Is(err, apperror.ErrSearchCancelled) {
		that.failure = Snapshot(that.searchable, err)
	}

	return err
}

// unwind undoes every move still applied, newest first.
func (that *strategy) unwind() error {
	for len(that.applied) > 0 {
		m := that.applied[len(that.applied)-1]
		that.applied = that.applied[:len(that.applied)-1]

		if err := that.searchable.UndoInternalMove(m); err != nil {
			return fmt.Errorf("unwind %s: %w", m, err)
		}
	}

	return nil
}

func (that *strategy) hashKey(player1ToMove bool) uint64 {
	key := that.searchable.HashKey()
	if !player1ToMove {
		key ^= player2ToMoveKey
	}

	return key
}

// perspective converts a value for the mover of m into player1's perspective.
func perspective(m entity.Move, value int) int {
	if m != nil && !m.Player1() {
		return -value
	}

	return value
}
