package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// State of a Searcher.
type State int32

const (
	StateIdle State = iota
	StateSearching
	StatePaused
	StateDone
)

func (that State) String() string {
	switch that {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	}

	return fmt.Sprintf("state(%d)", int32(that))
}

// DiagnosticsSink receives the board snapshot of a failed search.
type DiagnosticsSink interface {
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error
}

// Result is delivered once per RequestMove.
type Result struct {
	Move            entity.Move
	Value           int
	Tree            *TreeNode
	MovesConsidered int64
	Elapsed         time.Duration
	Snapshot        *entity.Snapshot
	Err             error
}

// Searcher runs one search at a time in its own goroutine and lets callers
// pause, step, continue or cancel it. The board belongs to the search until
// the result is delivered.
type Searcher struct {
	logger     *slog.Logger
	searchable Searchable
	strategy   Strategy
	profiler   *Profiler
	sink       DiagnosticsSink
	opts       Options

	gate   *gate
	state  atomic.Int32
	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSearcher(
	logger *slog.Logger,
	searchable Searchable,
	weights *entity.Weights,
	opts Options,
	sink DiagnosticsSink,
) (*Searcher, error) {
	g := newGate()
	profiler := NewProfiler()

	strategy, err := NewStrategy(logger, opts, searchable, weights, profiler, g)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	return &Searcher{
		logger:     logger.With("component", "searcher"),
		searchable: searchable,
		strategy:   strategy,
		profiler:   profiler,
		sink:       sink,
		opts:       opts,
		gate:       g,
	}, nil
}

// RequestMove starts searching for the reply to the last move on the board.
// It returns at once; the result arrives on the channel.
func (that *Searcher) RequestMove(ctx context.Context) (<-chan Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if st := that.State(); st == StateSearching || st == StatePaused {
		return nil, apperror.ErrSearchInProgress
	}

	searchCtx, cancel := context.WithCancel(ctx)
	that.cancel = cancel
	that.gate.resume()
	that.state.Store(int32(StateSearching))

	results := make(chan Result, 1)
	lastMove := that.searchable.MoveList().Last()

	go func() {
		defer cancel()

		stop := that.gate.watch(searchCtx)
		defer stop()

		res := that.run(searchCtx, lastMove)

		if res.Snapshot != nil && that.sink != nil {
			if err := that.sink.SaveSnapshot(context.WithoutCancel(ctx), res.Snapshot); err != nil {
				that.logger.Error("failed to save diagnostic snapshot", "id", res.Snapshot.ID, "error", err)
			}
		}

		that.state.Store(int32(StateDone))
		results <- res
		close(results)
	}()

	return results, nil
}

func (that *Searcher) run(ctx context.Context, lastMove entity.Move) (res Result) {
	started := time.Now()
	base := that.strategy.base()

	var root *TreeNode
	if that.opts.BuildTree {
		root = NewTreeNode(lastMove)
	}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%w: panic during search: %v", apperror.ErrInvariantViolation, r)
			res.Snapshot = Snapshot(that.searchable, res.Err)
			that.logger.Error("search panicked", "error", res.Err, "snapshot", res.Snapshot.ID)
		}

		if err := base.unwind(); err != nil {
			that.logger.Error("failed to restore board after search", "error", err)
			res.Err = errors.Join(res.Err, err)
		}

		res.MovesConsidered = that.strategy.MovesConsidered()
		res.Elapsed = time.Since(started)
	}()

	move, value, err := that.strategy.Search(ctx, lastMove, root)
	if err != nil {
		res.Err = err
		if !errors.Is(err, apperror.ErrSearchCancelled) {
			res.Snapshot = base.failure
			that.logger.Error("search failed", "error", err)
		}

		return res
	}

	root.AllocateSpace()

	that.logger.Info("move found",
		"move", move,
		"value", value,
		"elapsed", time.Since(started),
		"moves_considered", that.strategy.MovesConsidered(),
	)

	return Result{Move: move, Value: value, Tree: root}
}

func (that *Searcher) Pause() error {
	if !that.state.CompareAndSwap(int32(StateSearching), int32(StatePaused)) {
		return apperror.ErrNotSearching
	}

	that.gate.pause()

	return nil
}

func (that *Searcher) Continue() error {
	if !that.state.CompareAndSwap(int32(StatePaused), int32(StateSearching)) {
		return apperror.ErrNotPaused
	}

	that.gate.resume()

	return nil
}

// Step advances a paused search by n nodes.
func (that *Searcher) Step(n int) error {
	if that.State() != StatePaused {
		return apperror.ErrNotPaused
	}

	that.gate.step(n)

	return nil
}

// Cancel aborts the running search. The board is restored before the result is sent.
func (that *Searcher) Cancel() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if st := that.State(); st != StateSearching && st != StatePaused {
		return apperror.ErrNotSearching
	}

	that.cancel()

	return nil
}

func (that *Searcher) State() State {
	return State(that.state.Load())
}

func (that *Searcher) PercentDone() int {
	return that.strategy.PercentDone()
}

func (that *Searcher) MovesConsidered() int64 {
	return that.strategy.MovesConsidered()
}

func (that *Searcher) Profiler() *Profiler {
	return that.profiler
}
