package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

func receive(t *testing.T, results <-chan Result) Result {
	t.Helper()

	select {
	case res := <-results:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("search did not deliver a result")
	}

	return Result{}
}

func TestSearcher_RequestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers the move and returns to a reusable state", func(t *testing.T) {
		// Given: An idle searcher over a pile of 9
		g := newPileGame(9)
		opts := DefaultOptions()
		opts.LookAhead = 3
		opts.BuildTree = true

		searcher, err := NewSearcher(discardLogger(), g, nil, opts, nil)
		require.NoError(t, err)
		assert.Equal(t, StateIdle, searcher.State())

		// When: Requesting a move
		results, err := searcher.RequestMove(ctx)
		require.NoError(t, err)
		res := receive(t, results)

		// Then: A move, its value and the tree come back and the board is unchanged
		require.NoError(t, res.Err)
		require.NotNil(t, res.Move)
		assert.Equal(t, bruteForce(g, nil, 3), res.Value)
		assert.Equal(t, StateDone, searcher.State())
		assert.Equal(t, 9, g.pile)
		assert.Equal(t, 0, g.moves.Len())

		require.NotNil(t, res.Tree)
		assert.Equal(t, res.Move, res.Tree.SelectedLine()[0])
		assert.Equal(t, res.Value, res.Tree.Value)
		assert.Positive(t, res.MovesConsidered)
		assert.Equal(t, 1, searcher.Profiler().Count(PhaseSearch))

		// When: Requesting again after the first search is done
		results, err = searcher.RequestMove(ctx)

		// Then: A new search starts
		require.NoError(t, err)
		require.NoError(t, receive(t, results).Err)
	})

	t.Run("Rejects control calls without a running search", func(t *testing.T) {
		searcher, err := NewSearcher(discardLogger(), newPileGame(4), nil, DefaultOptions(), nil)
		require.NoError(t, err)

		require.ErrorIs(t, searcher.Pause(), apperror.ErrNotSearching)
		require.ErrorIs(t, searcher.Continue(), apperror.ErrNotPaused)
		require.ErrorIs(t, searcher.Step(1), apperror.ErrNotPaused)
		require.ErrorIs(t, searcher.Cancel(), apperror.ErrNotSearching)
	})

	t.Run("Rejects invalid options", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Method = "alphazero"

		_, err := NewSearcher(discardLogger(), newPileGame(4), nil, opts, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidOptions)
	})
}

// blockedSearch starts a search that parks inside the first move generation until released.
func blockedSearch(t *testing.T, g *pileGame, opts Options) (*Searcher, <-chan Result, chan struct{}) {
	t.Helper()

	started := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once
	g.hook = func() {
		once.Do(func() {
			close(started)
			<-release
		})
	}

	searcher, err := NewSearcher(discardLogger(), g, nil, opts, nil)
	require.NoError(t, err)

	results, err := searcher.RequestMove(context.Background())
	require.NoError(t, err)

	<-started

	return searcher, results, release
}

func TestSearcher_PauseAndCancel(t *testing.T) {
	// Given: A search held at its first node
	g := newPileGame(12)
	opts := DefaultOptions()
	opts.LookAhead = 4

	searcher, results, release := blockedSearch(t, g, opts)

	// When: Pausing and letting it reach the next node boundary
	require.NoError(t, searcher.Pause())
	close(release)

	// Then: It stays paused and refuses a second request
	assert.Equal(t, StatePaused, searcher.State())
	_, err := searcher.RequestMove(context.Background())
	require.ErrorIs(t, err, apperror.ErrSearchInProgress)

	// When: Cancelling the paused search
	require.NoError(t, searcher.Cancel())
	res := receive(t, results)

	// Then: The result reports cancellation and every applied move was undone
	require.ErrorIs(t, res.Err, apperror.ErrSearchCancelled)
	assert.Nil(t, res.Move)
	assert.Nil(t, res.Snapshot)
	assert.Equal(t, 12, g.pile)
	assert.Equal(t, 0, g.moves.Len())
}

func TestSearcher_StepAndContinue(t *testing.T) {
	// Given: A paused search
	g := newPileGame(10)
	opts := DefaultOptions()
	opts.LookAhead = 3

	searcher, results, release := blockedSearch(t, g, opts)
	require.NoError(t, searcher.Pause())
	close(release)

	// When: Stepping a few nodes, then continuing
	require.NoError(t, searcher.Step(2))
	assert.Equal(t, StatePaused, searcher.State())
	require.NoError(t, searcher.Continue())

	// Then: The search completes normally
	res := receive(t, results)
	require.NoError(t, res.Err)
	assert.Equal(t, bruteForce(g, nil, 3), res.Value)
	assert.Equal(t, 10, g.pile)
}

func TestSearcher_ContextCancelled(t *testing.T) {
	// Given: A search whose caller context gets cancelled while it is paused
	g := newPileGame(10)

	started := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once
	g.hook = func() {
		once.Do(func() {
			close(started)
			<-release
		})
	}

	searcher, err := NewSearcher(discardLogger(), g, nil, DefaultOptions(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	results, err := searcher.RequestMove(ctx)
	require.NoError(t, err)

	<-started
	require.NoError(t, searcher.Pause())
	close(release)

	// When: The caller gives up
	cancel()

	// Then: The waiting search wakes and unwinds
	res := receive(t, results)
	require.ErrorIs(t, res.Err, apperror.ErrSearchCancelled)
	assert.Equal(t, 10, g.pile)
	assert.Equal(t, 0, g.moves.Len())
}

func TestSearcher_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("Recovers a panic, snapshots the board, then restores it", func(t *testing.T) {
		// Given: A game that panics when the pile reaches 8
		g := newPileGame(10)
		g.panicAt = 8
		sink := &recordingSink{}

		searcher, err := NewSearcher(discardLogger(), g, nil, DefaultOptions(), sink)
		require.NoError(t, err)

		// When: Searching into that position
		results, err := searcher.RequestMove(ctx)
		require.NoError(t, err)
		res := receive(t, results)

		// Then: The failure is reported with the board as it was at the panic
		require.ErrorIs(t, res.Err, apperror.ErrInvariantViolation)
		require.NotNil(t, res.Snapshot)
		assert.Equal(t, "pile=8", res.Snapshot.Board)
		assert.Len(t, res.Snapshot.Moves, 1)

		require.Len(t, sink.snapshots, 1)
		assert.Equal(t, res.Snapshot.ID, sink.snapshots[0].ID)

		assert.Equal(t, 10, g.pile)
		assert.Equal(t, 0, g.moves.Len())
		assert.Equal(t, StateDone, searcher.State())
	})

	t.Run("Reports an empty move list as an invariant violation", func(t *testing.T) {
		g := newPileGame(10)
		g.emptyAt = 7
		sink := &recordingSink{}

		searcher, err := NewSearcher(discardLogger(), g, nil, DefaultOptions(), sink)
		require.NoError(t, err)

		results, err := searcher.RequestMove(ctx)
		require.NoError(t, err)
		res := receive(t, results)

		require.ErrorIs(t, res.Err, apperror.ErrEmptyMoveList)
		require.Len(t, sink.snapshots, 1)
		assert.Equal(t, "pile", sink.snapshots[0].Game)
		assert.Equal(t, "pile=7", sink.snapshots[0].Board)
		assert.Equal(t, 10, g.pile)
	})
}
