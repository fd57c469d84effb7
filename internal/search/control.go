package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

// Checkpoint is consulted by strategies before each node.
type Checkpoint interface {
	Wait(ctx context.Context) error
}

type contextCheckpoint struct{}

func (contextCheckpoint) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrSearchCancelled, err)
	}

	return nil
}

// gate blocks a paused search until it is continued, stepped or cancelled.
type gate struct {
	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
	steps  int
}

func newGate() *gate {
	g := &gate{}
	g.cond = sync.NewCond(&g.mu)

	return g
}

func (that *gate) Wait(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for that.paused && that.steps == 0 {
		if ctx.Err() != nil {
			break
		}

		that.cond.Wait()
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrSearchCancelled, err)
	}

	if that.paused {
		that.steps--
	}

	return nil
}

// watch wakes waiters when ctx is done. The returned func stops watching.
func (that *gate) watch(ctx context.Context) func() bool {
	return context.AfterFunc(ctx, func() {
		that.mu.Lock()
		that.cond.Broadcast()
		that.mu.Unlock()
	})
}

func (that *gate) pause() {
	that.mu.Lock()
	that.paused = true
	that.steps = 0
	that.mu.Unlock()
}

func (that *gate) resume() {
	that.mu.Lock()
	that.paused = false
	that.steps = 0
	that.cond.Broadcast()
	that.mu.Unlock()
}

// step lets n more nodes through, then the search is paused again.
func (that *gate) step(n int) {
	that.mu.Lock()
	that.steps += n
	that.cond.Broadcast()
	that.mu.Unlock()
}

func (that *gate) isPaused() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.paused
}
