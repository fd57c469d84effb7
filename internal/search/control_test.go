package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

func TestGate(t *testing.T) {
	t.Run("Passes freely when not paused", func(t *testing.T) {
		require.NoError(t, newGate().Wait(context.Background()))
	})

	t.Run("Lets exactly the stepped nodes through", func(t *testing.T) {
		// Given: A paused gate stepped by two
		g := newGate()
		g.pause()
		g.step(2)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		stop := g.watch(ctx)
		defer stop()

		// Then: Two waits pass, the third blocks
		require.NoError(t, g.Wait(ctx))
		require.NoError(t, g.Wait(ctx))

		done := make(chan error, 1)
		go func() { done <- g.Wait(ctx) }()

		select {
		case <-done:
			t.Fatal("wait returned while paused")
		case <-time.After(50 * time.Millisecond):
		}

		// When: Resuming
		g.resume()

		// Then: The blocked wait is released
		require.NoError(t, <-done)
	})

	t.Run("Cancellation wakes a paused wait", func(t *testing.T) {
		g := newGate()
		g.pause()

		ctx, cancel := context.WithCancel(context.Background())
		stop := g.watch(ctx)
		defer stop()

		done := make(chan error, 1)
		go func() { done <- g.Wait(ctx) }()

		cancel()

		require.ErrorIs(t, <-done, apperror.ErrSearchCancelled)
	})
}
