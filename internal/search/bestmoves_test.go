package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

func valuedMoves(values ...int) []entity.Move {
	moves := make([]entity.Move, 0, len(values))
	for i, v := range values {
		moves = append(moves, &pileMove{take: i + 1, value: v})
	}

	return moves
}

func values(moves []entity.Move) []int {
	out := make([]int, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Value())
	}

	return out
}

func TestBestMoves(t *testing.T) {
	t.Run("Sorts descending for player1 and ascending for player2", func(t *testing.T) {
		opts := DefaultOptions()
		moves := valuedMoves(3, -1, 7, 0)

		assert.Equal(t, []int{7, 3, 0, -1}, values(BestMoves(moves, true, opts)))
		assert.Equal(t, []int{-1, 0, 3, 7}, values(BestMoves(moves, false, opts)))
	})

	t.Run("Keeps generation order for equal values", func(t *testing.T) {
		moves := valuedMoves(5, 5, 5)

		best := BestMoves(moves, true, DefaultOptions())

		assert.Equal(t, 1, best[0].(*pileMove).take)
		assert.Equal(t, 2, best[1].(*pileMove).take)
		assert.Equal(t, 3, best[2].(*pileMove).take)
	})

	t.Run("Truncates long lists to the requested percentage", func(t *testing.T) {
		opts := DefaultOptions()
		opts.PercentBestMoves = 50
		opts.MinBestMoves = 4

		moves := valuedMoves(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)

		best := BestMoves(moves, true, opts)

		assert.Len(t, best, 11)
		assert.Equal(t, 20, best[0].Value())
	})

	t.Run("Never cuts below the minimum", func(t *testing.T) {
		opts := DefaultOptions()
		opts.PercentBestMoves = 10
		opts.MinBestMoves = 6

		best := BestMoves(valuedMoves(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), true, opts)

		assert.Len(t, best, 6)
	})

	t.Run("Leaves short lists alone", func(t *testing.T) {
		opts := DefaultOptions()
		opts.PercentBestMoves = 10
		opts.MinBestMoves = 10

		assert.Len(t, BestMoves(valuedMoves(1, 2, 3, 4, 5), true, opts), 5)
	})

	t.Run("Does not reorder the input", func(t *testing.T) {
		moves := valuedMoves(1, 9, 5)

		BestMoves(moves, true, DefaultOptions())

		assert.Equal(t, []int{1, 9, 5}, values(moves))
	})
}
