package blockade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveGenerator_GenerateMoves(t *testing.T) {
	t.Run("Opening moves step along shortest paths and leave the board untouched", func(t *testing.T) {
		// Given: The starting position on a small board
		b := newTestBoard(t, 8, 7)
		gen := NewMoveGenerator(b)
		weights := DefaultWeights()
		before, hash := b.String(), b.HashKey()

		// When: Generating player1's moves
		moves, err := gen.GenerateMoves(nil, weights)

		// Then: Every move is player1's, unique, and valued as the position it leads to
		require.NoError(t, err)
		require.NotEmpty(t, moves)

		for i, m := range moves {
			bm := m.(*Move)
			assert.True(t, bm.Player1())
			assert.Contains(t, b.Pawns(true), bm.From)

			for _, other := range moves[i+1:] {
				assert.False(t, bm.SameAs(other.(*Move)), "duplicate %s", bm)
			}

			require.NoError(t, b.MakeMove(bm))
			assert.Equal(t, Worth(b.FindPlayerPathLengths(), weights), bm.Value(), bm.String())
			assert.True(t, b.FindPlayerPathLengths().IsValid())
			b.UndoMove()
		}

		assert.Equal(t, before, b.String())
		assert.Equal(t, hash, b.HashKey())
	})

	t.Run("Walls chosen lengthen the opponent or keep them in check", func(t *testing.T) {
		b := newTestBoard(t, 8, 7)
		moves, err := NewMoveGenerator(b).GenerateMoves(nil, DefaultWeights())
		require.NoError(t, err)

		withWall := 0
		for _, m := range moves {
			if m.(*Move).Wall != nil {
				withWall++
			}
		}

		assert.Positive(t, withWall)
	})

	t.Run("Second player answers with its own pawns", func(t *testing.T) {
		b := newTestBoard(t, 8, 7)
		first := NewMove(loc(6, 1), loc(4, 1), true, nil)
		require.NoError(t, b.MakeMove(first))

		moves, err := NewMoveGenerator(b).GenerateMoves(first, DefaultWeights())

		require.NoError(t, err)
		for _, m := range moves {
			assert.False(t, m.Player1())
		}
	})
}

func TestMoveGenerator_GenerateUrgentMoves(t *testing.T) {
	t.Run("Only winning steps are urgent", func(t *testing.T) {
		// Given: A player1 pawn two steps below an empty player2 home
		b := newTestBoard(t, 8, 7)
		relocate(t, b, loc(1, 1), loc(0, 5))
		relocate(t, b, loc(6, 1), loc(3, 1))

		// When: Asking for urgent moves
		moves, err := NewMoveGenerator(b).GenerateUrgentMoves(nil, DefaultWeights())

		// Then: The step onto the home is urgent and wins
		require.NoError(t, err)
		require.NotEmpty(t, moves)

		for _, m := range moves {
			assert.True(t, m.IsUrgent())
			assert.Equal(t, 4096, m.Value())
			assert.True(t, b.at(m.(*Move).To).IsOpponentHome(true))
		}
	})

	t.Run("Quiet positions have none", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)

		moves, err := NewMoveGenerator(b).GenerateUrgentMoves(nil, DefaultWeights())

		require.NoError(t, err)
		assert.Empty(t, moves)
	})
}
