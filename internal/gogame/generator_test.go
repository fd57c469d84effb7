package gogame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

func locations(moves []entity.Move) []entity.Location {
	out := make([]entity.Location, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.(*Move).To)
	}

	return out
}

func TestMoveGenerator_GenerateMoves(t *testing.T) {
	t.Run("Every point of an empty board, board untouched", func(t *testing.T) {
		// Given: an empty 5x5 board
		b := newTestBoard(t, 5)
		gen := NewMoveGenerator(b)

		// When: generating the first moves
		moves, err := gen.GenerateMoves(nil, DefaultWeights())
		require.NoError(t, err)

		// Then: 25 stone moves for player1 and no pass yet
		assert.Len(t, moves, 25)
		for _, m := range moves {
			assert.True(t, m.Player1())
			assert.False(t, m.IsPass())
		}

		assert.Zero(t, b.HashKey())
		assert.Equal(t, 0, b.MoveList().Len())
	})

	t.Run("Skips suicide", func(t *testing.T) {
		// Given: a corner surrounded by player1, player2 to move
		b := newTestBoard(t, 5)
		setStones(b, true, loc(0, 1), loc(1, 0))
		last := NewMove(loc(1, 0), true)

		// When: generating
		moves, err := NewMoveGenerator(b).GenerateMoves(last, DefaultWeights())
		require.NoError(t, err)

		// Then: the corner is not offered
		assert.NotContains(t, locations(moves), loc(0, 0))
		assert.Len(t, moves, 22)
	})

	t.Run("Skips the immediate ko take-back", func(t *testing.T) {
		// Given: player1 just took a ko
		b := newTestBoard(t, 5)
		setStones(b, true, loc(0, 1), loc(1, 0), loc(2, 1))
		setStones(b, false, loc(1, 1), loc(0, 2), loc(2, 2), loc(1, 3))
		last := play(t, b, true, 1, 2)

		// When: player2's moves are generated
		moves, err := NewMoveGenerator(b).GenerateMoves(last, DefaultWeights())
		require.NoError(t, err)

		// Then: retaking is not among them
		assert.NotContains(t, locations(moves), loc(1, 1))
		assert.Contains(t, locations(moves), loc(4, 4))
		requireValid(t, b)
	})

	t.Run("Pass is offered later in the game", func(t *testing.T) {
		// Given: more than rows+cols moves played
		b := newTestBoard(t, 5)
		player1 := true

		for range 11 {
			require.NoError(t, b.MakeMove(NewPassMove(player1, 0)))
			player1 = !player1
		}

		// When: generating
		moves, err := NewMoveGenerator(b).GenerateMoves(b.MoveList().Last(), DefaultWeights())
		require.NoError(t, err)

		// Then: the last candidate is a pass for player2
		last := moves[len(moves)-1]
		assert.True(t, last.IsPass())
		assert.False(t, last.Player1())
	})
}

func TestMoveGenerator_GenerateUrgentMoves(t *testing.T) {
	// Given: a player2 stone in atari
	b := newTestBoard(t, 5)
	setStones(b, false, loc(0, 0))
	setStones(b, true, loc(0, 1))

	// When: player1's urgent moves are generated
	moves, err := NewMoveGenerator(b).GenerateUrgentMoves(nil, DefaultWeights())
	require.NoError(t, err)

	// Then: only the capture is urgent
	require.Len(t, moves, 1)
	assert.Equal(t, loc(1, 0), moves[0].(*Move).To)
	assert.True(t, moves[0].IsUrgent())
	assert.Equal(t, []entity.Location{loc(0, 0)}, moves[0].(*Move).Captures())
}
