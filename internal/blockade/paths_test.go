package blockade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

func TestBoard_FindShortestPaths(t *testing.T) {
	t.Run("Finds one shortest path to each opponent home", func(t *testing.T) {
		// Given: The starting position
		b := newTestBoard(t, DefaultRows, DefaultCols)
		before := b.String()

		// When: Searching from player1's first pawn
		paths := b.FindShortestPaths(loc(10, 3))

		// Then: The straight run up the column is 4 steps and the far home 6
		require.Len(t, paths, NumHomes)
		lengths := []int{paths[0].Len(), paths[1].Len()}
		assert.ElementsMatch(t, []int{4, 6}, lengths)

		for _, p := range paths {
			assert.Equal(t, loc(10, 3), p.FirstStep().From)
			assert.True(t, b.at(p[len(p)-1].To).IsOpponentHome(true))

			for i := 1; i < len(p); i++ {
				assert.Equal(t, p[i-1].To, p[i].From)
			}
		}

		assert.Equal(t, before, b.String())
	})

	t.Run("A pawn on an opponent home has a single empty path", func(t *testing.T) {
		b := emptyBoard(t, DefaultRows, DefaultCols)
		placePawn(b, loc(3, 7), true)

		paths := b.FindShortestPaths(loc(3, 7))

		require.Len(t, paths, 1)
		assert.Zero(t, paths[0].Len())
		assert.Nil(t, paths[0].FirstStep())
	})

	t.Run("An empty cell has no paths", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)

		assert.Empty(t, b.FindShortestPaths(loc(7, 5)))
	})

	t.Run("Opponent paths belong to the other side", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)

		paths := b.FindAllOpponentShortestPaths(true)

		require.Len(t, paths, NumHomes*NumHomes)
		for _, p := range paths {
			assert.False(t, p.FirstStep().Player1())
		}
	})
}

func TestBoard_FindPlayerPathLengths(t *testing.T) {
	t.Run("Starting position is balanced", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)

		lengths := b.FindPlayerPathLengths()

		require.True(t, lengths.IsValid())
		expected := PathLengths{Shortest: 4, SecondShortest: 4, Furthest: 6}
		assert.Equal(t, expected, lengths.Player1)
		assert.Equal(t, expected, lengths.Player2)
		assert.Zero(t, Worth(lengths, DefaultWeights()))
	})

	t.Run("Advancing a pawn favors its owner by the closest weight", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)
		require.NoError(t, b.MakeMove(NewMove(loc(10, 3), loc(8, 3), true, nil)))

		lengths := b.FindPlayerPathLengths()

		assert.Equal(t, PathLengths{Shortest: 3, SecondShortest: 4, Furthest: 6}, lengths.Player1)
		assert.Equal(t, 8, Worth(lengths, DefaultWeights()))
	})

	t.Run("A walled-in pawn makes the position invalid", func(t *testing.T) {
		// Given: Three walls around player1's pawn at (10,3)
		b := newTestBoard(t, DefaultRows, DefaultCols)
		placeWall(t, b, loc(9, 2), loc(9, 3))
		placeWall(t, b, loc(10, 3), loc(10, 4))
		placeWall(t, b, loc(10, 2), loc(11, 2))
		require.True(t, b.FindPlayerPathLengths().IsValid())

		fourth, err := NewWall(loc(9, 3), loc(10, 3))
		require.NoError(t, err)

		// When: Checking the wall that closes the box
		err = b.CheckLegalWallPlacement(fourth)

		// Then: It is refused and nothing stays on the board
		require.ErrorIs(t, err, apperror.ErrIllegalWall)
		assert.False(t, b.Position(10, 3).IsEastBlocked())
		assert.Len(t, b.Walls(), 3)

		// When: Forcing it in anyway
		b.placeWall(fourth)

		// Then: The pawn has no paths and the lengths are invalid
		assert.Empty(t, b.FindShortestPaths(loc(10, 3)))
		assert.False(t, b.FindPlayerPathLengths().IsValid())
	})

	t.Run("A win keeps the position valid", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)
		relocate(t, b, loc(3, 7), loc(0, 10))
		relocate(t, b, loc(10, 7), loc(3, 7))

		lengths := b.FindPlayerPathLengths()

		assert.True(t, lengths.IsValid())
		assert.Zero(t, lengths.Player1.Shortest)
		assert.Equal(t, 4096, Worth(lengths, DefaultWeights()))
	})
}

func TestBoard_CheckLegalWallPlacement(t *testing.T) {
	t.Run("Open wall is legal", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)
		w, _ := NewWall(loc(6, 5), loc(6, 6))

		require.NoError(t, b.CheckLegalWallPlacement(w))
		assert.Empty(t, b.Walls())
	})

	t.Run("Overlapping wall is illegal", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)
		placeWall(t, b, loc(6, 5), loc(6, 6))
		w, _ := NewWall(loc(6, 6), loc(6, 7))

		require.ErrorIs(t, b.CheckLegalWallPlacement(w), apperror.ErrIllegalWall)
	})

	t.Run("Crossing wall is illegal", func(t *testing.T) {
		b := newTestBoard(t, DefaultRows, DefaultCols)
		placeWall(t, b, loc(5, 5), loc(5, 6))
		w, _ := NewWall(loc(5, 5), loc(6, 5))

		require.ErrorIs(t, b.CheckLegalWallPlacement(w), apperror.ErrIllegalWall)
	})

	t.Run("Wall that cuts the board in two is illegal", func(t *testing.T) {
		b := newTestBoard(t, 4, 4)
		placeWall(t, b, loc(1, 0), loc(1, 1))
		w, _ := NewWall(loc(1, 2), loc(1, 3))

		require.ErrorIs(t, b.CheckLegalWallPlacement(w), apperror.ErrIllegalWall)
	})
}

func TestBoard_WallsForMove(t *testing.T) {
	t.Run("Double step east offers both walls on each crossed edge", func(t *testing.T) {
		b := emptyBoard(t, DefaultRows, DefaultCols)
		m := NewMove(loc(6, 5), loc(6, 7), false, nil)

		walls := b.WallsForMove(m, nil)

		require.Len(t, walls, 4)
		for _, w := range walls {
			assert.True(t, w.Vertical)

			b.placeWall(w)
			assert.True(t, b.IsMoveBlocked(m.From, m.Direction), "%s should block", w)
			b.removeWall(w)
		}
	})

	t.Run("Walls that would block our own path are skipped", func(t *testing.T) {
		b := emptyBoard(t, DefaultRows, DefaultCols)
		m := NewMove(loc(6, 5), loc(6, 7), false, nil)
		own := Path{NewMove(loc(7, 5), loc(7, 7), true, nil)}

		walls := b.WallsForMove(m, []Path{own})

		assert.Len(t, walls, 2)
	})

	t.Run("Open diagonal offers the two centre walls", func(t *testing.T) {
		b := emptyBoard(t, DefaultRows, DefaultCols)
		m := NewMove(loc(6, 5), loc(5, 6), false, nil)

		walls := b.WallsForMove(m, nil)

		require.Len(t, walls, 2)
		for _, w := range walls {
			b.placeWall(w)
			assert.True(t, b.IsMoveBlocked(m.From, NorthEast), "%s should block", w)
			b.removeWall(w)
		}
	})
}
