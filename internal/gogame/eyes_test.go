package gogame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encloseEdge walls off the first n points of the bottom row of a 9x9 board with player1 stones.
func encloseEdge(t *testing.T, n int) *Board {
	t.Helper()

	b := newTestBoard(t, 9)
	for c := 0; c <= n; c++ {
		setStones(b, true, loc(7, c))
	}

	setStones(b, true, loc(8, n))

	return b
}

func TestBoard_Eyes(t *testing.T) {
	t.Run("Straight five bordered by one group is a living eye", func(t *testing.T) {
		// Given: five empty points on the edge enclosed by player1
		b := encloseEdge(t, 5)

		// When: the board is analyzed
		b.updateTerritory(false)

		// Then: the group has one eye shaped E11222, which guarantees life
		g := b.at(loc(7, 0)).Group()
		require.Len(t, g.Eyes(), 1)

		eye := g.Eyes()[0]
		assert.Equal(t, "E11222", eye.Shape().Name)
		assert.True(t, eye.Shape().Life)
		assert.Equal(t, StatusAlive, eye.Status())
		assert.InDelta(t, 2.0, eye.Value(), 1e-9)
		assert.Equal(t, 5, eye.Size())
		assert.InDelta(t, 1.0, g.Health(), 1e-9)

		// When: the worth is computed
		worth := Worth(b, DefaultWeights())

		// Then: every eye point is credited to player1
		for c := range 5 {
			assert.InDelta(t, 1.0, b.at(loc(8, c)).ScoreContribution(), 1e-9)
		}

		assert.Positive(t, worth)
	})

	t.Run("Single corner point is a true eye unless the diagonal is taken", func(t *testing.T) {
		// Given: a corner point with its diagonal held by player1
		b := newTestBoard(t, 9)
		setStones(b, true, loc(0, 1), loc(1, 0), loc(1, 1))
		b.updateTerritory(false)

		// Then: a single true eye
		eye := b.at(loc(0, 0)).Eye()
		require.NotNil(t, eye)
		assert.Equal(t, "E0", eye.Shape().Name)
		assert.InDelta(t, 1.0, eye.Value(), 1e-9)

		// Given: the diagonal held by player2 instead
		b = newTestBoard(t, 9)
		setStones(b, true, loc(0, 1), loc(1, 0))
		setStones(b, false, loc(1, 1))
		b.updateTerritory(false)

		// Then: a false eye
		eye = b.at(loc(0, 0)).Eye()
		require.NotNil(t, eye)
		assert.Equal(t, FalseEye, eye.Shape().Type)
		assert.InDelta(t, 0.19, eye.Value(), 1e-9)
	})

	t.Run("Straight three is unsettled and nakade once the vital point is filled", func(t *testing.T) {
		// Given: three enclosed points
		b := encloseEdge(t, 3)
		b.updateTerritory(false)

		// Then: E112, unsettled
		eye := b.at(loc(8, 1)).Eye()
		require.NotNil(t, eye)
		assert.Equal(t, "E112", eye.Shape().Name)
		assert.Equal(t, StatusUnsettled, eye.Status())

		// When: player2 plays the middle point
		setStones(b, false, loc(8, 1))
		b.updateTerritory(false)

		// Then: reduced to one eye
		eye = b.at(loc(8, 1)).Eye()
		require.NotNil(t, eye)
		assert.Equal(t, StatusNakade, eye.Status())
		assert.InDelta(t, 1.0, eye.Value(), 1e-9)
	})

	t.Run("Straight four lives and is unsettled with one vital point filled", func(t *testing.T) {
		// Given: four enclosed points
		b := encloseEdge(t, 4)
		b.updateTerritory(false)

		// Then: E1122, alive
		eye := b.at(loc(8, 0)).Eye()
		require.NotNil(t, eye)
		assert.Equal(t, "E1122", eye.Shape().Name)
		assert.Equal(t, StatusAlive, eye.Status())

		// When: one middle point is filled
		setStones(b, false, loc(8, 1))
		b.updateTerritory(false)

		// Then: unsettled
		assert.Equal(t, StatusUnsettled, b.at(loc(8, 0)).Eye().Status())
	})

	t.Run("Large open areas are not eyes", func(t *testing.T) {
		// Given: a lone stone
		b := newTestBoard(t, 9)
		setStones(b, true, loc(4, 4))

		// When: analyzed
		b.updateTerritory(false)

		// Then: no eyes anywhere
		assert.Empty(t, b.at(loc(4, 4)).Group().Eyes())
		assert.False(t, b.at(loc(0, 0)).IsInEye())
	})

	t.Run("Shape table lookup", func(t *testing.T) {
		s, ok := LookupEyeShape("E1122222")

		require.True(t, ok)
		assert.Equal(t, 7, s.Size)
		assert.Equal(t, GuaranteedTwoEyes, s.Type)

		_, ok = LookupEyeShape("E9")
		assert.False(t, ok)
	})
}
