package gogame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

func loc(r, c int) entity.Location {
	return entity.NewLocation(r, c)
}

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()

	b, err := NewBoard(size, 0)
	require.NoError(t, err)

	return b
}

// setStones puts stones straight on the board without recording moves or capturing.
func setStones(b *Board, player1 bool, locs ...entity.Location) {
	for _, l := range locs {
		b.place(b.at(l), player1)
	}

	b.rebuildGroups()
}

func play(t *testing.T, b *Board, player1 bool, r, c int) *Move {
	t.Helper()

	m := NewMove(loc(r, c), player1)
	require.NoError(t, b.MakeMove(m))

	return m
}

func requireValid(t *testing.T, b *Board) {
	t.Helper()

	require.NoError(t, NewValidator(b).Validate())
}
