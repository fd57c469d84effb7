package blockade

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

func loc(r, c int) entity.Location {
	return entity.NewLocation(r, c)
}

func newTestBoard(t *testing.T, rows, cols int) *Board {
	t.Helper()

	b, err := NewBoard(rows, cols)
	require.NoError(t, err)

	return b
}

// emptyBoard keeps the homes but takes every pawn off.
func emptyBoard(t *testing.T, rows, cols int) *Board {
	t.Helper()

	b := newTestBoard(t, rows, cols)
	for i := range b.positions {
		b.positions[i].Piece = nil
	}

	b.pawns[0], b.pawns[1] = nil, nil
	b.rehash()

	return b
}

func placePawn(b *Board, at entity.Location, player1 bool) {
	b.at(at).Piece = entity.NewPiece(player1)
	b.pawns[side(player1)] = append(b.pawns[side(player1)], at)
	b.rehash()
}

func relocate(t *testing.T, b *Board, from, to entity.Location) {
	t.Helper()

	p, q := b.at(from), b.at(to)
	require.NotNil(t, p.Piece)
	require.Nil(t, q.Piece)

	pawns := b.pawns[side(p.Piece.Player1)]
	for i, l := range pawns {
		if l == from {
			pawns[i] = to
		}
	}

	q.Piece, p.Piece = p.Piece, nil
	b.rehash()
}

func placeWall(t *testing.T, b *Board, a, c entity.Location) *Wall {
	t.Helper()

	w, err := NewWall(a, c)
	require.NoError(t, err)
	require.NoError(t, b.checkWallFits(w))
	b.placeWall(w)

	return w
}
