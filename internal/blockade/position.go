package blockade

import "github.com/rocketscienceinc/gamesearch/internal/entity"

const (
	homeNone int8 = iota
	homePlayer1
	homePlayer2
)

// Position is one cell. Walls on its east and south edges are referenced by arena id, 0 meaning open.
type Position struct {
	Loc   entity.Location
	Piece *entity.Piece

	home      int8
	eastWall  int
	southWall int
}

func (that *Position) IsOccupied() bool {
	return that.Piece != nil
}

func (that *Position) IsEastBlocked() bool {
	return that.eastWall != 0
}

func (that *Position) IsSouthBlocked() bool {
	return that.southWall != 0
}

// IsHomeBase reports whether this is one of player1's (or player2's) starting cells.
func (that *Position) IsHomeBase(player1 bool) bool {
	if player1 {
		return that.home == homePlayer1
	}

	return that.home == homePlayer2
}

// IsOpponentHome reports whether a pawn of the given side wins by reaching this cell.
func (that *Position) IsOpponentHome(player1 bool) bool {
	return that.IsHomeBase(!player1)
}

// enterableBy - empty, or an opponent home still held by an opponent pawn.
// Reaching such a home wins, so the pawn there is displaced.
func (that *Position) enterableBy(player1 bool) bool {
	return that.Piece == nil || (that.Piece.Player1 != player1 && that.IsOpponentHome(player1))
}

func (that *Position) ownedBy(player1 bool) bool {
	return that.Piece != nil && that.Piece.Player1 == player1
}

// hashState combines piece and walls into one of 12 states.
func (that *Position) hashState() int {
	state := 0
	if that.Piece != nil {
		state = 2
		if that.Piece.Player1 {
			state = 1
		}
	}

	if that.eastWall != 0 {
		state += 3
	}

	if that.southWall != 0 {
		state += 6
	}

	return state
}

const numHashStates = 12

func (that *Position) symbol() string {
	switch {
	case that.Piece != nil:
		return that.Piece.Symbol()
	case that.home == homePlayer1:
		return "1"
	case that.home == homePlayer2:
		return "2"
	}

	return "."
}

// east/south open helpers treat missing cells as walled.
func eastOpen(p *Position) bool {
	return p != nil && p.eastWall == 0
}

func southOpen(p *Position) bool {
	return p != nil && p.southWall == 0
}
