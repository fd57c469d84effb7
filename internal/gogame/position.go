package gogame

import "github.com/rocketscienceinc/gamesearch/internal/entity"

// Position is one intersection. The board keeps the string and eye back-references current.
type Position struct {
	Loc   entity.Location
	Piece *entity.Piece

	str   *StoneString
	eye   *Eye
	score float64
}

func (that *Position) IsOccupied() bool {
	return that.Piece != nil
}

// ownedBy is false for nil positions and empty points.
func (that *Position) ownedBy(player1 bool) bool {
	return that != nil && that.Piece != nil && that.Piece.Player1 == player1
}

func (that *Position) StoneString() *StoneString {
	return that.str
}

// Group is nil for empty points.
func (that *Position) Group() *Group {
	if that.str == nil {
		return nil
	}

	return that.str.group
}

func (that *Position) Eye() *Eye {
	return that.eye
}

func (that *Position) IsInEye() bool {
	return that.eye != nil
}

// ScoreContribution is what the last evaluation credited to this point, positive favoring player1.
func (that *Position) ScoreContribution() float64 {
	return that.score
}

const numHashStates = 3

func (that *Position) hashState() int {
	switch {
	case that.Piece == nil:
		return 0
	case that.Piece.Player1:
		return 1
	default:
		return 2
	}
}
