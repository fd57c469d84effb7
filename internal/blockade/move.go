package blockade

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// Move steps one pawn and optionally places a wall afterwards.
type Move struct {
	entity.TwoPlayerMove

	From      entity.Location `json:"from"`
	Wall      *Wall           `json:"wall,omitempty"`
	Direction Direction       `json:"direction"`

	captured      *entity.Piece
	capturedIndex int
}

// NewMove - the direction is derived from the two locations.
func NewMove(from, to entity.Location, player1 bool, wall *Wall) *Move {
	dir, _ := directionBetween(to.Row-from.Row, to.Col-from.Col)

	return &Move{
		TwoPlayerMove: entity.TwoPlayerMove{To: to, Player: player1},
		From:          from,
		Wall:          wall,
		Direction:     dir,
	}
}

// copy duplicates the move with its capture state and an unplaced copy of its wall.
func (that *Move) copy() *Move {
	c := *that
	c.Wall = that.Wall.Copy()
	c.captured = that.captured.Copy()

	return &c
}

// SameAs compares everything except the value.
func (that *Move) SameAs(other *Move) bool {
	return that.From == other.From && that.To == other.To &&
		that.Player == other.Player && that.Wall.Equal(other.Wall)
}

func (that *Move) String() string {
	side := "P2"
	if that.Player {
		side = "P1"
	}

	s := fmt.Sprintf("%s %s->%s", side, that.From, that.To)
	if that.Wall != nil {
		s += " wall " + that.Wall.String()
	}

	return fmt.Sprintf("%s (%d)", s, that.Val)
}
