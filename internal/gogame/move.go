package gogame

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// Move places a stone, passes or resigns. Captures are filled in by the board when the move is made.
type Move struct {
	entity.TwoPlayerMove

	captured []entity.Location
	ko       bool
	ply      int

	ataried   int
	liberties int
}

func NewMove(to entity.Location, player1 bool) *Move {
	return &Move{TwoPlayerMove: entity.TwoPlayerMove{To: to, Player: player1}}
}

func NewPassMove(player1 bool, value int) *Move {
	return &Move{TwoPlayerMove: entity.TwoPlayerMove{Player: player1, Pass: true, Val: value}}
}

func NewResignMove(player1 bool) *Move {
	return &Move{TwoPlayerMove: entity.TwoPlayerMove{Player: player1, Resign: true}}
}

// Captures lists the points whose stones this move took off the board.
func (that *Move) Captures() []entity.Location {
	return that.captured
}

func (that *Move) NumCaptures() int {
	return len(that.captured)
}

// IsKo is true when the move took exactly one stone with a lone stone left in atari.
func (that *Move) IsKo() bool {
	return that.ko
}

func (that *Move) String() string {
	s := that.TwoPlayerMove.String()
	if len(that.captured) > 0 {
		s += fmt.Sprintf(" x%d", len(that.captured))
	}

	return s
}
