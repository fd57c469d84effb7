package entity

import "fmt"

// Move is a transition between two board states.
// Value is the static evaluation of the resulting position from player1's perspective.
type Move interface {
	Player1() bool
	Value() int
	SetValue(value int)
	IsPass() bool
	IsUrgent() bool
	String() string
}

// TwoPlayerMove carries the fields shared by every game's moves.
type TwoPlayerMove struct {
	To     Location `json:"to"`
	Player bool     `json:"player1"`
	Val    int      `json:"value"`
	Urgent bool     `json:"urgent,omitempty"`
	Pass   bool     `json:"pass,omitempty"`
	Resign bool     `json:"resign,omitempty"`
}

func (that *TwoPlayerMove) Player1() bool {
	return that.Player
}

func (that *TwoPlayerMove) Value() int {
	return that.Val
}

func (that *TwoPlayerMove) SetValue(value int) {
	that.Val = value
}

func (that *TwoPlayerMove) IsPass() bool {
	return that.Pass
}

func (that *TwoPlayerMove) IsUrgent() bool {
	return that.Urgent
}

func (that *TwoPlayerMove) SetUrgent(urgent bool) {
	that.Urgent = urgent
}

func (that *TwoPlayerMove) IsResignation() bool {
	return that.Resign
}

func (that *TwoPlayerMove) String() string {
	side := "P2"
	if that.Player {
		side = "P1"
	}

	switch {
	case that.Pass:
		return side + " pass"
	case that.Resign:
		return side + " resign"
	}

	return fmt.Sprintf("%s %s (%d)", side, that.To, that.Val)
}
