package entity

// Piece is owned by exactly one position at a time.
// Health is used by Go to record how alive the stone's group is (-1..1, positive favors player1).
type Piece struct {
	Player1 bool    `json:"player1"`
	Health  float64 `json:"health,omitempty"`
}

func NewPiece(player1 bool) *Piece {
	return &Piece{Player1: player1}
}

func (that *Piece) Copy() *Piece {
	if that == nil {
		return nil
	}

	p := *that

	return &p
}

// Symbol - single character used when printing boards.
func (that *Piece) Symbol() string {
	switch {
	case that == nil:
		return "."
	case that.Player1:
		return "X"
	default:
		return "O"
	}
}
