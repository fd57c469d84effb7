package entity

// MoveList is the move history of a board. Appended on make, popped on undo.
type MoveList struct {
	moves []Move
}

func (that *MoveList) Add(m Move) {
	that.moves = append(that.moves, m)
}

// Pop removes and returns the most recent move, or nil when empty.
func (that *MoveList) Pop() Move {
	if len(that.moves) == 0 {
		return nil
	}

	last := that.moves[len(that.moves)-1]
	that.moves[len(that.moves)-1] = nil
	that.moves = that.moves[:len(that.moves)-1]

	return last
}

func (that *MoveList) Last() Move {
	if len(that.moves) == 0 {
		return nil
	}

	return that.moves[len(that.moves)-1]
}

// FromEnd returns the move i positions back from the last one (0 is the last move).
func (that *MoveList) FromEnd(i int) Move {
	idx := len(that.moves) - 1 - i
	if idx < 0 || idx >= len(that.moves) {
		return nil
	}

	return that.moves[idx]
}

func (that *MoveList) Len() int {
	return len(that.moves)
}

func (that *MoveList) All() []Move {
	return that.moves
}

func (that *MoveList) Copy() *MoveList {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return &MoveList{moves: moves}
}

func (that *MoveList) Clear() {
	that.moves = nil
}

func (that *MoveList) Strings() []string {
	out := make([]string, 0, len(that.moves))
	for _, m := range that.moves {
		out = append(out, m.String())
	}

	return out
}
