package entity

import "fmt"

// Location is a 0-indexed cell coordinate on a board.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewLocation(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Offset returns the location shifted by the given row and column deltas.
func (that Location) Offset(dRow, dCol int) Location {
	return Location{Row: that.Row + dRow, Col: that.Col + dCol}
}

func (that Location) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
