package blockade

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// Wall spans two adjacent cells. A vertical wall runs along the east edges of
// two cells in the same column; a horizontal one along the south edges of two
// cells in the same row.
type Wall struct {
	First    entity.Location `json:"first"`
	Second   entity.Location `json:"second"`
	Vertical bool            `json:"vertical"`

	id int
}

// NewWall - orders the pair top-left first and rejects cells that are not neighbors.
func NewWall(a, b entity.Location) (*Wall, error) {
	if a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col) {
		a, b = b, a
	}

	switch {
	case a.Col == b.Col && b.Row-a.Row == 1:
		return &Wall{First: a, Second: b, Vertical: true}, nil
	case a.Row == b.Row && b.Col-a.Col == 1:
		return &Wall{First: a, Second: b}, nil
	}

	return nil, fmt.Errorf("%w: %s and %s are not adjacent", apperror.ErrIllegalWall, a, b)
}

// Copy returns an unplaced wall over the same cells.
func (that *Wall) Copy() *Wall {
	if that == nil {
		return nil
	}

	return &Wall{First: that.First, Second: that.Second, Vertical: that.Vertical}
}

func (that *Wall) Equal(other *Wall) bool {
	if that == nil || other == nil {
		return that == other
	}

	return that.First == other.First && that.Second == other.Second
}

func (that *Wall) String() string {
	kind := "h"
	if that.Vertical {
		kind = "v"
	}

	return fmt.Sprintf("%s%s%s", kind, that.First, that.Second)
}
