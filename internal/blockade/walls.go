package blockade

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
)

// CheckLegalWallPlacement rejects a wall that overlaps or crosses another one,
// or that would leave some pawn without a path to every opponent home.
func (that *Board) CheckLegalWallPlacement(w *Wall) error {
	if err := that.checkWallFits(w); err != nil {
		return err
	}

	if that.crossesWall(w) {
		return fmt.Errorf("%w: %s crosses an existing wall", apperror.ErrIllegalWall, w)
	}

	tmp := w.Copy()
	that.placeWall(tmp)
	defer that.removeWall(tmp)

	for _, player1 := range []bool{true, false} {
		if len(that.FindAllOpponentShortestPaths(player1)) < NumHomes*NumHomes {
			return fmt.Errorf("%w: %s cuts off a pawn from a home", apperror.ErrIllegalWall, w)
		}
	}

	return nil
}

// crossesWall checks the corner a wall's midpoint sits on.
func (that *Board) crossesWall(w *Wall) bool {
	pos := that.at(w.First)
	if pos == nil {
		return false
	}

	if w.Vertical {
		return pos.IsSouthBlocked() && blockedSouth(that.Position(pos.Loc.Row, pos.Loc.Col+1))
	}

	return pos.IsEastBlocked() && blockedEast(that.Position(pos.Loc.Row+1, pos.Loc.Col))
}

// WallsForMove finds the walls that would block the step m of an opponent path
// while leaving every one of ownPaths open.
func (that *Board) WallsForMove(m *Move, ownPaths []Path) []*Wall {
	var walls []*Wall

	r, c := m.From.Row, m.From.Col
	orig := that.Position(r, c)

	switch m.Direction {
	case EastEast:
		walls = append(walls, that.wallsForDirection(that.Position(r, c+1), East, ownPaths)...)
		walls = append(walls, that.wallsForDirection(orig, East, ownPaths)...)
	case East:
		walls = append(walls, that.wallsForDirection(orig, East, ownPaths)...)
	case WestWest:
		walls = append(walls, that.wallsForDirection(that.Position(r, c-1), West, ownPaths)...)
		walls = append(walls, that.wallsForDirection(orig, West, ownPaths)...)
	case West:
		walls = append(walls, that.wallsForDirection(orig, West, ownPaths)...)
	case SouthSouth:
		walls = append(walls, that.wallsForDirection(that.Position(r+1, c), South, ownPaths)...)
		walls = append(walls, that.wallsForDirection(orig, South, ownPaths)...)
	case South:
		walls = append(walls, that.wallsForDirection(orig, South, ownPaths)...)
	case NorthNorth:
		walls = append(walls, that.wallsForDirection(that.Position(r-1, c), North, ownPaths)...)
		walls = append(walls, that.wallsForDirection(orig, North, ownPaths)...)
	case North:
		walls = append(walls, that.wallsForDirection(orig, North, ownPaths)...)
	default:
		walls = append(walls, that.wallsForDirection(orig, m.Direction, ownPaths)...)
	}

	return walls
}

func (that *Board) wallsForDirection(pos *Position, dir Direction, ownPaths []Path) []*Wall {
	if pos == nil {
		return nil
	}

	r, c := pos.Loc.Row, pos.Loc.Col

	var candidates []*Wall

	switch dir {
	case East:
		candidates = that.wallsForEast(that.Position(r, c+1), pos)
	case West:
		candidates = that.wallsForWest(that.Position(r, c-1), pos)
	case North:
		candidates = that.wallsForNorth(that.Position(r-1, c), pos)
	case South:
		candidates = that.wallsForSouth(that.Position(r+1, c), pos)
	case NorthWest:
		candidates = that.wallsForDiagonal(that.Position(r-1, c-1), that.Position(r-1, c), that.Position(r, c-1))
	case NorthEast:
		candidates = that.wallsForDiagonal(that.Position(r-1, c), that.Position(r-1, c+1), pos)
	case SouthWest:
		candidates = that.wallsForDiagonal(that.Position(r, c-1), pos, that.Position(r+1, c-1))
	case SouthEast:
		candidates = that.wallsForDiagonal(pos, that.Position(r, c+1), that.Position(r+1, c))
	}

	walls := make([]*Wall, 0, len(candidates))
	for _, w := range candidates {
		if w != nil && !that.wallBlocksPaths(w, ownPaths) {
			walls = append(walls, w)
		}
	}

	return walls
}

// wallBlocksPaths places the wall temporarily and checks every step of every path.
func (that *Board) wallBlocksPaths(w *Wall, paths []Path) bool {
	if that.checkWallFits(w) != nil {
		return true
	}

	that.placeWall(w)
	defer that.removeWall(w)

	for _, p := range paths {
		for _, step := range p {
			if that.IsMoveBlocked(step.From, step.Direction) {
				return true
			}
		}
	}

	return false
}

func (that *Board) newWall(a, b *Position) *Wall {
	if a == nil || b == nil {
		return nil
	}

	w, err := NewWall(a.Loc, b.Loc)
	if err != nil {
		return nil
	}

	return w
}

func (that *Board) wallsForEast(eastPos, pos *Position) []*Wall {
	if eastPos == nil || pos.IsEastBlocked() {
		return nil
	}

	r, c := pos.Loc.Row, pos.Loc.Col
	north := that.Position(r-1, c)
	south := that.Position(r+1, c)

	var walls []*Wall

	if north != nil && eastOpen(north) &&
		!(north.IsSouthBlocked() && north.southWall == wallID(that.Position(r-1, c+1), false)) {
		walls = append(walls, that.newWall(pos, north))
	}

	if south != nil && eastOpen(south) &&
		!(pos.IsSouthBlocked() && pos.southWall == eastPos.southWall) {
		walls = append(walls, that.newWall(pos, south))
	}

	return walls
}

func (that *Board) wallsForWest(westPos, pos *Position) []*Wall {
	if westPos == nil || westPos.IsEastBlocked() {
		return nil
	}

	r, c := pos.Loc.Row, pos.Loc.Col
	north := that.Position(r-1, c)
	south := that.Position(r+1, c)
	northWest := that.Position(r-1, c-1)
	southWest := that.Position(r+1, c-1)

	var walls []*Wall

	if north != nil && eastOpen(northWest) &&
		!(northWest.IsSouthBlocked() && northWest.southWall == north.southWall) {
		walls = append(walls, that.newWall(westPos, northWest))
	}

	if south != nil && eastOpen(southWest) &&
		!(westPos.IsSouthBlocked() && westPos.southWall == pos.southWall) {
		walls = append(walls, that.newWall(westPos, southWest))
	}

	return walls
}

func (that *Board) wallsForNorth(northPos, pos *Position) []*Wall {
	if northPos == nil || northPos.IsSouthBlocked() {
		return nil
	}

	r, c := pos.Loc.Row, pos.Loc.Col
	west := that.Position(r, c-1)
	northWest := that.Position(r-1, c-1)
	northEast := that.Position(r-1, c+1)

	var walls []*Wall

	if west != nil && southOpen(northWest) &&
		!(west.IsEastBlocked() && west.eastWall == northWest.eastWall) {
		walls = append(walls, that.newWall(northPos, northWest))
	}

	if northEast != nil && southOpen(northEast) &&
		!(pos.IsEastBlocked() && pos.eastWall == northPos.eastWall) {
		walls = append(walls, that.newWall(northPos, northEast))
	}

	return walls
}

func (that *Board) wallsForSouth(southPos, pos *Position) []*Wall {
	if southPos == nil || pos.IsSouthBlocked() {
		return nil
	}

	r, c := pos.Loc.Row, pos.Loc.Col
	east := that.Position(r, c+1)
	west := that.Position(r, c-1)
	southWest := that.Position(r+1, c-1)

	var walls []*Wall

	if east != nil && southOpen(east) &&
		!(pos.IsEastBlocked() && pos.eastWall == southPos.eastWall) {
		walls = append(walls, that.newWall(pos, east))
	}

	if west != nil && southOpen(west) &&
		!(west.IsEastBlocked() && west.eastWall == wallID(southWest, true)) {
		walls = append(walls, that.newWall(pos, west))
	}

	return walls
}

// wallsForDiagonal picks walls around the centre of the 2x2 block a diagonal step crosses.
func (that *Board) wallsForDiagonal(topLeft, topRight, bottomLeft *Position) []*Wall {
	if topLeft == nil || topRight == nil || bottomLeft == nil {
		return nil
	}

	left := topLeft.IsSouthBlocked()
	right := topRight.IsSouthBlocked()
	top := topLeft.IsEastBlocked()
	bottom := bottomLeft.IsEastBlocked()

	switch {
	case !left && !right && !top && !bottom:
		return []*Wall{that.newWall(topLeft, topRight), that.newWall(topLeft, bottomLeft)}
	case left && bottom:
		return []*Wall{that.directionCase(topRight, 0, 1), that.directionCase(topLeft, -1, 1)}
	case top && right:
		return []*Wall{that.directionCase(topLeft, 0, -1), that.directionCase(bottomLeft, 1, 0)}
	case top && left:
		return []*Wall{that.directionCase(topRight, 0, 1), that.directionCase(bottomLeft, 1, 0)}
	case right && bottom:
		return []*Wall{that.directionCase(topLeft, -1, 0), that.directionCase(topLeft, 0, -1)}
	case left:
		return []*Wall{that.newWall(topLeft, bottomLeft), that.directionCase(topRight, 0, 1)}
	case right:
		return []*Wall{that.newWall(topLeft, bottomLeft), that.directionCase(topLeft, 0, -1)}
	case top:
		return []*Wall{that.newWall(topLeft, topRight), that.directionCase(bottomLeft, 1, 0)}
	case bottom:
		return []*Wall{that.newWall(topLeft, topRight), that.directionCase(topLeft, -1, 0)}
	}

	return nil
}

// directionCase offers a wall from pos to the cell at the offset when that edge is open.
// Offsets that are not orthogonal neighbors yield nil.
func (that *Board) directionCase(pos *Position, dRow, dCol int) *Wall {
	offset := that.Position(pos.Loc.Row+dRow, pos.Loc.Col+dCol)
	if offset == nil {
		return nil
	}

	vertical := dRow != 0
	if (vertical && offset.IsEastBlocked()) || (!vertical && offset.IsSouthBlocked()) {
		return nil
	}

	return that.newWall(pos, offset)
}

func wallID(p *Position, east bool) int {
	switch {
	case p == nil:
		return -1
	case east:
		return p.eastWall
	default:
		return p.southWall
	}
}
