package blockade

import "github.com/rocketscienceinc/gamesearch/internal/entity"

// IsMoveBlocked reports whether walls stop a step in dir from loc.
// Only walls are considered; occupancy is the caller's concern.
func (that *Board) IsMoveBlocked(loc entity.Location, dir Direction) bool {
	start := that.at(loc)
	r, c := loc.Row, loc.Col

	north := that.Position(r-1, c)
	south := that.Position(r+1, c)
	west := that.Position(r, c-1)
	east := that.Position(r, c+1)

	switch dir {
	case NorthNorth:
		return blockedSouth(that.Position(r-2, c)) || blockedSouth(north)
	case North:
		return blockedSouth(north)
	case WestWest:
		return blockedEast(that.Position(r, c-2)) || blockedEast(west)
	case West:
		return blockedEast(west)
	case EastEast:
		return blockedEast(east) || blockedEast(start)
	case East:
		return blockedEast(start)
	case SouthSouth:
		return blockedSouth(south) || blockedSouth(start)
	case South:
		return blockedSouth(start)
	case NorthWest:
		northWest := that.Position(r-1, c-1)

		return !((eastOpen(west) && southOpen(northWest)) || (southOpen(north) && eastOpen(northWest)))
	case NorthEast:
		northEast := that.Position(r-1, c+1)

		return !((eastOpen(start) && southOpen(northEast)) || (southOpen(north) && eastOpen(north)))
	case SouthWest:
		southWest := that.Position(r+1, c-1)

		return !((eastOpen(west) && southOpen(west)) || (southOpen(start) && eastOpen(southWest)))
	case SouthEast:
		return !((eastOpen(start) && southOpen(east)) || (southOpen(start) && eastOpen(south)))
	}

	return true
}

func blockedEast(p *Position) bool {
	return p != nil && p.IsEastBlocked()
}

func blockedSouth(p *Position) bool {
	return p != nil && p.IsSouthBlocked()
}

// PossibleMoves lists the steps a pawn of the given side could take from loc.
// At most 12: double orthogonal steps, single steps that are forced by an
// opponent pawn or land on an opponent home, and unblocked diagonals.
// A target is open when empty or when it is an opponent home.
func (that *Board) PossibleMoves(loc entity.Location, player1 bool) []*Move {
	moves := make([]*Move, 0, 12)

	for _, o := range orthogonals {
		dr, dc := o.single.Offset()
		one := that.Position(loc.Row+dr, loc.Col+dc)
		if one == nil || that.IsMoveBlocked(loc, o.single) {
			continue
		}

		singleAdded := false

		two := that.Position(loc.Row+2*dr, loc.Col+2*dc)
		if two != nil && !that.IsMoveBlocked(loc, o.double) {
			switch {
			case two.enterableBy(player1):
				moves = append(moves, NewMove(loc, two.Loc, player1, nil))
			case two.Piece.Player1 != player1 && one.enterableBy(player1):
				moves = append(moves, NewMove(loc, one.Loc, player1, nil))
				singleAdded = true
			}
		}

		if !singleAdded && one.enterableBy(player1) && one.IsOpponentHome(player1) {
			moves = append(moves, NewMove(loc, one.Loc, player1, nil))
		}
	}

	for _, dir := range diagonals {
		dr, dc := dir.Offset()
		target := that.Position(loc.Row+dr, loc.Col+dc)

		if target != nil && target.enterableBy(player1) && !that.IsMoveBlocked(loc, dir) {
			moves = append(moves, NewMove(loc, target.Loc, player1, nil))
		}
	}

	return moves
}
