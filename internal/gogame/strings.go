package gogame

// StoneString is a maximal set of same-owner stones joined by nobi (4-neighbor) adjacency.
type StoneString struct {
	player1 bool
	members []*Position
	group   *Group
}

func (that *StoneString) Player1() bool {
	return that.player1
}

func (that *StoneString) Members() []*Position {
	return that.members
}

func (that *StoneString) Size() int {
	return len(that.members)
}

func (that *StoneString) Group() *Group {
	return that.group
}

// Liberties returns the distinct empty points touching the string.
func (that *StoneString) Liberties(b *Board) []*Position {
	seen := make(map[*Position]struct{})

	var libs []*Position

	for _, p := range that.members {
		for _, n := range b.nobiNeighbors(p.Loc) {
			if n.IsOccupied() {
				continue
			}

			if _, ok := seen[n]; ok {
				continue
			}

			seen[n] = struct{}{}
			libs = append(libs, n)
		}
	}

	return libs
}

func (that *StoneString) NumLiberties(b *Board) int {
	return len(that.Liberties(b))
}

// absorb moves every stone of other into the receiver.
func (that *StoneString) absorb(other *StoneString) {
	for _, p := range other.members {
		p.str = that
	}

	that.members = append(that.members, other.members...)
	other.members = nil
}

// floodString collects the nobi-connected stones of seed's owner. The visited slice is local to the caller.
func (that *Board) floodString(seed *Position, visited []bool) []*Position {
	player1 := seed.Piece.Player1
	stack := []*Position{seed}
	visited[that.index(seed.Loc)] = true

	var members []*Position

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, p)

		for _, n := range that.nobiNeighbors(p.Loc) {
			i := that.index(n.Loc)
			if visited[i] || !n.ownedBy(player1) {
				continue
			}

			visited[i] = true
			stack = append(stack, n)
		}
	}

	return members
}

// reflood rebuilds the strings that contain the given seeds.
func (that *Board) reflood(seeds []*Position) {
	visited := make([]bool, len(that.positions))

	for _, seed := range seeds {
		if !seed.IsOccupied() || visited[that.index(seed.Loc)] {
			continue
		}

		str := &StoneString{player1: seed.Piece.Player1}
		str.members = that.floodString(seed, visited)

		for _, p := range str.members {
			p.str = str
		}
	}
}
