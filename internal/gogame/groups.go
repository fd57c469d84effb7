package gogame

import "github.com/rocketscienceinc/gamesearch/internal/entity"

// Group is a set of same-owner strings that are loosely connected through the extended neighborhood:
// a one-space jump, a knight's move with empty between-points, or a diagonal not cut by two enemy stones.
type Group struct {
	player1 bool
	strings []*StoneString

	health float64
	eyes   []*Eye
}

func (that *Group) Player1() bool {
	return that.player1
}

func (that *Group) Strings() []*StoneString {
	return that.strings
}

func (that *Group) Stones() []*Position {
	var stones []*Position
	for _, s := range that.strings {
		stones = append(stones, s.members...)
	}

	return stones
}

func (that *Group) NumStones() int {
	n := 0
	for _, s := range that.strings {
		n += s.Size()
	}

	return n
}

// Liberties returns the distinct empty points touching any string of the group.
func (that *Group) Liberties(b *Board) []*Position {
	seen := make(map[*Position]struct{})

	var libs []*Position

	for _, s := range that.strings {
		for _, l := range s.Liberties(b) {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				libs = append(libs, l)
			}
		}
	}

	return libs
}

// Health is -1..1, positive favoring player1. Set by the last evaluation.
func (that *Group) Health() float64 {
	return that.health
}

func (that *Group) Eyes() []*Eye {
	return that.eyes
}

func (that *Group) contains(s *StoneString) bool {
	for _, m := range that.strings {
		if m == s {
			return true
		}
	}

	return false
}

var (
	jumpOffsets     = [][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	knightOffsets   = [][2]int{{-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {-2, -1}, {-2, 1}, {2, -1}, {2, 1}}
	diagonalOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// looselyLinked lists the same-owner stones that join p's group without being nobi neighbors.
func (that *Board) looselyLinked(p *Position) []*Position {
	player1 := p.Piece.Player1
	r, c := p.Loc.Row, p.Loc.Col

	var linked []*Position

	for _, d := range jumpOffsets {
		q := that.Position(r+d[0], c+d[1])
		if q.ownedBy(player1) && !that.Position(r+d[0]/2, c+d[1]/2).IsOccupied() {
			linked = append(linked, q)
		}
	}

	for _, d := range knightOffsets {
		q := that.Position(r+d[0], c+d[1])
		if !q.ownedBy(player1) {
			continue
		}

		var a, b *Position
		if d[0] == 1 || d[0] == -1 {
			a, b = that.Position(r, c+d[1]/2), that.Position(r+d[0], c+d[1]/2)
		} else {
			a, b = that.Position(r+d[0]/2, c), that.Position(r+d[0]/2, c+d[1])
		}

		if !a.IsOccupied() && !b.IsOccupied() {
			linked = append(linked, q)
		}
	}

	for _, d := range diagonalOffsets {
		q := that.Position(r+d[0], c+d[1])
		if !q.ownedBy(player1) {
			continue
		}

		if that.Position(r+d[0], c).ownedBy(!player1) && that.Position(r, c+d[1]).ownedBy(!player1) {
			continue
		}

		linked = append(linked, q)
	}

	return linked
}

// linkRadius bounds a loose link: both ends and every point that can cut it lie
// within this Chebyshev distance of each other.
const linkRadius = 2

// near calls fn for every on-board position within linkRadius of the given points.
// Positions may be visited more than once.
func (that *Board) near(points []entity.Location, fn func(p *Position)) {
	for _, loc := range points {
		for dr := -linkRadius; dr <= linkRadius; dr++ {
			for dc := -linkRadius; dc <= linkRadius; dc++ {
				if p := that.Position(loc.Row+dr, loc.Col+dc); p != nil {
					fn(p)
				}
			}
		}
	}
}

// groupsNear lists the groups with a stone within linkRadius of the points.
func (that *Board) groupsNear(points []entity.Location) []*Group {
	var groups []*Group

	that.near(points, func(p *Position) {
		if p.str != nil && p.str.group != nil {
			groups = append(groups, p.str.group)
		}
	})

	return groups
}

func (that *StoneString) live() bool {
	return len(that.members) > 0 && that.members[0].str == that
}

// regroup updates the groups after stones changed at the given points. Only groups that
// were near the points before the change (touched) or are near them now get rebuilt.
func (that *Board) regroup(touched []*Group, changed []entity.Location) {
	var (
		strs   []*StoneString
		parent []int
	)

	index := make(map[*StoneString]int)
	dropped := make(map[*Group]struct{})

	addString := func(s *StoneString) {
		if _, ok := index[s]; ok {
			return
		}

		index[s] = len(strs)
		strs = append(strs, s)
		parent = append(parent, len(parent))
	}

	addGroup := func(g *Group) {
		if g == nil {
			return
		}

		if _, ok := dropped[g]; ok {
			return
		}

		dropped[g] = struct{}{}

		for _, s := range g.strings {
			if s.live() {
				addString(s)
			}
		}
	}

	for _, g := range touched {
		addGroup(g)
	}

	that.near(changed, func(p *Position) {
		if p.str != nil {
			addGroup(p.str.group)
			addString(p.str)
		}
	})

	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}

	// strs grows when a link reaches a string that is not collected yet.
	for i := 0; i < len(strs); i++ {
		for _, p := range strs[i].members {
			for _, q := range that.looselyLinked(p) {
				if _, ok := index[q.str]; !ok {
					addGroup(q.str.group)
					addString(q.str)
				}

				a, b := find(i), find(index[q.str])
				if a != b {
					parent[b] = a
				}
			}
		}
	}

	kept := that.groups[:0]
	for _, g := range that.groups {
		if _, ok := dropped[g]; !ok {
			kept = append(kept, g)
		}
	}

	that.groups = kept
	that.appendGroups(strs, find)
}

// rebuildGroups unions strings over the extended neighborhood of the whole board.
func (that *Board) rebuildGroups() {
	index := make(map[*StoneString]int)

	var strs []*StoneString

	for i := range that.positions {
		p := &that.positions[i]
		if p.str == nil {
			continue
		}

		if _, ok := index[p.str]; !ok {
			index[p.str] = len(strs)
			strs = append(strs, p.str)
		}
	}

	parent := make([]int, len(strs))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}

	for _, s := range strs {
		for _, p := range s.members {
			for _, q := range that.looselyLinked(p) {
				a, b := find(index[s]), find(index[q.str])
				if a != b {
					parent[b] = a
				}
			}
		}
	}

	that.groups = that.groups[:0]
	that.appendGroups(strs, find)
}

// appendGroups adds one group per union-find root over strs.
func (that *Board) appendGroups(strs []*StoneString, find func(int) int) {
	byRoot := make(map[int]*Group)

	for i, s := range strs {
		root := find(i)

		g, ok := byRoot[root]
		if !ok {
			g = &Group{player1: s.player1}
			byRoot[root] = g
			that.groups = append(that.groups, g)
		}

		g.strings = append(g.strings, s)
		s.group = g
	}
}
