package blockade

import (
	"fmt"
	"math"
	"strings"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// Path is a sequence of pawn steps from a pawn to an opponent home.
type Path []*Move

func (that Path) Len() int {
	return len(that)
}

// FirstStep returns nil for a 0-length path.
func (that Path) FirstStep() *Move {
	if len(that) == 0 {
		return nil
	}

	return that[0]
}

func (that Path) String() string {
	parts := make([]string, 0, len(that)+1)
	if len(that) > 0 {
		parts = append(parts, that[0].From.String())
	}

	for _, m := range that {
		parts = append(parts, m.To.String())
	}

	return "[" + strings.Join(parts, " ") + "]"
}

type pathNode struct {
	move   *Move
	parent *pathNode
}

// FindShortestPaths runs a breadth-first search from the pawn at loc to the
// opponent homes and returns one shortest path per home reached, stopping
// after NumHomes. A pawn already on an opponent home gets a single 0-length path.
func (that *Board) FindShortestPaths(loc entity.Location) []Path {
	start := that.at(loc)
	if start == nil || start.Piece == nil {
		return nil
	}

	player1 := start.Piece.Player1
	if start.IsOpponentHome(player1) {
		return []Path{{}}
	}

	visited := make([]bool, len(that.positions))
	visited[that.index(loc)] = true

	var queue []*pathNode
	for _, m := range that.PossibleMoves(loc, player1) {
		queue = append(queue, &pathNode{move: m})
	}

	var homes []*pathNode

	for len(queue) > 0 && len(homes) < NumHomes {
		node := queue[0]
		queue = queue[1:]

		to := node.move.To
		if visited[that.index(to)] {
			continue
		}

		visited[that.index(to)] = true

		if that.at(to).IsOpponentHome(player1) {
			homes = append(homes, node)
		}

		for _, m := range that.PossibleMoves(to, player1) {
			if !visited[that.index(m.To)] {
				queue = append(queue, &pathNode{move: m, parent: node})
			}
		}
	}

	paths := make([]Path, 0, len(homes))
	for _, home := range homes {
		paths = append(paths, home.path())
	}

	return paths
}

func (that *pathNode) path() Path {
	n := 0
	for node := that; node != nil; node = node.parent {
		n++
	}

	p := make(Path, n)
	for node := that; node != nil; node = node.parent {
		n--
		p[n] = node.move
	}

	return p
}

func (that *Board) index(loc entity.Location) int {
	return loc.Row*that.cols + loc.Col
}

// FindAllOpponentShortestPaths returns the shortest paths of every pawn not owned by player1.
func (that *Board) FindAllOpponentShortestPaths(player1 bool) []Path {
	var paths []Path
	for _, loc := range that.Pawns(!player1) {
		paths = append(paths, that.FindShortestPaths(loc)...)
	}

	return paths
}

// PathLengths keeps the shortest, second shortest and furthest path lengths of one side.
type PathLengths struct {
	Shortest       int
	SecondShortest int
	Furthest       int
}

func newPathLengths() PathLengths {
	return PathLengths{Shortest: math.MaxInt, SecondShortest: math.MaxInt}
}

func (that *PathLengths) update(length int) {
	if length < that.Shortest {
		that.SecondShortest = that.Shortest
		that.Shortest = length
	} else if length < that.SecondShortest {
		that.SecondShortest = length
	}

	if length > that.Furthest {
		that.Furthest = length
	}
}

// bounded replaces lengths that were never set with the cell count.
func (that PathLengths) bounded(limit int) PathLengths {
	if that.Shortest == math.MaxInt {
		that.Shortest = limit
	}

	if that.SecondShortest == math.MaxInt {
		that.SecondShortest = that.Shortest
	}

	return that
}

// PlayerPathLengths summarizes both sides' paths for one position.
type PlayerPathLengths struct {
	Player1 PathLengths
	Player2 PathLengths

	valid bool
}

// IsValid is false when a pawn cannot reach every opponent home and nobody has already won.
func (that PlayerPathLengths) IsValid() bool {
	return that.valid
}

func (that PlayerPathLengths) String() string {
	return fmt.Sprintf("p1{%d %d %d} p2{%d %d %d}",
		that.Player1.Shortest, that.Player1.SecondShortest, that.Player1.Furthest,
		that.Player2.Shortest, that.Player2.SecondShortest, that.Player2.Furthest)
}

func (that *Board) FindPlayerPathLengths() PlayerPathLengths {
	lengths := PlayerPathLengths{Player1: newPathLengths(), Player2: newPathLengths(), valid: true}

	allReach := true
	won := false

	for _, player1 := range []bool{true, false} {
		target := &lengths.Player2
		if player1 {
			target = &lengths.Player1
		}

		for _, loc := range that.Pawns(player1) {
			paths := that.FindShortestPaths(loc)
			if len(paths) < NumHomes {
				allReach = false
			}

			for _, p := range paths {
				if p.Len() == 0 {
					won = true
				}

				target.update(p.Len())
			}
		}
	}

	lengths.valid = allReach || won
	lengths.Player1 = lengths.Player1.bounded(len(that.positions))
	lengths.Player2 = lengths.Player2.bounded(len(that.positions))

	return lengths
}
