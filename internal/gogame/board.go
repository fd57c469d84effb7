package gogame

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/zobrist"
)

const (
	DefaultSize = 9

	minSize = 5
	maxSize = 19
)

// Board is an odd square grid. Strings and groups are kept current on every make and undo,
// eyes and health are filled in by evaluation.
type Board struct {
	size      int
	handicap  int
	positions []Position
	moves     entity.MoveList
	hash      *zobrist.Key

	// captures[side] counts stones of that side taken off the board.
	captures [2]int
	groups   []*Group

	lineScores     []float64
	territoryDelta float64
}

func NewBoard(size, handicap int) (*Board, error) {
	if size < minSize || size > maxSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: go board size must be odd and in [%d, %d], got %d",
			apperror.ErrInvalidOptions, minSize, maxSize, size)
	}

	if handicap < 0 || handicap > len(starPoints(size)) {
		return nil, fmt.Errorf("%w: handicap %d not possible on a %dx%d board",
			apperror.ErrInvalidOptions, handicap, size, size)
	}

	b := &Board{
		size:       size,
		handicap:   handicap,
		positions:  make([]Position, size*size),
		hash:       zobrist.NewKey(zobrist.Get(size, size, numHashStates)),
		lineScores: newLineScores(size),
	}

	b.Reset()

	return b, nil
}

// starPoints lists handicap points in placement order: four corners, then center
// for odd handicaps, then sides.
func starPoints(size int) []entity.Location {
	mid := size / 2
	if size < 7 {
		return []entity.Location{entity.NewLocation(mid, mid)}
	}

	edge := 2
	if size >= 13 {
		edge = 3
	}

	far := size - 1 - edge

	return []entity.Location{
		entity.NewLocation(edge, far),
		entity.NewLocation(far, edge),
		entity.NewLocation(far, far),
		entity.NewLocation(edge, edge),
		entity.NewLocation(mid, mid),
		entity.NewLocation(mid, edge),
		entity.NewLocation(mid, far),
		entity.NewLocation(edge, mid),
		entity.NewLocation(far, mid),
	}
}

func handicapPoints(size, handicap int) []entity.Location {
	stars := starPoints(size)
	if handicap <= 4 || len(stars) == 1 {
		return stars[:handicap]
	}

	points := append([]entity.Location(nil), stars[:4]...)
	sides := stars[5:]

	switch handicap {
	case 5:
		points = append(points, stars[4])
	case 6:
		points = append(points, sides[:2]...)
	case 7:
		points = append(points, stars[4])
		points = append(points, sides[:2]...)
	case 8:
		points = append(points, sides...)
	default:
		points = append(points, stars[4])
		points = append(points, sides...)
	}

	return points
}

// Reset empties the board and places player1's handicap stones.
func (that *Board) Reset() {
	for r := range that.size {
		for c := range that.size {
			that.positions[r*that.size+c] = Position{Loc: entity.NewLocation(r, c)}
		}
	}

	that.moves.Clear()
	that.captures = [2]int{}
	that.territoryDelta = 0

	for _, loc := range handicapPoints(that.size, that.handicap) {
		p := that.at(loc)
		p.Piece = entity.NewPiece(true)
		p.str = &StoneString{player1: true, members: []*Position{p}}
	}

	that.hash.Reset()
	for i := range that.positions {
		that.toggle(&that.positions[i])
	}

	that.rebuildGroups()
}

func (that *Board) index(loc entity.Location) int {
	return loc.Row*that.size + loc.Col
}

// Position returns nil outside the grid.
func (that *Board) Position(row, col int) *Position {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return nil
	}

	return &that.positions[row*that.size+col]
}

func (that *Board) at(loc entity.Location) *Position {
	return that.Position(loc.Row, loc.Col)
}

// nobiNeighbors returns the on-board orthogonal neighbors of loc.
func (that *Board) nobiNeighbors(loc entity.Location) []*Position {
	nbrs := make([]*Position, 0, 4)

	for _, d := range [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
		if p := that.Position(loc.Row+d[0], loc.Col+d[1]); p != nil {
			nbrs = append(nbrs, p)
		}
	}

	return nbrs
}

func (that *Board) NumRows() int {
	return that.size
}

func (that *Board) NumCols() int {
	return that.size
}

func (that *Board) MoveList() *entity.MoveList {
	return &that.moves
}

func (that *Board) HashKey() uint64 {
	return that.hash.Value()
}

// NumCaptures is how many of player1's (or player2's) stones have been taken.
func (that *Board) NumCaptures(player1 bool) int {
	return that.captures[side(player1)]
}

func (that *Board) Groups() []*Group {
	return that.groups
}

// TerritoryDelta is the territory balance found by the last evaluation.
func (that *Board) TerritoryDelta() float64 {
	return that.territoryDelta
}

func side(player1 bool) int {
	if player1 {
		return 0
	}

	return 1
}

// IsSuicide reports whether a stone at loc would have no liberties and capture nothing.
func (that *Board) IsSuicide(loc entity.Location, player1 bool) bool {
	for _, n := range that.nobiNeighbors(loc) {
		switch {
		case !n.IsOccupied():
			return false
		case n.Piece.Player1 == player1:
			if n.str.NumLiberties(that) > 1 {
				return false
			}
		default:
			if n.str.NumLiberties(that) == 1 {
				return false
			}
		}
	}

	return true
}

// MakeMove places the stone, removes captured enemy strings and records the move.
func (that *Board) MakeMove(m *Move) error {
	if m.Pass || m.Resign {
		m.ply = that.moves.Len()
		that.moves.Add(m)

		return nil
	}

	p := that.at(m.To)
	if p == nil {
		return fmt.Errorf("%w: %s", apperror.ErrOffBoard, m)
	}

	if p.IsOccupied() {
		return fmt.Errorf("%w: %s is occupied", apperror.ErrIllegalMove, m.To)
	}

	if that.IsSuicide(m.To, m.Player) {
		return fmt.Errorf("%w: %s is suicide", apperror.ErrIllegalMove, m)
	}

	touched := that.groupsNear([]entity.Location{m.To})

	that.place(p, m.Player)

	m.captured = m.captured[:0]
	for _, n := range that.nobiNeighbors(p.Loc) {
		if n.ownedBy(!m.Player) && n.str.NumLiberties(that) == 0 {
			that.capture(n.str, m)
		}
	}

	m.ply = that.moves.Len()
	m.ko = len(m.captured) == 1 && p.str.Size() == 1 && p.str.NumLiberties(that) == 1
	if m.ko {
		that.hash.ToggleMoveNumber(m.ply)
	}

	that.moves.Add(m)
	that.regroup(touched, append([]entity.Location{m.To}, m.captured...))

	return nil
}

// UndoMove reverses the last move. It returns nil when there is nothing to undo.
func (that *Board) UndoMove() *Move {
	last := that.moves.Pop()
	if last == nil {
		return nil
	}

	m, _ := last.(*Move)
	if m.Pass || m.Resign {
		return m
	}

	if m.ko {
		that.hash.ToggleMoveNumber(m.ply)
	}

	changed := append([]entity.Location{m.To}, m.captured...)
	touched := that.groupsNear(changed)

	p := that.at(m.To)
	that.setPiece(p, nil)
	p.str = nil

	seeds := that.nobiNeighbors(p.Loc)

	for _, loc := range m.captured {
		q := that.at(loc)
		that.setPiece(q, entity.NewPiece(!m.Player))
		seeds = append(seeds, q)
	}

	that.captures[side(!m.Player)] -= len(m.captured)

	that.reflood(seeds)
	that.regroup(touched, changed)

	return m
}

// place puts a stone on p and merges it with the friendly strings it touches.
func (that *Board) place(p *Position, player1 bool) {
	that.setPiece(p, entity.NewPiece(player1))

	str := &StoneString{player1: player1, members: []*Position{p}}
	p.str = str

	for _, n := range that.nobiNeighbors(p.Loc) {
		if n.ownedBy(player1) && n.str != str {
			str.absorb(n.str)
		}
	}
}

func (that *Board) capture(str *StoneString, m *Move) {
	for _, q := range str.members {
		m.captured = append(m.captured, q.Loc)
		that.setPiece(q, nil)
		q.str = nil
		q.eye = nil
	}

	that.captures[side(str.player1)] += len(str.members)
	str.members = nil
}

func (that *Board) setPiece(p *Position, piece *entity.Piece) {
	that.toggle(p)
	p.Piece = piece
	that.toggle(p)
}

func (that *Board) toggle(p *Position) {
	that.hash.Toggle(p.Loc.Row, p.Loc.Col, p.hashState())
}

// numStonesAtaried counts enemy stones left with a single liberty next to the move.
func (that *Board) numStonesAtaried(m *Move) int {
	if m.Pass || m.Resign {
		return 0
	}

	seen := make(map[*StoneString]struct{})
	count := 0

	for _, n := range that.nobiNeighbors(m.To) {
		if !n.ownedBy(!m.Player) {
			continue
		}

		if _, ok := seen[n.str]; ok {
			continue
		}

		seen[n.str] = struct{}{}

		if n.str.NumLiberties(that) == 1 {
			count += n.str.Size()
		}
	}

	return count
}

// Clone deep-copies stones, history and structure. Evaluation state is recomputed on demand.
func (that *Board) Clone() *Board {
	b := &Board{
		size:           that.size,
		handicap:       that.handicap,
		positions:      make([]Position, len(that.positions)),
		hash:           that.hash.Copy(),
		captures:       that.captures,
		lineScores:     that.lineScores,
		territoryDelta: that.territoryDelta,
	}

	var occupied []*Position

	for i := range that.positions {
		src := &that.positions[i]
		b.positions[i] = Position{Loc: src.Loc, Piece: src.Piece.Copy(), score: src.score}

		if src.IsOccupied() {
			occupied = append(occupied, &b.positions[i])
		}
	}

	b.reflood(occupied)
	b.rebuildGroups()

	b.moves = *that.moves.Copy()

	return b
}

func (that *Board) String() string {
	var sb strings.Builder

	for r := range that.size {
		for c := range that.size {
			if c > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(that.Position(r, c).Piece.Symbol())
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
