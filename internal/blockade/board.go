package blockade

import (
	"fmt"
	"math"
	"strings"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/zobrist"
)

const (
	// NumHomes is the number of home bases, and pawns, per player.
	NumHomes = 2

	DefaultRows = 14
	DefaultCols = 11

	minRows = 4
	minCols = 3

	homeRowFraction = 0.3
)

// Board is a rows x cols grid of positions with a wall arena.
// Walls are only ever removed in the reverse order they were placed.
type Board struct {
	rows      int
	cols      int
	positions []Position
	walls     []*Wall
	pawns     [2][]entity.Location
	homes     [2][]entity.Location
	moves     entity.MoveList
	hash      *zobrist.Key
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < minRows || cols < minCols {
		return nil, fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			apperror.ErrInvalidOptions, minRows, minCols, rows, cols)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		positions: make([]Position, rows*cols),
		hash:      zobrist.NewKey(zobrist.Get(rows, cols, numHashStates)),
	}

	b.homes = homeLocations(rows, cols)
	b.Reset()

	return b, nil
}

// homeLocations spreads NumHomes bases across a row about 30% in from each end.
func homeLocations(rows, cols int) [2][]entity.Location {
	cut := int(homeRowFraction * float64(rows))
	row1 := rows - cut
	row2 := cut - 1
	if row2 < 0 {
		row2 = 0
	}

	increment := float64(cols) / (NumHomes + 1)
	baseOffset := int(math.Round(increment))

	var homes [2][]entity.Location
	for i := range NumHomes {
		col := baseOffset + int(math.Round(float64(i)*increment)) - 1
		homes[0] = append(homes[0], entity.NewLocation(row1, col))
		homes[1] = append(homes[1], entity.NewLocation(row2, col))
	}

	return homes
}

// Reset clears walls and history and puts every pawn on its own home base.
func (that *Board) Reset() {
	for r := range that.rows {
		for c := range that.cols {
			that.positions[r*that.cols+c] = Position{Loc: entity.NewLocation(r, c)}
		}
	}

	that.walls = []*Wall{nil}
	that.moves.Clear()

	for side, player1 := range []bool{true, false} {
		that.pawns[side] = that.pawns[side][:0]

		for _, loc := range that.homes[side] {
			p := that.Position(loc.Row, loc.Col)
			p.home = homePlayer2
			if player1 {
				p.home = homePlayer1
			}

			p.Piece = entity.NewPiece(player1)
			that.pawns[side] = append(that.pawns[side], loc)
		}
	}

	that.rehash()
}

func (that *Board) rehash() {
	that.hash.Reset()

	for i := range that.positions {
		p := &that.positions[i]
		that.hash.Toggle(p.Loc.Row, p.Loc.Col, p.hashState())
	}
}

// Position returns nil outside the grid.
func (that *Board) Position(row, col int) *Position {
	if row < 0 || row >= that.rows || col < 0 || col >= that.cols {
		return nil
	}

	return &that.positions[row*that.cols+col]
}

func (that *Board) at(loc entity.Location) *Position {
	return that.Position(loc.Row, loc.Col)
}

func (that *Board) NumRows() int {
	return that.rows
}

func (that *Board) NumCols() int {
	return that.cols
}

func (that *Board) MoveList() *entity.MoveList {
	return &that.moves
}

func (that *Board) HashKey() uint64 {
	return that.hash.Value()
}

// Homes returns the home base locations of a side.
func (that *Board) Homes(player1 bool) []entity.Location {
	return that.homes[side(player1)]
}

// Pawns returns the current pawn locations of a side.
func (that *Board) Pawns(player1 bool) []entity.Location {
	return that.pawns[side(player1)]
}

func side(player1 bool) int {
	if player1 {
		return 0
	}

	return 1
}

// MakeMove moves the pawn, places the wall if any and records the move.
func (that *Board) MakeMove(m *Move) error {
	from, to := that.at(m.From), that.at(m.To)
	if from == nil || to == nil {
		return fmt.Errorf("%w: %s", apperror.ErrOffBoard, m)
	}

	if !from.ownedBy(m.Player) {
		return fmt.Errorf("%w: no pawn of the mover at %s", apperror.ErrIllegalMove, m.From)
	}

	if !to.enterableBy(m.Player) {
		return fmt.Errorf("%w: %s is occupied", apperror.ErrIllegalMove, m.To)
	}

	if m.Wall != nil {
		if err := that.checkWallFits(m.Wall); err != nil {
			return err
		}
	}

	if to.IsOccupied() {
		that.capture(to, m)
	}

	that.movePawn(from, to)

	if m.Wall != nil {
		that.placeWall(m.Wall)
	}

	that.moves.Add(m)

	return nil
}

// UndoMove reverses the last move. It returns nil when there is nothing to undo.
func (that *Board) UndoMove() *Move {
	last := that.moves.Pop()
	if last == nil {
		return nil
	}

	m, _ := last.(*Move)

	if m.Wall != nil {
		that.removeWall(m.Wall)
	}

	to := that.at(m.To)
	that.movePawn(to, that.at(m.From))

	if m.captured != nil {
		that.release(to, m)
	}

	return m
}

// capture lifts the opponent pawn off the home being entered.
func (that *Board) capture(p *Position, m *Move) {
	s := side(p.Piece.Player1)
	for i, l := range that.pawns[s] {
		if l == p.Loc {
			m.captured, m.capturedIndex = p.Piece, i
			that.pawns[s] = append(that.pawns[s][:i], that.pawns[s][i+1:]...)

			break
		}
	}

	that.toggle(p)
	p.Piece = nil
	that.toggle(p)
}

// release puts a captured pawn back where it was.
func (that *Board) release(p *Position, m *Move) {
	that.toggle(p)
	p.Piece = m.captured
	that.toggle(p)

	s := side(m.captured.Player1)
	that.pawns[s] = append(that.pawns[s], entity.Location{})
	copy(that.pawns[s][m.capturedIndex+1:], that.pawns[s][m.capturedIndex:])
	that.pawns[s][m.capturedIndex] = p.Loc

	m.captured = nil
}

func (that *Board) movePawn(from, to *Position) {
	that.toggle(from)
	that.toggle(to)

	to.Piece, from.Piece = from.Piece, nil

	pawns := that.pawns[side(to.Piece.Player1)]
	for i, loc := range pawns {
		if loc == from.Loc {
			pawns[i] = to.Loc

			break
		}
	}

	that.toggle(from)
	that.toggle(to)
}

func (that *Board) toggle(p *Position) {
	that.hash.Toggle(p.Loc.Row, p.Loc.Col, p.hashState())
}

// checkWallFits rejects walls that go off the grid or overlap an edge that is already walled.
func (that *Board) checkWallFits(w *Wall) error {
	a, b := that.at(w.First), that.at(w.Second)
	if a == nil || b == nil {
		return fmt.Errorf("%w: %s leaves the board", apperror.ErrIllegalWall, w)
	}

	if w.Vertical && (a.IsEastBlocked() || b.IsEastBlocked()) ||
		!w.Vertical && (a.IsSouthBlocked() || b.IsSouthBlocked()) {
		return fmt.Errorf("%w: %s overlaps an existing wall", apperror.ErrIllegalWall, w)
	}

	return nil
}

func (that *Board) placeWall(w *Wall) {
	w.id = len(that.walls)
	that.walls = append(that.walls, w)

	for _, p := range []*Position{that.at(w.First), that.at(w.Second)} {
		that.toggle(p)
		if w.Vertical {
			p.eastWall = w.id
		} else {
			p.southWall = w.id
		}
		that.toggle(p)
	}
}

func (that *Board) removeWall(w *Wall) {
	for _, p := range []*Position{that.at(w.First), that.at(w.Second)} {
		that.toggle(p)
		if w.Vertical {
			p.eastWall = 0
		} else {
			p.southWall = 0
		}
		that.toggle(p)
	}

	that.walls = that.walls[:len(that.walls)-1]
	w.id = 0
}

// Walls lists the placed walls in placement order.
func (that *Board) Walls() []*Wall {
	return that.walls[1:]
}

// Clone deep-copies positions, walls and history.
func (that *Board) Clone() *Board {
	b := &Board{
		rows:      that.rows,
		cols:      that.cols,
		positions: make([]Position, len(that.positions)),
		homes:     that.homes,
		hash:      that.hash.Copy(),
	}

	copy(b.positions, that.positions)
	for i := range b.positions {
		b.positions[i].Piece = that.positions[i].Piece.Copy()
	}

	placed := make(map[*Wall]*Wall, len(that.walls))
	b.walls = make([]*Wall, len(that.walls))

	for i, w := range that.walls {
		if w != nil {
			c := w.Copy()
			c.id = w.id
			b.walls[i] = c
			placed[w] = c
		}
	}

	for s := range b.pawns {
		b.pawns[s] = append([]entity.Location(nil), that.pawns[s]...)
	}

	// Moves and their walls belong to one board: undo clears capture state and wall ids.
	for _, em := range that.moves.All() {
		m, ok := em.(*Move)
		if !ok {
			b.moves.Add(em)

			continue
		}

		c := m.copy()
		if w, ok := placed[m.Wall]; ok {
			c.Wall = w
		}

		b.moves.Add(c)
	}

	return b
}

// String draws pawns as X/O, empty homes as 1/2, east walls as | and south walls as _.
func (that *Board) String() string {
	var sb strings.Builder

	for r := range that.rows {
		for c := range that.cols {
			p := that.Position(r, c)
			sb.WriteString(p.symbol())

			if p.IsEastBlocked() {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}

		sb.WriteByte('\n')

		for c := range that.cols {
			if that.Position(r, c).IsSouthBlocked() {
				sb.WriteString("_ ")
			} else {
				sb.WriteString("  ")
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
