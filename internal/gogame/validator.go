package gogame

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/zobrist"
)

// Validator re-derives strings, groups and the hash by flood fill and checks them against
// what the board maintains incrementally.
type Validator struct {
	board *Board
}

func NewValidator(board *Board) *Validator {
	return &Validator{board: board}
}

func (that *Validator) Validate() error {
	for _, check := range []func() error{that.checkStrings, that.checkGroups, that.checkHash} {
		if err := check(); err != nil {
			return fmt.Errorf("%w: %w\n%s", apperror.ErrInvariantViolation, err, that.board)
		}
	}

	return nil
}

// checkStrings - every stone is in exactly one string, which is exactly its nobi component.
func (that *Validator) checkStrings() error {
	b := that.board
	visited := make([]bool, len(b.positions))

	for i := range b.positions {
		p := &b.positions[i]

		if !p.IsOccupied() {
			if p.str != nil {
				return fmt.Errorf("empty point %s references a string", p.Loc)
			}

			continue
		}

		if p.str == nil {
			return fmt.Errorf("stone at %s has no string", p.Loc)
		}

		if p.str.player1 != p.Piece.Player1 {
			return fmt.Errorf("stone at %s is in a string of the other side", p.Loc)
		}

		if visited[i] {
			continue
		}

		component := b.floodString(p, visited)
		if len(component) != p.str.Size() {
			return fmt.Errorf("string at %s has %d stones, flood fill finds %d", p.Loc, p.str.Size(), len(component))
		}

		for _, q := range component {
			if q.str != p.str {
				return fmt.Errorf("stones at %s and %s are connected but in different strings", p.Loc, q.Loc)
			}
		}
	}

	return nil
}

// checkGroups - every string is in exactly one non-empty group, which is exactly its loose component.
func (that *Validator) checkGroups() error {
	b := that.board
	owner := make(map[*StoneString]*Group)

	for _, g := range b.groups {
		if len(g.strings) == 0 {
			return errors.New("empty group")
		}

		for _, s := range g.strings {
			if s.Size() == 0 {
				return errors.New("group references an empty string")
			}

			if other, ok := owner[s]; ok && other != g {
				return fmt.Errorf("string at %s is in two groups", s.members[0].Loc)
			}

			if s.player1 != g.player1 {
				return fmt.Errorf("string at %s is in a group of the other side", s.members[0].Loc)
			}

			owner[s] = g
		}
	}

	visited := make([]bool, len(b.positions))

	for i := range b.positions {
		p := &b.positions[i]
		if !p.IsOccupied() || visited[i] {
			continue
		}

		g, ok := owner[p.str]
		if !ok || p.str.group != g {
			return fmt.Errorf("string at %s has no group", p.Loc)
		}

		component := that.looseComponent(p, visited)
		if len(component) != g.NumStones() {
			return fmt.Errorf("group at %s has %d stones, flood fill finds %d", p.Loc, g.NumStones(), len(component))
		}

		for _, q := range component {
			if q.Group() != g {
				return fmt.Errorf("stones at %s and %s are linked but in different groups", p.Loc, q.Loc)
			}
		}
	}

	return nil
}

func (that *Validator) looseComponent(seed *Position, visited []bool) []*Position {
	b := that.board
	queue := []*Position{seed}
	visited[b.index(seed.Loc)] = true

	var component []*Position

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		component = append(component, p)

		for _, n := range append(b.nobiNeighbors(p.Loc), b.looselyLinked(p)...) {
			i := b.index(n.Loc)
			if visited[i] || !n.ownedBy(seed.Piece.Player1) {
				continue
			}

			visited[i] = true
			queue = append(queue, n)
		}
	}

	return component
}

// checkHash recomputes the key from the stones and the ko moves in the history.
func (that *Validator) checkHash() error {
	b := that.board
	key := zobrist.NewKey(zobrist.Get(b.size, b.size, numHashStates))

	for i := range b.positions {
		p := &b.positions[i]
		key.Toggle(p.Loc.Row, p.Loc.Col, p.hashState())
	}

	for _, em := range b.moves.All() {
		if m, ok := em.(*Move); ok && m.ko {
			key.ToggleMoveNumber(m.ply)
		}
	}

	if key.Value() != b.HashKey() {
		return fmt.Errorf("hash is %x, recomputed %x", b.HashKey(), key.Value())
	}

	return nil
}
