package gogame

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// CriticalGroupSize is the smallest atari that makes a move urgent.
const CriticalGroupSize = 3

// MoveGenerator lists every empty point that is neither suicide nor an immediate ko take-back,
// each valued by making it, evaluating and undoing it.
type MoveGenerator struct {
	board    *Board
	profiler *search.Profiler
}

func NewMoveGenerator(board *Board) *MoveGenerator {
	return &MoveGenerator{board: board}
}

func (that *MoveGenerator) GenerateMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	player1 := lastMove == nil || !lastMove.Player1()
	last, _ := lastMove.(*Move)

	var moves []entity.Move

	for i := range that.board.positions {
		p := &that.board.positions[i]
		if p.IsOccupied() || isTakeBack(that.board, p.Loc, last) || that.board.IsSuicide(p.Loc, player1) {
			continue
		}

		m := NewMove(p.Loc, player1)
		if err := that.evaluate(m, weights); err != nil {
			return nil, err
		}

		moves = append(moves, m)
	}

	if that.board.moves.Len() > 2*that.board.size || len(moves) == 0 {
		value := 0
		if lastMove != nil {
			value = lastMove.Value()
		}

		moves = append(moves, NewPassMove(player1, value))
	}

	return moves, nil
}

// evaluate plays m, records its value and the atari it creates, then takes it back.
func (that *MoveGenerator) evaluate(m *Move, weights *entity.Weights) error {
	if err := that.board.MakeMove(m); err != nil {
		return fmt.Errorf("%w: candidate %s: %w", apperror.ErrInvariantViolation, m, err)
	}

	that.profiler.Start(search.PhaseCalcWorth)
	m.SetValue(Worth(that.board, weights))
	that.profiler.Stop(search.PhaseCalcWorth)

	m.ataried = that.board.numStonesAtaried(m)
	m.liberties = that.board.at(m.To).str.NumLiberties(that.board)

	if that.board.UndoMove() != m {
		return fmt.Errorf("%w: undo of candidate %s", apperror.ErrInvariantViolation, m)
	}

	return nil
}

// GenerateUrgentMoves keeps the moves that capture, or put at least CriticalGroupSize stones
// in atari without being in atari themselves.
func (that *MoveGenerator) GenerateUrgentMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	all, err := that.GenerateMoves(lastMove, weights)
	if err != nil {
		return nil, err
	}

	var urgent []entity.Move

	for _, em := range all {
		m := em.(*Move)
		if m.Pass {
			continue
		}

		if len(m.captured) > 0 || (m.ataried >= CriticalGroupSize && m.liberties > 1) {
			m.SetUrgent(true)
			urgent = append(urgent, m)
		}
	}

	return urgent, nil
}

// isTakeBack - retaking a single stone at once with a lone stone that is itself in atari breaks ko.
func isTakeBack(b *Board, loc entity.Location, lastMove *Move) bool {
	if lastMove == nil || len(lastMove.captured) != 1 || lastMove.captured[0] != loc {
		return false
	}

	stone := b.at(lastMove.To)

	return stone.str != nil && stone.str.Size() == 1 && stone.str.NumLiberties(b) == 1
}
