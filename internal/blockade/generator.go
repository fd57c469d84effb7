package blockade

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// MoveGenerator proposes, for each pawn, the first step of each of its shortest
// paths combined with walls that lengthen the opponent's shortest paths.
type MoveGenerator struct {
	board    *Board
	profiler *search.Profiler
}

func NewMoveGenerator(board *Board) *MoveGenerator {
	return &MoveGenerator{board: board}
}

func (that *MoveGenerator) GenerateMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	player1 := lastMove == nil || !lastMove.Player1()

	opponentPaths := that.board.FindAllOpponentShortestPaths(player1)

	var moves []*Move

	for _, loc := range append([]entity.Location(nil), that.board.Pawns(player1)...) {
		found, err := that.addMoves(loc, opponentPaths, weights)
		if err != nil {
			return nil, err
		}

		for _, m := range found {
			if !containsMove(moves, m) {
				moves = append(moves, m)
			}
		}
	}

	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: %w for %s after %v",
			apperror.ErrInvariantViolation, apperror.ErrEmptyMoveList, sideName(player1), lastMove)
	}

	out := make([]entity.Move, len(moves))
	for i, m := range moves {
		out[i] = m
	}

	return out, nil
}

func (that *MoveGenerator) addMoves(loc entity.Location, opponentPaths []Path, weights *entity.Weights) ([]*Move, error) {
	var moves []*Move

	for _, path := range that.board.FindShortestPaths(loc) {
		step := path.FirstStep()
		if step == nil {
			continue
		}

		if err := that.board.MakeMove(step); err != nil {
			return nil, err
		}

		ownPaths := that.board.FindShortestPaths(step.To)
		that.board.UndoMove()

		wallMoves, err := that.wallPlacementsForStep(step, ownPaths, opponentPaths, weights)
		if err != nil {
			return nil, err
		}

		moves = append(moves, wallMoves...)
	}

	return moves, nil
}

func (that *MoveGenerator) wallPlacementsForStep(
	step *Move,
	ownPaths, opponentPaths []Path,
	weights *entity.Weights,
) ([]*Move, error) {
	var (
		moves []*Move
		tried []*Wall
	)

	for _, opponentPath := range opponentPaths {
		for _, opponentStep := range opponentPath {
			for _, w := range that.board.WallsForMove(opponentStep, ownPaths) {
				if containsWall(tried, w) {
					continue
				}

				tried = append(tried, w)

				m, err := that.withWall(step, w, weights)
				if err != nil {
					return nil, err
				}

				if m != nil {
					moves = append(moves, m)
				}
			}
		}
	}

	if len(moves) == 0 {
		m, err := that.withWall(step, nil, weights)
		if err != nil {
			return nil, err
		}

		if m != nil {
			moves = append(moves, m)
		}
	}

	return moves, nil
}

// withWall values the step combined with the wall, or returns nil when the result is not a legal position.
func (that *MoveGenerator) withWall(step *Move, w *Wall, weights *entity.Weights) (*Move, error) {
	if w != nil && (that.board.checkWallFits(w) != nil || that.board.crossesWall(w)) {
		return nil, nil
	}

	m := NewMove(step.From, step.To, step.Player, w.Copy())

	if err := that.board.MakeMove(m); err != nil {
		return nil, err
	}

	that.profiler.Start(search.PhaseCalcWorth)
	lengths := that.board.FindPlayerPathLengths()
	that.profiler.Stop(search.PhaseCalcWorth)

	that.board.UndoMove()

	if !lengths.IsValid() {
		return nil, nil
	}

	m.SetValue(Worth(lengths, weights))

	return m, nil
}

// GenerateUrgentMoves returns the steps that land a pawn on an opponent home.
func (that *MoveGenerator) GenerateUrgentMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	player1 := lastMove == nil || !lastMove.Player1()

	var moves []entity.Move

	for _, loc := range append([]entity.Location(nil), that.board.Pawns(player1)...) {
		for _, step := range that.board.PossibleMoves(loc, player1) {
			if !that.board.at(step.To).IsOpponentHome(player1) {
				continue
			}

			m, err := that.withWall(step, nil, weights)
			if err != nil {
				return nil, err
			}

			if m != nil {
				m.SetUrgent(true)
				moves = append(moves, m)
			}
		}
	}

	return moves, nil
}

func containsMove(moves []*Move, m *Move) bool {
	for _, other := range moves {
		if other.SameAs(m) {
			return true
		}
	}

	return false
}

func containsWall(walls []*Wall, w *Wall) bool {
	for _, other := range walls {
		if other.Equal(w) {
			return true
		}
	}

	return false
}

func sideName(player1 bool) string {
	if player1 {
		return "player1"
	}

	return "player2"
}
