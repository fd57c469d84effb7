package blockade

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// Game adapts a Board to the search.
type Game struct {
	board     *Board
	generator *MoveGenerator
	profiler  *search.Profiler

	winner int8
}

var _ search.Searchable = (*Game)(nil)

func NewGame(rows, cols int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Game{board: board, generator: NewMoveGenerator(board)}, nil
}

func (that *Game) Board() *Board {
	return that.board
}

// SetProfiler routes evaluation timings into p.
func (that *Game) SetProfiler(p *search.Profiler) {
	that.profiler = p
	that.generator.profiler = p
}

func (that *Game) MakeInternalMove(m entity.Move) error {
	bm, ok := m.(*Move)
	if !ok {
		return fmt.Errorf("%w: %T is not a blockade move", apperror.ErrIllegalMove, m)
	}

	return that.board.MakeMove(bm)
}

func (that *Game) UndoInternalMove(m entity.Move) error {
	if that.board.moves.Last() != m {
		return fmt.Errorf("%w: %v is not the last move", apperror.ErrInvariantViolation, m)
	}

	that.board.UndoMove()
	that.winner = homeNone

	return nil
}

func (that *Game) GenerateMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	return that.generator.GenerateMoves(lastMove, weights)
}

func (that *Game) GenerateUrgentMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	return that.generator.GenerateUrgentMoves(lastMove, weights)
}

// InJeopardy is true when the last mover's pawn can reach an opponent home with its next step.
func (that *Game) InJeopardy(lastMove entity.Move, _ *entity.Weights) bool {
	m, ok := lastMove.(*Move)
	if !ok {
		return false
	}

	for _, step := range that.board.PossibleMoves(m.To, m.Player) {
		if that.board.at(step.To).IsOpponentHome(m.Player) {
			return true
		}
	}

	return false
}

func (that *Game) Worth(_ entity.Move, weights *entity.Weights) int {
	that.profiler.Start(search.PhaseCalcWorth)
	defer that.profiler.Stop(search.PhaseCalcWorth)

	return Worth(that.board.FindPlayerPathLengths(), weights)
}

// Done is true once a pawn stands on an opponent home.
func (that *Game) Done(_ entity.Move, recordWin bool) bool {
	for _, player1 := range []bool{true, false} {
		for _, loc := range that.board.Pawns(player1) {
			if !that.board.at(loc).IsOpponentHome(player1) {
				continue
			}

			if recordWin {
				that.winner = homePlayer2
				if player1 {
					that.winner = homePlayer1
				}
			}

			return true
		}
	}

	return false
}

// Winner reports the side recorded by Done(_, true).
func (that *Game) Winner() (player1 bool, ok bool) {
	return that.winner == homePlayer1, that.winner != homeNone
}

// StrengthOfWin is how many steps the loser's closest pawn was still short.
func (that *Game) StrengthOfWin() int {
	lengths := that.board.FindPlayerPathLengths()
	if that.winner == homePlayer1 {
		return lengths.Player2.Shortest
	}

	return lengths.Player1.Shortest
}

func (that *Game) Reset() {
	that.board.Reset()
	that.winner = homeNone
}

func (that *Game) MoveList() *entity.MoveList {
	return that.board.MoveList()
}

func (that *Game) HashKey() uint64 {
	return that.board.HashKey()
}

func (that *Game) GameName() string {
	return GameName
}

func (that *Game) String() string {
	return that.board.String()
}
