package gogame

import (
	"fmt"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// PhaseUpdateTerritory times the eye, health and territory pass inside each evaluation.
const PhaseUpdateTerritory = "update territory"

// Game adapts a Board to the search.
type Game struct {
	board     *Board
	generator *MoveGenerator
	profiler  *search.Profiler

	// scores caches worth by position hash when enabled.
	scores map[uint64]int

	winner int8
}

const (
	noWinner int8 = iota
	player1Won
	player2Won
)

var _ search.Searchable = (*Game)(nil)

func NewGame(size, handicap int) (*Game, error) {
	board, err := NewBoard(size, handicap)
	if err != nil {
		return nil, err
	}

	return &Game{board: board, generator: NewMoveGenerator(board)}, nil
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) SetProfiler(p *search.Profiler) {
	p.AddPhase(PhaseUpdateTerritory, search.PhaseCalcWorth)

	that.profiler = p
	that.generator.profiler = p
}

// EnableScoreCache memoizes worth by Zobrist key. Off by default: distinct positions
// can share a key and evaluation also depends on the move count.
func (that *Game) EnableScoreCache(enabled bool) {
	if enabled {
		that.scores = make(map[uint64]int)
	} else {
		that.scores = nil
	}
}

func (that *Game) MakeInternalMove(m entity.Move) error {
	gm, ok := m.(*Move)
	if !ok {
		return fmt.Errorf("%w: %T is not a go move", apperror.ErrIllegalMove, m)
	}

	return that.board.MakeMove(gm)
}

func (that *Game) UndoInternalMove(m entity.Move) error {
	if that.board.moves.Last() != m {
		return fmt.Errorf("%w: %v is not the last move", apperror.ErrInvariantViolation, m)
	}

	that.board.UndoMove()
	that.winner = noWinner

	return nil
}

func (that *Game) GenerateMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	return that.generator.GenerateMoves(lastMove, weights)
}

func (that *Game) GenerateUrgentMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error) {
	return that.generator.GenerateUrgentMoves(lastMove, weights)
}

// InJeopardy is true when the last move put at least CriticalGroupSize stones in atari.
func (that *Game) InJeopardy(lastMove entity.Move, _ *entity.Weights) bool {
	m, ok := lastMove.(*Move)
	if !ok {
		return false
	}

	return that.board.numStonesAtaried(m) >= CriticalGroupSize
}

func (that *Game) Worth(_ entity.Move, weights *entity.Weights) int {
	that.profiler.Start(search.PhaseCalcWorth)
	defer that.profiler.Stop(search.PhaseCalcWorth)

	if that.scores != nil {
		if v, ok := that.scores[that.board.HashKey()]; ok {
			return v
		}
	}

	that.profiler.Start(PhaseUpdateTerritory)
	v := Worth(that.board, weights)
	that.profiler.Stop(PhaseUpdateTerritory)

	if that.scores != nil {
		that.scores[that.board.HashKey()] = v
	}

	return v
}

// Done is true after a resignation or two passes in a row.
func (that *Game) Done(lastMove entity.Move, recordWin bool) bool {
	m, ok := lastMove.(*Move)
	if !ok {
		return false
	}

	switch {
	case m.Resign:
		if recordWin {
			that.setWinner(!m.Player)
		}

		return true
	case that.twoPasses(m):
		if recordWin {
			that.setWinner(that.board.FinalScore(true) > that.board.FinalScore(false))
		}

		return true
	}

	return false
}

func (that *Game) twoPasses(m *Move) bool {
	prev := that.board.moves.FromEnd(1)

	return m.Pass && that.board.moves.Last() == m && prev != nil && prev.IsPass()
}

func (that *Game) setWinner(player1 bool) {
	that.winner = player2Won
	if player1 {
		that.winner = player1Won
	}
}

// Winner reports the side recorded by Done(_, true).
func (that *Game) Winner() (player1 bool, ok bool) {
	return that.winner == player1Won, that.winner != noWinner
}

// FinalScore is territory plus prisoners for a side.
func (that *Game) FinalScore(player1 bool) int {
	return that.board.FinalScore(player1)
}

// StrengthOfWin is the margin between the final scores.
func (that *Game) StrengthOfWin() int {
	d := that.board.FinalScore(true) - that.board.FinalScore(false)
	if d < 0 {
		return -d
	}

	return d
}

func (that *Game) Reset() {
	that.board.Reset()
	that.winner = noWinner

	if that.scores != nil {
		clear(that.scores)
	}
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
