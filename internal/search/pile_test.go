package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// pileMove removes 1..3 tokens from a shared pile.
type pileMove struct {
	player1 bool
	take    int
	value   int
}

func (that *pileMove) Player1() bool      { return that.player1 }
func (that *pileMove) Value() int         { return that.value }
func (that *pileMove) SetValue(value int) { that.value = value }
func (that *pileMove) IsPass() bool       { return false }
func (that *pileMove) IsUrgent() bool     { return false }

func (that *pileMove) String() string {
	side := 2
	if that.player1 {
		side = 1
	}

	return fmt.Sprintf("P%d take %d", side, that.take)
}

// pileGame: whoever takes the last token wins.
type pileGame struct {
	pile  int
	moves entity.MoveList

	emptyAt int
	panicAt int
	hook    func()
}

func newPileGame(pile int) *pileGame {
	return &pileGame{pile: pile}
}

func (that *pileGame) MakeInternalMove(m entity.Move) error {
	pm, ok := m.(*pileMove)
	if !ok || pm.take > that.pile {
		return apperror.ErrIllegalMove
	}

	that.pile -= pm.take
	that.moves.Add(m)

	return nil
}

func (that *pileGame) UndoInternalMove(m entity.Move) error {
	if that.moves.Last() != m {
		return apperror.ErrInvariantViolation
	}

	that.moves.Pop()
	that.pile += m.(*pileMove).take

	return nil
}

func (that *pileGame) GenerateMoves(lastMove entity.Move, _ *entity.Weights) ([]entity.Move, error) {
	if that.hook != nil {
		that.hook()
	}

	if that.panicAt != 0 && that.pile == that.panicAt {
		panic("corrupted pile")
	}

	if that.emptyAt != 0 && that.pile == that.emptyAt {
		return nil, nil
	}

	player1 := playerToMove(lastMove)

	var moves []entity.Move
	for take := 1; take <= 3 && take <= that.pile; take++ {
		moves = append(moves, &pileMove{player1: player1, take: take, value: pileWorth(that.pile-take, player1)})
	}

	return moves, nil
}

func (that *pileGame) GenerateUrgentMoves(lastMove entity.Move, w *entity.Weights) ([]entity.Move, error) {
	moves, err := that.GenerateMoves(lastMove, w)
	if err != nil {
		return nil, err
	}

	var urgent []entity.Move
	for _, m := range moves {
		if m.(*pileMove).take == that.pile {
			urgent = append(urgent, m)
		}
	}

	return urgent, nil
}

func (that *pileGame) InJeopardy(_ entity.Move, _ *entity.Weights) bool {
	return that.pile > 0 && that.pile <= 2
}

func (that *pileGame) Worth(lastMove entity.Move, _ *entity.Weights) int {
	return pileWorth(that.pile, lastMove != nil && lastMove.Player1())
}

func (that *pileGame) Done(_ entity.Move, _ bool) bool {
	return that.pile == 0
}

func (that *pileGame) MoveList() *entity.MoveList { return &that.moves }
func (that *pileGame) HashKey() uint64            { return uint64(that.pile)*0x9e3779b97f4a7c15 + 1 }
func (that *pileGame) GameName() string           { return "pile" }
func (that *pileGame) String() string             { return fmt.Sprintf("pile=%d", that.pile) }

// pileWorth scores the pile left behind by mover, from player1's perspective.
func pileWorth(pile int, moverIsPlayer1 bool) int {
	if pile == 0 {
		if moverIsPlayer1 {
			return WinningValue
		}

		return -WinningValue
	}

	return (pile*7919)%23 - 11
}

// bruteForce is exhaustive minimax over every generated move.
func bruteForce(g *pileGame, lastMove entity.Move, depth int) int {
	if depth == 0 || (lastMove != nil && g.Done(lastMove, false)) {
		return lastMove.Value()
	}

	moves, _ := g.GenerateMoves(lastMove, nil)
	player1 := playerToMove(lastMove)

	best := infinity
	if player1 {
		best = -infinity
	}

	for _, m := range moves {
		_ = g.MakeInternalMove(m)
		v := bruteForce(g, m, depth-1)
		_ = g.UndoInternalMove(m)

		if player1 {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}

	return best
}

type recordingSink struct {
	mu        sync.Mutex
	snapshots []*entity.Snapshot
}

func (that *recordingSink) SaveSnapshot(_ context.Context, snapshot *entity.Snapshot) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.snapshots = append(that.snapshots, snapshot)

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
