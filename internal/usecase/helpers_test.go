package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/gogame"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

var errSomeError = errors.New("some error")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func greedy() search.Options {
	opts := search.DefaultOptions()
	opts.LookAhead = 1

	return opts
}

func newGoGame(t *testing.T) Game {
	t.Helper()

	g, err := gogame.NewGame(5, 0)
	require.NoError(t, err)

	return g
}

// raceGame ends after the first move, which wins.
type raceGame struct {
	moves  entity.MoveList
	winner int
}

func newRaceGame() (Game, error) {
	return &raceGame{}, nil
}

func (that *raceGame) MakeInternalMove(m entity.Move) error {
	that.moves.Add(m)

	return nil
}

func (that *raceGame) UndoInternalMove(entity.Move) error {
	that.moves.Pop()
	that.winner = 0

	return nil
}

func (that *raceGame) GenerateMoves(lastMove entity.Move, _ *entity.Weights) ([]entity.Move, error) {
	player1 := lastMove == nil || !lastMove.Player1()

	return []entity.Move{&entity.TwoPlayerMove{Player: player1}}, nil
}

func (that *raceGame) GenerateUrgentMoves(entity.Move, *entity.Weights) ([]entity.Move, error) {
	return nil, nil
}

func (that *raceGame) InJeopardy(entity.Move, *entity.Weights) bool { return false }
func (that *raceGame) Worth(entity.Move, *entity.Weights) int       { return 0 }

func (that *raceGame) Done(lastMove entity.Move, recordWin bool) bool {
	if lastMove == nil {
		return false
	}

	if recordWin {
		that.winner = 2
		if lastMove.Player1() {
			that.winner = 1
		}
	}

	return true
}

func (that *raceGame) Reset() {
	that.moves.Clear()
	that.winner = 0
}

func (that *raceGame) SetProfiler(*search.Profiler) {}

func (that *raceGame) Winner() (bool, bool) {
	return that.winner == 1, that.winner != 0
}

func (that *raceGame) StrengthOfWin() int         { return 1 }
func (that *raceGame) MoveList() *entity.MoveList { return &that.moves }
func (that *raceGame) HashKey() uint64            { return uint64(that.moves.Len()) }
func (that *raceGame) GameName() string           { return "race" }
func (that *raceGame) String() string             { return fmt.Sprintf("race after %d moves", that.moves.Len()) }

// brokenGame fails to generate moves.
type brokenGame struct {
	Game
}

func (that *brokenGame) GenerateMoves(entity.Move, *entity.Weights) ([]entity.Move, error) {
	return nil, errSomeError
}
