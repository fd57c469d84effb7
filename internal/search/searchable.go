package search

import "github.com/rocketscienceinc/gamesearch/internal/entity"

// Searchable is what a game exposes to the search.
// Move values are static evaluations from player1's perspective.
// GenerateMoves must not return an empty list for a position where Done is false.
type Searchable interface {
	MakeInternalMove(m entity.Move) error
	UndoInternalMove(m entity.Move) error

	GenerateMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error)
	GenerateUrgentMoves(lastMove entity.Move, weights *entity.Weights) ([]entity.Move, error)
	InJeopardy(lastMove entity.Move, weights *entity.Weights) bool
	Worth(lastMove entity.Move, weights *entity.Weights) int
	Done(lastMove entity.Move, recordWin bool) bool

	MoveList() *entity.MoveList
	HashKey() uint64
	GameName() string
	String() string
}

// Snapshot captures the searchable's board for diagnostics.
func Snapshot(s Searchable, cause error) *entity.Snapshot {
	return entity.NewSnapshot(s.GameName(), s.String(), s.MoveList().Strings(), cause)
}

// playerToMove - player1 moves first, then sides alternate.
func playerToMove(lastMove entity.Move) bool {
	return lastMove == nil || !lastMove.Player1()
}
