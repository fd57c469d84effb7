package entity

import "fmt"

// MatchResult is the outcome of one self-play game.
type MatchResult struct {
	Decided         bool
	Player1Won      bool
	StrengthOfWin   int
	NumMoves        int
	MovesConsidered int64
}

func (that *MatchResult) String() string {
	if !that.Decided {
		return fmt.Sprintf("undecided after %d moves", that.NumMoves)
	}

	winner := "player2"
	if that.Player1Won {
		winner = "player1"
	}

	return fmt.Sprintf("%s won by %d after %d moves", winner, that.StrengthOfWin, that.NumMoves)
}
