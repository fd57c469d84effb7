package search

import (
	"sort"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// BestMoves orders moves best-first for the player about to move and keeps the top
// PercentBestMoves of them. The list is only cut when it is longer than MinBestMoves.
// The sort is stable so equal values keep generation order.
func BestMoves(moves []entity.Move, player1 bool, opts Options) []entity.Move {
	sorted := make([]entity.Move, len(moves))
	copy(sorted, moves)

	sort.SliceStable(sorted, func(i, j int) bool {
		if player1 {
			return sorted[i].Value() > sorted[j].Value()
		}

		return sorted[i].Value() < sorted[j].Value()
	})

	numMoves := len(sorted)
	best := int(float64(opts.PercentBestMoves)/100.0*float64(numMoves)) + 1

	if best < numMoves && numMoves > opts.MinBestMoves {
		if best < opts.MinBestMoves {
			best = opts.MinBestMoves
		}

		return sorted[:best]
	}

	return sorted
}
