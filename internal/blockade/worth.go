package blockade

import (
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// Worth scores path lengths from player1's perspective: shorter own paths and longer
// opponent paths are better. A 0-length path is a win;
// anything else stays strictly inside ±WinningValue.
func Worth(lengths PlayerPathLengths, weights *entity.Weights) int {
	p1, p2 := lengths.Player1, lengths.Player2

	if p1.Shortest == 0 {
		return search.WinningValue
	}

	if p2.Shortest == 0 {
		return -search.WinningValue
	}

	value := weights.Get(ClosestWeight)*float64(p2.Shortest-p1.Shortest) +
		weights.Get(SecondClosestWeight)*float64(p2.SecondShortest-p1.SecondShortest) +
		weights.Get(FurthestWeight)*float64(p2.Furthest-p1.Furthest)

	// Only a reached home may score a win.
	limit := float64(search.WinningValue - 1)

	return int(max(-limit, min(limit, value)))
}
