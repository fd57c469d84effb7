package blockade

import "github.com/rocketscienceinc/gamesearch/internal/entity"

const GameName = "blockade"

// Weight indexes.
const (
	ClosestWeight = iota
	SecondClosestWeight
	FurthestWeight
)

// DefaultWeights favor the pawn closest to an enemy home.
func DefaultWeights() *entity.Weights {
	return entity.NewWeights(GameName,
		entity.Parameter{Name: "closest", Value: 8, Min: 0, Max: 50},
		entity.Parameter{Name: "second closest", Value: 7, Min: 0, Max: 50},
		entity.Parameter{Name: "furthest", Value: 4, Min: 0, Max: 50},
	)
}
