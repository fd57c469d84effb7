package gogame

import "github.com/rocketscienceinc/gamesearch/internal/entity"

const GameName = "go"

// Weight indexes.
const (
	PositionalWeight = iota
	BadShapeWeight
	HealthWeight
	CaptureWeight
)

func DefaultWeights() *entity.Weights {
	return entity.NewWeights(GameName,
		entity.Parameter{Name: "positional", Value: 0.5, Min: 0, Max: 3},
		entity.Parameter{Name: "bad shape", Value: 2.0, Min: 0, Max: 3},
		entity.Parameter{Name: "health", Value: 1.0, Min: 0, Max: 3},
		entity.Parameter{Name: "captures", Value: 0.1, Min: 0, Max: 1},
	)
}
