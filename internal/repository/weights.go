package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

var ErrWeightsNotFound = errors.New("weights not found")

// WeightsRepository keeps the best known evaluation weights, one set per game.
type WeightsRepository interface {
	Save(ctx context.Context, weights *entity.Weights) error
	GetByGame(ctx context.Context, game string) (*entity.Weights, error)
}

type dbWeights struct {
	client *redis.Client
}

func NewWeightsRepository(client *redis.Client) WeightsRepository {
	return &dbWeights{
		client: client,
	}
}

func weightsKey(game string) string {
	return "weights:" + game
}

func (that *dbWeights) Save(ctx context.Context, weights *entity.Weights) error {
	if err := weights.Validate(); err != nil {
		return fmt.Errorf("refusing to save weights: %w", err)
	}

	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("could not marshal weights: %w", err)
	}

	if err = that.client.Set(ctx, weightsKey(weights.Game), weightsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set weights: %w", err)
	}

	return nil
}

func (that *dbWeights) GetByGame(ctx context.Context, game string) (*entity.Weights, error) {
	response, err := that.client.Get(ctx, weightsKey(game)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrWeightsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get weights of %s: %w", game, err)
	}

	var weights entity.Weights
	if err = json.Unmarshal([]byte(response), &weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}

	return &weights, nil
}
