package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/testing/suite"
)

func newWeights(value float64) *entity.Weights {
	return entity.NewWeights("go",
		entity.Parameter{Name: "positional", Value: value, Min: 0, Max: 3},
		entity.Parameter{Name: "captures", Value: 0.1, Min: 0, Max: 1},
	)
}

func TestWeightsRepository_Save(t *testing.T) {
	t.Run("Save_Overwrites", func(t *testing.T) {
		ctx, st := suite.New(t)

		weightsRepo := NewWeightsRepository(st.Storage)

		// Given: weights already stored for the game
		require.NoError(t, weightsRepo.Save(ctx, newWeights(0.5)))

		// When: Save is called with better weights for the same game
		err := weightsRepo.Save(ctx, newWeights(1.25))

		// Then: the newer weights replace the old ones
		require.NoError(t, err)

		stored, err := weightsRepo.GetByGame(ctx, "go")
		require.NoError(t, err)
		assert.InDelta(t, 1.25, stored.Get(0), 1e-9)
	})

	t.Run("Save_OutOfRange", func(t *testing.T) {
		ctx, st := suite.New(t)

		weightsRepo := NewWeightsRepository(st.Storage)

		// When: Save is called with a weight outside its bounds
		err := weightsRepo.Save(ctx, newWeights(7))

		// Then: the weights are rejected and nothing is stored
		require.ErrorIs(t, err, entity.ErrWeightOutOfRange)

		_, err = weightsRepo.GetByGame(ctx, "go")
		require.ErrorIs(t, err, ErrWeightsNotFound)
	})
}

func TestWeightsRepository_GetByGame(t *testing.T) {
	t.Run("GetByGame_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		weightsRepo := NewWeightsRepository(st.Storage)

		// Given: stored weights
		weights := newWeights(0.5)
		require.NoError(t, weightsRepo.Save(ctx, weights))

		// When: GetByGame is called
		stored, err := weightsRepo.GetByGame(ctx, "go")

		// Then: the stored weights match the saved ones
		require.NoError(t, err)
		assert.Equal(t, weights, stored)
	})

	t.Run("GetByGame_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		weightsRepo := NewWeightsRepository(st.Storage)

		// When: GetByGame is called for a game with no stored weights
		stored, err := weightsRepo.GetByGame(ctx, "blockade")

		// Then: ErrWeightsNotFound should be returned
		require.ErrorIs(t, err, ErrWeightsNotFound)
		assert.Nil(t, stored)
	})
}
