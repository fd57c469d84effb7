package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/repository"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

type weightsRepoDep interface {
	Save(ctx context.Context, weights *entity.Weights) error
	GetByGame(ctx context.Context, game string) (*entity.Weights, error)
}

type OptimizerOptions struct {
	Iterations        int
	GamesPerIteration int
	Parallelism       int
	StepSize          float64
	Seed              int64
	Search            search.Options
}

// Optimizer hill-climbs the evaluation weights of one game: each iteration a random
// neighbor of the current weights plays the current weights, and replaces them when
// it wins the majority of the games.
type Optimizer struct {
	logger  *slog.Logger
	runner  *MatchRunner
	weights weightsRepoDep
	newGame GameFactory
	opts    OptimizerOptions
	rng     *rand.Rand
}

// NewOptimizer - weights may be nil, in which case nothing is loaded or stored.
func NewOptimizer(
	logger *slog.Logger,
	runner *MatchRunner,
	weights weightsRepoDep,
	newGame GameFactory,
	opts OptimizerOptions,
) *Optimizer {
	return &Optimizer{
		logger:  logger.With("component", "optimizer"),
		runner:  runner,
		weights: weights,
		newGame: newGame,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)), //nolint: gosec // tuning noise
	}
}

// Optimize starts from the stored weights of the game, or from initial when none are stored.
func (that *Optimizer) Optimize(ctx context.Context, initial *entity.Weights) (*entity.Weights, error) {
	log := that.logger.With("method", "Optimize", "game", initial.Game)

	current, err := that.load(ctx, initial)
	if err != nil {
		return nil, err
	}

	for i := range that.opts.Iterations {
		candidate := current.Neighbor(that.rng, that.opts.StepSize)

		wins, err := that.compare(ctx, candidate, current)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		log.Info("iteration finished",
			"iteration", i,
			"candidate", candidate.String(),
			"wins", wins,
			"games", that.opts.GamesPerIteration,
		)

		if 2*wins <= that.opts.GamesPerIteration {
			continue
		}

		current = candidate

		if that.weights != nil {
			if err = that.weights.Save(ctx, current); err != nil {
				return nil, fmt.Errorf("could not save improved weights: %w", err)
			}
		}

		log.Info("weights improved", "weights", current.String())
	}

	return current, nil
}

func (that *Optimizer) load(ctx context.Context, initial *entity.Weights) (*entity.Weights, error) {
	if that.weights == nil {
		return initial.Copy(), nil
	}

	stored, err := that.weights.GetByGame(ctx, initial.Game)

	switch {
	case errors.Is(err, repository.ErrWeightsNotFound):
		return initial.Copy(), nil
	case err != nil:
		return nil, fmt.Errorf("could not load weights: %w", err)
	}

	if stored.Len() != initial.Len() {
		that.logger.Warn("stored weights do not fit the game, starting over", "stored", stored.String())

		return initial.Copy(), nil
	}

	return stored, nil
}

// compare plays candidate against current, alternating who moves first, and counts candidate wins.
func (that *Optimizer) compare(ctx context.Context, candidate, current *entity.Weights) (int, error) {
	var wins atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, that.opts.Parallelism))

	for n := range that.opts.GamesPerIteration {
		g.Go(func() error {
			game, err := that.newGame()
			if err != nil {
				return fmt.Errorf("could not create game: %w", err)
			}

			candidateSide := Side{Weights: candidate, Options: that.opts.Search}
			currentSide := Side{Weights: current, Options: that.opts.Search}
			candidateFirst := n%2 == 0

			var result *entity.MatchResult
			if candidateFirst {
				result, err = that.runner.Play(gctx, game, candidateSide, currentSide)
			} else {
				result, err = that.runner.Play(gctx, game, currentSide, candidateSide)
			}

			if err != nil {
				return fmt.Errorf("game %d: %w", n, err)
			}

			if result.Decided && result.Player1Won == candidateFirst {
				wins.Add(1)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(wins.Load()), nil
}
