package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gamesearch/internal/apperror"
	"github.com/rocketscienceinc/gamesearch/internal/blockade"
	"github.com/rocketscienceinc/gamesearch/internal/config"
	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/gogame"
	"github.com/rocketscienceinc/gamesearch/internal/repository"
	"github.com/rocketscienceinc/gamesearch/internal/repository/storage"
	"github.com/rocketscienceinc/gamesearch/internal/search"
	"github.com/rocketscienceinc/gamesearch/internal/usecase"
	"github.com/rocketscienceinc/gamesearch/transport/console"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	opts, err := conf.Search.Options()
	if err != nil {
		return fmt.Errorf("invalid search config: %w", err)
	}

	newGame, defaults, err := gameFactory(conf)
	if err != nil {
		return err
	}

	var (
		snapshots   repository.SnapshotRepository
		weightsRepo repository.WeightsRepository
	)

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		snapshots = repository.NewSnapshotRepository(redisStorage, conf.Redis.SnapshotTTL)
		weightsRepo = repository.NewWeightsRepository(redisStorage)
	}

	switch conf.Mode {
	case config.ModeMatch:
		err = runMatch(ctx, logger, conf, opts, snapshots, weightsRepo, newGame, defaults)
	case config.ModeOptimize:
		err = runOptimizer(ctx, logger, conf, opts, snapshots, weightsRepo, newGame, defaults)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}

	if errors.Is(err, apperror.ErrSearchCancelled) {
		log.Info("Application context canceled, shutting down")

		return nil
	}

	return err
}

func runMatch(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	opts search.Options,
	snapshots repository.SnapshotRepository,
	weightsRepo repository.WeightsRepository,
	newGame usecase.GameFactory,
	defaults *entity.Weights,
) error {
	weights := defaults
	if weightsRepo != nil {
		stored, err := weightsRepo.GetByGame(ctx, defaults.Game)

		switch {
		case err == nil && stored.Len() == defaults.Len():
			weights = stored
		case err != nil && !errors.Is(err, repository.ErrWeightsNotFound):
			return fmt.Errorf("could not load weights: %w", err)
		}
	}

	game, err := newGame()
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	runner := usecase.NewMatchRunner(logger, snapshots, console.New(os.Stdout, conf.Console.Colors), conf.Match.MaxMoves)
	side := usecase.Side{Weights: weights, Options: opts}

	if _, err = runner.Play(ctx, game, side, side); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return nil
}

func runOptimizer(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	opts search.Options,
	snapshots repository.SnapshotRepository,
	weightsRepo repository.WeightsRepository,
	newGame usecase.GameFactory,
	defaults *entity.Weights,
) error {
	runner := usecase.NewMatchRunner(logger, snapshots, nil, conf.Match.MaxMoves)
	optimizer := usecase.NewOptimizer(logger, runner, weightsRepo, newGame, usecase.OptimizerOptions{
		Iterations:        conf.Optimizer.Iterations,
		GamesPerIteration: conf.Optimizer.GamesPerIteration,
		Parallelism:       conf.Optimizer.Parallelism,
		StepSize:          conf.Optimizer.StepSize,
		Seed:              conf.Optimizer.Seed,
		Search:            opts,
	})

	best, err := optimizer.Optimize(ctx, defaults)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	fmt.Fprintln(os.Stdout, best.String())

	return nil
}

// gameFactory builds games of the configured kind, with that game's default weights.
func gameFactory(conf *config.Config) (usecase.GameFactory, *entity.Weights, error) {
	switch conf.Game {
	case config.GameGo:
		factory := func() (usecase.Game, error) {
			g, err := gogame.NewGame(conf.Go.Size, conf.Go.Handicap)
			if err != nil {
				return nil, err
			}

			g.EnableScoreCache(conf.Search.ScoreCache)

			return g, nil
		}

		return factory, gogame.DefaultWeights(), nil
	case config.GameBlockade:
		factory := func() (usecase.Game, error) {
			g, err := blockade.NewGame(conf.Blockade.Rows, conf.Blockade.Cols)
			if err != nil {
				return nil, err
			}

			return g, nil
		}

		return factory, blockade.DefaultWeights(), nil
	}

	return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, conf.Game)
}
