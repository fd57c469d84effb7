package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// Game is a searchable game that can be replayed from the start and reports its winner.
type Game interface {
	search.Searchable

	Reset()
	SetProfiler(p *search.Profiler)
	Winner() (player1 bool, ok bool)
	StrengthOfWin() int
}

// GameFactory builds a fresh game. Parallel matches each get their own.
type GameFactory func() (Game, error)

type snapshotRepoDep interface {
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error
}

type matchObserverDep interface {
	SearchStarted(ctx context.Context, searcher *search.Searcher)
	SearchFinished()
	MovePlayed(board fmt.Stringer, m entity.Move)
	MatchFinished(result *entity.MatchResult)
}

// Side is one player's search settings.
type Side struct {
	Weights *entity.Weights
	Options search.Options
}

// MatchRunner plays a game between two searchers until it is done or maxMoves is reached.
type MatchRunner struct {
	logger    *slog.Logger
	snapshots snapshotRepoDep
	observer  matchObserverDep
	maxMoves  int
}

// NewMatchRunner - snapshots and observer may be nil.
func NewMatchRunner(logger *slog.Logger, snapshots snapshotRepoDep, observer matchObserverDep, maxMoves int) *MatchRunner {
	return &MatchRunner{
		logger:    logger.With("component", "match"),
		snapshots: snapshots,
		observer:  observer,
		maxMoves:  maxMoves,
	}
}

func (that *MatchRunner) Play(ctx context.Context, game Game, player1, player2 Side) (*entity.MatchResult, error) {
	log := that.logger.With("method", "Play", "game", game.GameName())

	game.Reset()

	var sink search.DiagnosticsSink
	if that.snapshots != nil {
		sink = that.snapshots
	}

	first, err := search.NewSearcher(that.logger, game, player1.Weights, player1.Options, sink)
	if err != nil {
		return nil, fmt.Errorf("could not create searcher for player1: %w", err)
	}

	second, err := search.NewSearcher(that.logger, game, player2.Weights, player2.Options, sink)
	if err != nil {
		return nil, fmt.Errorf("could not create searcher for player2: %w", err)
	}

	result := &entity.MatchResult{}

	for result.NumMoves < that.maxMoves {
		searcher := first
		if last := game.MoveList().Last(); last != nil && last.Player1() {
			searcher = second
		}

		res, err := that.search(ctx, game, searcher)
		if err != nil {
			return nil, err
		}

		result.MovesConsidered += res.MovesConsidered

		if err = game.MakeInternalMove(res.Move); err != nil {
			return nil, fmt.Errorf("could not play %s: %w", res.Move, err)
		}

		result.NumMoves++

		log.Debug("move played", "move", res.Move, "value", res.Value, "elapsed", res.Elapsed)

		if that.observer != nil {
			that.observer.MovePlayed(game, res.Move)
		}

		if game.Done(res.Move, true) {
			break
		}
	}

	if player1Won, ok := game.Winner(); ok {
		result.Decided = true
		result.Player1Won = player1Won
		result.StrengthOfWin = game.StrengthOfWin()
	}

	log.Info("match finished", "result", result.String(), "moves_considered", result.MovesConsidered)

	if that.observer != nil {
		that.observer.MatchFinished(result)
	}

	return result, nil
}

func (that *MatchRunner) search(ctx context.Context, game Game, searcher *search.Searcher) (search.Result, error) {
	game.SetProfiler(searcher.Profiler())

	results, err := searcher.RequestMove(ctx)
	if err != nil {
		return search.Result{}, fmt.Errorf("could not start search: %w", err)
	}

	if that.observer != nil {
		that.observer.SearchStarted(ctx, searcher)
		defer that.observer.SearchFinished()
	}

	res := <-results
	if res.Err != nil {
		return res, fmt.Errorf("search failed after %d moves: %w", game.MoveList().Len(), res.Err)
	}

	that.logger.Debug("profile", "game", game.GameName(), "phases", searcher.Profiler().String())

	return res, nil
}
