package search

import (
	"context"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// negamaxStrategy scores every node for the side to move there.
// With a table it becomes negamax-memory.
type negamaxStrategy struct {
	*strategy

	table *TranspositionTable
}

func (that *negamaxStrategy) Search(ctx context.Context, lastMove entity.Move, root *TreeNode) (entity.Move, int, error) {
	that.begin()
	defer that.end()

	if that.table != nil {
		that.table.Clear()
	}

	value, best, err := that.negamax(ctx, lastMove, that.opts.LookAhead, 0, 0, -infinity, infinity, root)
	if err != nil {
		return nil, 0, err
	}

	if !playerToMove(lastMove) {
		value = -value
	}

	root.SetValue(value)
	that.percentDone.Store(100)

	that.logger.Debug("search finished", "move", best, "value", value, "moves_considered", that.MovesConsidered())

	return best, value, nil
}

func (that *negamaxStrategy) negamax(
	ctx context.Context,
	lastMove entity.Move,
	depth, ply, qDepth, alpha, beta int,
	node *TreeNode,
) (int, entity.Move, error) {
	player1 := playerToMove(lastMove)

	if depth == 0 || that.terminal(lastMove) {
		if depth == 0 && that.opts.Quiescence && !that.terminal(lastMove) {
			value, err := that.quiescence(ctx, lastMove, ply, qDepth, alpha, beta, node)

			return value, nil, err
		}

		return signed(player1, that.leafValue(lastMove)), nil, nil
	}

	alphaOrig := alpha

	var key uint64
	if that.table != nil && ply > 0 {
		key = that.hashKey(player1)
		if value, bound, ok := that.table.Probe(key, depth); ok {
			switch bound {
			case BoundExact:
				return value, nil, nil
			case BoundLower:
				alpha = max(alpha, value)
			case BoundUpper:
				beta = min(beta, value)
			}

			if alpha >= beta {
				return value, nil, nil
			}
		}
	}

	moves, err := that.generate(lastMove)
	if err != nil {
		return 0, nil, err
	}

	bestValue := -infinity

	var bestMove entity.Move

	for i, m := range moves {
		if err := that.wait(ctx); err != nil {
			return 0, nil, err
		}

		if err := that.makeMove(m); err != nil {
			return 0, nil, err
		}

		child := node.AddChild(m, alpha, beta)
		value, _, err := that.negamax(ctx, m, depth-1, ply+1, qDepth, -beta, -alpha, child)
		value = -value

		if undoErr := that.undoMove(m); undoErr != nil && err == nil {
			err = undoErr
		}

		if err != nil {
			return 0, nil, err
		}

		child.SetValue(perspective(m, value))

		if ply == 0 {
			that.reportProgress(i+1, len(moves))
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
		}

		if that.opts.AlphaBeta {
			alpha = max(alpha, bestValue)
			if alpha >= beta {
				node.MarkPruned(moves[i+1:], value, beta, PruneBeta)

				break
			}
		}
	}

	node.Select(bestMove)

	if that.table != nil && ply > 0 {
		bound := BoundExact
		switch {
		case bestValue <= alphaOrig:
			bound = BoundUpper
		case bestValue >= beta:
			bound = BoundLower
		}

		that.table.Store(key, depth, bestValue, bound)
	}

	return bestValue, bestMove, nil
}

// quiescence extends the horizon along urgent moves until the position is quiet.
func (that *negamaxStrategy) quiescence(
	ctx context.Context,
	lastMove entity.Move,
	ply, qDepth, alpha, beta int,
	node *TreeNode,
) (int, error) {
	standPat := signed(playerToMove(lastMove), that.leafValue(lastMove))

	if qDepth >= that.opts.MaxQuiescentDepth {
		return standPat, nil
	}

	if that.searchable.InJeopardy(lastMove, that.weights) {
		value, _, err := that.negamax(ctx, lastMove, 1, ply, qDepth+1, alpha, beta, node)

		return value, err
	}

	if that.opts.AlphaBeta {
		if standPat >= beta {
			return standPat, nil
		}

		alpha = max(alpha, standPat)
	}

	moves, err := that.generateUrgent(lastMove)
	if err != nil {
		return 0, err
	}

	best := standPat

	for i, m := range moves {
		if err := that.wait(ctx); err != nil {
			return 0, err
		}

		if err := that.makeMove(m); err != nil {
			return 0, err
		}

		child := node.AddChild(m, alpha, beta)
		value, err := that.quiescence(ctx, m, ply+1, qDepth+1, -beta, -alpha, child)
		value = -value

		if undoErr := that.undoMove(m); undoErr != nil && err == nil {
			err = undoErr
		}

		if err != nil {
			return 0, err
		}

		child.SetValue(perspective(m, value))

		if value > best {
			best = value
		}

		if that.opts.AlphaBeta {
			alpha = max(alpha, value)
			if alpha >= beta {
				node.MarkPruned(moves[i+1:], value, beta, PruneBeta)

				break
			}
		}
	}

	return best, nil
}

func signed(player1 bool, value int) int {
	if player1 {
		return value
	}

	return -value
}
