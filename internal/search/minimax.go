package search

import (
	"context"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

// minimaxStrategy lets player1 maximize and player2 minimize player1's value.
type minimaxStrategy struct {
	*strategy
}

func (that *minimaxStrategy) Search(ctx context.Context, lastMove entity.Move, root *TreeNode) (entity.Move, int, error) {
	that.begin()
	defer that.end()

	value, best, err := that.minimax(ctx, lastMove, that.opts.LookAhead, 0, 0, -infinity, infinity, root)
	if err != nil {
		return nil, 0, err
	}

	root.SetValue(value)
	that.percentDone.Store(100)

	return best, value, nil
}

func (that *minimaxStrategy) minimax(
	ctx context.Context,
	lastMove entity.Move,
	depth, ply, qDepth, alpha, beta int,
	node *TreeNode,
) (int, entity.Move, error) {
	if depth == 0 || that.terminal(lastMove) {
		if depth == 0 && that.opts.Quiescence && !that.terminal(lastMove) {
			value, err := that.quiescence(ctx, lastMove, ply, qDepth, alpha, beta, node)

			return value, nil, err
		}

		return that.leafValue(lastMove), nil, nil
	}

	player1 := playerToMove(lastMove)

	moves, err := that.generate(lastMove)
	if err != nil {
		return 0, nil, err
	}

	bestValue := infinity
	if player1 {
		bestValue = -infinity
	}

	var bestMove entity.Move

	for i, m := range moves {
		if err := that.wait(ctx); err != nil {
			return 0, nil, err
		}

		if err := that.makeMove(m); err != nil {
			return 0, nil, err
		}

		child := node.AddChild(m, alpha, beta)
		value, _, err := that.minimax(ctx, m, depth-1, ply+1, qDepth, alpha, beta, child)

		if undoErr := that.undoMove(m); undoErr != nil && err == nil {
			err = undoErr
		}

		if err != nil {
			return 0, nil, err
		}

		child.SetValue(value)

		if ply == 0 {
			that.reportProgress(i+1, len(moves))
		}

		if (player1 && value > bestValue) || (!player1 && value < bestValue) {
			bestValue = value
			bestMove = m
		}

		if !that.opts.AlphaBeta {
			continue
		}

		if player1 {
			alpha = max(alpha, bestValue)
		} else {
			beta = min(beta, bestValue)
		}

		if alpha >= beta {
			node.MarkCutoff(moves[i+1:], value, alpha, beta, player1)

			break
		}
	}

	node.Select(bestMove)

	return bestValue, bestMove, nil
}

func (that *minimaxStrategy) quiescence(
	ctx context.Context,
	lastMove entity.Move,
	ply, qDepth, alpha, beta int,
	node *TreeNode,
) (int, error) {
	standPat := that.leafValue(lastMove)

	if qDepth >= that.opts.MaxQuiescentDepth {
		return standPat, nil
	}

	if that.searchable.InJeopardy(lastMove, that.weights) {
		value, _, err := that.minimax(ctx, lastMove, 1, ply, qDepth+1, alpha, beta, node)

		return value, err
	}

	player1 := playerToMove(lastMove)

	if that.opts.AlphaBeta {
		if player1 {
			if standPat >= beta {
				return standPat, nil
			}

			alpha = max(alpha, standPat)
		} else {
			if standPat <= alpha {
				return standPat, nil
			}

			beta = min(beta, standPat)
		}
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
		value, err := that.quiescence(ctx, m, ply+1, qDepth+1, alpha, beta, child)

		if undoErr := that.undoMove(m); undoErr != nil && err == nil {
			err = undoErr
		}

		if err != nil {
			return 0, err
		}

		child.SetValue(value)

		if (player1 && value > best) || (!player1 && value < best) {
			best = value
		}

		if !that.opts.AlphaBeta {
			continue
		}

		if player1 {
			alpha = max(alpha, value)
		} else {
			beta = min(beta, value)
		}

		if alpha >= beta {
			node.MarkCutoff(moves[i+1:], value, alpha, beta, player1)

			break
		}
	}

	return best, nil
}
