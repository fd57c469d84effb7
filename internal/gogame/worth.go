package gogame

import (
	"math"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// WinThreshold - a raw worth beyond this is treated as decided.
const WinThreshold = 2000

// lineValues score stones by the line they sit on, counting from the edge.
var lineValues = []float64{-0.5, 0.1, 0.5, 0.1}

// newLineScores builds the positional table. Points on a diagonal from a corner get half again.
func newLineScores(size int) []float64 {
	scores := make([]float64, size*size)

	for r := range size {
		rowLine := min(r+1, size-r)

		for c := range size {
			colLine := min(c+1, size-c)

			line := min(rowLine, colLine)
			if line > len(lineValues) {
				continue
			}

			scores[r*size+c] = lineValues[line-1]
			if rowLine == colLine {
				scores[r*size+c] *= 1.5
			}
		}
	}

	return scores
}

// gameStageBoost is about 2.5 at the first move, falling to 0.5 once 2*size moves are played.
func gameStageBoost(size, numMoves int) float64 {
	n := 2.0 * float64(size)

	return 0.5 + 2.0*math.Max((n-float64(numMoves))/n, 0)
}

// Worth evaluates the board from player1's perspective. Weights are only read.
func Worth(b *Board, weights *entity.Weights) int {
	worth := b.rawWorth(weights)

	switch {
	case worth < -WinThreshold:
		return -search.WinningValue
	case worth > WinThreshold:
		return search.WinningValue
	}

	return int(worth)
}

func (that *Board) rawWorth(weights *entity.Weights) float64 {
	scale := 361.0 / float64(that.size*that.size)
	boost := gameStageBoost(that.size, that.moves.Len())

	territory := that.updateTerritory(false)

	positional := 0.0
	for i := range that.positions {
		positional += that.positionScore(&that.positions[i], boost, weights)
	}

	captures := weights.Get(CaptureWeight) * float64(that.NumCaptures(false)-that.NumCaptures(true))

	return scale * (positional + captures + territory)
}

// positionScore rates one point and records it as the point's score contribution.
// Empty points outside eyes keep the territory score and add nothing here.
func (that *Board) positionScore(p *Position, boost float64, weights *entity.Weights) float64 {
	switch {
	case p.IsInEye():
		p.score = 1.0
		if p.IsOccupied() {
			p.score = 2.0
		}

		if !p.eye.Player1() {
			p.score = -p.score
		}

		return p.score
	case p.IsOccupied():
		sign := -1.0
		if p.Piece.Player1 {
			sign = 1.0
		}

		badShape := -sign * float64(that.badShape(p)) * weights.Get(BadShapeWeight)
		positional := sign * boost * weights.Get(PositionalWeight) * that.lineScores[that.index(p.Loc)]

		s := weights.Get(HealthWeight)*p.Piece.Health + positional + badShape
		p.score = math.Max(-1, math.Min(1, s))

		return p.score
	default:
		return 0
	}
}

// badShape counts the empty triangles p is part of.
func (that *Board) badShape(p *Position) int {
	return that.badShapeToward(p, 1) + that.badShapeToward(p, -1)
}

func (that *Board) badShapeToward(p *Position, inc int) int {
	player1 := p.Piece.Player1
	r, c := p.Loc.Row, p.Loc.Col

	if !that.Position(r+inc, c).ownedBy(player1) {
		return 0
	}

	severity := 0

	for _, dc := range []int{-1, 1} {
		if !that.Position(r+inc, c+dc).ownedBy(player1) {
			continue
		}

		if q := that.Position(r, c+dc); q != nil && !q.IsOccupied() {
			severity++
		}
	}

	return severity
}
