package gogame

const (
	// Empty regions on the first line only count once the game is this far along, relative to a typical game.
	emptyRegionEdgeThreshold = 0.24

	eyeScore = 0.1
)

// updateTerritory recomputes eyes, group health and the territory balance.
// It sets each stone's Health and each empty point's score contribution.
func (that *Board) updateTerritory(endOfGame bool) float64 {
	for i := range that.positions {
		that.positions[i].score = 0
	}

	that.findEyes()

	delta := 0.0

	for _, g := range that.groups {
		g.health = g.calculateHealth(that)

		for _, s := range g.strings {
			for _, p := range s.members {
				p.Piece.Health = g.health
			}
		}

		delta += g.health * float64(g.NumStones())
	}

	delta += that.updateEmptyRegions(endOfGame)
	that.territoryDelta = delta

	return delta
}

// typicalNumMoves is roughly how long a game on this board lasts.
func (that *Board) typicalNumMoves() int {
	return that.size * that.size
}

// updateEmptyRegions credits empty regions to the side whose neighboring groups are healthier.
// Early on the first line is left out.
func (that *Board) updateEmptyRegions(endOfGame bool) float64 {
	numMoves := that.moves.Len()
	if numMoves <= 2*that.size {
		return 0
	}

	edgeOffset := 1
	if float64(numMoves)/float64(that.typicalNumMoves()) > emptyRegionEdgeThreshold || endOfGame {
		edgeOffset = 0
	}

	lo, hi := edgeOffset, that.size-1-edgeOffset
	inBox := func(p *Position) bool {
		return p.Loc.Row >= lo && p.Loc.Row <= hi && p.Loc.Col >= lo && p.Loc.Col <= hi
	}

	visited := make([]bool, len(that.positions))
	diff := 0.0

	for r := lo; r <= hi; r++ {
		for c := lo; c <= hi; c++ {
			p := that.Position(r, c)

			switch {
			case p.IsInEye():
				p.score = -eyeScore
				if p.eye.Player1() {
					p.score = eyeScore
				}
			case !p.IsOccupied() && !visited[that.index(p.Loc)]:
				empties, stones := that.emptyRegion(p, inBox, visited)

				score := averageHealth(stones) * float64(len(stones)) /
					float64(max(1, len(stones), len(empties)))

				for _, e := range empties {
					e.score = score
					diff += score
				}
			}
		}
	}

	return diff
}

// emptyRegion floods empty points outside eyes and collects the distinct stones bordering them.
func (that *Board) emptyRegion(seed *Position, inBox func(*Position) bool, visited []bool) ([]*Position, []*Position) {
	stack := []*Position{seed}
	visited[that.index(seed.Loc)] = true
	seen := make(map[*Position]struct{})

	var empties, stones []*Position

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		empties = append(empties, p)

		for _, n := range that.nobiNeighbors(p.Loc) {
			if n.IsOccupied() {
				if _, ok := seen[n]; !ok {
					seen[n] = struct{}{}
					stones = append(stones, n)
				}

				continue
			}

			i := that.index(n.Loc)
			if visited[i] || n.IsInEye() || !inBox(n) {
				continue
			}

			visited[i] = true
			stack = append(stack, n)
		}
	}

	return empties, stones
}

func averageHealth(stones []*Position) float64 {
	if len(stones) == 0 {
		return 0
	}

	total := 0.0
	for _, s := range stones {
		total += s.Group().health
	}

	return total / float64(len(stones))
}

// TerritoryEstimate counts the points each side controls. At the end of the game every
// credited point counts fully, otherwise by its score contribution.
func (that *Board) TerritoryEstimate(player1, endOfGame bool) int {
	estimate := 0.0

	for i := range that.positions {
		p := &that.positions[i]

		val := p.score
		if endOfGame {
			val = -1
			if player1 {
				val = 1
			}
		}

		if !p.IsOccupied() {
			if player1 && p.score > 0 {
				estimate += val
			} else if !player1 && p.score < 0 {
				estimate -= val
			}

			continue
		}

		g := p.Group()

		switch {
		case player1 && !p.Piece.Player1 && g.health >= 0:
			estimate += val
		case !player1 && p.Piece.Player1 && g.health <= 0:
			estimate -= val
		}
	}

	return int(estimate)
}

// NumDeadStones counts the stones of a side whose group health favors the opponent.
func (that *Board) NumDeadStones(player1 bool) int {
	dead := 0

	for _, g := range that.groups {
		if g.player1 != player1 {
			continue
		}

		if player1 && g.health < 0 || !player1 && g.health > 0 {
			dead += g.NumStones()
		}
	}

	return dead
}

// FinalScore is territory plus prisoners, counting dead stones still on the board as prisoners.
func (that *Board) FinalScore(player1 bool) int {
	that.updateTerritory(true)

	return that.TerritoryEstimate(player1, true) + that.NumDeadStones(!player1) + that.NumCaptures(!player1)
}
