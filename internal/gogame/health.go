package gogame

import "math"

const (
	bestTwoEyedHealth       = 1.0
	bestAlmostTwoEyedHealth = 0.94
	bestOneEyedHealth       = 0.89
)

// calculateHealth rates how alive the group is from its eyes and liberties.
// The sign says who benefits: a healthy player2 group is negative.
func (that *Group) calculateHealth(b *Board) float64 {
	sideSign := -1.0
	if that.player1 {
		sideSign = 1.0
	}

	numEyes := 0.0
	for _, e := range that.eyes {
		numEyes += e.Value()
	}

	health := determineHealth(sideSign, numEyes, len(that.Liberties(b)), that.NumStones(), that.unconditionallyAlive())
	if math.Abs(health) > 1 {
		health = sideSign
	}

	return health
}

// unconditionallyAlive - two settled real eyes, where a life-bearing shape counts for both.
func (that *Group) unconditionallyAlive() bool {
	settled := 0

	for _, e := range that.eyes {
		if e.shape.Type == FalseEye || e.status != StatusAlive {
			continue
		}

		settled++
		if e.shape.Life {
			settled++
		}
	}

	return settled >= 2
}

func determineHealth(sideSign, numEyes float64, numLiberties, numStones int, alive bool) float64 {
	switch {
	case numEyes >= 2.0:
		if alive {
			return sideSign * bestTwoEyedHealth
		}

		return sideSign * bestAlmostTwoEyedHealth
	case numEyes >= 1.5:
		return almostTwoEyedHealth(sideSign, numLiberties)
	case numEyes >= 1.0:
		return oneEyedHealth(sideSign, numLiberties)
	case numLiberties > 5:
		return sideSign * math.Min(0.8, 1.2-46.0/float64(numLiberties+40))
	case numStones == 1:
		return singleStoneHealth(sideSign, numLiberties)
	default:
		return multiStoneHealth(sideSign, numLiberties)
	}
}

func almostTwoEyedHealth(sideSign float64, numLiberties int) float64 {
	if numLiberties > 6 {
		return sideSign * math.Min(bestAlmostTwoEyedHealth, 1.15-20.0/float64(numLiberties+23))
	}

	return sideSign * [...]float64{0, 0, 0.02, 0.05, 0.1, 0.19, 0.29}[numLiberties]
}

func oneEyedHealth(sideSign float64, numLiberties int) float64 {
	if numLiberties > 6 {
		return sideSign * math.Min(bestOneEyedHealth, 1.03-20.0/float64(numLiberties+20))
	}

	return sideSign * [...]float64{0, -0.8, -0.3, -0.2, -0.05, 0.01, 0.19}[numLiberties]
}

func singleStoneHealth(sideSign float64, numLiberties int) float64 {
	return sideSign * [...]float64{-1, -0.6, 0.02, 0.1, 0.1, 0.1}[numLiberties]
}

func multiStoneHealth(sideSign float64, numLiberties int) float64 {
	return sideSign * [...]float64{-1, -0.6, -0.3, 0.02, 0.05, 0.1}[numLiberties]
}
