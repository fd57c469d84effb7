package entity

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Parameter is one bounded evaluation weight.
type Parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Weights is the named parameter array handed to evaluators. Evaluators only read it.
type Weights struct {
	Game   string      `json:"game"`
	Params []Parameter `json:"params"`
}

func NewWeights(game string, params ...Parameter) *Weights {
	return &Weights{Game: game, Params: params}
}

// Get returns the value of the i-th weight.
func (that *Weights) Get(i int) float64 {
	return that.Params[i].Value
}

func (that *Weights) Len() int {
	return len(that.Params)
}

func (that *Weights) Copy() *Weights {
	params := make([]Parameter, len(that.Params))
	copy(params, that.Params)

	return &Weights{Game: that.Game, Params: params}
}

// Neighbor returns a copy with every weight nudged by up to step*(max-min), clamped to its range.
func (that *Weights) Neighbor(rng *rand.Rand, step float64) *Weights {
	next := that.Copy()
	for i := range next.Params {
		p := &next.Params[i]
		delta := (rng.Float64()*2 - 1) * step * (p.Max - p.Min)
		p.Value = math.Max(p.Min, math.Min(p.Max, p.Value+delta))
	}

	return next
}

// Validate - checks that every value lies within its bounds.
func (that *Weights) Validate() error {
	for _, p := range that.Params {
		if p.Value < p.Min || p.Value > p.Max {
			return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrWeightOutOfRange, p.Name, p.Value, p.Min, p.Max)
		}
	}

	return nil
}

func (that *Weights) String() string {
	parts := make([]string, 0, len(that.Params))
	for _, p := range that.Params {
		parts = append(parts, fmt.Sprintf("%s=%.3f", p.Name, p.Value))
	}

	return that.Game + "[" + strings.Join(parts, " ") + "]"
}
