package model

import (
	"errors"
	"fmt"
	"math"
)

// MaxIterations is the largest iteration count accepted at the boundaries.
const MaxIterations = 100_000

// ErrInvalidParameters is returned when parameters do not pass validation.
var ErrInvalidParameters = errors.New("invalid parameters")

// Parameters defines the input of a simulation run.
type Parameters struct {
	X1             float64 `json:"x1" yaml:"x1"`
	X2             float64 `json:"x2" yaml:"x2"`
	Target         float64 `json:"target" yaml:"target"`
	W1             float64 `json:"w1" yaml:"w1"`
	W2             float64 `json:"w2" yaml:"w2"`
	LearningRate   float64 `json:"learningRate" yaml:"learningRate"`
	IterationCount int     `json:"iterationCount" yaml:"iterationCount"`
	Rule           Rule    `json:"rule" yaml:"rule"`
}

// DefaultParameters returns the parameters the experiment starts with.
func DefaultParameters() Parameters {
	return Parameters{
		X1:             5,
		X2:             3,
		Target:         10,
		W1:             4,
		W2:             6,
		LearningRate:   0.01,
		IterationCount: 15,
		Rule:           ProportionalToInput,
	}
}

// WithRate returns a copy of the parameters for the given learning rate.
func (p Parameters) WithRate(alpha float64) Parameters {
	p.LearningRate = alpha
	return p
}

// Validate checks the parameters before they are handed to the engine.
// The engine itself accepts anything, this is only meant for external input.
func (p Parameters) Validate() error {
	if p.IterationCount < 0 || p.IterationCount > MaxIterations {
		return fmt.Errorf("iteration count %d not in [0,%d]: %w", p.IterationCount, MaxIterations, ErrInvalidParameters)
	}
	if !p.Rule.Valid() {
		return fmt.Errorf("rule '%v': %w", p.Rule, ErrInvalidParameters)
	}
	for name, v := range map[string]float64{
		"x1":           p.X1,
		"x2":           p.X2,
		"target":       p.Target,
		"w1":           p.W1,
		"w2":           p.W2,
		"learningRate": p.LearningRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite (%v): %w", name, v, ErrInvalidParameters)
		}
	}
	return nil
}
