// Package learn simulates a two input linear unit under one of the weight update rules
// and classifies how the error evolves for different learning rates.
package learn

import (
	"errors"
	"fmt"
	"math"

	xmath "github.com/drakos74/weight-lab/internal/math"
	"github.com/drakos74/weight-lab/internal/model"
)

// ConvergenceThreshold is the final error magnitude below which a run counts as converged.
const ConvergenceThreshold = 0.1

// ErrNoIterations is returned when a sweep is requested for runs without any iteration.
var ErrNoIterations = errors.New("at least one iteration is required")

// DefaultRates returns the learning rates probed by the sensitivity sweep.
func DefaultRates() []float64 {
	return []float64{0.001, 0.01, 0.1, 0.5}
}

// Simulate runs the update rule for the given number of iterations
// and returns one observation per step.
// Each observation holds the output, error and weights before the update of that step.
// Non-finite values are propagated as they come.
func Simulate(p model.Parameters) []model.Observation {
	if p.IterationCount <= 0 {
		return []model.Observation{}
	}

	trace := make([]model.Observation, p.IterationCount)

	w1, w2 := p.W1, p.W2
	for i := 0; i < p.IterationCount; i++ {
		// NOTE : the explicit conversions keep the compiler from fusing multiply and add
		y := float64(p.X1*w1) + float64(p.X2*w2)
		e := p.Target - y

		trace[i] = model.Observation{
			Iteration:            i,
			Output:               xmath.Round(y, xmath.Precision),
			Error:                xmath.Round(e, xmath.Precision),
			Weight1:              xmath.Round(w1, xmath.Precision),
			Weight2:              xmath.Round(w2, xmath.Precision),
			ConvergenceMagnitude: math.Abs(e),
		}

		d1, d2 := delta(p, w1, w2, e)
		w1 += d1
		w2 += d2
	}

	return trace
}

// delta computes the weight updates for the current step.
// Anything but the weight rule is treated as the input rule.
func delta(p model.Parameters, w1, w2, e float64) (float64, float64) {
	switch p.Rule {
	case model.ProportionalToWeight:
		return float64(p.LearningRate * w1 * e), float64(p.LearningRate * w2 * e)
	default:
		return float64(p.LearningRate * p.X1 * e), float64(p.LearningRate * p.X2 * e)
	}
}

// Sweep re-runs the simulation for each of the given learning rates,
// keeping all other parameters from base, and classifies the outcome.
// Rows are returned in the order of the rates.
func Sweep(base model.Parameters, rates []float64) ([]model.SensitivityRow, error) {
	if base.IterationCount < 1 {
		return nil, fmt.Errorf("sweep with %d iterations: %w", base.IterationCount, ErrNoIterations)
	}

	rows := make([]model.SensitivityRow, len(rates))
	for i, alpha := range rates {
		trace := Simulate(base.WithRate(alpha))
		final := trace[len(trace)-1].ConvergenceMagnitude
		rows[i] = model.SensitivityRow{
			LearningRate:        alpha,
			FinalErrorMagnitude: final,
			Converged:           Converged(final),
			Oscillated:          Oscillated(trace),
		}
	}
	return rows, nil
}

// Converged checks the final error magnitude against the convergence threshold.
func Converged(magnitude float64) bool {
	return magnitude < ConvergenceThreshold
}

// Oscillated checks if the error magnitude grows between any two consecutive steps.
func Oscillated(trace []model.Observation) bool {
	for i := 1; i < len(trace); i++ {
		if trace[i].ConvergenceMagnitude > trace[i-1].ConvergenceMagnitude {
			return true
		}
	}
	return false
}
