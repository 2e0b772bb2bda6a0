package learn

import (
	"math"

	xmath "github.com/drakos74/weight-lab/internal/math"
	"github.com/drakos74/weight-lab/internal/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize extracts the convergence properties of the given trace.
func Summarize(trace []model.Observation) model.Summary {
	s := model.Summary{
		Iterations:      len(trace),
		ContractionRate: math.NaN(),
	}
	if len(trace) == 0 {
		return s
	}

	magnitudes := make([]float64, len(trace))
	for i, o := range trace {
		magnitudes[i] = o.ConvergenceMagnitude
	}

	last := trace[len(trace)-1]
	s.FinalError = last.Error
	s.FinalErrorMagnitude = last.ConvergenceMagnitude
	s.MinMagnitude = floats.Min(magnitudes)
	s.MaxMagnitude = floats.Max(magnitudes)
	s.MeanMagnitude = stat.Mean(magnitudes, nil)
	s.Converged = Converged(s.FinalErrorMagnitude)
	s.Oscillated = Oscillated(trace)
	s.Diverged = diverged(magnitudes)
	s.ContractionRate = contraction(magnitudes)
	return s
}

func diverged(magnitudes []float64) bool {
	for _, m := range magnitudes {
		if !xmath.Finite(m) {
			return true
		}
	}
	return magnitudes[len(magnitudes)-1] > magnitudes[0]
}

// contraction fits a line through the log of the error magnitudes,
// the exponent of its slope is the average factor the error shrinks (or grows) per step.
func contraction(magnitudes []float64) float64 {
	x := make([]float64, 0, len(magnitudes))
	y := make([]float64, 0, len(magnitudes))
	for i, m := range magnitudes {
		if m > 0 && xmath.Finite(m) {
			x = append(x, float64(i))
			y = append(y, math.Log(m))
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	c, err := xmath.Fit(x, y, 1)
	if err != nil {
		return math.NaN()
	}
	return math.Exp(c[1])
}
