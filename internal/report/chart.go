package report

import (
	"fmt"
	"io"
	"math"

	xmath "github.com/drakos74/weight-lab/internal/math"
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/guptarohit/asciigraph"
)

// NOTE : beyond this magnitude values are plotted on a log scale
const logLimit = 1e6

type panel struct {
	caption string
	value   func(o model.Observation) float64
}

var panels = []panel{
	{caption: "output y", value: func(o model.Observation) float64 { return o.Output }},
	{caption: "error e", value: func(o model.Observation) float64 { return o.Error }},
	{caption: "convergence |e|", value: func(o model.Observation) float64 { return o.ConvergenceMagnitude }},
}

// Chart plots output, error and convergence magnitude over the iterations.
func Chart(w io.Writer, trace []model.Observation, height, width int) error {
	if len(trace) == 0 {
		fmt.Fprintf(w, "no iterations to plot\n\n")
		return nil
	}
	for _, p := range panels {
		values, diverged := series(trace, p.value)
		caption := p.caption
		if len(values) == 0 {
			fmt.Fprintf(w, "%s: no finite values\n\n", caption)
			continue
		}
		if logged, ok := symLog(values); ok {
			values = logged
			caption = fmt.Sprintf("symlog10 %s", caption)
		}
		opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Caption(caption)}
		if width > 0 {
			opts = append(opts, asciigraph.Width(width))
		}
		if _, err := fmt.Fprintln(w, asciigraph.Plot(values, opts...)); err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
		if diverged >= 0 {
			fmt.Fprintf(w, "%s is not finite from iteration %d\n", p.caption, diverged)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// series extracts the values up to the first non-finite one
// and returns the iteration it stopped at, or -1.
func series(trace []model.Observation, value func(o model.Observation) float64) ([]float64, int) {
	values := make([]float64, 0, len(trace))
	for _, o := range trace {
		v := value(o)
		if !xmath.Finite(v) {
			return values, o.Iteration
		}
		values = append(values, v)
	}
	return values, -1
}

// symLog compresses large values into sign(v) * log10(1 + |v|).
func symLog(values []float64) ([]float64, bool) {
	max := 0.0
	for _, v := range values {
		max = math.Max(max, math.Abs(v))
	}
	if max < logLimit {
		return values, false
	}
	logged := make([]float64, len(values))
	for i, v := range values {
		logged[i] = math.Copysign(math.Log10(1+math.Abs(v)), v)
	}
	return logged, true
}
