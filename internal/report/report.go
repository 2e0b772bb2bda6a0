// Package report renders experiment results as text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/weight-lab/internal/learn"
	xmath "github.com/drakos74/weight-lab/internal/math"
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/olekukonko/tablewriter"
)

// DetailLimit is the number of observations shown in the detail table.
const DetailLimit = 10

// Options defines what is rendered.
type Options struct {
	Limit  int
	Height int
	Width  int
	Chart  bool
}

// DefaultOptions returns the rendering options used by the cli.
func DefaultOptions() Options {
	return Options{
		Limit:  DetailLimit,
		Height: 10,
		Chart:  true,
	}
}

// Write renders the full report.
func Write(w io.Writer, r model.Report, opts Options) error {
	p := r.Parameters
	fmt.Fprintf(w, "rule      : %s (%s)\n", p.Rule, p.Rule.Formula())
	fmt.Fprintf(w, "inputs    : x1=%v x2=%v target=%v\n", p.X1, p.X2, p.Target)
	fmt.Fprintf(w, "weights   : w1=%v w2=%v\n", p.W1, p.W2)
	fmt.Fprintf(w, "alpha     : %v\n", p.LearningRate)
	fmt.Fprintf(w, "iterations: %d\n\n", p.IterationCount)

	if opts.Chart {
		if err := Chart(w, r.Observations, opts.Height, opts.Width); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "learning rate sensitivity")
	Sensitivity(w, r.Sensitivity)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "observations")
	Detail(w, r.Observations, opts.Limit)
	fmt.Fprintln(w)

	Summary(w, r.Summary)
	return nil
}

// Sensitivity renders the sweep rows as a table.
func Sensitivity(w io.Writer, rows []model.SensitivityRow) {
	table := newTable(w, "learning rate", "final error", "convergence", "oscillation")
	for _, row := range rows {
		table.Append([]string{
			strconv.FormatFloat(row.LearningRate, 'f', -1, 64),
			xmath.Format(row.FinalErrorMagnitude),
			label(row.Converged, "converged", "not converged"),
			label(row.Oscillated, "oscillating", "stable"),
		})
	}
	table.Render()
}

// Detail renders the first observations of the trace.
// A limit of zero or less shows all of them.
func Detail(w io.Writer, trace []model.Observation, limit int) {
	n := len(trace)
	if limit > 0 && limit < n {
		n = limit
	}
	table := newTable(w, "iteration", "output y", "error e", "weight w1", "weight w2")
	for _, o := range trace[:n] {
		table.Append([]string{
			strconv.Itoa(o.Iteration),
			number(o.Output),
			number(o.Error),
			number(o.Weight1),
			number(o.Weight2),
		})
	}
	table.Render()
	if n < len(trace) {
		fmt.Fprintf(w, "showing first %d of %d iterations\n", n, len(trace))
	}
}

// Summary renders the trace summary.
func Summary(w io.Writer, s model.Summary) {
	fmt.Fprintf(w, "final error     : %s\n", xmath.Format(s.FinalErrorMagnitude))
	fmt.Fprintf(w, "magnitude range : %s - %s (mean %s)\n", xmath.Format(s.MinMagnitude), xmath.Format(s.MaxMagnitude), xmath.Format(s.MeanMagnitude))
	fmt.Fprintf(w, "contraction     : %s per step\n", xmath.Format(s.ContractionRate))
	fmt.Fprintf(w, "status          : %s, %s, %s\n",
		label(s.Converged, "converged", "not converged"),
		label(s.Oscillated, "oscillating", "stable"),
		label(s.Diverged, "diverging", "bounded"))
	if s.Iterations > 0 && !s.Converged {
		fmt.Fprintf(w, "threshold       : |e| < %v\n", learn.ConvergenceThreshold)
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)
	return table
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func label(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
