package main

import (
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/spf13/cobra"
)

// parameterFlags binds the simulation parameters to command flags.
// Only the flags set by the user override the configured defaults.
type parameterFlags struct {
	x1, x2, target float64
	w1, w2         float64
	alpha          float64
	iterations     int
	rule           string
}

func addParameterFlags(cmd *cobra.Command) *parameterFlags {
	f := &parameterFlags{}
	d := model.DefaultParameters()
	cmd.Flags().Float64Var(&f.x1, "x1", d.X1, "First input x1")
	cmd.Flags().Float64Var(&f.x2, "x2", d.X2, "Second input x2")
	cmd.Flags().Float64VarP(&f.target, "target", "t", d.Target, "Target output t")
	cmd.Flags().Float64Var(&f.w1, "w1", d.W1, "Initial weight w1")
	cmd.Flags().Float64Var(&f.w2, "w2", d.W2, "Initial weight w2")
	cmd.Flags().Float64VarP(&f.alpha, "alpha", "a", d.LearningRate, "Learning rate α")
	cmd.Flags().IntVarP(&f.iterations, "iterations", "n", d.IterationCount, "Number of iterations")
	cmd.Flags().StringVarP(&f.rule, "rule", "r", d.Rule.String(), "Update rule (input|weight)")
	return f
}

// apply overrides the given parameters with the flags set on the command.
func (f *parameterFlags) apply(cmd *cobra.Command, p model.Parameters) (model.Parameters, error) {
	flags := cmd.Flags()
	if flags.Changed("x1") {
		p.X1 = f.x1
	}
	if flags.Changed("x2") {
		p.X2 = f.x2
	}
	if flags.Changed("target") {
		p.Target = f.target
	}
	if flags.Changed("w1") {
		p.W1 = f.w1
	}
	if flags.Changed("w2") {
		p.W2 = f.w2
	}
	if flags.Changed("alpha") {
		p.LearningRate = f.alpha
	}
	if flags.Changed("iterations") {
		p.IterationCount = f.iterations
	}
	if flags.Changed("rule") {
		rule, err := model.ParseRule(f.rule)
		if err != nil {
			return p, err
		}
		p.Rule = rule
	}
	return p, p.Validate()
}
