package main

import (
	"encoding/json"

	"github.com/drakos74/weight-lab/internal/experiment"
	"github.com/drakos74/weight-lab/internal/report"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Classify convergence and oscillation for a set of learning rates",
		Long: `Sweep re-runs the experiment for every learning rate, keeping all other parameters,
and reports the final error and whether the run converged (|e| < 0.1) or oscillated.

Examples:
  weight-lab sweep                                  # rates 0.001, 0.01, 0.1, 0.5
  weight-lab sweep --rates 0.02,0.04,0.06 -r weight`,
	}
	params := addParameterFlags(cmd)
	cmd.Flags().Float64Slice("rates", nil, "Learning rates to probe (default from config)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := params.apply(cmd, cfg.Parameters)
		if err != nil {
			return err
		}
		rates, _ := cmd.Flags().GetFloat64Slice("rates")

		rows, err := experiment.New(cfg.Rates...).Sweep(p, rates...)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
		}
		report.Sensitivity(cmd.OutOrStdout(), rows)
		return nil
	}
	return cmd
}
