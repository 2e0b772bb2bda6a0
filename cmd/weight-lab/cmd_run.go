package main

import (
	"encoding/json"

	"github.com/drakos74/weight-lab/internal/experiment"
	"github.com/drakos74/weight-lab/internal/report"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment and print the full report",
		Long: `Run simulates the selected update rule, sweeps the learning rates and prints
the convergence chart, the sensitivity table and the first observations.

Examples:
  weight-lab run                                # default experiment
  weight-lab run --rule weight --alpha 0.1      # self-amplifying updates
  weight-lab run -n 50 --limit 0 --no-chart     # all observations, no chart
  weight-lab run --json                         # machine readable report`,
	}
	params := addParameterFlags(cmd)
	cmd.Flags().Int("limit", 0, "Number of observations shown (0 shows all, default from config)")
	cmd.Flags().Int("height", 10, "Chart height")
	cmd.Flags().Int("width", 0, "Chart width (0 uses one column per iteration)")
	cmd.Flags().Bool("no-chart", false, "Skip the convergence chart")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := params.apply(cmd, cfg.Parameters)
		if err != nil {
			return err
		}

		r, err := experiment.New(cfg.Rates...).Run(p)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}

		opts := report.DefaultOptions()
		opts.Limit = cfg.Detail
		if cmd.Flags().Changed("limit") {
			opts.Limit, _ = cmd.Flags().GetInt("limit")
		}
		opts.Height, _ = cmd.Flags().GetInt("height")
		opts.Width, _ = cmd.Flags().GetInt("width")
		noChart, _ := cmd.Flags().GetBool("no-chart")
		opts.Chart = !noChart
		return report.Write(cmd.OutOrStdout(), r, opts)
	}
	return cmd
}
