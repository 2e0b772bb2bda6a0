package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drakos74/weight-lab/infra/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weight-lab",
		Short: "Weight update experiments for a two input linear unit",
		Long: `weight-lab simulates the two weight update rules of a linear unit y = x1*w1 + x2*w2

  input  : w = w + α × x × e
  weight : w = w + α × w × e

and reports the convergence of the error together with the sensitivity to the learning rate α.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return setupLogging(level)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Experiment config file (json or yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newServeCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "weight-lab version %s\n", version)
		},
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// loadConfig loads the experiment config given with the --config flag.
func loadConfig(cmd *cobra.Command) (config.Experiment, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.LoadExperiment(file)
}
