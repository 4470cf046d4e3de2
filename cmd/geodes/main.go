// Command geodes computes geode maxima for a file of blueprints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geodes/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOut    bool
	workers    int
	policy     string

	// Set up by PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geodes",
	Short: "Maximize geodes cracked by bot fleets built from blueprints",
	Long: `geodes runs a branch-and-bound search per blueprint, in parallel,
and folds the results.

Input files hold one "Blueprint N: Each ore robot costs ..." record per line,
or a JSON array of {"id","ore","clay","obsidian":{...},"geode":{...}} objects.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if cmd.Flags().Changed("policy") {
			cfg.Search.Policy = policy
		}
		if err = cfg.Validate(); err != nil {
			return err
		}

		logger, err = cfg.Logger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&jsonOut, "json", false, "print a JSON report instead of a single number")
	pf.IntVarP(&workers, "workers", "w", 0, "concurrent searches (0 = GOMAXPROCS)")
	pf.StringVar(&policy, "policy", "priority", "branch policy: priority or exhaustive")

	solveCmd.Flags().IntVar(&solveHorizon, "horizon", 0, "minutes to search (default: quality horizon)")

	rootCmd.AddCommand(qualityCmd, productCmd, solveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
