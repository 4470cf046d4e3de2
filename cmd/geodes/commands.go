package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/evaluate"
)

var solveHorizon int

// qualityCmd folds the weighted sum of all blueprints.
var qualityCmd = &cobra.Command{
	Use:   "quality [file]",
	Short: "Sum ordinal × max geodes over all blueprints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, bps, err := prepare(args[0])
		if err != nil {
			return err
		}
		rep, err := ev.QualitySumAt(cmd.Context(), bps, cfg.Quality.Horizon)
		if err != nil {
			return err
		}

		return printReport(cmd.OutOrStdout(), rep)
	},
}

// productCmd multiplies the maxima of the leading blueprints.
var productCmd = &cobra.Command{
	Use:   "product [file]",
	Short: "Multiply max geodes of the first blueprints over the long horizon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, bps, err := prepare(args[0])
		if err != nil {
			return err
		}
		rep, err := ev.TopProductAt(cmd.Context(), bps, cfg.Product.Horizon, cfg.Product.Count)
		if err != nil {
			return err
		}

		return printReport(cmd.OutOrStdout(), rep)
	},
}

// solveCmd lists the maximum of every blueprint.
var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print max geodes for every blueprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, bps, err := prepare(args[0])
		if err != nil {
			return err
		}
		horizon := solveHorizon
		if horizon <= 0 {
			horizon = cfg.Quality.Horizon
		}
		outcomes, err := ev.Run(cmd.Context(), bps, horizon)
		if err != nil {
			return err
		}
		if jsonOut {
			return writeJSON(cmd.OutOrStdout(), evaluate.Report{Mode: "solve", Horizon: horizon, Outcomes: outcomes})
		}

		return printTable(cmd.OutOrStdout(), outcomes)
	},
}

// prepare loads the input and builds an evaluator from the active config.
func prepare(path string) (*evaluate.Evaluator, []blueprint.Blueprint, error) {
	bps, err := blueprint.Load(path)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		return nil, nil, err
	}
	ev := evaluate.New(
		evaluate.WithWorkers(cfg.Workers),
		evaluate.WithLogger(logger),
		evaluate.WithSearchOptions(opts...),
	)
	logger.Sugar().Debugf("loaded %d blueprints from %s, %d workers", len(bps), path, ev.Workers())

	return ev, bps, nil
}

func printReport(w io.Writer, rep evaluate.Report) error {
	if jsonOut {
		return writeJSON(w, rep)
	}
	_, err := fmt.Fprintln(w, rep.Result)

	return err
}

func printTable(w io.Writer, outcomes []evaluate.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tID\tGeodes\tQuality\tNodes\tTime\t")
	for _, o := range outcomes {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t\n", o.Ordinal, o.ID, o.Geodes, o.Quality, o.Nodes, o.Elapsed.Round(time.Microsecond))
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
