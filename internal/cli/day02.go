package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/advent/internal/bench"
	"github.com/example/advent/internal/core/ids"
	"github.com/example/advent/internal/db"
	"github.com/example/advent/internal/input"
	"github.com/example/advent/internal/store"
)

// Day02Cmd returns the day02 command
func Day02Cmd() *cobra.Command {
	var (
		inputPath  string
		modeName   string
		verbose    bool
		workers    int
		runBench   bool
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "day02",
		Short: "Classify gift-shop IDs by repeated digit blocks",
		Long: `Read a comma-separated list of ID ranges and report how many IDs are
invalid, together with their sum. An ID is invalid when its decimal
digits form identical repeated blocks: only two halves in mode "two",
any block count in mode "multiple".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			path := cfg.InputPath("day02", inputPath)
			mode := ids.ModeFromString(cfg.Mode(modeName))

			ranges, err := input.ReadRanges(path)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Printf("Parsed %d ID ranges from input file %s\n", len(ranges), path)
			}

			var report func(ids.Range, ids.Tally)
			if verbose {
				report = func(r ids.Range, t ids.Tally) {
					fmt.Printf("- %s has %s invalid IDs\n", r, color.New(color.FgYellow).Sprintf("%d", t.Count))
				}
			}

			aggregate := func() ids.Tally {
				if workers > 1 {
					return ids.AggregateParallel(ranges, mode, workers, report)
				}
				return ids.Aggregate(ranges, mode, report)
			}

			if runBench {
				// per-range reporting would dominate the timings
				report = nil
				result := bench.Run(iterations, func() { aggregate() })
				fmt.Printf("Benchmark result over %d iterations:\n%s\n", result.Iterations, result)
				recordRun(cmd.Context(), "day02", mode.String(), result)
				return nil
			}

			total := aggregate()
			fmt.Printf("Total invalid IDs: %d\n", total.Count)
			fmt.Printf("Sum of invalid IDs: %d\n", total.Sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input file (default data/day02/input.txt)")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Mode: 'two' or 'multiple' (default two)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report per-range invalid counts")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Workers per range (1 = sequential)")
	cmd.Flags().BoolVarP(&runBench, "bench", "b", false, "Run benchmark")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "Benchmark iterations")

	return cmd
}

// recordRun stores a benchmark run in the local history database.
// History is advisory; a storage failure must not fail the run.
func recordRun(ctx context.Context, day, mode string, result bench.Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	database, err := db.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: benchmark history unavailable: %v\n", err)
		return
	}
	run := &store.Run{
		Day:        day,
		Mode:       mode,
		Iterations: result.Iterations,
		Total:      result.Elapsed,
		Average:    result.Average(),
	}
	if err := store.NewRunStore(database).Record(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record benchmark run: %v\n", err)
	}
}
