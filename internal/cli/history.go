package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/advent/internal/db"
	"github.com/example/advent/internal/store"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		Long: `Show benchmark runs recorded by --bench, newest first. Only timings
are stored; puzzle answers never leave the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Get()
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := store.NewRunStore(database).List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No benchmark runs recorded yet. Run a solver with --bench first.")
				return nil
			}

			for _, run := range runs {
				label := color.New(color.FgCyan).Sprintf("%s/%s", run.Day, run.Mode)
				avg := color.New(color.FgHiGreen).Sprint(run.Average)
				fmt.Printf("#%-4d %s  %d iterations  total %v  avg %s  (%s)\n",
					run.ID, label, run.Iterations, run.Total, avg,
					run.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 = all)")

	return cmd
}
