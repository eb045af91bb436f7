package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/core/jolt"
	"github.com/example/advent/internal/input"
)

// Day03Cmd returns the day03 command
func Day03Cmd() *cobra.Command {
	var (
		inputPath string
		modeName  string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "day03",
		Short: "Maximize the joltage drawn from each battery bank",
		Long: `For every line of battery digits, pick digits in order to form the
largest possible number and sum the results. Mode "two" picks two
digits per bank, mode "twelve" picks twelve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			path := cfg.InputPath("day03", inputPath)
			mode := jolt.ModeFromString(cfg.Mode(modeName))

			lines, err := input.ReadLines(path)
			if err != nil {
				return err
			}

			var total uint64
			for _, line := range lines {
				n, err := jolt.LargestNumber(line, mode.Digits())
				if err != nil {
					return err
				}
				total += n
				if verbose {
					fmt.Printf("- In %s you can make the largest jolt possible, %d\n", line, n)
				}
			}

			fmt.Printf("Total jolt from all battery lines: %d\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input file (default data/day03/input.txt)")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Mode: 'two' or 'twelve' (default two)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each bank's largest jolt")

	return cmd
}
