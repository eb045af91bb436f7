package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/cli"
	"github.com/example/advent/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "advent",
		Short:   "advent - daily puzzle solvers",
		Version: version.String(),
		Long: `advent solves the daily puzzles: dial rotations, gift-shop ID
validation, and battery joltage. Each day reads a text input file and
prints its aggregate answer.`,
	}

	rootCmd.AddCommand(cli.Day01Cmd())
	rootCmd.AddCommand(cli.Day02Cmd())
	rootCmd.AddCommand(cli.Day03Cmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
