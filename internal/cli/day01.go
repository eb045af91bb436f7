package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/core/dial"
	"github.com/example/advent/internal/input"
)

// Day01Cmd returns the day01 command
func Day01Cmd() *cobra.Command {
	var (
		inputPath string
		modeName  string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "day01",
		Short: "Simulate the vault dial and count zero sightings",
		Long: `Apply a list of rotation instructions (L68, R48, ...) to a
100-position dial starting at 50. Mode "after" counts instructions that
leave the dial at zero; mode "during" also counts every pass over zero
while the dial turns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			path := cfg.InputPath("day01", inputPath)
			mode := dial.ModeFromString(cfg.Mode(modeName))

			instructions, err := input.ReadInstructions(path)
			if err != nil {
				return err
			}

			state := dial.New()
			var landings, passes uint32
			for _, ins := range instructions {
				crossed := state.Apply(ins)
				passes += crossed
				if state.AtZero() {
					landings++
				}
				if verbose {
					fmt.Printf("- The dial is rotated %s to point at %d", ins, state.Pos)
					if mode == dial.CountDuring && crossed > 0 {
						fmt.Printf("; during this rotation, it points at 0 %d times", crossed)
					}
					fmt.Println(".")
				}
			}

			total := landings
			if mode == dial.CountDuring {
				total += passes
			}
			fmt.Printf("Zero count: %d\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input file (default data/day01/input.txt)")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Mode: 'after' or 'during' (default after)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each rotation")

	return cmd
}
