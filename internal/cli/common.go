// Package cli contains the cobra commands for the advent binary.
package cli

import (
	"os"

	"github.com/example/advent/internal/config"
)

// loadConfig reads the optional .advent/config.json from the working
// directory. A missing or unreadable config is not an error at the CLI
// layer; defaults apply instead.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return nil
	}
	return cfg
}
