// tacgrid inspects board files with the grid engine.
//
// Usage:
//
//	tacgrid ocean <board>                              - mark ocean water
//	tacgrid area <board> --center r,c --min N --max N  - mark a ring
//	tacgrid path <board> --unit r,c --to r,c [--fly]   - draw a unit's path
//	tacgrid fields <board> --unit r,c [--unit r,c ...] - flow fields per unit
//	tacgrid regions <board> [--water]                  - count regions
//
// Global flags:
//
//	--rules <path>      - YAML tile table (default: built-in terrain)
//	--seed <value>      - RNG seed for neighbour shuffling (0 = default seed)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagRules    string
	flagSeed     int64
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tacgrid",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tacgrid",
	Short: "Inspect tactical boards: rings, oceans, flow fields and regions",
	Long: `tacgrid loads a YAML board file and runs the grid engine on it.

Examples:
  tacgrid ocean maps/bay.yaml
  tacgrid area maps/bay.yaml --center 4,4 --min 4 --max 9
  tacgrid path maps/bay.yaml --unit 0,0 --to 6,7
  tacgrid fields maps/bay.yaml --unit 0,0 --unit 6,7 --fly
  tacgrid regions maps/bay.yaml --water`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Path to a YAML tile table (default: built-in terrain)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for neighbour shuffling (0 = default seed)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(oceanCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(regionsCmd)
}
