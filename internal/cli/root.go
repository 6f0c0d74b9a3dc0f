package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "heft",
	Short:   "A micro-benchmarking tool for memory and time measurements",
	Version: version,
	Long: `Heft measures how heavy code and data really are. It evaluates
targets from a scenario file (built-in workloads and JSON values),
tracking peak memory and wall-clock duration over repeated runs, and
renders the averages as a compact plain-text report. Without targets
it measures the hosting process itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(evalCmd)
}
