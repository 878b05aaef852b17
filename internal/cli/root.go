// Package cli implements the trunk command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "trunk",
	Short:   "A minimal synchronous HTTP client",
	Version: version,
	Long: `Trunk is a minimal synchronous HTTP client for the terminal. It issues
single blocking requests, normalizes the response (status, lower-cased
headers, body text) and offers JSON extraction, schema validation, YAML
request suites and a simple latency benchmark.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called by main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(headCmd)
	RootCmd.AddCommand(optionsCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(urlCmd)
}
