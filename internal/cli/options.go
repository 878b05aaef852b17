package cli

import (
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options URL",
	Short: "Make an OPTIONS request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, "OPTIONS", args[0], false)
	},
}

func init() {
	addRequestFlags(optionsCmd, false)
}
