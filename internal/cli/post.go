package cli

import (
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Long: `Make a POST request to the specified URL. When no Content-Type header is
supplied the request defaults to application/json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, "POST", args[0], true)
	},
}

func init() {
	addRequestFlags(postCmd, true)
}
