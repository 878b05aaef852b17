package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trunkhttp/trunk/pkg/urlutil"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "URL utilities",
}

var urlParseCmd = &cobra.Command{
	Use:   "parse URL",
	Short: "Split an absolute URL into its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		components, err := urlutil.Parse(args[0])
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(components))
		for key := range components {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %s\n", key, components[key])
		}
		return nil
	},
}

var urlQueryCmd = &cobra.Command{
	Use:   "query KEY=VALUE [KEY=VALUE...]",
	Short: "Build a percent-encoded query string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := make(map[string]string, len(args))
		for _, arg := range args {
			parts := strings.SplitN(arg, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("expected KEY=VALUE, got %q", arg)
			}
			params[parts[0]] = parts[1]
		}

		fmt.Println(urlutil.BuildQuery(params))
		return nil
	},
}

func init() {
	urlCmd.AddCommand(urlParseCmd)
	urlCmd.AddCommand(urlQueryCmd)
}
