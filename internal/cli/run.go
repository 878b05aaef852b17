package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	trunkhttp "github.com/trunkhttp/trunk/http"
	"github.com/trunkhttp/trunk/internal/config"
	"github.com/trunkhttp/trunk/internal/output"
	"github.com/trunkhttp/trunk/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run SUITE",
	Short: "Execute a YAML request suite",
	Long: `Execute every request in a YAML suite file in order, printing a pass/fail
line per request. A request fails when the exchange errors, the response
status is an error, or the body does not satisfy the request's schema.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		suite, err := config.Load(args[0])
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(verbose, noColor)
		client := trunkhttp.NewClient()

		failures := 0
		for _, entry := range suite.Requests {
			name := entry.Name
			if name == "" {
				name = fmt.Sprintf("%s %s", entry.Method, entry.URL)
			}

			err := runSuiteRequest(cmd.Context(), client, formatter, entry, verbose)
			fmt.Print(formatter.FormatResult(name, err))
			if err != nil {
				failures++
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d requests failed", failures, len(suite.Requests))
		}
		return nil
	},
}

func runSuiteRequest(ctx context.Context, client *trunkhttp.Client, formatter *output.Formatter, entry config.Request, verbose bool) error {
	timeout := trunkhttp.DefaultTimeout
	if entry.Timeout > 0 {
		timeout = time.Duration(entry.Timeout) * time.Second
	}

	headers := entry.Headers
	if entry.Body != "" {
		headers = trunkhttp.EnsureJSONContentType(headers)
	}

	req := trunkhttp.NewRequest(entry.Method, entry.URL).
		WithHeaders(headers).
		WithTimeout(timeout)
	if entry.Body != "" {
		req.WithBody(entry.Body)
	}

	if verbose {
		fmt.Print(formatter.FormatRequest(req))
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Print(formatter.FormatResponse(resp))
	}

	if resp.IsError() {
		return fmt.Errorf("status %d", resp.Status())
	}

	if entry.Schema != "" {
		schema, err := os.ReadFile(entry.Schema)
		if err != nil {
			return fmt.Errorf("reading schema file: %w", err)
		}
		if err := jsonschema.Validate(resp.Body(), string(schema)); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
