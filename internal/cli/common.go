package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	trunkhttp "github.com/trunkhttp/trunk/http"
	"github.com/trunkhttp/trunk/internal/output"
	"github.com/trunkhttp/trunk/pkg/jsonschema"
)

// addRequestFlags registers the flag set shared by every verb command.
func addRequestFlags(cmd *cobra.Command, withData bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("extract", "", "Print only the value at this gjson path of the response body")
	cmd.Flags().String("schema", "", "Validate the response body against this JSON Schema file")
	if withData {
		cmd.Flags().StringP("data", "d", "", "Request body")
	}
}

// parseHeaderFlags turns "Key: Value" flag entries into a header map.
func parseHeaderFlags(entries []string) map[string]string {
	headers := make(map[string]string, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return headers
}

// runVerb builds and executes one request for a verb command. Body-carrying
// verbs get the JSON content-type default, matching the library shorthands.
func runVerb(cmd *cobra.Command, method, url string, withData bool) error {
	headerFlags, _ := cmd.Flags().GetStringArray("header")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	extract, _ := cmd.Flags().GetString("extract")
	schemaPath, _ := cmd.Flags().GetString("schema")

	headers := parseHeaderFlags(headerFlags)

	req := trunkhttp.NewRequest(method, url).WithTimeout(timeout)
	if withData {
		data, _ := cmd.Flags().GetString("data")
		req.WithHeaders(trunkhttp.EnsureJSONContentType(headers)).WithBody(data)
	} else {
		req.WithHeaders(headers)
	}

	formatter := output.NewFormatter(verbose, noColor)
	if verbose {
		fmt.Print(formatter.FormatRequest(req))
	}

	client := trunkhttp.NewClient()
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		return err
	}

	if extract != "" {
		result := gjson.Get(resp.Body(), extract)
		if !result.Exists() {
			return fmt.Errorf("extract path not found: %s", extract)
		}
		fmt.Println(result.String())
		return nil
	}

	fmt.Print(formatter.FormatResponse(resp))

	if schemaPath != "" {
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("reading schema file: %w", err)
		}
		if err := jsonschema.Validate(resp.Body(), string(schema)); err != nil {
			return err
		}
		fmt.Print(formatter.FormatResult("schema", nil))
	}

	return nil
}
