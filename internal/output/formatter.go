// Package output formats requests and responses for terminal display.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	trunkhttp "github.com/trunkhttp/trunk/http"
)

// Formatter renders requests and responses as text.
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter. Color is disabled when noColor is
// set or stdout is not a terminal.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !StdoutIsTerminal() {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, scheme: scheme}
}

// FormatRequest formats an outgoing request for display.
func (f *Formatter) FormatRequest(req *trunkhttp.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(strings.ToUpper(req.Method)),
		f.scheme.URL.Sprint(req.URL)))

	if f.Verbose && len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(req.Headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), req.Headers[key]))
		}
	}

	if req.HasBody() {
		buf.WriteString("  Body:\n")
		buf.WriteString(indentJSON(req.Body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats a normalized response for display.
func (f *Formatter) FormatResponse(resp *trunkhttp.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	status := fmt.Sprintf("%d", resp.Status())
	if text := http.StatusText(resp.Status()); text != "" {
		status += " " + text
	}
	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s\n", statusColor.Sprint(status)))

	if f.Verbose {
		headers := resp.Headers()
		if len(headers) > 0 {
			buf.WriteString("  Headers:\n")
			for _, key := range sortedKeys(headers) {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), headers[key]))
			}
		}
	}

	if body := resp.Body(); body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(indentJSON(body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResult renders a one-line pass/fail marker, used by the suite runner.
func (f *Formatter) FormatResult(name string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s: %v\n", f.scheme.Error.Sprint("✗"), name, err)
	}
	return fmt.Sprintf("%s %s\n", f.scheme.Success.Sprint("✓"), name)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// indentJSON pretty-prints s when it is valid JSON, otherwise returns it
// indented as-is.
func indentJSON(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "    ", "  "); err != nil {
		return "    " + s
	}
	return "    " + pretty.String()
}
