// Package urlutil provides stateless URL helpers: a query-string encoder and
// a URL parser that splits an absolute URL into its components.
package urlutil

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// InvalidURLError is returned by Parse for input that is not an absolute URL.
type InvalidURLError struct {
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %v", e.Err)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// BuildQuery encodes params as a query string: keys and values are
// percent-encoded independently (space as %20) and joined as "k=v" pairs
// with "&". Keys are emitted in sorted order so the output is deterministic.
func BuildQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, escape(key)+"="+escape(params[key]))
	}
	return strings.Join(pairs, "&")
}

// escape percent-encodes s for use in a query string. url.QueryEscape emits
// "+" for spaces; %20 is the form understood in every query position.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Parse splits an absolute URL into a component mapping. The keys "scheme",
// "host" and "path" are always present (host is empty when the URL has none;
// path defaults to "/" for host-only URLs). "query" and "port" appear only
// when the URL carries them, so absence of the component means absence of
// the key.
func Parse(rawURL string) (map[string]string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Err: err}
	}
	if parsed.Scheme == "" {
		return nil, &InvalidURLError{Err: fmt.Errorf("relative URL without a scheme: %q", rawURL)}
	}

	path := parsed.EscapedPath()
	if path == "" && parsed.Host != "" {
		path = "/"
	}

	components := map[string]string{
		"scheme": parsed.Scheme,
		"host":   parsed.Hostname(),
		"path":   path,
	}
	if parsed.RawQuery != "" {
		components["query"] = parsed.RawQuery
	}
	if port := parsed.Port(); port != "" {
		components["port"] = port
	}
	return components, nil
}
