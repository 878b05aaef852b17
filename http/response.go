package http

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Response represents one completed HTTP exchange. It is immutable: all
// fields are fixed at construction and accessors return copies, so a
// Response may be shared across goroutines freely.
type Response struct {
	status  int
	headers map[string]string
	body    string
}

// NewResponse constructs a Response from raw exchange output. Header names
// are stored lower-cased; when the input repeats a name the last value wins.
func NewResponse(status int, headers map[string]string, body string) *Response {
	normalized := make(map[string]string, len(headers))
	for name, value := range headers {
		normalized[strings.ToLower(name)] = value
	}
	return &Response{
		status:  status,
		headers: normalized,
		body:    body,
	}
}

// Status returns the HTTP status code.
func (r *Response) Status() int {
	return r.status
}

// Header returns the value of the named header. Lookup is case-insensitive.
func (r *Response) Header(name string) (string, bool) {
	value, ok := r.headers[strings.ToLower(name)]
	return value, ok
}

// Headers returns a copy of the normalized header mapping. Keys are
// lower-cased.
func (r *Response) Headers() map[string]string {
	headers := make(map[string]string, len(r.headers))
	for name, value := range r.headers {
		headers[name] = value
	}
	return headers
}

// Body returns the response body as text.
func (r *Response) Body() string {
	return r.body
}

// JSON parses the body as JSON and flattens a top-level object into a
// string-to-string mapping. Each member value is kept as its raw JSON text,
// so the number 5 becomes "5" and the string "x" becomes "\"x\"" including
// quotes. A well-formed body whose top level is not an object (array or
// scalar) yields an empty mapping. A malformed body yields a JSONError.
//
// Callers that need typed access should decode Body with their own
// structures instead.
func (r *Response) JSON() (map[string]string, error) {
	if !gjson.Valid(r.body) {
		// gjson reports no position, so recover the parser's message.
		var probe json.RawMessage
		if err := json.Unmarshal([]byte(r.body), &probe); err != nil {
			return nil, &JSONError{Err: err}
		}
		return nil, &JSONError{Err: errors.New("invalid JSON")}
	}

	result := make(map[string]string)
	parsed := gjson.Parse(r.body)
	if !parsed.IsObject() {
		return result, nil
	}
	parsed.ForEach(func(key, value gjson.Result) bool {
		result[key.String()] = value.Raw
		return true
	})
	return result, nil
}

// IsSuccess returns true if the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.status >= 200 && r.status < 300
}

// IsRedirect returns true if the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.status >= 300 && r.status < 400
}

// IsClientError returns true if the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.status >= 400 && r.status < 500
}

// IsServerError returns true if the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.status >= 500 && r.status < 600
}

// IsError returns true if the status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.IsClientError() || r.IsServerError()
}
