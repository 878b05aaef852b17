package http

import "time"

// Request describes a single HTTP exchange with a fluent builder pattern.
// A Request is call-scoped: build one, pass it to Client.Do, discard it.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
	Timeout time.Duration

	hasBody bool
}

// NewRequest creates a new request with the specified method and URL.
//
// Example:
//
//	req := http.NewRequest("GET", "https://api.example.com/users").
//	    WithHeader("Accept", "application/json").
//	    WithTimeout(10 * time.Second)
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

// WithHeader adds a header to the request.
// Returns the Request to allow method chaining.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithHeaders adds multiple headers to the request.
// Returns the Request to allow method chaining.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	for key, value := range headers {
		r.Headers[key] = value
	}
	return r
}

// WithBody sets the body of the request. The transport takes care of framing
// (Content-Length). An empty string is still a body; a request on which
// WithBody was never called is sent with no body at all.
// Returns the Request to allow method chaining.
func (r *Request) WithBody(body string) *Request {
	r.Body = body
	r.hasBody = true
	return r
}

// WithTimeout sets the per-request timeout. Zero means the transport's own
// default applies. Returns the Request to allow method chaining.
func (r *Request) WithTimeout(timeout time.Duration) *Request {
	r.Timeout = timeout
	return r
}

// HasBody reports whether a body was set on the request, distinguishing an
// explicitly empty body from no body.
func (r *Request) HasBody() bool {
	return r.hasBody
}
