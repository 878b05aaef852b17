package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTimeout is the per-request timeout applied by the verb shorthands.
const DefaultTimeout = 30 * time.Second

const contentTypeJSON = "application/json"

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodHead:    {},
	http.MethodOptions: {},
}

// IsSupportedMethod reports whether method names one of the seven supported
// verbs. The check is case-insensitive.
func IsSupportedMethod(method string) bool {
	_, ok := supportedMethods[strings.ToUpper(method)]
	return ok
}

// Client issues HTTP requests through an injected Transport and normalizes
// the results. Client is safe for concurrent use by multiple goroutines.
type Client struct {
	transport Transport
	headers   map[string]string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new client with the given options.
//
// Example:
//
//	client := http.NewClient(
//	    http.WithHeader("User-Agent", "trunk"),
//	)
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		transport: newNetTransport(nil),
		headers:   make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTransport sets the Transport used for exchanges. Use this to inject a
// fake transport in tests.
func WithTransport(transport Transport) ClientOption {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithHTTPClient backs the default transport with a custom *http.Client.
// Use this for advanced configuration like custom TLS settings or redirect
// policies.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.transport = newNetTransport(httpClient)
	}
}

// WithHeader adds a default header to all requests made by this client.
// Headers set on individual requests override these defaults.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Do executes a request and returns the normalized response.
//
// The method is uppercased and validated against the supported verb set
// before any network activity. Transport failures (DNS, connect, timeout,
// protocol) are wrapped in RequestError; a response whose body is not valid
// text is rejected with BodyError. Response header names are stored
// lower-cased, last value winning when a name repeats.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	if _, ok := supportedMethods[method]; !ok {
		return nil, &UnsupportedMethodError{Method: req.Method}
	}

	send := &Request{
		Method:  method,
		URL:     req.URL,
		Headers: make(map[string]string, len(c.headers)+len(req.Headers)),
		Body:    req.Body,
		Timeout: req.Timeout,
		hasBody: req.hasBody,
	}
	for key, value := range c.headers {
		send.Headers[key] = value
	}
	for key, value := range req.Headers {
		send.Headers[key] = value
	}

	raw, err := c.transport.Exchange(ctx, send)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	headers := make(map[string]string, len(raw.Headers))
	for name, values := range raw.Headers {
		if len(values) == 0 {
			continue
		}
		headers[strings.ToLower(name)] = values[len(values)-1]
	}

	if !utf8.Valid(raw.Body) {
		return nil, &BodyError{Err: errors.New("body is not valid UTF-8 text")}
	}

	return NewResponse(raw.Status, headers, string(raw.Body)), nil
}

// Get issues a GET request with a 30 second timeout.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, url).WithHeaders(headers).WithTimeout(DefaultTimeout))
}

// Delete issues a DELETE request with a 30 second timeout.
func (c *Client) Delete(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, url).WithHeaders(headers).WithTimeout(DefaultTimeout))
}

// Head issues a HEAD request with a 30 second timeout.
func (c *Client) Head(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodHead, url).WithHeaders(headers).WithTimeout(DefaultTimeout))
}

// Options issues an OPTIONS request with a 30 second timeout.
func (c *Client) Options(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodOptions, url).WithHeaders(headers).WithTimeout(DefaultTimeout))
}

// Post issues a POST request with a 30 second timeout. When headers contain
// neither "content-type" nor "Content-Type", Content-Type defaults to
// application/json.
func (c *Client) Post(ctx context.Context, url, body string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPost, url).
		WithHeaders(EnsureJSONContentType(headers)).
		WithBody(body).
		WithTimeout(DefaultTimeout))
}

// Put issues a PUT request with a 30 second timeout and the same
// Content-Type default as Post.
func (c *Client) Put(ctx context.Context, url, body string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPut, url).
		WithHeaders(EnsureJSONContentType(headers)).
		WithBody(body).
		WithTimeout(DefaultTimeout))
}

// Patch issues a PATCH request with a 30 second timeout and the same
// Content-Type default as Post.
func (c *Client) Patch(ctx context.Context, url, body string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPatch, url).
		WithHeaders(EnsureJSONContentType(headers)).
		WithBody(body).
		WithTimeout(DefaultTimeout))
}

// EnsureJSONContentType copies headers and inserts the JSON content type
// unless the caller already set one. Only the lower-case "content-type" and
// the literal "Content-Type" spellings count as already set; other casings
// do not, matching the historical behavior of this check.
func EnsureJSONContentType(headers map[string]string) map[string]string {
	merged := make(map[string]string, len(headers)+1)
	for key, value := range headers {
		merged[key] = value
	}
	if _, ok := merged["content-type"]; ok {
		return merged
	}
	if _, ok := merged["Content-Type"]; ok {
		return merged
	}
	merged["Content-Type"] = contentTypeJSON
	return merged
}

// DefaultClient is the client used by the package-level helpers. It holds no
// mutable state.
var DefaultClient = NewClient()

// Get issues a GET request using DefaultClient.
func Get(url string, headers map[string]string) (*Response, error) {
	return DefaultClient.Get(context.Background(), url, headers)
}

// Delete issues a DELETE request using DefaultClient.
func Delete(url string, headers map[string]string) (*Response, error) {
	return DefaultClient.Delete(context.Background(), url, headers)
}

// Head issues a HEAD request using DefaultClient.
func Head(url string, headers map[string]string) (*Response, error) {
	return DefaultClient.Head(context.Background(), url, headers)
}

// Options issues an OPTIONS request using DefaultClient.
func Options(url string, headers map[string]string) (*Response, error) {
	return DefaultClient.Options(context.Background(), url, headers)
}

// Post issues a POST request using DefaultClient.
func Post(url, body string, headers map[string]string) (*Response, error) {
	return DefaultClient.Post(context.Background(), url, body, headers)
}

// Put issues a PUT request using DefaultClient.
func Put(url, body string, headers map[string]string) (*Response, error) {
	return DefaultClient.Put(context.Background(), url, body, headers)
}

// Patch issues a PATCH request using DefaultClient.
func Patch(url, body string, headers map[string]string) (*Response, error) {
	return DefaultClient.Patch(context.Background(), url, body, headers)
}
