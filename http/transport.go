package http

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Transport performs one blocking HTTP exchange. It is the only collaborator
// that touches the network, which keeps the dispatcher testable with scripted
// responses.
type Transport interface {
	Exchange(ctx context.Context, req *Request) (*RawResponse, error)
}

// RawResponse is the unnormalized transport output: status, headers and body
// exactly as the wire layer produced them.
type RawResponse struct {
	Status  int
	Headers http.Header
	Body    []byte
}

// netTransport is the default Transport, backed by net/http. Redirects,
// connection handling and TLS are whatever the wrapped client does.
type netTransport struct {
	client *http.Client
}

func newNetTransport(client *http.Client) *netTransport {
	if client == nil {
		client = &http.Client{}
	}
	return &netTransport{client: client}
}

func (t *netTransport) Exchange(ctx context.Context, req *Request) (*RawResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req.HasBody() {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &RawResponse{
		Status:  httpResp.StatusCode,
		Headers: httpResp.Header,
		Body:    raw,
	}, nil
}
