// Package http provides a minimal synchronous HTTP client with a normalized
// response model and convenience JSON decoding.
//
// Every request blocks the calling goroutine until the exchange completes or
// times out. The package holds no shared mutable state, so a Client (and the
// package-level helpers) may be used from any number of goroutines without
// additional locking.
//
// Basic Usage:
//
//	client := http.NewClient()
//
//	resp, err := client.Get(context.Background(), "https://api.example.com/users", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.Status())
//	if ct, ok := resp.Header("Content-Type"); ok {
//	    fmt.Printf("Content-Type: %s\n", ct)
//	}
//
// Body-carrying verbs default the Content-Type header to application/json
// when the caller does not supply one:
//
//	resp, err := client.Post(context.Background(), "https://api.example.com/users",
//	    `{"name":"alice"}`, nil)
//
// For full control use the Request builder with Do:
//
//	req := http.NewRequest("PATCH", "https://api.example.com/users/1").
//	    WithHeader("Authorization", "Bearer token").
//	    WithBody(`{"active":false}`).
//	    WithTimeout(10 * time.Second)
//
//	resp, err := client.Do(context.Background(), req)
//
// The underlying transport is an injectable capability, which keeps the
// dispatcher testable with scripted responses:
//
//	client := http.NewClient(http.WithTransport(fake))
package http
