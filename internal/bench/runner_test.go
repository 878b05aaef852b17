package bench

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	trunkhttp "github.com/trunkhttp/trunk/http"
)

func TestRun(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := trunkhttp.NewClient()
	req := trunkhttp.NewRequest("GET", server.URL).WithTimeout(5 * time.Second)

	report := Run(context.Background(), client, req, Options{Iterations: 10, Concurrency: 2})

	if report.Total() != 10 {
		t.Errorf("Expected 10 requests, got %d", report.Total())
	}
	if report.Failed() != 0 {
		t.Errorf("Expected no failures, got %d", report.Failed())
	}
	if hits.Load() != 10 {
		t.Errorf("Expected server to see 10 requests, got %d", hits.Load())
	}
	if report.Elapsed <= 0 {
		t.Error("Expected positive elapsed time")
	}

	// Percentiles are monotone.
	p50, p90, p99 := report.Percentile(50), report.Percentile(90), report.Percentile(99)
	if p50 > p90 || p90 > p99 {
		t.Errorf("Expected monotone percentiles, got p50=%v p90=%v p99=%v", p50, p90, p99)
	}
	if report.Min() > report.Max() {
		t.Errorf("Expected min <= max, got min=%v max=%v", report.Min(), report.Max())
	}
}

func TestRun_CountsFailures(t *testing.T) {
	client := trunkhttp.NewClient()
	// Nothing listens here; every exchange fails at the transport.
	req := trunkhttp.NewRequest("GET", "http://127.0.0.1:1").WithTimeout(time.Second)

	report := Run(context.Background(), client, req, Options{Iterations: 3})

	if report.Total() != 3 {
		t.Errorf("Expected 3 requests, got %d", report.Total())
	}
	if report.Failed() != 3 {
		t.Errorf("Expected 3 failures, got %d", report.Failed())
	}
}

func TestRun_ZeroIterations(t *testing.T) {
	report := Run(context.Background(), trunkhttp.NewClient(), trunkhttp.NewRequest("GET", "http://example.com"), Options{})

	if report.Total() != 0 || report.Failed() != 0 {
		t.Errorf("Expected empty report, got total=%d failed=%d", report.Total(), report.Failed())
	}
}
