// Package bench runs a request repeatedly and reports latency percentiles.
package bench

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	trunkhttp "github.com/trunkhttp/trunk/http"
)

// Options configures a benchmark run.
type Options struct {
	// Iterations is the total number of requests to issue.
	Iterations int
	// Concurrency is the number of workers issuing requests. Values below 1
	// are treated as 1.
	Concurrency int
}

// Report aggregates the outcome of a benchmark run.
//
// Latencies are recorded in an HDR histogram covering 1µs to 1 hour at 3
// significant figures, so percentile queries are O(1). Counters use atomic
// updates; the histogram is mutex protected.
type Report struct {
	Elapsed time.Duration

	total  atomic.Int64
	failed atomic.Int64

	hist   *hdrhistogram.Histogram
	histMu sync.Mutex
}

func newReport() *Report {
	return &Report{
		hist: hdrhistogram.New(1, time.Hour.Microseconds(), 3),
	}
}

func (r *Report) record(latency time.Duration) {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	r.hist.RecordValue(latency.Microseconds())
}

// Total returns the number of requests issued.
func (r *Report) Total() int {
	return int(r.total.Load())
}

// Failed returns the number of requests that ended in an error.
func (r *Report) Failed() int {
	return int(r.failed.Load())
}

// Percentile returns the latency at percentile p (0-100).
func (r *Report) Percentile(p float64) time.Duration {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	return time.Duration(r.hist.ValueAtQuantile(p)) * time.Microsecond
}

// Min returns the smallest recorded latency.
func (r *Report) Min() time.Duration {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	return time.Duration(r.hist.Min()) * time.Microsecond
}

// Max returns the largest recorded latency.
func (r *Report) Max() time.Duration {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	return time.Duration(r.hist.Max()) * time.Microsecond
}

// Mean returns the mean recorded latency.
func (r *Report) Mean() time.Duration {
	r.histMu.Lock()
	defer r.histMu.Unlock()
	return time.Duration(r.hist.Mean()) * time.Microsecond
}

// Run issues the request opts.Iterations times and returns the aggregated
// report. A non-2xx status is still a completed exchange; only transport and
// normalization errors count as failures. Run blocks until every iteration
// finished or ctx is cancelled.
func Run(ctx context.Context, client *trunkhttp.Client, req *trunkhttp.Request, opts Options) *Report {
	report := newReport()
	if opts.Iterations <= 0 {
		return report
	}

	workers := opts.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > opts.Iterations {
		workers = opts.Iterations
	}

	iterations := make(chan struct{}, opts.Iterations)
	for i := 0; i < opts.Iterations; i++ {
		iterations <- struct{}{}
	}
	close(iterations)

	started := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				if ctx.Err() != nil {
					return
				}
				start := time.Now()
				_, err := client.Do(ctx, copyRequest(req))
				report.total.Add(1)
				if err != nil {
					report.failed.Add(1)
					continue
				}
				report.record(time.Since(start))
			}
		}()
	}
	wg.Wait()

	report.Elapsed = time.Since(started)
	return report
}

// copyRequest clones a request so workers never share a builder.
func copyRequest(req *trunkhttp.Request) *trunkhttp.Request {
	clone := trunkhttp.NewRequest(req.Method, req.URL).
		WithHeaders(req.Headers).
		WithTimeout(req.Timeout)
	if req.HasBody() {
		clone.WithBody(req.Body)
	}
	return clone
}
