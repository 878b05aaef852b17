package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	trunkhttp "github.com/trunkhttp/trunk/http"
	"github.com/trunkhttp/trunk/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Benchmark request latency against a URL",
	Long: `Issue a number of GET requests against a URL and report latency
percentiles from an HDR histogram.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iterations, _ := cmd.Flags().GetInt("requests")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		headerFlags, _ := cmd.Flags().GetStringArray("header")

		req := trunkhttp.NewRequest("GET", args[0]).
			WithHeaders(parseHeaderFlags(headerFlags)).
			WithTimeout(timeout)

		report := bench.Run(cmd.Context(), trunkhttp.NewClient(), req, bench.Options{
			Iterations:  iterations,
			Concurrency: concurrency,
		})

		fmt.Printf("Requests: %d (failed: %d) in %v\n", report.Total(), report.Failed(), report.Elapsed.Round(time.Millisecond))
		if report.Total() > report.Failed() {
			fmt.Printf("Latency  min: %v\n", report.Min())
			fmt.Printf("        mean: %v\n", report.Mean())
			fmt.Printf("         p50: %v\n", report.Percentile(50))
			fmt.Printf("         p90: %v\n", report.Percentile(90))
			fmt.Printf("         p99: %v\n", report.Percentile(99))
			fmt.Printf("         max: %v\n", report.Max())
		}

		if report.Failed() > 0 {
			return fmt.Errorf("%d of %d requests failed", report.Failed(), report.Total())
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 10, "Number of requests to issue")
	benchCmd.Flags().IntP("concurrency", "c", 1, "Number of concurrent workers")
	benchCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	benchCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
}
