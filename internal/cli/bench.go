package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/gofetch/fetch"
	"github.com/wesleyorama2/gofetch/internal/bench"
	"github.com/wesleyorama2/gofetch/internal/output"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Repeat a GET request and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requests, _ := cmd.Flags().GetInt("requests")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		headers, _ := cmd.Flags().GetStringArray("header")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColorFlag, _ := cmd.Flags().GetBool("no-color")

		noColor := !output.ShouldColor(noColorFlag)

		if requests < 1 || concurrency < 1 {
			fmt.Fprintln(os.Stderr, "Error: requests and concurrency must be at least 1")
			os.Exit(1)
		}
		if concurrency > requests {
			concurrency = requests
		}

		baseURL, path := parseURL(args[0])
		client := fetch.NewClient(
			fetch.WithTimeout(timeout),
			fetch.WithBaseURL(baseURL),
		)

		recorder := bench.NewRecorder()
		jobs := make(chan struct{}, requests)
		for i := 0; i < requests; i++ {
			jobs <- struct{}{}
		}
		close(jobs)

		fmt.Printf("Benchmarking %s with %d requests, concurrency %d\n", args[0], requests, concurrency)
		start := time.Now()

		var wg sync.WaitGroup
		for i := 0; i < concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range jobs {
					req := fetch.NewRequest("GET", path)
					for _, header := range headers {
						parts := strings.SplitN(header, ":", 2)
						if len(parts) == 2 {
							req.WithHeader(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
						}
					}

					resp, err := client.Do(context.Background(), req)
					if err != nil {
						recorder.Record(timeout, false, 0)
						continue
					}
					recorder.Record(resp.ResponseTime, resp.OK, int64(len(resp.Text)))
				}
			}()
		}
		wg.Wait()
		elapsed := time.Since(start)

		printSnapshot(recorder.Snapshot(), elapsed, noColor)
	},
}

func printSnapshot(s bench.Snapshot, elapsed time.Duration, noColor bool) {
	icon := output.SuccessIcon(noColor)
	if s.Failures > 0 {
		icon = output.WarningIcon(noColor)
	}

	fmt.Printf("\n%s %d requests in %v (%.1f req/s)\n", icon, s.Requests, elapsed.Round(time.Millisecond), float64(s.Requests)/elapsed.Seconds())
	fmt.Printf("  Failures:   %d (%.1f%%)\n", s.Failures, s.ErrorRate*100)
	fmt.Printf("  Bytes read: %d\n", s.Bytes)
	fmt.Println("  Latency:")
	fmt.Printf("    min:  %v\n", s.Min.Round(time.Microsecond))
	fmt.Printf("    mean: %v\n", s.Mean.Round(time.Microsecond))
	fmt.Printf("    p50:  %v\n", s.P50.Round(time.Microsecond))
	fmt.Printf("    p90:  %v\n", s.P90.Round(time.Microsecond))
	fmt.Printf("    p99:  %v\n", s.P99.Round(time.Microsecond))
	fmt.Printf("    max:  %v\n", s.Max.Round(time.Microsecond))
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 100, "Total number of requests to send")
	benchCmd.Flags().IntP("concurrency", "c", 10, "Number of concurrent workers")
	benchCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	benchCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	benchCmd.Flags().Bool("no-color", false, "Disable colored output")
}
