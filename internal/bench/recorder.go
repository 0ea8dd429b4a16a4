// Package bench aggregates request latencies for the bench command using an
// HDR histogram.
package bench

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// Histogram range in microseconds: 1µs to 60s, 3 significant figures.
	histogramMin     = 1
	histogramMax     = 60_000_000
	histogramSigFigs = 3
)

// Recorder accumulates request latencies and outcome counters.
// Recorder is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	requests int64
	failures int64
	bytes    int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one request outcome.
func (r *Recorder) Record(latency time.Duration, success bool, bytes int64) {
	// HDR histogram works in integer units; microseconds keep sub-ms
	// resolution without overflowing the range.
	micros := latency.Microseconds()
	if micros < histogramMin {
		micros = histogramMin
	}
	if micros > histogramMax {
		micros = histogramMax
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// RecordValue is not thread-safe, hence the lock.
	r.hist.RecordValue(micros)
	r.requests++
	r.bytes += bytes
	if !success {
		r.failures++
	}
}

// Snapshot is a point-in-time summary of recorded latencies.
type Snapshot struct {
	Requests  int64
	Failures  int64
	ErrorRate float64
	Bytes     int64

	Min  time.Duration
	Mean time.Duration
	P50  time.Duration
	P90  time.Duration
	P99  time.Duration
	Max  time.Duration
}

// Snapshot returns the current summary. The recorder keeps accumulating
// afterwards.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		Requests: r.requests,
		Failures: r.failures,
		Bytes:    r.bytes,
	}
	if r.requests > 0 {
		s.ErrorRate = float64(r.failures) / float64(r.requests)
		s.Min = time.Duration(r.hist.Min()) * time.Microsecond
		s.Mean = time.Duration(r.hist.Mean()) * time.Microsecond
		s.P50 = time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond
		s.P90 = time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond
		s.P99 = time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond
		s.Max = time.Duration(r.hist.Max()) * time.Microsecond
	}
	return s
}
