// Package bench is a small wall-clock benchmark harness for whole-run
// timings. It complements `go test -bench` by measuring the exact
// workload a CLI invocation performs.
package bench

import (
	"fmt"
	"time"
)

// Result holds the timing of a benchmark run.
type Result struct {
	Elapsed    time.Duration
	Iterations int
}

// Run invokes fn the given number of times and returns the measured
// result. Iteration counts below 1 are clamped to 1.
func Run(iterations int, fn func()) Result {
	if iterations < 1 {
		iterations = 1
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	return Result{
		Elapsed:    time.Since(start),
		Iterations: iterations,
	}
}

// Average returns the mean duration per iteration.
func (r Result) Average() time.Duration {
	return r.Elapsed / time.Duration(r.Iterations)
}

func (r Result) String() string {
	return fmt.Sprintf("Duration: %v\nAverage:  %v", r.Elapsed, r.Average())
}
