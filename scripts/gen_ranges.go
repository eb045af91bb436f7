//go:build ignore

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Generates a random day02 range-list input file for benchmarking.
//
// Usage: go run scripts/gen_ranges.go -ranges 50 -span 100000 -out data/day02/input.txt
func main() {
	count := flag.Int("ranges", 20, "Number of ranges to generate")
	span := flag.Uint64("span", 100000, "Maximum IDs per range")
	maxStart := flag.Uint64("max-start", 9_000_000_000, "Upper bound for range starts")
	seed := flag.Int64("seed", 1, "RNG seed")
	out := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))

	parts := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		start := uint64(r.Int63n(int64(*maxStart)))
		end := start + uint64(r.Int63n(int64(*span)))
		parts = append(parts, fmt.Sprintf("%d-%d", start, end))
	}
	line := strings.Join(parts, ",") + "\n"

	if *out == "" {
		fmt.Print(line)
		return
	}
	if err := os.WriteFile(*out, []byte(line), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d ranges to %s\n", *count, *out)
}
