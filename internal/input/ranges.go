// Package input reads and parses the daily puzzle input files. Parsing
// is strict: malformed text is an error, never skipped.
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/advent/internal/core/ids"
)

// ParseRange parses a single "start-end" pair.
func ParseRange(s string) (ids.Range, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return ids.Range{}, fmt.Errorf("range %q: missing '-'", s)
	}
	from, err := strconv.ParseUint(start, 10, 64)
	if err != nil {
		return ids.Range{}, fmt.Errorf("range %q: bad start: %w", s, err)
	}
	to, err := strconv.ParseUint(end, 10, 64)
	if err != nil {
		return ids.Range{}, fmt.Errorf("range %q: bad end: %w", s, err)
	}
	return ids.Range{Start: from, End: to}, nil
}

// ParseRanges parses a comma-separated list of "start-end" pairs.
// Whitespace after a comma is permitted.
func ParseRanges(s string) ([]ids.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty range list")
	}

	parts := strings.Split(s, ",")
	ranges := make([]ids.Range, 0, len(parts))
	for _, part := range parts {
		r, err := ParseRange(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// ReadRanges reads and parses a range-list input file.
func ReadRanges(path string) ([]ids.Range, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	ranges, err := ParseRanges(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return ranges, nil
}
