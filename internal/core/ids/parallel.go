package ids

import "sync"

// TallyRangeParallel splits r into contiguous chunks and classifies them
// on workers goroutines with independent accumulators, merging the
// partial tallies by addition. Classification is stateless, so the
// result is identical to TallyRange for every input.
//
// workers < 2 or a range smaller than the worker count falls back to the
// sequential path.
func TallyRangeParallel(r Range, mode Mode, workers int) Tally {
	if r.Start > r.End {
		return Tally{}
	}
	span := r.End - r.Start + 1
	if workers < 2 || span == 0 || span < uint64(workers) {
		return TallyRange(r, mode)
	}

	chunk := span / uint64(workers)
	parts := make([]Tally, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := r.Start + uint64(w)*chunk
		end := start + chunk - 1
		if w == workers-1 {
			end = r.End // last chunk absorbs the remainder
		}
		wg.Add(1)
		go func(w int, sub Range) {
			defer wg.Done()
			parts[w] = TallyRange(sub, mode)
		}(w, Range{Start: start, End: end})
	}
	wg.Wait()

	var total Tally
	for _, p := range parts {
		total.Add(p)
	}
	return total
}

// AggregateParallel is Aggregate with each range tallied via
// TallyRangeParallel. Ranges themselves are still visited in order so
// the advisory report callback sees deterministic output.
func AggregateParallel(ranges []Range, mode Mode, workers int, report func(Range, Tally)) Tally {
	var total Tally
	for _, r := range ranges {
		t := TallyRangeParallel(r, mode, workers)
		if report != nil {
			report(r, t)
		}
		total.Add(t)
	}
	return total
}
