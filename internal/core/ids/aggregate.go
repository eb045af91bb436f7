package ids

// Tally accumulates invalid-ID statistics for one or more ranges.
// The zero value is the identity; merging is associative and
// commutative, so partial tallies can be combined in any order.
type Tally struct {
	Count uint64
	Sum   uint64
}

// Add merges another tally into this one.
func (t *Tally) Add(other Tally) {
	t.Count += other.Count
	t.Sum += other.Sum
}

// record folds one invalid ID into the tally.
func (t *Tally) record(id uint64) {
	t.Count++
	t.Sum += id
}

// TallyRange classifies every ID in r and returns the count and sum of
// the invalid ones. A range with Start > End contributes nothing.
func TallyRange(r Range, mode Mode) Tally {
	var t Tally
	for id := r.Start; id <= r.End; id++ {
		if !IsValid(id, mode) {
			t.record(id)
		}
		if id == r.End {
			break // guard uint64 wraparound at End == MaxUint64
		}
	}
	return t
}

// Aggregate tallies invalid IDs across all ranges. Each range is
// processed independently and its contribution merged into the total.
// If report is non-nil it is called with each range's own tally; the
// callback is advisory and does not affect the result.
func Aggregate(ranges []Range, mode Mode, report func(Range, Tally)) Tally {
	var total Tally
	for _, r := range ranges {
		t := TallyRange(r, mode)
		if report != nil {
			report(r, t)
		}
		total.Add(t)
	}
	return total
}
