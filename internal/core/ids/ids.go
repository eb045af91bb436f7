// Package ids classifies gift-shop IDs by repeated-block digit patterns.
//
// An ID is invalid when its decimal digit string can be split into some
// number of equal-width blocks that are all numerically identical
// (55, 6464, 123123). Classification is a pure function over the ID's
// numeric value; no string conversion is involved.
package ids

import "fmt"

// Mode selects how strict the repeated-block search is.
type Mode int

const (
	// ModeTwo checks only the whole-string bisection: an ID is invalid
	// when its first half equals its second half.
	ModeTwo Mode = iota
	// ModeMultiple checks every block count that divides the digit
	// count, catching any single repeated block of any width.
	ModeMultiple
)

// ModeFromString resolves a mode name. Unrecognized input falls back to
// ModeTwo.
func ModeFromString(s string) Mode {
	switch s {
	case "multiple":
		return ModeMultiple
	default:
		return ModeTwo
	}
}

// String returns the mode's flag spelling.
func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "two"
}

// Range is an inclusive span of IDs. Start <= End is an input invariant
// supplied by the parser; a violating range simply yields no IDs.
type Range struct {
	Start uint64
	End   uint64
}

// String renders the range in input-file notation.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Digits returns the number of decimal digits in id. Digits(0) is 1;
// zero is special-cased rather than routed through a logarithm.
func Digits(id uint64) uint32 {
	if id == 0 {
		return 1
	}
	var n uint32
	for ; id > 0; id /= 10 {
		n++
	}
	return n
}

// pow10 computes 10^n for block widths (n is at most 20 for uint64).
func pow10(n uint32) uint64 {
	p := uint64(1)
	for i := uint32(0); i < n; i++ {
		p *= 10
	}
	return p
}

// IsValid reports whether id is a valid ID under the given mode.
//
// For every candidate block count freq (2..2 for ModeTwo, 2..digits for
// ModeMultiple) that divides the digit count evenly, the digit string is
// split into freq blocks of digits/freq digits each. If all blocks equal
// the rightmost block for any such freq, the ID is invalid. The search
// stops at the first freq that proves invalidity.
//
// The function is total: it never panics, and IDs whose digit count has
// no usable divisor (single-digit IDs, prime digit counts under ModeTwo)
// are valid by default. IsValid(0, mode) is true for every mode.
func IsValid(id uint64, mode Mode) bool {
	digits := Digits(id)
	maxFreq := uint32(2)
	if mode == ModeMultiple {
		maxFreq = digits
	}
	for freq := uint32(2); freq <= maxFreq; freq++ {
		if digits%freq != 0 {
			continue
		}
		period := digits / freq
		pivot := pow10(period)
		right := id % pivot
		rest := id
		identical := true
		for i := uint32(1); i < freq; i++ {
			rest /= pivot
			if rest%pivot != right {
				identical = false
				break
			}
		}
		if identical {
			return false
		}
	}
	return true
}
