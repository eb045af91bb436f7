// Package jolt picks digits from battery banks to build the largest
// possible joltage reading.
//
// A bank is a line of decimal digits. Selecting k digits must preserve
// their order; the greedy scan below takes the leftmost maximum digit
// whose position still leaves enough digits for the remaining picks.
package jolt

import "fmt"

// Mode selects how many digits are drawn from each bank.
type Mode int

const (
	// ModeTwo draws two digits per bank.
	ModeTwo Mode = iota
	// ModeTwelve draws twelve digits per bank.
	ModeTwelve
)

// ModeFromString resolves a mode name. Unrecognized input falls back to
// ModeTwo.
func ModeFromString(s string) Mode {
	switch s {
	case "twelve":
		return ModeTwelve
	default:
		return ModeTwo
	}
}

// String returns the mode's flag spelling.
func (m Mode) String() string {
	if m == ModeTwelve {
		return "twelve"
	}
	return "two"
}

// Digits returns the number of digits the mode draws.
func (m Mode) Digits() int {
	if m == ModeTwelve {
		return 12
	}
	return 2
}

// LargestNumber returns the largest number that can be formed by
// selecting digits in-order digits from line.
func LargestNumber(line string, digits int) (uint64, error) {
	if digits <= 0 {
		return 0, fmt.Errorf("digit count must be positive, got %d", digits)
	}
	if len(line) < digits {
		return 0, fmt.Errorf("line %q has fewer than %d digits", line, digits)
	}

	var num uint64
	offset := 0
	// the first pick must leave digits-1 characters to its right
	maxOffset := len(line) - (digits - 1)

	for i := 0; i < digits; i++ {
		pos, best := offset, line[offset]
		for j := offset + 1; j < maxOffset; j++ {
			if line[j] > best {
				pos, best = j, line[j]
			}
		}
		if best < '0' || best > '9' {
			return 0, fmt.Errorf("line %q contains non-digit %q", line, best)
		}
		num = num*10 + uint64(best-'0')
		offset = pos + 1
		maxOffset++
	}

	return num, nil
}

// Total sums the largest number of every bank.
func Total(lines []string, digits int) (uint64, error) {
	var total uint64
	for _, line := range lines {
		n, err := LargestNumber(line, digits)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
