// Package dial simulates a 100-position combination dial and counts how
// often it points at zero while a list of rotation instructions is
// applied.
package dial

import "fmt"

// Positions on the dial, numbered 0..99.
const Positions = 100

// StartPosition is where every dial begins.
const StartPosition = 50

// Mode selects which zero sightings are counted.
type Mode int

const (
	// CountAfter counts only instructions that leave the dial resting
	// at zero.
	CountAfter Mode = iota
	// CountDuring additionally counts every pass over zero while the
	// dial is still turning.
	CountDuring
)

// ModeFromString resolves a mode name. Unrecognized input falls back to
// CountAfter.
func ModeFromString(s string) Mode {
	switch s {
	case "during":
		return CountDuring
	default:
		return CountAfter
	}
}

// String returns the mode's flag spelling.
func (m Mode) String() string {
	if m == CountDuring {
		return "during"
	}
	return "after"
}

// Op is a rotation direction.
type Op int

const (
	Left Op = iota
	Right
)

// Instruction rotates the dial Amount positions in the Op direction.
type Instruction struct {
	Op     Op
	Amount uint32
}

// String renders the instruction in input-file notation (L68, R48).
func (i Instruction) String() string {
	op := "L"
	if i.Op == Right {
		op = "R"
	}
	return fmt.Sprintf("%s%d", op, i.Amount)
}

// State is the dial's current position.
type State struct {
	Pos uint32
}

// New returns a dial resting at the start position.
func New() *State {
	return &State{Pos: StartPosition}
}

// Apply rotates the dial by one instruction and returns how many times
// the dial passed over zero while turning. Landing exactly on zero does
// not count as a pass; AtZero reports the resting position.
func (s *State) Apply(ins Instruction) uint32 {
	var zeros uint32
	switch ins.Op {
	case Left:
		amount := ins.Amount
		for amount > s.Pos {
			if s.Pos != 0 {
				zeros++
			}
			s.Pos += Positions
		}
		s.Pos -= amount
	case Right:
		s.Pos += ins.Amount
		zeros += s.Pos / Positions
		s.Pos %= Positions
		if s.Pos == 0 {
			zeros-- // the final zero is a landing, not a pass
		}
	}
	return zeros
}

// AtZero reports whether the dial rests at zero.
func (s *State) AtZero() bool {
	return s.Pos == 0
}

// ApplyAll applies every instruction in order and returns the zero count
// for the given mode: resting-at-zero landings for CountAfter, landings
// plus mid-rotation passes for CountDuring.
func (s *State) ApplyAll(instructions []Instruction, mode Mode) uint32 {
	var landings, passes uint32
	for _, ins := range instructions {
		passes += s.Apply(ins)
		if s.AtZero() {
			landings++
		}
	}
	if mode == CountDuring {
		return landings + passes
	}
	return landings
}
