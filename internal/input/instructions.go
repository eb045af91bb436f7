package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/advent/internal/core/dial"
)

// ParseInstruction parses a single rotation line such as "L68" or "R48".
func ParseInstruction(line string) (dial.Instruction, error) {
	if len(line) < 2 {
		return dial.Instruction{}, fmt.Errorf("instruction %q: too short", line)
	}

	var op dial.Op
	switch line[0] {
	case 'L':
		op = dial.Left
	case 'R':
		op = dial.Right
	default:
		return dial.Instruction{}, fmt.Errorf("instruction %q: unknown operation %q", line, line[0])
	}

	amount, err := strconv.ParseUint(line[1:], 10, 32)
	if err != nil {
		return dial.Instruction{}, fmt.Errorf("instruction %q: bad amount: %w", line, err)
	}

	return dial.Instruction{Op: op, Amount: uint32(amount)}, nil
}

// ReadInstructions reads a rotation instruction file, one instruction
// per line. Blank lines are ignored.
func ReadInstructions(path string) ([]dial.Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var instructions []dial.Instruction
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
		}
		instructions = append(instructions, ins)
	}
	return instructions, nil
}
