package dial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/advent/internal/core/dial"
)

// fixtureInstructions mirrors data/day01/test_input.txt.
func fixtureInstructions() []dial.Instruction {
	return []dial.Instruction{
		{Op: dial.Left, Amount: 50},
		{Op: dial.Right, Amount: 100},
		{Op: dial.Right, Amount: 30},
		{Op: dial.Left, Amount: 130},
		{Op: dial.Right, Amount: 250},
		{Op: dial.Right, Amount: 10},
		{Op: dial.Left, Amount: 10},
		{Op: dial.Right, Amount: 49},
		{Op: dial.Left, Amount: 98},
		{Op: dial.Right, Amount: 9},
	}
}

func TestApply_Left(t *testing.T) {
	s := dial.New()
	zeros := s.Apply(dial.Instruction{Op: dial.Left, Amount: 68})
	assert.Equal(t, uint32(82), s.Pos)
	assert.Equal(t, uint32(1), zeros)
}

func TestApply_RightFullTurns(t *testing.T) {
	s := dial.New()
	zeros := s.Apply(dial.Instruction{Op: dial.Right, Amount: 1000})
	assert.Equal(t, uint32(50), s.Pos)
	assert.Equal(t, uint32(10), zeros)
}

func TestApply_LandingIsNotAPass(t *testing.T) {
	// rotating right from 0 by exactly one full turn lands on 0 again;
	// that landing must not be counted as a mid-rotation pass
	s := &dial.State{Pos: 0}
	zeros := s.Apply(dial.Instruction{Op: dial.Right, Amount: 100})
	assert.Equal(t, uint32(0), s.Pos)
	assert.Equal(t, uint32(0), zeros)

	// rotating left from 0 never counts the starting position
	s = &dial.State{Pos: 0}
	zeros = s.Apply(dial.Instruction{Op: dial.Left, Amount: 100})
	assert.Equal(t, uint32(0), s.Pos)
	assert.Equal(t, uint32(0), zeros)
}

func TestApply_Cases(t *testing.T) {
	cases := []struct {
		op        dial.Op
		amount    uint32
		pos       uint32
		wantPos   uint32
		wantZeros uint32
	}{
		{dial.Left, 5, 5, 0, 0},
		{dial.Right, 5, 95, 0, 0},
		{dial.Left, 5, 0, 95, 0},
		{dial.Right, 5, 0, 5, 0},
		{dial.Left, 100, 5, 5, 1},
		{dial.Right, 100, 5, 5, 1},
		{dial.Left, 130, 30, 0, 1},
		{dial.Right, 250, 0, 50, 2},
	}
	for _, c := range cases {
		s := &dial.State{Pos: c.pos}
		zeros := s.Apply(dial.Instruction{Op: c.op, Amount: c.amount})
		assert.Equal(t, c.wantPos, s.Pos, "%v%d from %d: position", c.op, c.amount, c.pos)
		assert.Equal(t, c.wantZeros, zeros, "%v%d from %d: zeros", c.op, c.amount, c.pos)
	}
}

func TestApplyAll_CountAfter(t *testing.T) {
	s := dial.New()
	got := s.ApplyAll(fixtureInstructions(), dial.CountAfter)
	assert.Equal(t, uint32(3), got)
}

func TestApplyAll_CountDuring(t *testing.T) {
	s := dial.New()
	got := s.ApplyAll(fixtureInstructions(), dial.CountDuring)
	assert.Equal(t, uint32(6), got)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "L68", dial.Instruction{Op: dial.Left, Amount: 68}.String())
	assert.Equal(t, "R9", dial.Instruction{Op: dial.Right, Amount: 9}.String())
}

func TestModeFromString(t *testing.T) {
	assert.Equal(t, dial.CountAfter, dial.ModeFromString("after"))
	assert.Equal(t, dial.CountDuring, dial.ModeFromString("during"))
	assert.Equal(t, dial.CountAfter, dial.ModeFromString("sideways"))
}
