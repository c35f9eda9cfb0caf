package rainbow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_StartsAtRed(t *testing.T) {
	s := NewState(DefaultStep)

	assert.Equal(t, Color{R: 255, G: 0, B: 0}, s.Color())
	assert.Equal(t, PhaseGreenUp, s.Phase())
	assert.Equal(t, 1, s.Step())
}

func TestAdvance_StepOneScenario(t *testing.T) {
	s := NewState(1)

	c := s.Advance()
	assert.Equal(t, Color{R: 255, G: 1, B: 0}, c, "tick 1")
	assert.Equal(t, PhaseGreenUp, s.Phase())

	for i := 2; i <= 255; i++ {
		c = s.Advance()
	}
	assert.Equal(t, Color{R: 255, G: 255, B: 0}, c, "tick 255")
	assert.Equal(t, PhaseRedDown, s.Phase(), "phase advances on the saturating tick")

	c = s.Advance()
	assert.Equal(t, Color{R: 254, G: 255, B: 0}, c, "tick 256")
	assert.Equal(t, PhaseRedDown, s.Phase())
}

func TestAdvance_PhaseOrder(t *testing.T) {
	s := NewState(255)

	expected := []struct {
		color Color
		phase Phase
	}{
		{Color{255, 255, 0}, PhaseRedDown},
		{Color{0, 255, 0}, PhaseBlueUp},
		{Color{0, 255, 255}, PhaseGreenDown},
		{Color{0, 0, 255}, PhaseRedUp},
		{Color{255, 0, 255}, PhaseBlueDown},
		{Color{255, 0, 0}, PhaseGreenUp},
	}

	for i, want := range expected {
		got := s.Advance()
		assert.Equal(t, want.color, got, "tick %d", i+1)
		assert.Equal(t, want.phase, s.Phase(), "tick %d", i+1)
	}
}

func TestAdvance_FullCycleIsPeriodic(t *testing.T) {
	for _, step := range []int{1, 2, 3, 5, 7, 15, 17, 51, 85, 100, 254, 255} {
		t.Run(fmt.Sprintf("step=%d", step), func(t *testing.T) {
			s := NewState(step)
			ticks := TicksPerCycle(step)
			require.Positive(t, ticks)

			for i := 0; i < ticks; i++ {
				s.Advance()
				if i < ticks-1 {
					require.False(t, s.Color() == (Color{255, 0, 0}) && s.Phase() == PhaseGreenUp,
						"step %d returned to start early at tick %d", step, i+1)
				}
			}

			assert.Equal(t, Color{R: 255, G: 0, B: 0}, s.Color(), "step %d", step)
			assert.Equal(t, PhaseGreenUp, s.Phase(), "step %d", step)
		})
	}
}

func TestTicksPerCycle(t *testing.T) {
	tests := []struct {
		step     int
		expected int
	}{
		{1, 6 * 255},
		{3, 6 * 85},
		{5, 6 * 51},
		{2, 6 * 128},
		{255, 6},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TicksPerCycle(tt.step), "step %d", tt.step)
	}
}

func TestAdvance_Invariants(t *testing.T) {
	for _, step := range []int{1, 2, 7, 100} {
		s := NewState(step)
		prev := s.Color()

		for i := 0; i < 3*TicksPerCycle(step); i++ {
			c := s.Advance()

			changed := 0
			if c.R != prev.R {
				changed++
			}
			if c.G != prev.G {
				changed++
			}
			if c.B != prev.B {
				changed++
			}
			require.Equal(t, 1, changed, "step %d tick %d: exactly one channel moves (%s -> %s)", step, i+1, prev, c)

			atBoundary := 0
			for _, v := range []uint8{c.R, c.G, c.B} {
				if v == 0 || v == 255 {
					atBoundary++
				}
			}
			require.GreaterOrEqual(t, atBoundary, 2, "step %d tick %d: %s", step, i+1, c)

			prev = c
		}
	}
}

func TestAdvance_ClampsOvershoot(t *testing.T) {
	s := NewState(100)

	assert.Equal(t, Color{255, 100, 0}, s.Advance())
	assert.Equal(t, Color{255, 200, 0}, s.Advance())
	assert.Equal(t, Color{255, 255, 0}, s.Advance(), "300 clamps to 255")
	assert.Equal(t, PhaseRedDown, s.Phase())

	s.Advance()
	s.Advance()
	assert.Equal(t, Color{0, 255, 0}, s.Advance(), "-45 clamps to 0")
	assert.Equal(t, PhaseBlueUp, s.Phase())
}

func TestPhase_NextWraps(t *testing.T) {
	assert.Equal(t, PhaseRedDown, PhaseGreenUp.Next())
	assert.Equal(t, PhaseGreenUp, PhaseBlueDown.Next())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestColor_Formats(t *testing.T) {
	c := Color{R: 255, G: 16, B: 0}

	assert.Equal(t, "rgb(255, 16, 0)", c.String())
	assert.Equal(t, "#FF1000", c.Hex())
}

func TestTextStyle_String(t *testing.T) {
	tests := []struct {
		name     string
		style    TextStyle
		expected string
	}{
		{"color only", TextStyle{Foreground: Color{1, 2, 3}}, "color: rgb(1, 2, 3)"},
		{"bold", TextStyle{Foreground: Color{255, 0, 0}, Bold: true}, "color: rgb(255, 0, 0); font-weight: bold"},
		{"bold italic", TextStyle{Bold: true, Italic: true}, "color: rgb(0, 0, 0); font-weight: bold; font-style: italic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style.String())
		})
	}
}
