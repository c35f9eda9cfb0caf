package rainbow

// Phase identifies which channel moves during the current leg of the cycle
type Phase int

const (
	PhaseGreenUp   Phase = iota // red to yellow
	PhaseRedDown                // yellow to green
	PhaseBlueUp                 // green to cyan
	PhaseGreenDown              // cyan to blue
	PhaseRedUp                  // blue to magenta
	PhaseBlueDown               // magenta to red

	phaseCount = 6
)

// Next returns the phase that follows p, wrapping after PhaseBlueDown
func (p Phase) Next() Phase {
	return (p + 1) % phaseCount
}

// String returns a short name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseGreenUp:
		return "green-up"
	case PhaseRedDown:
		return "red-down"
	case PhaseBlueUp:
		return "blue-up"
	case PhaseGreenDown:
		return "green-down"
	case PhaseRedUp:
		return "red-up"
	case PhaseBlueDown:
		return "blue-down"
	default:
		return "unknown"
	}
}

// DefaultStep is the per-tick channel change
const DefaultStep = 1

// State is the color cycle position: the current channels, the active phase
// and the per-tick step. It has no terminal state.
type State struct {
	blue  int
	green int
	phase Phase
	red   int
	step  int
}

// NewState returns the starting state: (255, 0, 0) in PhaseGreenUp.
// The caller validates step.
func NewState(step int) State {
	return State{
		red:   channelMax,
		green: channelMin,
		blue:  channelMin,
		phase: PhaseGreenUp,
		step:  step,
	}
}

// Advance moves exactly one channel by one step along the current phase.
// When that channel reaches its boundary it is pinned there and the state
// moves to the next phase on the same tick.
func (s *State) Advance() Color {
	switch s.phase {
	case PhaseGreenUp:
		s.green = s.rise(s.green)
	case PhaseRedDown:
		s.red = s.fall(s.red)
	case PhaseBlueUp:
		s.blue = s.rise(s.blue)
	case PhaseGreenDown:
		s.green = s.fall(s.green)
	case PhaseRedUp:
		s.red = s.rise(s.red)
	case PhaseBlueDown:
		s.blue = s.fall(s.blue)
	}
	return s.Color()
}

// rise increments a channel, moving to the next phase once it saturates
func (s *State) rise(v int) int {
	v = clamp(v + s.step)
	if v == channelMax {
		s.phase = s.phase.Next()
	}
	return v
}

// fall decrements a channel, moving to the next phase once it reaches zero
func (s *State) fall(v int) int {
	v = clamp(v - s.step)
	if v == channelMin {
		s.phase = s.phase.Next()
	}
	return v
}

// Color returns the current channels
func (s State) Color() Color {
	return Color{R: uint8(s.red), G: uint8(s.green), B: uint8(s.blue)}
}

// Phase returns the active phase
func (s State) Phase() Phase {
	return s.phase
}

// Step returns the per-tick channel change
func (s State) Step() int {
	return s.step
}

// TicksPerCycle returns how many ticks bring a state with the given step
// back to (255, 0, 0) in PhaseGreenUp
func TicksPerCycle(step int) int {
	if step <= 0 {
		return 0
	}
	perPhase := (channelMax + step - 1) / step
	return phaseCount * perPhase
}
