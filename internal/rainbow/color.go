package rainbow

import "fmt"

// Channel bounds
const (
	channelMin = 0
	channelMax = 255
)

// Color is an RGB triple emitted once per tick
type Color struct {
	R uint8
	G uint8
	B uint8
}

// String returns the display-ready form, e.g. "rgb(255, 0, 0)"
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as #RRGGBB, the form terminal renderers accept
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// TextStyle is the complete text style written to a sink.
// Every write carries all attributes, so a later write never drops one.
type TextStyle struct {
	Bold       bool
	Foreground Color
	Italic     bool
}

// String renders the style as a declaration list, e.g.
// "color: rgb(255, 0, 0); font-weight: bold"
func (s TextStyle) String() string {
	out := "color: " + s.Foreground.String()
	if s.Bold {
		out += "; font-weight: bold"
	}
	if s.Italic {
		out += "; font-style: italic"
	}
	return out
}

// clamp limits a channel value to [0, 255]
func clamp(v int) int {
	if v < channelMin {
		return channelMin
	}
	if v > channelMax {
		return channelMax
	}
	return v
}
