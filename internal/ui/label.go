package ui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/nebula/internal/rainbow"
)

var (
	ErrLabelClaimed = errors.New("label style is owned by another writer")
	ErrLabelClosed  = errors.New("label closed")
)

// Label is a single line of styled text, the sink the rainbow animator
// writes to.
//
// A label has at most one style writer at a time. Static code paths use
// SetStyle; Claim hands exclusive ownership to one writer (the animator's
// sink) and SetStyle is refused until Release. Release and Close invalidate
// the claimed sink, which then reports rainbow.ErrSinkClosed.
type Label struct {
	claim  int // generation of the live claim, 0 when unclaimed
	closed bool
	layout lipgloss.Style // background, width and alignment, never text attributes
	next   int
	style  lipgloss.Style
	text   string
}

// NewLabel creates a label with the given text and static style.
// The layout style carries attributes every writer keeps, like background.
func NewLabel(text string, layout, style lipgloss.Style) *Label {
	return &Label{
		layout: layout,
		style:  layout.Inherit(style),
		text:   text,
	}
}

// SetText replaces the label text
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text
func (l *Label) Text() string {
	return l.text
}

// SetStyle replaces the whole text style from a static code path
func (l *Label) SetStyle(style lipgloss.Style) error {
	if l.closed {
		return ErrLabelClosed
	}
	if l.claim != 0 {
		return ErrLabelClaimed
	}
	l.style = l.layout.Inherit(style)
	return nil
}

// Claim makes the returned sink the only style writer until Release
func (l *Label) Claim() (rainbow.Sink, error) {
	if l.closed {
		return nil, ErrLabelClosed
	}
	if l.claim != 0 {
		return nil, ErrLabelClaimed
	}
	l.next++
	l.claim = l.next
	return &labelSink{label: l, claim: l.claim}, nil
}

// Claimed reports whether a sink currently owns the style
func (l *Label) Claimed() bool {
	return l.claim != 0
}

// Release ends the current claim. The released sink stops accepting styles.
func (l *Label) Release() {
	l.claim = 0
}

// Close destroys the label. Every later write fails.
func (l *Label) Close() {
	l.closed = true
	l.claim = 0
}

// Closed reports whether the label was destroyed
func (l *Label) Closed() bool {
	return l.closed
}

// Style returns the style currently applied
func (l *Label) Style() lipgloss.Style {
	return l.style
}

// View renders the label
func (l *Label) View() string {
	return l.style.Render(l.text)
}

// labelSink adapts a claimed Label to rainbow.Sink
type labelSink struct {
	claim int
	label *Label
}

// ApplyStyle writes the complete text style, rebuilt from the layout so no
// earlier attribute survives the write
func (s *labelSink) ApplyStyle(style rainbow.TextStyle) error {
	l := s.label
	if l.closed || l.claim != s.claim {
		return rainbow.ErrSinkClosed
	}
	l.style = l.layout.Inherit(textStyle(style))
	return nil
}

// textStyle converts a rainbow style into a lipgloss style
func textStyle(style rainbow.TextStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.Foreground.Hex())).
		Bold(style.Bold).
		Italic(style.Italic)
}
