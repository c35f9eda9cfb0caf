package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/theme"
)

// noHover marks that no sidebar button is hovered
const noHover = -1

// Sidebar is the fixed-width navigation column: the profile panel on top,
// the regular nav buttons below it and the pinned button at the bottom.
// It tracks hover and the selected panel; rows are computed from the
// theme constants so mouse hit testing matches what View draws.
type Sidebar struct {
	height   int
	hovered  int // index into domain.NavButtons, noHover when none
	selected domain.NavItem
}

// NewSidebar creates a sidebar with the first panel selected
func NewSidebar() *Sidebar {
	return &Sidebar{
		hovered:  noHover,
		selected: domain.NavButtons[0].Item,
	}
}

// SetHeight sets the terminal height the sidebar fills
func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

// Selected returns the panel currently shown
func (s *Sidebar) Selected() domain.NavItem {
	return s.selected
}

// Select shows the panel of item
func (s *Sidebar) Select(item domain.NavItem) error {
	if _, err := item.Button(); err != nil {
		return err
	}
	s.selected = item
	return nil
}

// Hovered returns the hovered button, if any
func (s *Sidebar) Hovered() (domain.NavItem, bool) {
	if s.hovered == noHover {
		return 0, false
	}
	return domain.NavButtons[s.hovered].Item, true
}

// HoverAt updates hover from a pointer position. Returns true when the
// hovered button changed.
func (s *Sidebar) HoverAt(x, y int) bool {
	idx := noHover
	if item, ok := s.HitTest(x, y); ok {
		idx = buttonIndex(item)
	}
	changed := idx != s.hovered
	s.hovered = idx
	return changed
}

// MoveHover moves keyboard focus by delta buttons, wrapping around
func (s *Sidebar) MoveHover(delta int) {
	n := len(domain.NavButtons)
	if s.hovered == noHover {
		s.hovered = buttonIndex(s.selected)
	}
	s.hovered = ((s.hovered+delta)%n + n) % n
}

// Focused returns the button keyboard selection acts on: the hovered one,
// or the selected one when nothing is hovered
func (s *Sidebar) Focused() domain.NavItem {
	if item, ok := s.Hovered(); ok {
		return item
	}
	return s.selected
}

// HitTest returns the button under the cell at (x, y)
func (s *Sidebar) HitTest(x, y int) (domain.NavItem, bool) {
	if x < 0 || x >= theme.SidebarWidth || y < 0 {
		return 0, false
	}
	for i, button := range domain.NavButtons {
		top := s.buttonTop(i)
		if y >= top && y < top+theme.NavButtonRows {
			return button.Item, true
		}
	}
	return 0, false
}

// buttonTop returns the first row of the i-th button
func (s *Sidebar) buttonTop(i int) int {
	if domain.NavButtons[i].Item.Pinned() {
		return max(s.height-theme.NavButtonRows, s.regularBottom())
	}
	return theme.ProfileRows + s.regularIndex(i)*theme.NavButtonRows
}

// regularIndex returns the position of button i among the non-pinned ones
func (s *Sidebar) regularIndex(i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if !domain.NavButtons[j].Item.Pinned() {
			n++
		}
	}
	return n
}

// regularBottom returns the first row after the last non-pinned button
func (s *Sidebar) regularBottom() int {
	n := 0
	for _, b := range domain.NavButtons {
		if !b.Item.Pinned() {
			n++
		}
	}
	return theme.ProfileRows + n*theme.NavButtonRows
}

// View renders the sidebar around the already rendered profile panel
func (s *Sidebar) View(profile string) string {
	profile = lipgloss.NewStyle().
		Height(theme.ProfileRows).
		MaxHeight(theme.ProfileRows).
		Render(profile)

	blocks := []string{profile}
	var pinned []string
	for i, button := range domain.NavButtons {
		view := s.renderButton(i, button)
		if button.Item.Pinned() {
			pinned = append(pinned, view)
			continue
		}
		blocks = append(blocks, view)
	}

	if filler := s.height - s.regularBottom() - len(pinned)*theme.NavButtonRows; filler > 0 {
		line := theme.SidebarStyle.Render("")
		blocks = append(blocks, strings.TrimSuffix(strings.Repeat(line+"\n", filler), "\n"))
	}
	blocks = append(blocks, pinned...)

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (s *Sidebar) renderButton(i int, button domain.NavButton) string {
	style := theme.NavButtonStyle
	icon := button.NormalIcon
	if i == s.hovered {
		style = theme.NavButtonHoverStyle
		icon = button.HoverIcon
	}

	label := icon + "  " + button.Label
	if button.Item == s.selected {
		label = theme.NavSelectedMarkerStyle.Inherit(style).UnsetPadding().UnsetWidth().Render(label)
	}

	return style.
		Height(theme.NavButtonRows).
		MaxHeight(theme.NavButtonRows).
		Render(label)
}

func buttonIndex(item domain.NavItem) int {
	for i, b := range domain.NavButtons {
		if b.Item == item {
			return i
		}
	}
	return noHover
}
