package domain

import "fmt"

// NavItem identifies a sidebar button and the content panel it opens
type NavItem int

const (
	NavGame NavItem = iota
	NavDressing
	NavClan
	NavSocial
	NavMore
)

// NavButton describes how a sidebar button is drawn
type NavButton struct {
	HoverIcon  string // Icon while the pointer or focus is on the button
	Item       NavItem
	Label      string
	NormalIcon string
}

// NavButtons lists the sidebar buttons top to bottom.
// The last entry is pinned to the bottom of the sidebar.
var NavButtons = []NavButton{
	{Item: NavGame, Label: "Game", NormalIcon: "▷", HoverIcon: "▶"},
	{Item: NavDressing, Label: "Dressing", NormalIcon: "◇", HoverIcon: "◆"},
	{Item: NavClan, Label: "Clan", NormalIcon: "△", HoverIcon: "▲"},
	{Item: NavSocial, Label: "Social", NormalIcon: "○", HoverIcon: "●"},
	{Item: NavMore, Label: "More", NormalIcon: "☰", HoverIcon: "≡"},
}

// String returns the button label
func (n NavItem) String() string {
	if b, err := n.Button(); err == nil {
		return b.Label
	}
	return "Unknown"
}

// Button returns the button description for the item
func (n NavItem) Button() (NavButton, error) {
	for _, b := range NavButtons {
		if b.Item == n {
			return b, nil
		}
	}
	return NavButton{}, fmt.Errorf("%w: %d", ErrUnknownNavItem, int(n))
}

// Pinned reports whether the item sits at the bottom of the sidebar
func (n NavItem) Pinned() bool {
	return n == NavMore
}
