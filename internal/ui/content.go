package ui

import (
	"strings"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/theme"
)

// panelBlurbs is the text shown under each panel title
var panelBlurbs = map[domain.NavItem]string{
	domain.NavGame:     "Pick a mode and jump into a match.",
	domain.NavDressing: "Outfits and cosmetics for your character.",
	domain.NavClan:     "Your clan, its members and their ranks.",
	domain.NavSocial:   "Friends, parties and recent players.",
	domain.NavMore:     "More actions:",
}

// renderContent draws the panel for item into a width x height area.
// Each call starts from an empty area so nothing of the previous panel
// survives a switch.
func renderContent(item domain.NavItem, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.PanelTitleStyle.Render(item.String()))
	b.WriteString("\n\n")
	b.WriteString(theme.PanelTextStyle.Render(panelBlurbs[item]))

	if item == domain.NavMore {
		b.WriteString("\n\n")
		for _, action := range domain.Actions {
			binding := buildBinding(action.Name)
			line := theme.HelpKeyStyle.Background(theme.ColorContentBg).Render(binding.Help().Key) +
				theme.PanelTextStyle.Render(action.Description)
			b.WriteString(line + "\n")
		}
	}

	return theme.ContentStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(strings.TrimSuffix(b.String(), "\n"))
}

// contentWidth returns the width left for the content area
func contentWidth(total int) int {
	return max(total-theme.SidebarWidth, 0)
}

