package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Surface colors
const (
	ColorContentBg  Color = "#1A1A1A" // Content area
	ColorCurrencyBg Color = "#333333" // Currency boxes
	ColorHoverBg    Color = "#2A2A2A" // Hovered nav button
	ColorProfileBg  Color = "#444444" // Profile panel
	ColorSidebarBg  Color = "#1A1A1A" // Navigation sidebar
)

// Text colors
const (
	ColorText    Color = "#FFFFFF" // Labels and buttons
	ColorMuted   Color = "241"     // Secondary text
	ColorSubtle  Color = "245"     // Light gray - descriptions
	ColorError   Color = "196"     // Bright red
	ColorVersion Color = "240"     // Dark gray
)

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
	ColorSelected  Color = "99" // Selected nav marker
)

// Currency icon colors, used when the icon images are missing
const (
	ColorBCube Color = "#4FC3F7"
	ColorGold  Color = "#FFC107"
)

// Badge colors per VIP tier, used when the badge images are missing
var badgeColors = map[int]Color{
	1: "#4CAF50",
	2: "#8BC34A",
	3: "#03A9F4",
	4: "#FF9800",
}

// BadgeColor returns the fallback badge color for a tier level
func BadgeColor(level int) Color {
	if c, ok := badgeColors[level]; ok {
		return c
	}
	return badgeColors[1]
}
