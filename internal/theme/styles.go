package theme

import "github.com/charmbracelet/lipgloss"

// Layout sizes in terminal cells
const (
	SidebarWidth   = 30
	NavButtonRows  = 3
	ProfileRows    = 10
	AvatarPixels   = 10
	BadgePixelsW   = 12
	BadgePixelsH   = 4
	CurrencyPixels = 2
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			Background(ColorSidebarBg).
			Width(SidebarWidth)

	NavButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSidebarBg).
			Padding(1, 2).
			Width(SidebarWidth)

	NavButtonHoverStyle = NavButtonStyle.
				Background(ColorHoverBg)

	NavSelectedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true)
)

// Profile panel styles
var (
	ProfileStyle = lipgloss.NewStyle().
			Background(ColorProfileBg).
			Width(SidebarWidth).
			Height(ProfileRows).
			Padding(1, 1)

	// UsernameStyle is the static username style, replaced while the
	// rainbow animation owns the label
	UsernameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorProfileBg).
			Bold(true)

	IDStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorProfileBg)

	CurrencyBoxStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorCurrencyBg).
				Padding(0, 1)
)

// BadgeStyle returns the text badge style for a tier level
func BadgeStyle(level int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(BadgeColor(level)).
		Bold(true).
		Padding(0, 1)
}

// Content area styles
var (
	ContentStyle = lipgloss.NewStyle().
			Background(ColorContentBg).
			Foreground(ColorText).
			Padding(1, 2)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorContentBg)

	PanelTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Background(ColorContentBg)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Width(16)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// DialogBoxStyle frames dialogs drawn over the dashboard
var DialogBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)
