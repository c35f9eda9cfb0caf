package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ports"
	"github.com/renato0307/nebula/internal/theme"
)

// Image asset names
const (
	AvatarImage = "normalpfp.png"
	BCubeImage  = "bcube.png"
	GoldImage   = "gold.png"
)

// ProfileAssets lists every image the profile panel can draw
func ProfileAssets() []string {
	names := []string{AvatarImage, BCubeImage, GoldImage}
	for _, tier := range domain.AllTiers {
		names = append(names, tier.Image())
	}
	return names
}

const (
	innerWidth  = theme.SidebarWidth - 2 // ProfileStyle horizontal padding
	columnWidth = innerWidth - theme.AvatarPixels - 1
)

// ProfilePanel draws the avatar, username label, VIP badge, ID and the two
// currency boxes. Rendered images are cached per name and size; a failing
// image is replaced by a glyph.
type ProfilePanel struct {
	cache    map[string]string
	id       *Label
	profile  domain.Profile
	renderer ports.ImageRenderer
	username *Label
	wallet   domain.Wallet
}

// NewProfilePanel creates a panel showing profile
func NewProfilePanel(renderer ports.ImageRenderer, profile domain.Profile, wallet domain.Wallet) *ProfilePanel {
	layout := lipgloss.NewStyle().
		Background(theme.ColorProfileBg).
		Width(columnWidth).
		MaxWidth(columnWidth).
		Align(lipgloss.Center)

	p := &ProfilePanel{
		cache:    make(map[string]string),
		id:       NewLabel(profile.IDLabel(), layout, theme.IDStyle),
		profile:  profile,
		renderer: renderer,
		username: NewLabel(profile.Username, layout, theme.UsernameStyle),
		wallet:   wallet,
	}
	return p
}

// Username returns the username label, the rainbow animator's sink
func (p *ProfilePanel) Username() *Label {
	return p.username
}

// Profile returns the profile being shown
func (p *ProfilePanel) Profile() domain.Profile {
	return p.profile
}

// SetProfile updates the labels and badge. The username style is left to
// the caller since the label may be claimed.
func (p *ProfilePanel) SetProfile(profile domain.Profile) {
	p.profile = profile
	p.username.SetText(profile.Username)
	p.id.SetText(profile.IDLabel())
}

// SetWallet updates the currency counters
func (p *ProfilePanel) SetWallet(wallet domain.Wallet) {
	p.wallet = wallet
}

// View renders the panel
func (p *ProfilePanel) View() string {
	bg := lipgloss.NewStyle().Background(theme.ColorProfileBg)

	column := lipgloss.JoinVertical(lipgloss.Center,
		p.username.View(),
		bg.Width(columnWidth).Align(lipgloss.Center).Render(p.badge()),
		p.id.View(),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Center,
		p.avatar(),
		bg.Render(" "),
		column,
	)

	currencies := lipgloss.JoinHorizontal(lipgloss.Top,
		p.currency(BCubeImage, theme.ColorBCube, "◆", p.wallet.BCube),
		bg.Render(" "),
		p.currency(GoldImage, theme.ColorGold, "●", p.wallet.Gold),
	)

	return theme.ProfileStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		top,
		bg.Width(innerWidth).Render(""),
		currencies,
	))
}

func (p *ProfilePanel) avatar() string {
	if img, ok := p.image(AvatarImage, theme.AvatarPixels, theme.AvatarPixels, theme.ColorProfileBg); ok {
		return img
	}
	return lipgloss.NewStyle().
		Foreground(theme.ColorSubtle).
		Background(theme.ColorHoverBg).
		Width(theme.AvatarPixels).
		Height(theme.AvatarPixels/2).
		Align(lipgloss.Center, lipgloss.Center).
		Render("☺")
}

func (p *ProfilePanel) badge() string {
	tier := p.profile.Tier()
	if img, ok := p.image(tier.Image(), theme.BadgePixelsW, theme.BadgePixelsH, theme.ColorProfileBg); ok {
		return img
	}
	return theme.BadgeStyle(int(tier)).Render(tier.Name())
}

func (p *ProfilePanel) currency(name string, color lipgloss.Color, glyph string, amount int) string {
	icon, ok := p.image(name, theme.CurrencyPixels, theme.CurrencyPixels, theme.ColorCurrencyBg)
	if !ok {
		icon = lipgloss.NewStyle().Foreground(color).Background(theme.ColorCurrencyBg).Render(glyph)
	}
	text := theme.CurrencyBoxStyle.Render(fmt.Sprintf("%d", amount))
	box := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Background(theme.ColorCurrencyBg).PaddingLeft(1).Render(icon),
		text,
	)
	return lipgloss.NewStyle().
		Background(theme.ColorCurrencyBg).
		Width((innerWidth - 1) / 2).
		Render(strings.TrimRight(box, "\n"))
}

// image renders an asset through the cache
func (p *ProfilePanel) image(name string, w, h int, bg lipgloss.Color) (string, bool) {
	if p.renderer == nil {
		return "", false
	}

	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if view, ok := p.cache[key]; ok {
		return view, view != ""
	}

	view, err := p.renderer.Render(name, w, h, bg)
	if err != nil {
		logging.Logger.Debug("Image unavailable, using fallback", "image", name, "error", err)
		view = ""
	}
	p.cache[key] = view
	return view, view != ""
}

// ResetCache drops rendered images so the next View renders them again
func (p *ProfilePanel) ResetCache() {
	p.cache = make(map[string]string)
}
