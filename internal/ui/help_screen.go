package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // Track if viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text from the key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Navigation.Up))
	b.WriteString(renderBinding(keys.Navigation.Down))
	b.WriteString(renderBinding(keys.Navigation.Select))
	b.WriteString(renderBinding(keys.Navigation.QuickSelect))
	b.WriteString(renderShortcut("mouse", "hover and click the sidebar buttons"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Panels") + "\n")
	for i, button := range domain.NavButtons {
		b.WriteString(renderShortcut(string(rune('1'+i)), button.NormalIcon+" "+button.Label))
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.EditProfile))
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Profile") + "\n")
	b.WriteString(renderShortcut("colorname", "set to \""+domain.RainbowColorName+"\" to animate the username"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")

	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: vp,
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
