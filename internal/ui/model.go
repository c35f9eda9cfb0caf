package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ports"
	"github.com/renato0307/nebula/internal/rainbow"
	"github.com/renato0307/nebula/internal/services"
	"github.com/renato0307/nebula/internal/theme"
)

// WindowTitle is the terminal title set on start
const WindowTitle = "Nebula"

// footerRows is the help bar plus the error area
const footerRows = 1 + maxErrorLines

const preloadTimeout = 5 * time.Second

type uiState int

const (
	stateDashboard uiState = iota
	stateEditingProfile
	stateHelp
)

// imagesLoadedMsg reports the end of the image preload
type imagesLoadedMsg struct {
	err error
}

// ModelConfig holds the dashboard settings coming from the CLI
type ModelConfig struct {
	DevMode         bool          // Shows version info in dialogs
	ErrorClearDelay time.Duration // How long errors stay on screen
	RainbowStep     int           // Channel change per rainbow tick
	TickInterval    time.Duration // Delay between rainbow ticks
}

type Model struct {
	animator       *rainbow.Animator // nil unless the username is animated
	config         ModelConfig
	errorManager   *ErrorManager
	height         int
	help           help.Model
	helpScreen     *Dialog
	keys           KeyMap
	profileForm    *Dialog
	profilePanel   *ProfilePanel
	profileService *services.ProfileService
	quitting       bool
	renderer       ports.ImageRenderer
	scheduler      *loopScheduler
	sidebar        *Sidebar
	startupCmd     tea.Cmd
	state          uiState
	width          int
}

// NewModel loads the profile and builds the dashboard.
// A profile that fails to load is replaced by the defaults and the error is
// shown on screen; an invalid rainbow setting is returned as an error.
func NewModel(profileService *services.ProfileService, renderer ports.ImageRenderer, cfg ModelConfig) (*Model, error) {
	if profileService == nil {
		return nil, fmt.Errorf("profile service is required")
	}
	if cfg.RainbowStep == 0 {
		cfg.RainbowStep = rainbow.DefaultStep
	}
	if cfg.RainbowStep < 1 || cfg.RainbowStep > 255 {
		return nil, fmt.Errorf("%w: got %d", rainbow.ErrInvalidStep, cfg.RainbowStep)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = rainbow.DefaultInterval
	}

	ctx := context.Background()
	errorManager := NewErrorManager(cfg.ErrorClearDelay)

	var startupCmd tea.Cmd
	profile, err := profileService.Load(ctx)
	if err != nil {
		startupCmd = errorManager.SetError(fmt.Errorf("failed to load profile: %w", err))
	}

	m := &Model{
		config:         cfg,
		errorManager:   errorManager,
		help:           help.New(),
		keys:           NewKeyMap(),
		profilePanel:   NewProfilePanel(renderer, profile, profileService.Wallet(ctx)),
		profileService: profileService,
		renderer:       renderer,
		scheduler:      newLoopScheduler(),
		sidebar:        NewSidebar(),
		startupCmd:     startupCmd,
		state:          stateDashboard,
	}

	if err := m.applyProfile(profile); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		m.startupCmd,
		m.preloadImages(),
		m.scheduler.Flush(),
	)
}

// Update routes msg and arms the first tick of any timer started while
// handling it
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if flush := m.scheduler.Flush(); flush != nil {
		cmd = tea.Batch(cmd, flush)
	}
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages handled the same way in every state
	switch msg := msg.(type) {
	case timerTickMsg:
		return m, m.scheduler.Handle(msg)
	case clearErrorMsg:
		m.errorManager.Handle(msg)
		return m, nil
	case imagesLoadedMsg:
		if msg.err != nil {
			logging.Logger.Debug("Some images failed to load", "error", msg.err)
		}
		m.profilePanel.ResetCache()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sidebar.SetHeight(m.bodyHeight())
	}

	switch m.state {
	case stateEditingProfile:
		return m.updateEditingProfile(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateDashboard(msg)
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		m.shutdown()
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.config.DevMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case EditProfileMsg:
		form := NewProfileForm(m.profileService, m.profilePanel.Profile())
		m.profileForm = NewDialog("Edit Profile", form, m.config.DevMode)
		m.state = stateEditingProfile
		return m, m.profileForm.Init()

	case SelectNavMsg:
		if err := m.sidebar.Select(msg.Item); err != nil {
			return m, m.errorManager.SetError(err)
		}
		logging.Logger.Debug("Panel selected", "panel", msg.Item.String())
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.sidebar.HoverAt(msg.X, msg.Y)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if item, ok := m.sidebar.HitTest(msg.X, msg.Y); ok {
		return m.updateDashboard(SelectNavMsg{Item: item})
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.keys.Navigation
	switch {
	case key.Matches(msg, nav.Up):
		m.sidebar.MoveHover(-1)
		return m, nil
	case key.Matches(msg, nav.Down):
		m.sidebar.MoveHover(1)
		return m, nil
	case key.Matches(msg, nav.Select):
		return m.updateDashboard(SelectNavMsg{Item: m.sidebar.Focused()})
	case key.Matches(msg, nav.QuickSelect):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(domain.NavButtons) {
			return m.updateDashboard(SelectNavMsg{Item: domain.NavButtons[idx].Item})
		}
		return m, nil
	}

	app := m.keys.Application
	switch {
	case key.Matches(msg, app.EditProfile):
		return m.dispatch("edit_profile")
	case key.Matches(msg, app.ForceQuit):
		return m.dispatch("force_quit")
	case key.Matches(msg, app.Help):
		return m.dispatch("help")
	case key.Matches(msg, app.Quit):
		return m.dispatch("quit")
	}

	return m, nil
}

// dispatch handles the message bound to a key definition
func (m *Model) dispatch(name string) (tea.Model, tea.Cmd) {
	def := GetKeyDefinition(name)
	if def == nil || def.Msg == nil {
		return m, nil
	}
	return m.updateDashboard(def.Msg)
}

func (m *Model) updateEditingProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.profileForm.Update(msg)
	m.profileForm = updated.(*Dialog)

	form, ok := m.profileForm.Content().(*ProfileForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.state = stateDashboard
	m.profileForm = nil

	result := form.Result()
	switch {
	case result.Cancelled:
		return m, nil
	case result.Error != nil:
		return m, m.errorManager.SetError(result.Error)
	}

	if err := m.applyProfile(result.Profile); err != nil {
		return m, m.errorManager.SetError(err)
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		m.shutdown()
		return m, tea.Quit
	}

	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.state = stateDashboard
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// applyProfile shows profile and starts or stops the rainbow to match its
// colorname
func (m *Model) applyProfile(profile domain.Profile) error {
	m.profilePanel.SetProfile(profile)
	if profile.Rainbow() {
		return m.startRainbow()
	}
	m.stopRainbow()
	return nil
}

// startRainbow claims the username label and activates an animator on it.
// A running animation is left alone.
func (m *Model) startRainbow() error {
	if m.animator != nil && m.animator.Active() {
		return nil
	}
	m.stopRainbow()

	label := m.profilePanel.Username()
	sink, err := label.Claim()
	if err != nil {
		return fmt.Errorf("failed to start rainbow: %w", err)
	}

	animator, err := rainbow.New(sink, m.scheduler,
		rainbow.WithStep(m.config.RainbowStep),
		rainbow.WithInterval(m.config.TickInterval),
		rainbow.WithLogger(logging.Logger),
	)
	if err == nil {
		err = animator.Activate()
	}
	if err != nil {
		label.Release()
		return fmt.Errorf("failed to start rainbow: %w", err)
	}

	m.animator = animator
	return nil
}

// stopRainbow stops the animator, hands the label back and restores its
// static style
func (m *Model) stopRainbow() {
	if m.animator == nil {
		return
	}
	m.animator.Stop()
	m.animator = nil

	label := m.profilePanel.Username()
	label.Release()
	if err := label.SetStyle(theme.UsernameStyle); err != nil {
		logging.Logger.Debug("Username style not restored", "error", err)
	}
}

// shutdown tears the dashboard down. Closing the label first makes any tick
// already in flight halt the animator on its own.
func (m *Model) shutdown() {
	m.quitting = true
	m.profilePanel.Username().Close()
	if m.animator != nil {
		m.animator.Stop()
	}
}

func (m *Model) preloadImages() tea.Cmd {
	if m.renderer == nil {
		return nil
	}
	renderer := m.renderer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
		defer cancel()
		return imagesLoadedMsg{err: renderer.Preload(ctx, ProfileAssets()...)}
	}
}

func (m *Model) bodyHeight() int {
	return max(m.height-footerRows, 0)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateEditingProfile:
		dialog := theme.DialogBoxStyle.Render(m.profileForm.View())
		return compositeOverlay(m.dashboardView(), dialog, m.width, m.height)
	}
	return m.dashboardView()
}

func (m *Model) dashboardView() string {
	if m.width == 0 {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(m.profilePanel.View()),
		renderContent(m.sidebar.Selected(), contentWidth(m.width), m.bodyHeight()),
	)

	errLines := ""
	if m.errorManager.HasError() {
		errLines = theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}
	errLines += strings.Repeat("\n", max(maxErrorLines-1-strings.Count(errLines, "\n"), 0))

	return body + "\n" + m.help.View(m.keys) + "\n" + errLines
}
