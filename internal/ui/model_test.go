package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/nebula/internal/domain"
	portsmocks "github.com/renato0307/nebula/internal/ports/mocks"
	"github.com/renato0307/nebula/internal/rainbow"
	"github.com/renato0307/nebula/internal/services"
	"github.com/renato0307/nebula/internal/theme"
)

const (
	testWidth  = 100
	testHeight = 40
)

func newTestModel(t *testing.T, profile domain.Profile) *Model {
	t.Helper()

	store := portsmocks.NewMockProfileStore(t)
	store.On("Load", mock.Anything).Return(&profile, nil)
	store.On("Location").Return("user.cfg").Maybe()

	m, err := NewModel(services.NewProfileService(store), nil, ModelConfig{ErrorClearDelay: time.Second})
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

func rainbowProfile() domain.Profile {
	p := domain.DefaultProfile()
	p.Username = "Nova"
	p.ColorName = domain.RainbowColorName
	return p
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_RainbowProfileAnimatesUsername(t *testing.T) {
	m := newTestModel(t, rainbowProfile())

	require.NotNil(t, m.animator)
	assert.True(t, m.animator.Active())
	assert.True(t, m.profilePanel.Username().Claimed())
	assert.Equal(t, 1, m.scheduler.Live())

	_, cmd := m.Update(timerTickMsg{id: 1})
	assert.NotNil(t, cmd, "tick re-armed")

	style := m.profilePanel.Username().Style()
	assert.Equal(t, lipgloss.Color("#FF0100"), style.GetForeground())
	assert.True(t, style.GetBold())
	assert.Equal(t, rainbow.Color{R: 255, G: 1}, m.animator.Color())
}

func TestNewModel_OtherColorNamesStayStatic(t *testing.T) {
	for _, name := range []string{"", "red", "Rainbow", " rainbow"} {
		t.Run("colorname="+name, func(t *testing.T) {
			p := domain.DefaultProfile()
			p.ColorName = name
			m := newTestModel(t, p)

			assert.Nil(t, m.animator)
			assert.False(t, m.profilePanel.Username().Claimed())
			assert.Zero(t, m.scheduler.Live())
			assert.Equal(t, theme.ColorText, m.profilePanel.Username().Style().GetForeground())
		})
	}
}

func TestNewModel_LoadErrorShowsDefaults(t *testing.T) {
	store := portsmocks.NewMockProfileStore(t)
	store.On("Load", mock.Anything).Return(nil, errors.New("bad file"))
	store.On("Location").Return("user.cfg")

	m, err := NewModel(services.NewProfileService(store), nil, ModelConfig{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultProfile(), m.profilePanel.Profile())
	require.True(t, m.errorManager.HasError())

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	assert.Contains(t, m.View(), "failed to load profile")
}

func TestNewModel_RejectsInvalidStep(t *testing.T) {
	store := portsmocks.NewMockProfileStore(t)

	_, err := NewModel(services.NewProfileService(store), nil, ModelConfig{RainbowStep: 300})

	assert.ErrorIs(t, err, rainbow.ErrInvalidStep)
}

func TestModel_InitArmsRainbowTick(t *testing.T) {
	m := newTestModel(t, rainbowProfile())
	assert.NotNil(t, m.Init())
}

func TestModel_ClickSwapsPanel(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())
	assert.Contains(t, m.View(), panelBlurbs[domain.NavGame])

	clanTop := theme.ProfileRows + 2*theme.NavButtonRows
	m.Update(click(4, clanTop+1))

	assert.Equal(t, domain.NavClan, m.sidebar.Selected())
	view := m.View()
	assert.Contains(t, view, panelBlurbs[domain.NavClan])
	assert.NotContains(t, view, panelBlurbs[domain.NavGame])
}

func TestModel_MoreListsActions(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	m.Update(click(4, m.bodyHeight()-1))

	assert.Equal(t, domain.NavMore, m.sidebar.Selected())
	view := m.View()
	for _, action := range domain.Actions {
		assert.Contains(t, view, action.Description)
	}
}

func TestModel_MouseMotionHovers(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	m.Update(tea.MouseMsg{X: 2, Y: theme.ProfileRows, Action: tea.MouseActionMotion})
	hovered, ok := m.sidebar.Hovered()
	require.True(t, ok)
	assert.Equal(t, domain.NavGame, hovered)
	assert.Equal(t, domain.NavGame, m.sidebar.Selected(), "hover does not select")

	m.Update(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionMotion})
	_, ok = m.sidebar.Hovered()
	assert.False(t, ok)
}

func TestModel_KeyboardNavigation(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.NavDressing, m.sidebar.Selected())

	m.Update(runes("4"))
	assert.Equal(t, domain.NavSocial, m.sidebar.Selected())

	m.Update(runes("5"))
	assert.Equal(t, domain.NavMore, m.sidebar.Selected())
}

func TestModel_QuitStopsRainbow(t *testing.T) {
	m := newTestModel(t, rainbowProfile())
	label := m.profilePanel.Username()

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.True(t, label.Closed())
	assert.False(t, m.animator.Active())
	assert.Zero(t, m.scheduler.Live())
	assert.Empty(t, m.View())

	// A tick already in flight is dropped
	_, cmd = m.Update(timerTickMsg{id: 1})
	assert.Nil(t, cmd)
}

func TestModel_RainbowToggle(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())
	label := m.profilePanel.Username()

	require.NoError(t, m.applyProfile(rainbowProfile()))
	require.NotNil(t, m.animator)
	first := m.animator
	assert.True(t, label.Claimed())

	// Re-applying a rainbow profile keeps the running animation
	require.NoError(t, m.applyProfile(rainbowProfile()))
	assert.Same(t, first, m.animator)
	assert.Equal(t, 1, m.scheduler.Live())

	static := rainbowProfile()
	static.ColorName = ""
	require.NoError(t, m.applyProfile(static))
	assert.Nil(t, m.animator)
	assert.False(t, first.Active())
	assert.False(t, label.Claimed())
	assert.Equal(t, theme.ColorText, label.Style().GetForeground())
	assert.Zero(t, m.scheduler.Live())

	require.NoError(t, m.applyProfile(rainbowProfile()))
	require.NotNil(t, m.animator)
	assert.NotSame(t, first, m.animator)
	assert.True(t, m.animator.Active())
	assert.Equal(t, 1, m.scheduler.Live())
	assert.Equal(t, rainbow.Color{R: 255}, m.animator.Color(), "restarts from red")
}

func TestModel_HelpScreen(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	m.Update(runes("?"))
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Navigation")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDashboard, m.state)
}

func TestModel_RainbowKeepsTickingUnderDialogs(t *testing.T) {
	m := newTestModel(t, rainbowProfile())

	m.Update(ShowHelpMsg{})
	require.Equal(t, stateHelp, m.state)

	_, cmd := m.Update(timerTickMsg{id: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, rainbow.Color{R: 255, G: 1}, m.animator.Color())
}

func TestModel_EditProfileCancel(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	m.Update(runes("e"))
	require.Equal(t, stateEditingProfile, m.state)
	assert.Contains(t, m.View(), "Edit Profile")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDashboard, m.state)
	assert.Equal(t, domain.DefaultProfile(), m.profilePanel.Profile())
}

func TestModel_ViewLayout(t *testing.T) {
	m := newTestModel(t, domain.DefaultProfile())

	view := m.View()

	assert.Equal(t, testHeight, lipgloss.Height(view))
	assert.Contains(t, view, domain.DefaultUsername)
	assert.Contains(t, view, "ID: "+domain.DefaultID)
	assert.Contains(t, view, domain.TierVIP.Name())
}
