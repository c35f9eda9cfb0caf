package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/nebula/internal/rainbow"
)

func newTestLabel() *Label {
	layout := lipgloss.NewStyle().Background(lipgloss.Color("#444444")).Width(12)
	static := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	return NewLabel("Nova", layout, static)
}

func TestLabel_StaticStyle(t *testing.T) {
	l := newTestLabel()

	require.NoError(t, l.SetStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))))

	assert.Equal(t, lipgloss.Color("#00FF00"), l.Style().GetForeground())
	assert.Equal(t, lipgloss.Color("#444444"), l.Style().GetBackground(), "layout survives")
	assert.Equal(t, 12, lipgloss.Width(l.View()))
}

func TestLabel_ClaimIsExclusive(t *testing.T) {
	l := newTestLabel()

	sink, err := l.Claim()
	require.NoError(t, err)
	assert.True(t, l.Claimed())

	_, err = l.Claim()
	assert.ErrorIs(t, err, ErrLabelClaimed)

	err = l.SetStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")))
	assert.ErrorIs(t, err, ErrLabelClaimed, "static writers are locked out while claimed")

	require.NoError(t, sink.ApplyStyle(rainbow.TextStyle{Foreground: rainbow.Color{R: 255, G: 1}, Bold: true}))
	assert.Equal(t, lipgloss.Color("#FF0100"), l.Style().GetForeground())
	assert.True(t, l.Style().GetBold())
}

func TestLabel_ApplyStyleReplacesEverything(t *testing.T) {
	l := newTestLabel()
	sink, err := l.Claim()
	require.NoError(t, err)

	require.NoError(t, sink.ApplyStyle(rainbow.TextStyle{Foreground: rainbow.Color{R: 1}, Bold: true, Italic: true}))
	require.NoError(t, sink.ApplyStyle(rainbow.TextStyle{Foreground: rainbow.Color{R: 2}}))

	assert.False(t, l.Style().GetItalic(), "no attribute from an earlier write survives")
	assert.False(t, l.Style().GetBold())
	assert.Equal(t, lipgloss.Color("#444444"), l.Style().GetBackground())
}

func TestLabel_ReleaseInvalidatesSink(t *testing.T) {
	l := newTestLabel()
	old, err := l.Claim()
	require.NoError(t, err)

	l.Release()

	assert.ErrorIs(t, old.ApplyStyle(rainbow.TextStyle{}), rainbow.ErrSinkClosed)
	assert.NoError(t, l.SetStyle(lipgloss.NewStyle()))

	fresh, err := l.Claim()
	require.NoError(t, err)
	assert.ErrorIs(t, old.ApplyStyle(rainbow.TextStyle{}), rainbow.ErrSinkClosed, "stale claim stays dead")
	assert.NoError(t, fresh.ApplyStyle(rainbow.TextStyle{}))
}

func TestLabel_Close(t *testing.T) {
	l := newTestLabel()
	sink, err := l.Claim()
	require.NoError(t, err)

	l.Close()

	assert.True(t, l.Closed())
	assert.ErrorIs(t, sink.ApplyStyle(rainbow.TextStyle{}), rainbow.ErrSinkClosed)
	assert.ErrorIs(t, l.SetStyle(lipgloss.NewStyle()), ErrLabelClosed)
	_, err = l.Claim()
	assert.ErrorIs(t, err, ErrLabelClosed)
}

func TestLabel_DrivenByAnimator(t *testing.T) {
	l := newTestLabel()
	sink, err := l.Claim()
	require.NoError(t, err)
	scheduler := &rainbow.ManualScheduler{}
	animator, err := rainbow.New(sink, scheduler)
	require.NoError(t, err)
	require.NoError(t, animator.Activate())

	scheduler.Fire()
	assert.Equal(t, lipgloss.Color("#FF0100"), l.Style().GetForeground())

	l.Close()
	assert.NotPanics(t, func() { scheduler.Fire() })
	assert.False(t, animator.Active())
	assert.Equal(t, 0, scheduler.Live())
}
