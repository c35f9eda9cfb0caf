package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error shown under the dashboard and clears it after
// a delay. Only the clear scheduled by the latest error takes effect.
type ErrorManager struct {
	current error
	delay   time.Duration
	seq     int
}

// NewErrorManager creates an ErrorManager that clears errors after delay
func NewErrorManager(delay time.Duration) *ErrorManager {
	return &ErrorManager{delay: delay}
}

// SetError shows err and returns the command that clears it later
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.current = err
	em.seq++
	if em.delay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.delay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// Handle clears the error if msg belongs to the latest SetError
func (em *ErrorManager) Handle(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.current = nil
	}
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.current = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.current
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.current != nil
}
