package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		width     int
		want      string
		wantLines int
	}{
		{name: "nil", err: nil, width: 80, want: ""},
		{name: "short", err: errors.New("file missing"), width: 80, want: "Error: file missing", wantLines: 1},
		{name: "empty message", err: errors.New(""), width: 80, want: "Error: unknown error", wantLines: 1},
		{name: "wraps", err: errors.New("one two three four five six"), width: 20, wantLines: 2},
		{name: "truncates", err: errors.New(strings.Repeat("word ", 40)), width: 20, wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, tt.width)
			if tt.want != "" || tt.err == nil {
				assert.Equal(t, tt.want, got)
			}
			if tt.wantLines > 0 {
				lines := strings.Split(got, "\n")
				assert.Len(t, lines, tt.wantLines)
				for _, line := range lines {
					assert.LessOrEqual(t, lipgloss.Width(line), tt.width)
				}
			}
		})
	}
}

func TestFormatErrorForDisplay_MarksTruncation(t *testing.T) {
	got := formatErrorForDisplay(errors.New(strings.Repeat("word ", 40)), 20)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	assert.True(t, strings.HasPrefix(got, errorPrefix))
}

func TestErrorManager_LatestClearWins(t *testing.T) {
	em := NewErrorManager(0)
	assert.Nil(t, em.SetError(errors.New("first")), "no delay, no clear command")

	em = NewErrorManager(1)
	assert.NotNil(t, em.SetError(errors.New("first")))
	em.SetError(errors.New("second"))

	em.Handle(clearErrorMsg{seq: 1})
	assert.EqualError(t, em.GetError(), "second")

	em.Handle(clearErrorMsg{seq: 2})
	assert.False(t, em.HasError())
}
