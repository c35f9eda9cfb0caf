package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth columns and keeps
// at most maxErrorLines lines, marking the cut with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	if maxWidth < 10+len(errorPrefix) {
		maxWidth = 10 + len(errorPrefix)
	}

	lines := strings.Split(ansi.Wrap(errorPrefix+message, maxWidth, ""), "\n")
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	lines[maxErrorLines-1] = ansi.Truncate(last, maxWidth-len(truncationMark), "") + truncationMark
	return strings.Join(lines, "\n")
}
