package ports

import (
	"context"

	"github.com/charmbracelet/lipgloss"
)

// ImageRenderer turns image assets into terminal text
type ImageRenderer interface {
	// Preload decodes the named assets ahead of rendering
	Preload(ctx context.Context, names ...string) error

	// Render draws the named asset scaled to fit width x height pixels.
	// Transparent pixels are painted with bg.
	Render(name string, width, height int, bg lipgloss.Color) (string, error)
}
