package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ports"
)

// ErrEmptySize is returned when asked to render into zero pixels
var ErrEmptySize = errors.New("render size must be positive")

// halfBlock paints the top pixel as foreground and the bottom as background
const halfBlock = "▀"

// alphaCutoff is the alpha below which a pixel counts as transparent
const alphaCutoff = 0x7fff

// Store implements ports.ImageRenderer for PNG files in one directory
type Store struct {
	cache map[string]image.Image
	dir   string
	mu    sync.Mutex
}

// Verify interface compliance at compile time
var _ ports.ImageRenderer = (*Store)(nil)

// NewStore creates a store reading images from dir
func NewStore(dir string) *Store {
	return &Store{
		cache: make(map[string]image.Image),
		dir:   dir,
	}
}

// Preload decodes the named images concurrently.
// Every image is attempted; the returned error joins the failures.
func (s *Store) Preload(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)

	var (
		errMu sync.Mutex
		errs  []error
	)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.load(name); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Render draws the image scaled to fit width x height pixels, keeping the
// aspect ratio. Two pixel rows share one terminal row.
func (s *Store) Render(name string, width, height int, bg lipgloss.Color) (string, error) {
	if width <= 0 || height <= 0 {
		return "", ErrEmptySize
	}

	src, err := s.load(name)
	if err != nil {
		return "", err
	}

	w, h := fitSize(src.Bounds().Dx(), src.Bounds().Dy(), width, height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return renderHalfBlocks(dst, bg), nil
}

// load returns the decoded image, reading it on first use
func (s *Store) load(name string) (image.Image, error) {
	s.mu.Lock()
	img, ok := s.cache[name]
	s.mu.Unlock()
	if ok {
		return img, nil
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	s.mu.Lock()
	s.cache[name] = img
	s.mu.Unlock()

	logging.Logger.Debug("Image loaded", "path", path, "bounds", img.Bounds().String())
	return img, nil
}

// fitSize scales srcW x srcH to fit inside maxW x maxH keeping the ratio
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return maxW, maxH
	}
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// renderHalfBlocks converts an image into lines of half-block cells
func renderHalfBlocks(img image.Image, bg lipgloss.Color) string {
	b := img.Bounds()
	var lines []string

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := pixelColor(img.At(x, y), bg)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = pixelColor(img.At(x, y+1), bg)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// pixelColor returns the pixel as a hex color, or bg when transparent
func pixelColor(c color.Color, bg lipgloss.Color) lipgloss.Color {
	r, g, b, a := c.RGBA()
	if a < alphaCutoff {
		return bg
	}
	// Undo alpha premultiplication for partially transparent pixels
	if a < 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}
