package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/rainbow"
)

// CycleCmd prints the rainbow sequence one tick per line
type CycleCmd struct {
	Interval time.Duration `help:"Delay between ticks (0 = as fast as possible)" default:"0s"`
	Plain    bool          `help:"Print rgb() values without color swatches"`
	Step     int           `help:"Channel change per tick (1-255)" default:"1"`
	Ticks    int           `help:"Number of ticks to print (0 = one full cycle)" default:"0"`

	out io.Writer
}

// Run executes the cycle command until done or interrupted
func (c *CycleCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx)
}

func (c *CycleCmd) run(ctx context.Context) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	interval := c.Interval
	if interval <= 0 {
		interval = rainbow.DefaultInterval
	}

	sink := &writerSink{out: out, plain: c.Plain}
	scheduler := &rainbow.ManualScheduler{}
	animator, err := rainbow.New(sink, scheduler,
		rainbow.WithStep(c.Step),
		rainbow.WithInterval(interval),
		rainbow.WithLogger(logging.Logger),
	)
	if err != nil {
		return err
	}
	if err := animator.Activate(); err != nil {
		return err
	}
	defer animator.Stop()

	ticks := c.Ticks
	if ticks <= 0 {
		ticks = rainbow.TicksPerCycle(c.Step)
	}

	var tick <-chan time.Time
	if c.Interval > 0 {
		ticker := time.NewTicker(c.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; i < ticks; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		scheduler.Fire()
		if !animator.Active() {
			return sink.err
		}
	}

	logging.Logger.Debug("Cycle printed", "ticks", ticks, "step", c.Step)
	return nil
}

// writerSink prints every style it receives as one line
type writerSink struct {
	err   error
	out   io.Writer
	plain bool
}

func (s *writerSink) ApplyStyle(style rainbow.TextStyle) error {
	line := style.Foreground.String()
	if !s.plain {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(style.Foreground.Hex())).
			Bold(style.Bold).
			Render("██ " + style.Foreground.Hex())
		line = fmt.Sprintf("%-18s %s", line, swatch)
	}

	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.err = fmt.Errorf("failed to write color: %w", err)
		return errors.Join(rainbow.ErrSinkClosed, s.err)
	}
	return nil
}
