package rainbow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

var (
	ErrAlreadyActive = errors.New("rainbow animation already active")
	ErrInvalidStep   = errors.New("rainbow step must be between 1 and 255")
	ErrSinkClosed    = errors.New("display sink closed")
)

// DefaultInterval is the delay between ticks
const DefaultInterval = 10 * time.Millisecond

// Sink receives the complete text style after every tick.
// Implementations return ErrSinkClosed once the display element is gone.
type Sink interface {
	ApplyStyle(style TextStyle) error
}

// Timer is a cancellable repeating timer
type Timer interface {
	Stop()
}

// Scheduler delivers repeating ticks from the host event loop.
// Callbacks run one at a time, in order, on the loop's goroutine.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// Option configures an Animator
type Option func(*Animator)

// WithStep sets the per-tick channel change (1..255)
func WithStep(step int) Option {
	return func(a *Animator) {
		a.step = step
	}
}

// WithInterval sets the delay between ticks
func WithInterval(interval time.Duration) Option {
	return func(a *Animator) {
		a.interval = interval
	}
}

// WithBaseStyle sets the non-color attributes written with every color
func WithBaseStyle(style TextStyle) Option {
	return func(a *Animator) {
		a.base = style
	}
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(a *Animator) {
		a.logger = logger
	}
}

// Animator drives a sink through the six-phase color cycle.
// It owns its State exclusively and is the only writer of the sink while
// active. Not safe for concurrent use: all calls belong on the event loop.
type Animator struct {
	base      TextStyle
	interval  time.Duration
	logger    *slog.Logger
	scheduler Scheduler
	sink      Sink
	state     *State // nil until the first activation
	step      int
	timer     Timer // nil while inactive
}

// New creates an inactive Animator writing to sink and ticking on scheduler
func New(sink Sink, scheduler Scheduler, opts ...Option) (*Animator, error) {
	if sink == nil {
		return nil, errors.New("rainbow: nil sink")
	}
	if scheduler == nil {
		return nil, errors.New("rainbow: nil scheduler")
	}

	a := &Animator{
		base:      TextStyle{Bold: true},
		interval:  DefaultInterval,
		scheduler: scheduler,
		sink:      sink,
		step:      DefaultStep,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.step < 1 || a.step > channelMax {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, a.step)
	}
	if a.interval <= 0 {
		return nil, fmt.Errorf("rainbow: interval must be positive, got %s", a.interval)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a, nil
}

// Activate resets the cycle to (255, 0, 0) and starts ticking.
// Calling it while active returns ErrAlreadyActive and leaves the running
// subscription untouched.
func (a *Animator) Activate() error {
	if a.timer != nil {
		return ErrAlreadyActive
	}

	state := NewState(a.step)
	a.state = &state
	a.timer = a.scheduler.Every(a.interval, func() { a.OnTick() })

	a.logger.Debug("Rainbow animation activated",
		"step", a.step,
		"interval", a.interval)
	return nil
}

// OnTick advances the cycle by one step and writes the complete style to
// the sink. It returns false when the animator is not running. If the sink
// has been closed the tick is dropped and the animator halts.
func (a *Animator) OnTick() (Color, bool) {
	if a.timer == nil {
		return a.Color(), false
	}

	next := *a.state
	color := next.Advance()

	style := a.base
	style.Foreground = color
	if err := a.sink.ApplyStyle(style); err != nil {
		if !errors.Is(err, ErrSinkClosed) {
			a.logger.Warn("Rainbow sink rejected style", "error", err)
		}
		a.logger.Debug("Rainbow animation halted", "reason", err)
		a.Stop()
		return a.Color(), false
	}

	*a.state = next
	return color, true
}

// Stop cancels the tick subscription. Safe to call when already stopped.
func (a *Animator) Stop() {
	if a.timer == nil {
		return
	}
	a.timer.Stop()
	a.timer = nil
}

// Active reports whether ticks are being delivered
func (a *Animator) Active() bool {
	return a.timer != nil
}

// Color returns the last committed color.
// Before the first activation this is the starting color.
func (a *Animator) Color() Color {
	if a.state == nil {
		return NewState(a.step).Color()
	}
	return a.state.Color()
}

// Phase returns the active phase
func (a *Animator) Phase() Phase {
	if a.state == nil {
		return PhaseGreenUp
	}
	return a.state.Phase()
}

// Interval returns the delay between ticks
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// ManualScheduler is a Scheduler whose ticks are fired by calling Fire.
// Useful outside an event loop, e.g. when printing the sequence.
type ManualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	fn       func()
	interval time.Duration
	stopped  bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// Every registers fn. The interval is recorded but not honored.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) Timer {
	t := &manualTimer{fn: fn, interval: interval}
	s.timers = append(s.timers, t)
	return t
}

// Fire delivers one tick to every live timer and returns how many ran
func (s *ManualScheduler) Fire() int {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live

	fired := 0
	for _, t := range append([]*manualTimer(nil), live...) {
		if t.stopped {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Live returns the number of timers that have not been stopped
func (s *ManualScheduler) Live() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
