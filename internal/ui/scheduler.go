package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/nebula/internal/rainbow"
)

// timerTickMsg is delivered by tea.Tick for one loopScheduler timer
type timerTickMsg struct {
	id int
}

// loopScheduler implements rainbow.Scheduler on the Bubble Tea event loop.
//
// Each timer keeps exactly one tea.Tick in flight: Handle runs the callback
// and re-arms the next tick. Callbacks therefore run on the UI goroutine,
// one at a time and in order. A stopped timer drops its pending tick.
type loopScheduler struct {
	nextID  int
	pending []*loopTimer
	timers  map[int]*loopTimer
}

var _ rainbow.Scheduler = (*loopScheduler)(nil)

type loopTimer struct {
	fn        func()
	id        int
	interval  time.Duration
	scheduler *loopScheduler
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{
		timers: make(map[int]*loopTimer),
	}
}

// Every registers a repeating timer. Its first tick is armed by the next
// Flush.
func (s *loopScheduler) Every(interval time.Duration, fn func()) rainbow.Timer {
	s.nextID++
	t := &loopTimer{
		fn:        fn,
		id:        s.nextID,
		interval:  interval,
		scheduler: s,
	}
	s.timers[t.id] = t
	s.pending = append(s.pending, t)
	return t
}

// Stop cancels the timer
func (t *loopTimer) Stop() {
	delete(t.scheduler.timers, t.id)
}

// Flush arms the first tick of every timer registered since the last call
func (s *loopScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}

	var cmds []tea.Cmd
	for _, t := range s.pending {
		if _, live := s.timers[t.id]; live {
			cmds = append(cmds, t.tick())
		}
	}
	s.pending = nil

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Handle runs the timer's callback and arms its next tick.
// Ticks for unknown or stopped timers are ignored.
func (s *loopScheduler) Handle(msg timerTickMsg) tea.Cmd {
	t, ok := s.timers[msg.id]
	if !ok {
		return nil
	}

	t.fn()

	// The callback may have stopped its own timer
	if _, live := s.timers[msg.id]; !live {
		return nil
	}
	return t.tick()
}

// Live returns the number of running timers
func (s *loopScheduler) Live() int {
	return len(s.timers)
}

func (t *loopTimer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return timerTickMsg{id: id}
	})
}
