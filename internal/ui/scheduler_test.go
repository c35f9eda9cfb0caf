package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopScheduler_FlushArmsPendingOnce(t *testing.T) {
	s := newLoopScheduler()
	s.Every(10*time.Millisecond, func() {})

	assert.NotNil(t, s.Flush())
	assert.Nil(t, s.Flush(), "pending timers are armed only once")
	assert.Equal(t, 1, s.Live())
}

func TestLoopScheduler_HandleRunsAndRearms(t *testing.T) {
	s := newLoopScheduler()
	calls := 0
	s.Every(time.Millisecond, func() { calls++ })
	cmd := s.Flush()
	require.NotNil(t, cmd)

	msg := cmd()
	tick, ok := msg.(timerTickMsg)
	require.True(t, ok)
	assert.Equal(t, 1, tick.id)

	next := s.Handle(tick)
	assert.Equal(t, 1, calls)
	assert.NotNil(t, next)
}

func TestLoopScheduler_StoppedTimerDropsTicks(t *testing.T) {
	s := newLoopScheduler()
	calls := 0
	timer := s.Every(time.Millisecond, func() { calls++ })
	s.Flush()

	timer.Stop()

	assert.Nil(t, s.Handle(timerTickMsg{id: 1}))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Live())
}

func TestLoopScheduler_StopBeforeFlush(t *testing.T) {
	s := newLoopScheduler()
	timer := s.Every(time.Millisecond, func() {})
	timer.Stop()

	assert.Nil(t, s.Flush())
}

func TestLoopScheduler_CallbackStopsItself(t *testing.T) {
	s := newLoopScheduler()
	var self interface{ Stop() }
	self = s.Every(time.Millisecond, func() { self.Stop() })
	s.Flush()

	assert.Nil(t, s.Handle(timerTickMsg{id: 1}), "no re-arm after self stop")
	assert.Equal(t, 0, s.Live())
}

func TestLoopScheduler_UnknownID(t *testing.T) {
	s := newLoopScheduler()

	assert.Nil(t, s.Handle(timerTickMsg{id: 99}))
}
