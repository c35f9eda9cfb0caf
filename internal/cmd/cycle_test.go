package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/nebula/internal/rainbow"
)

func runCycle(t *testing.T, c CycleCmd) []string {
	t.Helper()
	var buf bytes.Buffer
	c.out = &buf
	require.NoError(t, c.run(context.Background()))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestCycle_PrintsTicks(t *testing.T) {
	lines := runCycle(t, CycleCmd{Plain: true, Step: 1, Ticks: 3})

	assert.Equal(t, []string{
		"rgb(255, 1, 0)",
		"rgb(255, 2, 0)",
		"rgb(255, 3, 0)",
	}, lines)
}

func TestCycle_DefaultIsOneFullCycle(t *testing.T) {
	lines := runCycle(t, CycleCmd{Plain: true, Step: 51})

	require.Len(t, lines, rainbow.TicksPerCycle(51))
	assert.Equal(t, "rgb(255, 51, 0)", lines[0])
	assert.Equal(t, "rgb(255, 255, 0)", lines[4])
	assert.Equal(t, "rgb(204, 255, 0)", lines[5])
	assert.Equal(t, "rgb(255, 0, 0)", lines[len(lines)-1])
}

func TestCycle_ColorSwatch(t *testing.T) {
	lines := runCycle(t, CycleCmd{Step: 1, Ticks: 1})

	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "rgb(255, 1, 0)"))
	assert.Contains(t, lines[0], "#FF0100")
}

func TestCycle_InvalidStep(t *testing.T) {
	c := CycleCmd{Step: 0, out: &bytes.Buffer{}}
	assert.ErrorIs(t, c.run(context.Background()), rainbow.ErrInvalidStep)
}

func TestCycle_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	c := CycleCmd{Plain: true, Step: 1, Interval: time.Hour, out: &buf}

	require.NoError(t, c.run(ctx))
	assert.Empty(t, buf.String())
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > 2 {
		return 0, errors.New("pipe closed")
	}
	return len(p), nil
}

func TestCycle_WriteErrorHalts(t *testing.T) {
	w := &failingWriter{}
	c := CycleCmd{Plain: true, Step: 1, Ticks: 10, out: w}

	err := c.run(context.Background())

	assert.ErrorContains(t, err, "pipe closed")
	assert.Equal(t, 3, w.writes)
}
