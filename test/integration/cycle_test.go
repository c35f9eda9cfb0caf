package integration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/nebula/test/integration/harness"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLines int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "three ticks",
			args:      []string{"cycle", "--plain", "--ticks", "3"},
			wantLines: 3,
			wantFirst: "rgb(255, 1, 0)",
			wantLast:  "rgb(255, 3, 0)",
		},
		{
			name:      "full cycle returns to red",
			args:      []string{"cycle", "--plain", "--step", "85"},
			wantLines: 18,
			wantFirst: "rgb(255, 85, 0)",
			wantLast:  "rgb(255, 0, 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
			assert.Len(t, lines, tt.wantLines)
			assert.Equal(t, tt.wantFirst, lines[0])
			assert.Equal(t, tt.wantLast, lines[len(lines)-1])
		})
	}
}

func TestCycle_InvalidStep(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "cycle", "--step", "0")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "rainbow step must be between 1 and 255")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "nebula dev")
}
