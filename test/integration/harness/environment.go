package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated config file and assets directory.
type TestEnvironment struct {
	AssetsDir  string
	ConfigPath string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment in a temp directory.
// The config file is not created; use WriteConfig for that.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	assets := filepath.Join(root, "Images")
	if err := os.MkdirAll(assets, 0755); err != nil {
		tb.Fatalf("Failed to create assets directory: %v", err)
	}

	return &TestEnvironment{
		AssetsDir:  assets,
		ConfigPath: filepath.Join(root, "Config", "user.cfg"),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out NEBULA_* variables, which also leaves debug logging off,
// and points the config and assets at the temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NEBULA_") {
			continue
		}
		env = append(env, kv)
	}

	return append(env,
		"NEBULA_CONFIG="+e.ConfigPath,
		"NEBULA_ASSETS="+e.AssetsDir,
	)
}

// WriteConfig writes content to the isolated user.cfg
func (e *TestEnvironment) WriteConfig(content string) {
	e.tb.Helper()
	if err := os.MkdirAll(filepath.Dir(e.ConfigPath), 0755); err != nil {
		e.tb.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(e.ConfigPath, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write config: %v", err)
	}
}
