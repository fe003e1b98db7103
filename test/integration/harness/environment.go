package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CCLINE_HOME.
type TestEnvironment struct {
	CclineHome string
	Dir        string // Working directory of the command, empty for the test's own
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CCLINE_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		CclineHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CCLINE_* variables and sets:
//   - CCLINE_HOME to the temp directory
//   - CCLINE_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CCLINE_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CCLINE_HOME="+e.CclineHome,
		"CCLINE_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// ConfigPath returns the path to the test configuration file.
func (e *TestEnvironment) ConfigPath() string {
	return filepath.Join(e.CclineHome, "config.toml")
}

// WriteConfig writes content as the configuration file.
func (e *TestEnvironment) WriteConfig(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.ConfigPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write config: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
