package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccline/test/integration/harness"
)

func TestConfigInit(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "config", "init")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.ConfigPath())
	assert.FileExists(t, env.ConfigPath())

	// Existing file is never overwritten without --force
	result = harness.RunCommand(t, env, "config", "init")
	harness.AssertFailure(t, result)

	result = harness.RunCommand(t, env, "config", "init", "--force")
	harness.AssertSuccess(t, result)
}

func TestConfigInit_WrittenFileRoundTrips(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "config", "init"))

	written, err := os.ReadFile(env.ConfigPath())
	require.NoError(t, err)

	result := harness.RunCommand(t, env, "config", "print")
	harness.AssertSuccess(t, result)
	assert.Equal(t, string(written), result.Stdout)
}

func TestConfigPrint(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantSuccess  bool
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "toml format (default)",
			args:         []string{"config", "print"},
			wantSuccess:  true,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, `theme = "minimal"`)
				harness.AssertStdoutContains(t, result, "[[segments]]")
			},
		},
		{
			name:         "json format",
			args:         []string{"config", "print", "--format", "json"},
			wantSuccess:  true,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "theme", "minimal")
			},
		},
		{
			name:         "yaml format",
			args:         []string{"config", "print", "--format", "yaml"},
			wantSuccess:  true,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "theme: minimal")
			},
		},
		{
			name:         "unsupported format",
			args:         []string{"config", "print", "--format", "xml"},
			wantSuccess:  false,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "xml")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteConfig(plainConfig)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantSuccess {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestConfigCheck(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantSuccess bool
		wantStdout  string
	}{
		{
			name:        "missing file",
			wantSuccess: true,
			wantStdout:  "using defaults",
		},
		{
			name:        "valid file",
			config:      plainConfig,
			wantSuccess: true,
			wantStdout:  "Config OK: 3 segments (3 enabled), theme \"minimal\"",
		},
		{
			name:        "unknown theme",
			config:      "theme = \"rainbow\"\n",
			wantSuccess: false,
			wantStdout:  "rainbow",
		},
		{
			name:        "unknown color profile",
			config:      "[style]\ncolor_profile = \"sepia\"\n",
			wantSuccess: false,
			wantStdout:  "sepia",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.config != "" {
				env.WriteConfig(tt.config)
			}

			result := harness.RunCommand(t, env, "config", "check")

			if tt.wantSuccess {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			harness.AssertStdoutContains(t, result, tt.wantStdout)
		})
	}
}

func TestConfigMeta(t *testing.T) {
	t.Run("table format (default)", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "config", "meta")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Config file:")
		harness.AssertStdoutContains(t, result, "SEGMENT")
		harness.AssertStdoutContains(t, result, "user_token")
	})

	t.Run("json format", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "config", "meta", "--format", "json")
		harness.AssertSuccess(t, result)

		var output struct {
			ConfigFile string `json:"config_file"`
			Segments   []struct {
				ID string `json:"id"`
			} `json:"segments"`
			Themes []string `json:"themes"`
		}
		harness.AssertValidJSON(t, result, &output)

		assert.Equal(t, env.ConfigPath(), output.ConfigFile)
		require.Len(t, output.Segments, 7)
		assert.Equal(t, "model", output.Segments[0].ID)
		assert.Equal(t, "cost", output.Segments[6].ID)
		assert.Contains(t, output.Themes, "default")
	})
}

func TestConfigThemes(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteConfig(plainConfig)

	result := harness.RunCommand(t, env, "config", "themes")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "* minimal")
	harness.AssertStdoutContains(t, result, "  default")
	harness.AssertStdoutContains(t, result, "  nerd")
	harness.AssertStdoutContains(t, result, "  block")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "ccline")
}

func TestConfigEdit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as editor")
	}
	env := harness.NewTestEnvironment(t)

	script := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nsed 's/theme = \"default\"/theme = \"nerd\"/' \"$1\" > \"$1.tmp\" && mv \"$1.tmp\" \"$1\"\n"), 0755))
	env.SetEnv("CCLINE_EDITOR", script)

	result := harness.RunCommand(t, env, "config", "edit")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Wrote default configuration")
	harness.AssertStdoutContains(t, result, `theme "nerd"`)
}
