package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ccline/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_ParsesSegments(t *testing.T) {
	path := writeConfig(t, `
theme = "minimal"

[style]
separator = " / "
color_profile = "truecolor"

[[segments]]
id = "cost"
enabled = true
[segments.style]
icon = "¥"
text_color = "214"
bold = true
[segments.options]
base_url = "https://api.example.com"
user_token = "sk-1"
user_id = "42"
timeout = 3

[[segments]]
id = "git"
enabled = false

[[segments]]
id = "model"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.Theme)
	assert.Equal(t, " / ", cfg.Style.Separator)
	assert.Equal(t, ProfileTrueColor, cfg.Style.ColorProfile)
	require.Len(t, cfg.Segments, 3)

	cost := cfg.Segments[0]
	assert.Equal(t, domain.SegmentCost, cost.ID)
	assert.True(t, cost.Enabled)
	assert.Equal(t, "¥", cost.Style.Icon)
	assert.Equal(t, "214", cost.Style.TextColor)
	require.NotNil(t, cost.Style.Bold)
	assert.True(t, *cost.Style.Bold)
	assert.Equal(t, "https://api.example.com", cost.Options.StringOr(domain.OptionBaseURL, ""))
	assert.Equal(t, int64(3), cost.Options.IntOr(domain.OptionTimeout, 0))

	assert.Equal(t, domain.SegmentGit, cfg.Segments[1].ID)
	assert.False(t, cfg.Segments[1].Enabled)

	// enabled defaults to true when omitted
	assert.Equal(t, domain.SegmentModel, cfg.Segments[2].ID)
	assert.True(t, cfg.Segments[2].Enabled)
}

func TestLoadFrom_EmptyThemeUsesDefault(t *testing.T) {
	path := writeConfig(t, `
[[segments]]
id = "model"
`)

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := writeConfig(t, `theme = "default`)

	_, err := LoadFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config.toml")
}

func TestLoadFrom_UnknownSegment(t *testing.T) {
	path := writeConfig(t, `
[[segments]]
id = "weather"
`)

	_, err := LoadFrom(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSegment)
}

func TestLoadFrom_DuplicateSegment(t *testing.T) {
	path := writeConfig(t, `
[[segments]]
id = "git"

[[segments]]
id = "git"
`)

	_, err := LoadFrom(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateSegment)
}

func TestLoadFrom_DropsUnsupportedOptionValues(t *testing.T) {
	path := writeConfig(t, `
[[segments]]
id = "directory"
[segments.options]
full_path = true
ignored = [1, 2, 3]
`)

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	opts := cfg.Segments[0].Options
	assert.Len(t, opts, 1)
	assert.True(t, opts.BoolOr(domain.OptionFullPath, false))
}

func TestSaveAndLoad_RoundTripsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	require.NoError(t, Save(path, Default()))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSave_TruncatesPreviousContent(t *testing.T) {
	path := writeConfig(t, "theme = \"nerd\"\n# padding padding padding padding padding padding\n")
	cfg := &Config{Theme: "block", Segments: []domain.SegmentConfig{{ID: domain.SegmentModel, Enabled: true, Options: domain.Options{}}}}

	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "padding")
	assert.Contains(t, string(data), `theme = "block"`)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	require.NoError(t, Init(path, false))
	assert.FileExists(t, path)

	err := Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("unknown theme", func(t *testing.T) {
		cfg := Default()
		cfg.Theme = "rainbow"
		assert.ErrorIs(t, cfg.Validate(), domain.ErrUnknownTheme)
	})

	t.Run("unknown color profile", func(t *testing.T) {
		cfg := Default()
		cfg.Style.ColorProfile = "cmyk"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cmyk")
	})

	t.Run("wrong option kind", func(t *testing.T) {
		cfg := Default()
		cfg.Segment(domain.SegmentCost).Options[domain.OptionTimeout] = domain.StringValue("5")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "option timeout must be int, got string")
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := Default()
		cfg.Theme = "rainbow"
		cfg.Segments = append(cfg.Segments, domain.SegmentConfig{ID: domain.SegmentGit})
		err := cfg.Validate()
		assert.ErrorIs(t, err, domain.ErrUnknownTheme)
		assert.ErrorIs(t, err, domain.ErrDuplicateSegment)
	})
}

func TestApplyCostOverrides(t *testing.T) {
	cfg := Default()
	original := cfg.Segment(domain.SegmentCost).Options

	applied := cfg.ApplyCostOverrides(CostOverrides{
		BaseURL:   "https://gw.example.com",
		UserToken: "sk-cli",
		UserID:    "7",
	})

	require.True(t, applied)
	opts := cfg.Segment(domain.SegmentCost).Options
	assert.Equal(t, "https://gw.example.com", opts.StringOr(domain.OptionBaseURL, ""))
	assert.Equal(t, "sk-cli", opts.StringOr(domain.OptionUserToken, ""))
	assert.Equal(t, "7", opts.StringOr(domain.OptionUserID, ""))
	assert.Equal(t, int64(DefaultCostTimeoutSeconds), opts.IntOr(domain.OptionTimeout, 0))
	_, hasProvider := opts[domain.OptionProvider]
	assert.False(t, hasProvider)

	// previous map is left untouched
	_, ok := original[domain.OptionBaseURL]
	assert.False(t, ok)
}

func TestApplyCostOverrides_NoCostSegment(t *testing.T) {
	cfg := &Config{Theme: "default"}

	assert.False(t, cfg.ApplyCostOverrides(CostOverrides{BaseURL: "https://x"}))
	assert.Empty(t, cfg.Segments)
}

func TestApplyCostOverrides_Empty(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.ApplyCostOverrides(CostOverrides{}))
}

func TestStore_SegmentOptions(t *testing.T) {
	path := writeConfig(t, `
[[segments]]
id = "cost"
[segments.options]
timeout = 9
`)
	store := NewStore(path)

	opts, err := store.SegmentOptions(domain.SegmentCost)
	require.NoError(t, err)
	assert.Equal(t, int64(9), opts.IntOr(domain.OptionTimeout, 0))

	// file changes are picked up on the next call
	require.NoError(t, os.WriteFile(path, []byte("[[segments]]\nid = \"cost\"\n[segments.options]\ntimeout = 2\n"), 0644))
	opts, err = store.SegmentOptions(domain.SegmentCost)
	require.NoError(t, err)
	assert.Equal(t, int64(2), opts.IntOr(domain.OptionTimeout, 0))

	opts, err = store.SegmentOptions(domain.SegmentGit)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestStore_SegmentOptionsMalformed(t *testing.T) {
	store := NewStore(writeConfig(t, "[[segments"))

	_, err := store.SegmentOptions(domain.SegmentCost)

	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	cfg := Default()

	t.Run("toml", func(t *testing.T) {
		data, err := Marshal(cfg, FormatTOML)
		require.NoError(t, err)
		assert.Contains(t, string(data), `theme = "default"`)
		assert.Contains(t, string(data), `id = "context_window"`)
	})

	t.Run("json", func(t *testing.T) {
		data, err := Marshal(cfg, FormatJSON)
		require.NoError(t, err)

		var decoded fileConfig
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "default", decoded.Theme)
		assert.Len(t, decoded.Segments, len(cfg.Segments))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Marshal(cfg, FormatYAML)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, "default", decoded["theme"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Marshal(cfg, "xml")
		assert.Error(t, err)
	})
}

func TestMeta(t *testing.T) {
	meta := Meta()

	require.Len(t, meta, len(domain.AllSegmentIDs))
	for i, m := range meta {
		assert.Equal(t, domain.AllSegmentIDs[i], m.ID)
		assert.NotEmpty(t, m.Description)
	}
	assert.Len(t, OptionSpecs(domain.SegmentCost), 6)
	assert.Empty(t, OptionSpecs(domain.SegmentModel))
}
