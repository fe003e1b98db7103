package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ccline/internal/config"
	"ccline/internal/domain"
)

func plainConfig(themeName string) *config.Config {
	return &config.Config{
		Theme: themeName,
		Style: config.Style{ColorProfile: config.ProfileNone},
	}
}

func sampleResults() []domain.SegmentOutput {
	return []domain.SegmentOutput{
		{ID: domain.SegmentModel, Result: domain.SegmentResult{Primary: "Opus"}},
		{ID: domain.SegmentDirectory, Result: domain.SegmentResult{Primary: "ccline"}},
		{ID: domain.SegmentCost, Result: domain.SegmentResult{Primary: "¥1.50", Secondary: "relay"}},
	}
}

func TestGenerate_EmptyResults(t *testing.T) {
	g := NewStatusLineGenerator(config.Default())

	assert.Equal(t, "", g.Generate(nil))
	assert.Equal(t, "", g.Generate([]domain.SegmentOutput{}))
}

func TestGenerate_MinimalThemePlain(t *testing.T) {
	g := NewStatusLineGenerator(plainConfig("minimal"))

	assert.Equal(t, "Opus · ccline · ¥1.50 relay", g.Generate(sampleResults()))
}

func TestGenerate_SeparatorOverride(t *testing.T) {
	cfg := plainConfig("minimal")
	cfg.Style.Separator = " | "

	assert.Equal(t, "Opus | ccline | ¥1.50 relay", NewStatusLineGenerator(cfg).Generate(sampleResults()))
}

func TestGenerate_IconOverrideWinsOverTheme(t *testing.T) {
	cfg := plainConfig("minimal")
	cfg.Segments = []domain.SegmentConfig{
		{ID: domain.SegmentCost, Enabled: true, Style: domain.StyleOverride{Icon: "$"}},
	}

	out := NewStatusLineGenerator(cfg).Generate(sampleResults())

	assert.Equal(t, "Opus · ccline · $ ¥1.50 relay", out)
}

func TestGenerate_DefaultThemeShowsIcons(t *testing.T) {
	g := NewStatusLineGenerator(plainConfig("default"))

	out := g.Generate(sampleResults()[:1])

	assert.True(t, strings.HasSuffix(out, " Opus"))
	assert.NotEqual(t, "Opus", out)
}

func TestGenerate_UnknownThemeFallsBackToDefault(t *testing.T) {
	unknown := NewStatusLineGenerator(plainConfig("rainbow")).Generate(sampleResults())
	def := NewStatusLineGenerator(plainConfig("default")).Generate(sampleResults())

	assert.Equal(t, def, unknown)
}

func TestGenerate_ColorProfiles(t *testing.T) {
	results := sampleResults()[:1]

	cfg := plainConfig("minimal")
	cfg.Style.ColorProfile = config.ProfileANSI256
	colored := NewStatusLineGenerator(cfg).Generate(results)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "Opus")

	cfg.Style.ColorProfile = config.ProfileTrueColor
	assert.Contains(t, NewStatusLineGenerator(cfg).Generate(results), "\x1b[")

	cfg.Style.ColorProfile = config.ProfileNone
	assert.Equal(t, "Opus", NewStatusLineGenerator(cfg).Generate(results))
}

func TestGenerate_BoldOverride(t *testing.T) {
	bold := true
	cfg := plainConfig("minimal")
	cfg.Style.ColorProfile = config.ProfileANSI256
	cfg.Segments = []domain.SegmentConfig{
		{ID: domain.SegmentModel, Enabled: true, Style: domain.StyleOverride{Bold: &bold}},
	}

	out := NewStatusLineGenerator(cfg).Generate(sampleResults()[:1])

	assert.Contains(t, out, "\x1b[1;")
}

func TestGenerate_Idempotent(t *testing.T) {
	for _, name := range []string{"default", "minimal", "nerd", "block"} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Theme = name

			first := NewStatusLineGenerator(cfg).Generate(sampleResults())
			second := NewStatusLineGenerator(cfg).Generate(sampleResults())

			assert.Equal(t, first, second)
			assert.NotEmpty(t, first)
		})
	}
}
