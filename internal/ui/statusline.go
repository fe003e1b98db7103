package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ccline/internal/config"
	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/theme"
)

// StatusLineGenerator renders segment results as one styled line
type StatusLineGenerator struct {
	overrides map[domain.SegmentID]domain.StyleOverride
	renderer  *lipgloss.Renderer
	separator string
	theme     theme.Theme
}

// NewStatusLineGenerator creates a generator for the theme and style settings of cfg.
// An unknown theme falls back to the default one.
func NewStatusLineGenerator(cfg *config.Config) *StatusLineGenerator {
	t, err := theme.Get(cfg.Theme)
	if err != nil {
		logging.Logger.Warn("Falling back to default theme", "error", err)
		t, _ = theme.Get(theme.DefaultName)
	}

	overrides := make(map[domain.SegmentID]domain.StyleOverride, len(cfg.Segments))
	for _, seg := range cfg.Segments {
		overrides[seg.ID] = seg.Style
	}

	separator := t.Separator
	if cfg.Style.Separator != "" {
		separator = cfg.Style.Separator
	}

	return &StatusLineGenerator{
		overrides: overrides,
		renderer:  NewRenderer(cfg.Style.ColorProfile),
		separator: separator,
		theme:     t,
	}
}

// NewRenderer returns a lipgloss renderer with a fixed color profile.
// Output is piped to Claude Code, so the profile can't be detected from a terminal.
func NewRenderer(profile string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetHasDarkBackground(true)

	switch profile {
	case config.ProfileTrueColor:
		r.SetColorProfile(termenv.TrueColor)
	case config.ProfileANSI:
		r.SetColorProfile(termenv.ANSI)
	case config.ProfileNone:
		r.SetColorProfile(termenv.Ascii)
	default:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// Generate renders results in order, joined by the separator.
// Returns an empty string when there are no results.
func (g *StatusLineGenerator) Generate(results []domain.SegmentOutput) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, out := range results {
		parts = append(parts, g.renderSegment(out))
	}

	return strings.Join(parts, g.theme.SeparatorStyle(g.renderer).Render(g.separator))
}

func (g *StatusLineGenerator) renderSegment(out domain.SegmentOutput) string {
	style := g.styleFor(out.ID)
	gap := style.GapStyle(g.renderer).Render(" ")

	var b strings.Builder
	if style.Background != "" {
		b.WriteString(gap)
	}
	if style.Icon != "" {
		b.WriteString(style.IconStyle(g.renderer).Render(style.Icon))
		b.WriteString(gap)
	}
	b.WriteString(style.TextStyle(g.renderer).Render(out.Result.Primary))
	if out.Result.Secondary != "" {
		b.WriteString(gap)
		b.WriteString(style.SecondaryStyle(g.renderer).Render(out.Result.Secondary))
	}
	if style.Background != "" {
		b.WriteString(gap)
	}
	return b.String()
}

// styleFor merges the theme style of id with the configured overrides
func (g *StatusLineGenerator) styleFor(id domain.SegmentID) theme.SegmentStyle {
	style := g.theme.Style(id)
	o, ok := g.overrides[id]
	if !ok {
		return style
	}

	if o.Icon != "" {
		style.Icon = o.Icon
	}
	if o.IconColor != "" {
		style.IconColor = theme.Color(o.IconColor)
	}
	if o.TextColor != "" {
		style.TextColor = theme.Color(o.TextColor)
	}
	if o.Background != "" {
		style.Background = theme.Color(o.Background)
	}
	if o.Bold != nil {
		style.Bold = *o.Bold
	}
	return style
}
