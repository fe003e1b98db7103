package config

import (
	"fmt"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/theme"
)

// fileConfig is the on-disk shape of config.toml
type fileConfig struct {
	Theme    string        `toml:"theme" json:"theme" yaml:"theme"`
	Style    fileStyle     `toml:"style" json:"style" yaml:"style"`
	Segments []fileSegment `toml:"segments" json:"segments" yaml:"segments"`
}

type fileStyle struct {
	ColorProfile string `toml:"color_profile,omitempty" json:"color_profile,omitempty" yaml:"color_profile,omitempty"`
	Separator    string `toml:"separator,omitempty" json:"separator,omitempty" yaml:"separator,omitempty"`
}

type fileSegment struct {
	ID      string            `toml:"id" json:"id" yaml:"id"`
	Enabled *bool             `toml:"enabled" json:"enabled" yaml:"enabled"`
	Style   *fileSegmentStyle `toml:"style,omitempty" json:"style,omitempty" yaml:"style,omitempty"`
	Options map[string]any    `toml:"options,omitempty" json:"options,omitempty" yaml:"options,omitempty"`
}

type fileSegmentStyle struct {
	Background string `toml:"background,omitempty" json:"background,omitempty" yaml:"background,omitempty"`
	Bold       *bool  `toml:"bold,omitempty" json:"bold,omitempty" yaml:"bold,omitempty"`
	Icon       string `toml:"icon,omitempty" json:"icon,omitempty" yaml:"icon,omitempty"`
	IconColor  string `toml:"icon_color,omitempty" json:"icon_color,omitempty" yaml:"icon_color,omitempty"`
	TextColor  string `toml:"text_color,omitempty" json:"text_color,omitempty" yaml:"text_color,omitempty"`
}

// fromFile converts the decoded file into a Config.
// Unknown or duplicate segment IDs are errors; unsupported option values are dropped.
func fromFile(fc *fileConfig) (*Config, error) {
	cfg := &Config{
		Theme: fc.Theme,
		Style: Style{
			ColorProfile: fc.Style.ColorProfile,
			Separator:    fc.Style.Separator,
		},
		Segments: make([]domain.SegmentConfig, 0, len(fc.Segments)),
	}
	if cfg.Theme == "" {
		cfg.Theme = theme.DefaultName
	}

	seen := make(map[domain.SegmentID]bool, len(fc.Segments))
	for _, fs := range fc.Segments {
		id, err := domain.ParseSegmentID(fs.ID)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSegment, id)
		}
		seen[id] = true

		seg := domain.SegmentConfig{
			ID:      id,
			Enabled: fs.Enabled == nil || *fs.Enabled,
			Options: make(domain.Options, len(fs.Options)),
		}
		if fs.Style != nil {
			seg.Style = domain.StyleOverride{
				Background: fs.Style.Background,
				Bold:       fs.Style.Bold,
				Icon:       fs.Style.Icon,
				IconColor:  fs.Style.IconColor,
				TextColor:  fs.Style.TextColor,
			}
		}
		for key, raw := range fs.Options {
			v, err := domain.NewValue(raw)
			if err != nil {
				logging.Logger.Warn("Ignoring segment option", "segment", id, "option", key, "error", err)
				continue
			}
			seg.Options[key] = v
		}

		cfg.Segments = append(cfg.Segments, seg)
	}

	return cfg, nil
}

// toFile converts a Config into its on-disk shape
func toFile(cfg *Config) *fileConfig {
	fc := &fileConfig{
		Theme: cfg.Theme,
		Style: fileStyle{
			ColorProfile: cfg.Style.ColorProfile,
			Separator:    cfg.Style.Separator,
		},
		Segments: make([]fileSegment, 0, len(cfg.Segments)),
	}

	for _, seg := range cfg.Segments {
		enabled := seg.Enabled
		fs := fileSegment{
			ID:      string(seg.ID),
			Enabled: &enabled,
		}
		if seg.Style != (domain.StyleOverride{}) {
			fs.Style = &fileSegmentStyle{
				Background: seg.Style.Background,
				Bold:       seg.Style.Bold,
				Icon:       seg.Style.Icon,
				IconColor:  seg.Style.IconColor,
				TextColor:  seg.Style.TextColor,
			}
		}
		if len(seg.Options) > 0 {
			fs.Options = make(map[string]any, len(seg.Options))
			for key, v := range seg.Options {
				fs.Options[key] = v.Raw()
			}
		}
		fc.Segments = append(fc.Segments, fs)
	}

	return fc
}
