package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/theme"
)

// Color profiles accepted by style.color_profile
const (
	ProfileANSI      = "ansi"
	ProfileANSI256   = "ansi256"
	ProfileNone      = "none"
	ProfileTrueColor = "truecolor"
)

// DefaultCostTimeoutSeconds is the cost request timeout when none is configured
const DefaultCostTimeoutSeconds = 5

// Config is the in-memory configuration for one invocation
type Config struct {
	Segments []domain.SegmentConfig
	Style    Style
	Theme    string
}

// Style holds global render settings
type Style struct {
	ColorProfile string // One of the Profile* constants; empty means ansi256
	Separator    string // Overrides the theme separator when set
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Theme: theme.DefaultName,
		Style: Style{ColorProfile: ProfileANSI256},
		Segments: []domain.SegmentConfig{
			{ID: domain.SegmentModel, Enabled: true, Options: domain.Options{}},
			{ID: domain.SegmentDirectory, Enabled: true, Options: domain.Options{}},
			{ID: domain.SegmentGit, Enabled: true, Options: domain.Options{
				domain.OptionShowDiffStats: domain.BoolValue(false),
			}},
			{ID: domain.SegmentContextWindow, Enabled: true, Options: domain.Options{
				domain.OptionContextLimit: domain.IntValue(200000),
			}},
			{ID: domain.SegmentSession, Enabled: true, Options: domain.Options{}},
			{ID: domain.SegmentOutputStyle, Enabled: false, Options: domain.Options{}},
			{ID: domain.SegmentCost, Enabled: true, Options: domain.Options{
				domain.OptionTimeout: domain.IntValue(DefaultCostTimeoutSeconds),
			}},
		},
	}
}

// Segment returns the configuration entry for id, or nil if there is none
func (c *Config) Segment(id domain.SegmentID) *domain.SegmentConfig {
	for i := range c.Segments {
		if c.Segments[i].ID == id {
			return &c.Segments[i]
		}
	}
	return nil
}

// Load loads the configuration from $CCLINE_HOME/config.toml
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads the configuration at path.
// Returns the default configuration if the file doesn't exist (not an error).
func LoadFrom(path string) (*Config, error) {
	data, err := readLocked(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Logger.Debug("No config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	cfg, err := fromFile(&fc)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	logging.Logger.Debug("Config loaded", "path", path, "segments", len(cfg.Segments), "theme", cfg.Theme)
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := lockExclusive(file); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate config file: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init writes the default configuration to path.
// Fails if the file exists unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	return Save(path, Default())
}

// Validate checks the configuration for problems that would degrade rendering
func (c *Config) Validate() error {
	var errs []error

	if _, err := theme.Get(c.Theme); err != nil {
		errs = append(errs, err)
	}

	switch c.Style.ColorProfile {
	case "", ProfileANSI, ProfileANSI256, ProfileNone, ProfileTrueColor:
	default:
		errs = append(errs, fmt.Errorf("unknown color_profile %q", c.Style.ColorProfile))
	}

	seen := make(map[domain.SegmentID]bool, len(c.Segments))
	for _, seg := range c.Segments {
		if !seg.ID.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnknownSegment, seg.ID))
			continue
		}
		if seen[seg.ID] {
			errs = append(errs, fmt.Errorf("%w: %s", domain.ErrDuplicateSegment, seg.ID))
		}
		seen[seg.ID] = true

		for _, spec := range OptionSpecs(seg.ID) {
			v, ok := seg.Options[spec.Key]
			if ok && v.Kind() != spec.Kind {
				errs = append(errs, fmt.Errorf("segment %s: option %s must be %s, got %s",
					seg.ID, spec.Key, spec.Kind, v.Kind()))
			}
		}
	}

	return errors.Join(errs...)
}

// readLocked reads the whole file while holding a shared lock
func readLocked(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := lockShared(file); err != nil {
		return nil, fmt.Errorf("failed to lock config file: %w", err)
	}
	defer unlockFile(file)

	return io.ReadAll(file)
}
