package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"ccline/internal/config"
	"ccline/internal/domain"
	"ccline/internal/theme"
	"ccline/internal/ui"
)

// ConfigCmd manages the configuration file
type ConfigCmd struct {
	Init   ConfigInitCmd   `cmd:"init" help:"Write the default configuration file"`
	Print  ConfigPrintCmd  `cmd:"print" help:"Print the effective configuration"`
	Check  ConfigCheckCmd  `cmd:"check" help:"Validate the configuration file"`
	Edit   ConfigEditCmd   `cmd:"edit" help:"Open the configuration file in an editor"`
	Meta   ConfigMetaCmd   `cmd:"meta" help:"Show config file location and available segment options"`
	Themes ConfigThemesCmd `cmd:"themes" help:"List built-in themes with a preview"`
}

// ConfigInitCmd writes the default configuration
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

// Run executes the init command
func (c *ConfigInitCmd) Run(cli *CLI) error {
	return initConfig(cli.Container, c.Force)
}

// ConfigPrintCmd prints the effective configuration
type ConfigPrintCmd struct {
	Format string `help:"Output format: toml, json or yaml" enum:"toml,json,yaml" default:"toml"`
}

// Run executes the print command
func (c *ConfigPrintCmd) Run(cli *CLI) error {
	return printConfig(cli.Container, c.Format)
}

// ConfigCheckCmd validates the configuration
type ConfigCheckCmd struct{}

// Run executes the check command
func (c *ConfigCheckCmd) Run(cli *CLI) error {
	return checkConfig(cli.Container)
}

// ConfigEditCmd opens the configuration in an editor
type ConfigEditCmd struct {
	Editor string `help:"Editor command (overrides $CCLINE_EDITOR, $VISUAL and $EDITOR)"`
}

// Run executes the edit command
func (c *ConfigEditCmd) Run(cli *CLI) error {
	return editConfig(cli.Container, c.Editor)
}

// ConfigMetaCmd displays segment metadata
type ConfigMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type metaOption struct {
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
	Key         string `json:"key"`
	Type        string `json:"type"`
}

type metaSegment struct {
	Description string       `json:"description"`
	ID          string       `json:"id"`
	Options     []metaOption `json:"options"`
}

// Run executes the meta command
func (c *ConfigMetaCmd) Run(cli *CLI) error {
	out := cli.Container.Stdout
	path := cli.Container.ConfigStore.Path()

	if c.Format == "json" {
		segs := make([]metaSegment, 0, len(domain.AllSegmentIDs))
		for _, m := range config.Meta() {
			seg := metaSegment{Description: m.Description, ID: m.ID.String(), Options: []metaOption{}}
			for _, o := range m.Options {
				seg.Options = append(seg.Options, metaOption{
					Default:     o.Default,
					Description: o.Description,
					Key:         o.Key,
					Type:        o.Kind.String(),
				})
			}
			segs = append(segs, seg)
		}

		data, err := json.MarshalIndent(map[string]any{
			"config_file": path,
			"segments":    segs,
			"themes":      theme.Names(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Table format
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENT\tOPTION\tTYPE\tDEFAULT\tDESCRIPTION")
	for _, m := range config.Meta() {
		fmt.Fprintf(w, "%s\t\t\t\t%s\n", m.ID, m.Description)
		for _, o := range m.Options {
			fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\n", o.Key, o.Kind, o.Default, o.Description)
		}
	}
	w.Flush()

	return nil
}

// ConfigThemesCmd lists the built-in themes
type ConfigThemesCmd struct{}

// Run executes the themes command
func (c *ConfigThemesCmd) Run(cli *CLI) error {
	cfg, err := cli.Container.ConfigStore.Load()
	if err != nil {
		return err
	}

	preview := []domain.SegmentOutput{
		{ID: domain.SegmentModel, Result: domain.SegmentResult{Primary: "Sonnet 4"}},
		{ID: domain.SegmentDirectory, Result: domain.SegmentResult{Primary: "ccline"}},
		{ID: domain.SegmentGit, Result: domain.SegmentResult{Primary: "main " + domain.SymbolGitClean}},
		{ID: domain.SegmentCost, Result: domain.SegmentResult{Primary: "¥1.50"}},
	}

	out := cli.Container.Stdout
	for _, name := range theme.Names() {
		marker := " "
		if name == cfg.Theme {
			marker = "*"
		}
		themed := *cfg
		themed.Theme = name
		fmt.Fprintf(out, "%s %-8s %s\n", marker, name, ui.NewStatusLineGenerator(&themed).Generate(preview))
	}
	return nil
}

func initConfig(c *Container, force bool) error {
	path := c.ConfigStore.Path()
	if err := config.Init(path, force); err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout, "Wrote default configuration to %s\n", path)
	return nil
}

// editConfig creates the default file when needed, opens it, then validates the result
func editConfig(c *Container, editor string) error {
	path := c.ConfigStore.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := initConfig(c, false); err != nil {
			return err
		}
	}

	if err := c.Editor.Open(context.Background(), path, editor); err != nil {
		return err
	}
	return checkConfig(c)
}

func printConfig(c *Container, format string) error {
	cfg, err := c.ConfigStore.Load()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = c.Stdout.Write(data)
	return err
}

func checkConfig(c *Container) error {
	path := c.ConfigStore.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(c.Stdout, "No config file at %s, using defaults\n", path)
	}

	cfg, err := c.ConfigStore.Load()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(c.Stdout, "Config has problems:\n%v\n", err)
		return fmt.Errorf("invalid configuration: %s", path)
	}

	enabled := 0
	for _, seg := range cfg.Segments {
		if seg.Enabled {
			enabled++
		}
	}
	fmt.Fprintf(c.Stdout, "Config OK: %d segments (%d enabled), theme %q\n", len(cfg.Segments), enabled, cfg.Theme)
	return nil
}
