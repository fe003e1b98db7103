package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"ccline/internal/config"
	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ui"
)

// RenderCmd renders the status line for the session piped on stdin
type RenderCmd struct {
	Theme string `help:"Theme to render with (overrides config)" env:"CCLINE_THEME"`

	CostBaseURL   string `help:"Cost segment gateway base URL" env:"CCLINE_COST_BASE_URL" group:"Cost segment"`
	CostProvider  string `help:"Cost segment provider label" env:"CCLINE_COST_PROVIDER" group:"Cost segment"`
	CostTokenName string `help:"Only count usage of this token" env:"CCLINE_COST_TOKEN_NAME" group:"Cost segment"`
	CostUserID    string `help:"Cost segment account id" env:"CCLINE_COST_USER_ID" group:"Cost segment"`
	CostUserToken string `help:"Cost segment access token" env:"CCLINE_COST_USER_TOKEN" group:"Cost segment"`
}

// Run executes the render command
func (r *RenderCmd) Run(cli *CLI) error {
	c := cli.Container

	if c.IsTerminal() {
		logging.Logger.Debug("stdin is a terminal, showing menu")
		return runMenu(c)
	}

	snapshot, err := decodeSnapshot(c.Stdin)
	if err != nil {
		return err
	}

	cfg, err := c.ConfigStore.Load()
	if err != nil {
		return err
	}

	if r.Theme != "" {
		cfg.Theme = r.Theme
	}
	cfg.ApplyCostOverrides(config.CostOverrides{
		BaseURL:   r.CostBaseURL,
		Provider:  r.CostProvider,
		TokenName: r.CostTokenName,
		UserID:    r.CostUserID,
		UserToken: r.CostUserToken,
	})

	outputs := c.StatusLineService.CollectAll(context.Background(), cfg.Segments, snapshot)
	line := ui.NewStatusLineGenerator(cfg).Generate(outputs)

	_, err = fmt.Fprintln(c.Stdout, line)
	return err
}

func decodeSnapshot(in io.Reader) (*domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	if err := json.NewDecoder(in).Decode(&snapshot); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no session JSON on stdin")
		}
		return nil, fmt.Errorf("failed to parse session JSON: %w", err)
	}

	logging.Logger.Debug("Session snapshot decoded",
		"session_id", snapshot.SessionID,
		"model", snapshot.Model.ID,
		"cwd", snapshot.WorkingDir())
	return &snapshot, nil
}

// runMenu offers the configuration actions interactively
func runMenu(c *Container) error {
	action, err := ui.RunMenu(c.ConfigStore.Path(), c.Stdin, c.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case ui.MenuInit:
		return initConfig(c, false)
	case ui.MenuCheck:
		return checkConfig(c)
	case ui.MenuEdit:
		return editConfig(c, "")
	case ui.MenuPrint:
		return printConfig(c, config.FormatTOML)
	default:
		return nil
	}
}
