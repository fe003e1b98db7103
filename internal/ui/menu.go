package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// MenuAction is the choice made in the interactive menu
type MenuAction string

const (
	MenuCheck MenuAction = "check"
	MenuEdit  MenuAction = "edit"
	MenuExit  MenuAction = "exit"
	MenuInit  MenuAction = "init"
	MenuPrint MenuAction = "print"
)

var menuCancelKeys = key.NewBinding(
	key.WithKeys("esc", "ctrl+c"),
	key.WithHelp("esc", "exit"),
)

// MenuForm is a Bubble Tea component offering the configuration actions.
// Shown when ccline is started from a terminal instead of by Claude Code.
type MenuForm struct {
	Completed bool
	action    MenuAction
	form      *huh.Form
}

// NewMenuForm creates a new menu form
func NewMenuForm(configPath string) *MenuForm {
	mf := &MenuForm{action: MenuInit}

	mf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[MenuAction]().
				Title("ccline").
				Description(fmt.Sprintf("Config: %s\nccline reads session JSON on stdin; configure Claude Code to run it as statusLine command.", configPath)).
				Options(
					huh.NewOption("Create default config", MenuInit),
					huh.NewOption("Edit config", MenuEdit),
					huh.NewOption("Check config", MenuCheck),
					huh.NewOption("Print config", MenuPrint),
					huh.NewOption("Exit", MenuExit),
				).
				Value(&mf.action),
		),
	)

	return mf
}

func (mf *MenuForm) Init() tea.Cmd {
	return mf.form.Init()
}

func (mf *MenuForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, menuCancelKeys) {
		mf.action = MenuExit
		mf.Completed = true
		return mf, tea.Quit
	}

	// Forward message to form
	form, cmd := mf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		mf.form = f
	}

	if mf.form.State == huh.StateCompleted {
		mf.Completed = true
		return mf, tea.Quit
	}

	return mf, cmd
}

func (mf *MenuForm) View() string {
	if mf.Completed || mf.form == nil {
		return ""
	}
	return mf.form.View()
}

// Action returns the selected action
func (mf *MenuForm) Action() MenuAction {
	return mf.action
}

// RunMenu shows the menu on the given terminal streams and returns the choice
func RunMenu(configPath string, in io.Reader, out io.Writer) (MenuAction, error) {
	mf := NewMenuForm(configPath)
	program := tea.NewProgram(mf, tea.WithInput(in), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return MenuExit, fmt.Errorf("menu failed: %w", err)
	}
	if !mf.Completed {
		return MenuExit, nil
	}
	return mf.Action(), nil
}
