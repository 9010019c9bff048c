package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-loom/loom/pkg/adapters/tui"
)

func init() {
	RegisterCommand(demoCmd)
}

var demoCmd = &Command{
	Name:  "demo",
	Short: "Drive a primitive interactively in the terminal",
	Long: `Demo connects one built-in primitive to the terminal adapter and runs
it. Tab moves focus between slots, arrow and enter keys reach the
focused slot's interaction handlers, q quits.`,
	Usage: "loom demo <primitive>",
	Run:   runDemo,
}

func runDemo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("demo takes exactly one primitive name (have: %v)", builtinNames())
	}
	newCore, ok := builtins[args[0]]
	if !ok {
		return fmt.Errorf("unknown primitive %q (have: %v)", args[0], builtinNames())
	}

	core := newCore()
	defer core.Destroy()

	component, err := core.Connect(tui.New())
	if err != nil {
		return err
	}
	model := component.(*tui.Model)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
