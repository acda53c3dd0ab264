package locator

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// ConsolePrompter implements Prompter on the terminal via promptui.
type ConsolePrompter struct{}

// NewConsolePrompter creates the interactive prompter used by the CLI.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{}
}

// Ask reads a free-text line from the operator.
func (*ConsolePrompter) Ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Choose presents an arrow-key selection among items.
func (*ConsolePrompter) Choose(label string, items []string) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}

	_, result, err := prompt.Run()
	return result, err
}

// Confirm asks a yes/no question; anything but an explicit yes is false.
func (*ConsolePrompter) Confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	return err == nil && strings.ToLower(result) == "y"
}
