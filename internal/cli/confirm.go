package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// confirmFunc asks a yes/no question on the terminal.
var confirmFunc = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		WithTheme(huh.ThemeBase()).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// Confirm returns true without prompting when assumeYes is set.
func Confirm(assumeYes bool, title, description string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	return confirmFunc(title, description)
}
