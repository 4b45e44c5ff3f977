package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// PasswordFunc asks for a secret without echoing it.
type PasswordFunc func(prompt string) (string, error)

// NewPasswordFunc creates a PasswordFunc using a masked huh input.
func NewPasswordFunc() PasswordFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			EchoMode(huh.EchoModePassword).
			Value(&result).
			Run()
		return result, err
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
// The option at preselect is highlighted initially.
type SelectFunc func(title string, options []string, preselect int) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string, preselect int) (int, error) {
		result := preselect
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt   PromptFunc
	Confirm  ConfirmFunc
	Select   SelectFunc
	Password PasswordFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:   NewPromptFunc(),
		Confirm:  NewConfirmFunc(),
		Select:   NewSelectFunc(),
		Password: NewPasswordFunc(),
	}
}

// promptInt asks until the answer parses as an integer.
func promptInt(prompt PromptFunc, title string) (int, error) {
	ask := title
	for {
		answer, err := prompt(ask)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, nil
		}
		ask = fmt.Sprintf("%q is not a number. %s", answer, title)
	}
}
