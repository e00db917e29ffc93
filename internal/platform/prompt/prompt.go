// Package prompt reads answers from an interactive terminal.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user interrupts a prompt (Ctrl-C or Ctrl-D).
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user questions.
type Prompter interface {
	// Select shows items as a list and returns the index of the chosen one.
	Select(label string, items []string) (int, error)

	// Input asks for free text. An empty answer yields defaultValue.
	// validate, when not nil, is applied to the answer and the question is repeated until it passes.
	Input(label, defaultValue string, validate func(string) error) (string, error)
}

// Terminal implements Prompter on top of promptui.
type Terminal struct {
	// Size is the number of list items visible at once.
	Size int
}

// NewTerminal creates a Prompter bound to the process terminal.
func NewTerminal() *Terminal {
	return &Terminal{Size: 10}
}

// Select shows a scrollable list.
func (t *Terminal) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("nothing to select for %q", label)
	}
	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  t.Size,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}
	idx, _, err := sel.Run()
	if err != nil {
		return -1, mapError(err)
	}
	return idx, nil
}

// Input asks for one line of text.
func (t *Terminal) Input(label, defaultValue string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	if validate != nil {
		p.Validate = func(s string) error {
			return validate(withDefault(s, defaultValue))
		}
	}
	answer, err := p.Run()
	if err != nil {
		return "", mapError(err)
	}
	return withDefault(answer, defaultValue), nil
}

func withDefault(answer, defaultValue string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue
	}
	return answer
}

func mapError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
