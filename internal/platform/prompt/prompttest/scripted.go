// Package prompttest provides a Prompter that replays prepared answers.
package prompttest

import (
	"fmt"
	"strings"

	"github.com/abgdnv/bamazon/internal/platform/prompt"
)

var _ prompt.Prompter = (*Scripted)(nil)

// Scripted answers Select with Selections and Input with Inputs, in order.
// An exhausted script answers with prompt.ErrAborted.
// An input that fails validation is recorded in Rejected and the next input is used, like a user retyping.
type Scripted struct {
	Selections []int
	Inputs     []string

	// Labels records every question asked.
	Labels []string
	// Choices records the items of every Select.
	Choices [][]string
	// Rejected records inputs that failed validation.
	Rejected []string
}

// Select returns the next scripted selection.
func (s *Scripted) Select(label string, items []string) (int, error) {
	s.Labels = append(s.Labels, label)
	s.Choices = append(s.Choices, items)
	if len(s.Selections) == 0 {
		return -1, prompt.ErrAborted
	}
	idx := s.Selections[0]
	s.Selections = s.Selections[1:]
	if idx < 0 || idx >= len(items) {
		return -1, fmt.Errorf("scripted selection %d out of range for %q", idx, label)
	}
	return idx, nil
}

// Input returns the next scripted input that passes validate.
func (s *Scripted) Input(label, defaultValue string, validate func(string) error) (string, error) {
	s.Labels = append(s.Labels, label)
	for len(s.Inputs) > 0 {
		answer := strings.TrimSpace(s.Inputs[0])
		s.Inputs = s.Inputs[1:]
		if answer == "" {
			answer = defaultValue
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				s.Rejected = append(s.Rejected, answer)
				continue
			}
		}
		return answer, nil
	}
	return "", prompt.ErrAborted
}
