package cli

import (
	"errors"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputQuestion describes a free-text prompt.
type InputQuestion struct {
	Message  string
	Default  string
	Validate func(answer string) error
	Suggest  func(toComplete string) []string
}

// Prompter asks the user questions and blocks until they answer.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Input(q InputQuestion) (string, error)
	Select(message string, options []string) (string, error)
}

// SurveyPrompter is the terminal implementation of Prompter.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, p.opts...)
	return answer, translateError(err)
}

func (p *SurveyPrompter) Input(q InputQuestion) (string, error) {
	opts := p.opts
	if q.Validate != nil {
		opts = append(slices.Clone(opts), survey.WithValidator(stringValidator(q.Validate)))
	}

	var answer string
	prompt := &survey.Input{
		Message: q.Message,
		Default: q.Default,
		Suggest: q.Suggest,
	}
	err := survey.AskOne(prompt, &answer, opts...)
	return answer, translateError(err)
}

func (p *SurveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &answer, p.opts...)
	return answer, translateError(err)
}

// stringValidator adapts a plain string check to survey's validator.
// Non-string answers are checked as the empty string.
func stringValidator(validate func(answer string) error) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}
}

// translateError treats Ctrl-C like declining to continue.
func translateError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrDeclined
	}
	return err
}
