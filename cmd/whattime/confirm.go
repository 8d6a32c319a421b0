package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("aborted")

// surveyConfirmer asks yes/no questions on the terminal.
type surveyConfirmer struct{}

// AskYesNo implements resolver.Confirmer.
func (surveyConfirmer) AskYesNo(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var yes bool
	q := &survey.Confirm{
		Message: prompt,
		Help:    "Answer yes to use this time zone, no to give up.",
	}
	if err := survey.AskOne(q, &yes); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	if yes {
		return "yes", nil
	}
	return "no", nil
}
