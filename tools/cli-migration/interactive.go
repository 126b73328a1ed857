package main

import (
	"flag"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/migration-address/packages/converter"
)

const (
	choiceAuto     = "auto"
	choiceToLegacy = "to legacy"
	choiceToModern = "to modern"
	choiceQuit     = "quit"
)

// region survey  //////////////////////////////////////////////////////////////////////////////////////////////

var directionQuestion = &survey.Select{
	Message: "Choose a conversion",
	Options: []string{choiceAuto, choiceToLegacy, choiceToModern, choiceQuit},
	Default: choiceAuto,
}

var addressQuestion = &survey.Input{
	Message: "Address:",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////

// prompter asks the user what to convert.
type prompter interface {
	askChoice() (string, error)
	askAddress() (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) askChoice() (choice string, err error) {
	err = survey.AskOne(directionQuestion, &choice)
	return choice, err
}

func (surveyPrompter) askAddress() (input string, err error) {
	err = survey.AskOne(addressQuestion, &input, survey.WithValidator(survey.Required))
	return input, err
}

func execInteractiveCommand(command *flag.FlagSet, args []string, out io.Writer, p prompter) error {
	flags := addBackendFlags(command)
	if err := command.Parse(args); err != nil {
		return err
	}

	b, err := flags.backend()
	if err != nil {
		return err
	}

	for {
		choice, err := p.askChoice()
		if err != nil {
			return ignoreInterrupt(err)
		}

		var directionOf func(string) converter.Direction
		switch choice {
		case choiceQuit:
			return nil
		case choiceToLegacy:
			directionOf = func(string) converter.Direction { return converter.ToLegacy }
		case choiceToModern:
			directionOf = func(string) converter.Direction { return converter.ToModern }
		default:
			directionOf = converter.DirectionOf
		}

		input, err := p.askAddress()
		if err != nil {
			return ignoreInterrupt(err)
		}

		// failures are shown in the table, the session goes on
		_ = printResults(out, []converter.Result{b.ConvertTo(directionOf(input), input)})
	}
}

func ignoreInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
