package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	// print banner
	printBanner()

	defer handleExit()

	flag.Usage = func() {
		printUsage(nil)
	}

	// check if parameter counts is large enough
	if len(os.Args) < 2 {
		printUsage(nil)
	}

	// define sub commands
	toLegacyCommand := flag.NewFlagSet("to-legacy", flag.ExitOnError)
	toModernCommand := flag.NewFlagSet("to-modern", flag.ExitOnError)
	convertCommand := flag.NewFlagSet("convert", flag.ExitOnError)
	batchCommand := flag.NewFlagSet("batch", flag.ExitOnError)
	interactiveCommand := flag.NewFlagSet("interactive", flag.ExitOnError)

	// switch logic according to provided sub command
	var command *flag.FlagSet
	var err error
	switch os.Args[1] {
	case "to-legacy":
		command, err = toLegacyCommand, execToLegacyCommand(toLegacyCommand, os.Args[2:], os.Stdout)
	case "to-modern":
		command, err = toModernCommand, execToModernCommand(toModernCommand, os.Args[2:], os.Stdout)
	case "convert":
		command, err = convertCommand, execConvertCommand(convertCommand, os.Args[2:], os.Stdout)
	case "batch":
		command, err = batchCommand, execBatchCommand(batchCommand, os.Args[2:], os.Stdout)
	case "interactive":
		command, err = interactiveCommand, execInteractiveCommand(interactiveCommand, os.Args[2:], os.Stdout, surveyPrompter{})
	case "help":
		printUsage(nil)
	default:
		printUsage(nil, "unknown [COMMAND]: "+os.Args[1])
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrConversionFailed):
		_, _ = fmt.Fprintf(os.Stderr, "\nERROR:\n  %s\n", err)
		panic(Exit{1})
	default:
		printUsage(command, err.Error())
	}
}

func handleExit() {
	if r := recover(); r != nil {
		if exit, ok := r.(Exit); ok {
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, r)
		os.Exit(1)
	}
}
