package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/migration-address/packages/converter"
)

// ErrNoAddresses is returned by commands that got nothing to convert.
var ErrNoAddresses = errors.New("no addresses given")

func execToLegacyCommand(command *flag.FlagSet, args []string, out io.Writer) error {
	return execDirectedCommand(command, args, out, func(string) converter.Direction { return converter.ToLegacy })
}

func execToModernCommand(command *flag.FlagSet, args []string, out io.Writer) error {
	return execDirectedCommand(command, args, out, func(string) converter.Direction { return converter.ToModern })
}

func execConvertCommand(command *flag.FlagSet, args []string, out io.Writer) error {
	return execDirectedCommand(command, args, out, converter.DirectionOf)
}

func execDirectedCommand(command *flag.FlagSet, args []string, out io.Writer, directionOf func(string) converter.Direction) error {
	flags := addBackendFlags(command)
	if err := command.Parse(args); err != nil {
		return err
	}
	if command.NArg() == 0 {
		return ErrNoAddresses
	}

	b, err := flags.backend()
	if err != nil {
		return err
	}

	results := make([]converter.Result, 0, command.NArg())
	for _, input := range command.Args() {
		results = append(results, b.ConvertTo(directionOf(input), input))
	}

	return printResults(out, results)
}

func execBatchCommand(command *flag.FlagSet, args []string, out io.Writer) error {
	flags := addBackendFlags(command)
	file := command.String("file", "", "file with one address per line, - reads from stdin")
	if err := command.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	inputs, err := readAddresses(*file)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoAddresses
	}

	b, err := flags.backend()
	if err != nil {
		return err
	}

	results, err := b.ConvertBatch(inputs)
	if err != nil {
		return err
	}

	return printResults(out, results)
}

// readAddresses reads the non empty lines of path that are not comments.
func readAddresses(path string) ([]string, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Errorf("failed to open address file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var addresses []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("failed to read address file: %w", err)
	}

	return addresses, nil
}
