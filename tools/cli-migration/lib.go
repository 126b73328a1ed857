package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/migration-address/client"
	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/converter"
)

// Exit should be used inside panic instead of os.Exit(). This will allow to call deferred statements.
type Exit struct{ Code int }

var (
	// ErrConversionFailed is returned by commands after at least one conversion failed.
	ErrConversionFailed = errors.New("conversion failed")
	// ErrLocalFlagWithNode is returned when a flag of the local converter is combined with -node.
	ErrLocalFlagWithNode = errors.New("flag only applies to local conversions and cannot be combined with -node")
)

func printBanner() {
	fmt.Println("IOTA Migration Address CLI 0.1")
}

// region backend //////////////////////////////////////////////////////////////////////////////////////////////////////

// backend converts addresses either locally or through the web API of a node.
type backend interface {
	ConvertTo(direction converter.Direction, input string) converter.Result
	ConvertBatch(inputs []string) ([]converter.Result, error)
}

type localBackend struct {
	converter *converter.Converter
}

func (l *localBackend) ConvertTo(direction converter.Direction, input string) converter.Result {
	return l.converter.ConvertTo(direction, input)
}

func (l *localBackend) ConvertBatch(inputs []string) ([]converter.Result, error) {
	batch, err := converter.NewBatchConverter(l.converter.Convert, runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	defer batch.Shutdown()

	return batch.ConvertBatch(context.Background(), inputs), nil
}

type remoteBackend struct {
	api *client.MigrationAPI
}

func (r *remoteBackend) ConvertTo(direction converter.Direction, input string) (result converter.Result) {
	result.Input = input
	result.Direction = direction

	switch direction {
	case converter.ToLegacy:
		result.Address, result.Err = r.api.LegacyAddress(input)
	case converter.ToModern:
		result.Address, result.Err = r.api.ModernAddress(input)
	default:
		result.Err = errors.Errorf("unknown conversion direction %q", direction)
	}

	return result
}

func (r *remoteBackend) ConvertBatch(inputs []string) ([]converter.Result, error) {
	res, err := r.api.ConvertBatch(inputs)
	if err != nil {
		return nil, err
	}

	results := make([]converter.Result, len(res.Results))
	for i, convertResult := range res.Results {
		results[i] = converter.Result{
			Input:     convertResult.Input,
			Address:   convertResult.Address,
			Direction: converter.Direction(convertResult.Direction),
		}
		if convertResult.Error != "" {
			results[i].Err = errors.New(convertResult.Error)
		}
	}

	return results, nil
}

// backendFlags are the flags every conversion command accepts.
type backendFlags struct {
	command *flag.FlagSet

	node           *string
	username       *string
	password       *string
	prefix         *string
	verifyChecksum *bool
}

func addBackendFlags(command *flag.FlagSet) *backendFlags {
	return &backendFlags{
		command:        command,
		node:           command.String("node", "", "convert through the web API of the node at this URL instead of locally"),
		username:       command.String("basic-auth-username", "", "basic auth username of the node"),
		password:       command.String("basic-auth-password", "", "basic auth password of the node"),
		prefix:         command.String("prefix", string(address.PrefixMainnet), "human readable part of the produced bech32 addresses (local only)"),
		verifyChecksum: command.Bool("verify-checksum", false, "reject legacy addresses with a wrong checksum (local only)"),
	}
}

func (b *backendFlags) backend() (backend, error) {
	if *b.node != "" {
		var err error
		b.command.Visit(func(f *flag.Flag) {
			if f.Name == "prefix" || f.Name == "verify-checksum" {
				err = errors.Errorf("-%s: %w", f.Name, ErrLocalFlagWithNode)
			}
		})
		if err != nil {
			return nil, err
		}

		var options []client.Option
		if *b.username != "" {
			options = append(options, client.WithBasicAuth(*b.username, *b.password))
		}
		return &remoteBackend{api: client.NewMigrationAPI(*b.node, options...)}, nil
	}

	prefix, err := address.ParseNetworkPrefix(*b.prefix)
	if err != nil {
		return nil, err
	}

	return &localBackend{converter: converter.New(
		converter.WithNetworkPrefix(prefix),
		converter.WithChecksumVerification(*b.verifyChecksum),
	)}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// printResults writes the results as a table and returns ErrConversionFailed if any of them failed.
func printResults(out io.Writer, results []converter.Result) error {
	w := new(tabwriter.Writer)
	w.Init(out, 0, 8, 2, '\t', 0)

	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "STATUS", "DIRECTION", "INPUT", "OUTPUT")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "------", "---------", "-----", "------")

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "[FAIL]", result.Direction, result.Input, result.Err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "[ OK ]", result.Direction, result.Input, result.Address)
	}
	_ = w.Flush()

	if failed > 0 {
		return errors.Errorf("%d of %d addresses: %w", failed, len(results), ErrConversionFailed)
	}

	return nil
}

func printUsage(command *flag.FlagSet, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(os.Stderr, "\n")
		_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  %s\n", optionalErrorMessage[0])
	}

	if command == nil {
		fmt.Println()
		fmt.Println("USAGE:")
		fmt.Println("  " + filepath.Base(os.Args[0]) + " [COMMAND]")
		fmt.Println()
		fmt.Println("COMMANDS:")
		fmt.Println("  to-legacy <bech32 address>...")
		fmt.Println("        convert bech32 Ed25519 addresses into migration addresses")
		fmt.Println("  to-modern <migration address>...")
		fmt.Println("        convert migration addresses into bech32 Ed25519 addresses")
		fmt.Println("  convert <address>...")
		fmt.Println("        convert addresses in the direction given by their length")
		fmt.Println("  batch -file <path>")
		fmt.Println("        convert all addresses of a file, one per line")
		fmt.Println("  interactive")
		fmt.Println("        convert addresses entered at the prompt")
		fmt.Println("  help")
		fmt.Println("        display this help screen")

		flag.PrintDefaults()

		if len(optionalErrorMessage) >= 1 {
			panic(Exit{1})
		}

		panic(Exit{0})
	}

	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  " + filepath.Base(os.Args[0]) + " " + command.Name() + " [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	command.PrintDefaults()

	if len(optionalErrorMessage) >= 1 {
		panic(Exit{1})
	}

	panic(Exit{0})
}
