package cli

import (
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/migration-address/plugins/banner"
)

func printUsage() {
	_, err := fmt.Fprintf(
		os.Stderr,
		"\n"+
			"%s %s\n\n"+
			"  Converts Ed25519 addresses between their bech32 and their legacy migration form.\n\n"+
			"Usage:\n\n"+
			"  %s [OPTIONS]\n\n"+
			"Options:\n\n",
		banner.AppName,
		banner.AppVersion,
		filepath.Base(os.Args[0]),
	)
	if err != nil {
		panic(err)
	}

	flag.PrintDefaults()
}
