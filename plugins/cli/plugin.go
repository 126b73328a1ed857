package cli

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/migration-address/plugins/banner"
)

var version = flag.BoolP("version", "v", false, "Prints the node version")

func init() {
	flag.Usage = printUsage
}

// PrintVersion prints the node version and returns true if it was requested on the command line. It must be
// called after the flags have been parsed.
func PrintVersion() bool {
	if !*version {
		return false
	}
	fmt.Println(banner.AppName + " " + banner.AppVersion)

	return true
}
