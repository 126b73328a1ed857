package migration

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/migration-address/packages/address"
)

const (
	// CfgNetworkPrefix defines the config flag of the human readable part of the produced bech32 addresses.
	CfgNetworkPrefix = "migration.networkPrefix"
	// CfgVerifyChecksum defines the config flag that enables the checksum verification of legacy addresses.
	CfgVerifyChecksum = "migration.verifyChecksum"
)

func init() {
	flag.String(CfgNetworkPrefix, string(address.PrefixMainnet), "the human readable part of the produced bech32 addresses")
	flag.Bool(CfgVerifyChecksum, false, "reject legacy addresses with a wrong checksum")
}
