// Package migration builds the address converter of the node from its configuration.
package migration

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/converter"
)

// NewConverter creates the Converter configured by the migration config values.
func NewConverter(config *viper.Viper, log *zap.SugaredLogger) (*converter.Converter, error) {
	prefix, err := address.ParseNetworkPrefix(config.GetString(CfgNetworkPrefix))
	if err != nil {
		return nil, err
	}

	c := converter.New(
		converter.WithNetworkPrefix(prefix),
		converter.WithChecksumVerification(config.GetBool(CfgVerifyChecksum)),
	)
	log.Named("Migration").Infof("Converter ready, network-prefix=%s, verify-checksum=%v", c.NetworkPrefix(), c.VerifyChecksum())

	return c, nil
}
