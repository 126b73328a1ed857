package converter

import "github.com/iotaledger/migration-address/packages/address"

// Option is a function setting a Converter option.
type Option func(c *Converter)

// WithNetworkPrefix sets the human readable part of the modern addresses the Converter produces.
func WithNetworkPrefix(prefix address.NetworkPrefix) Option {
	return func(c *Converter) {
		c.networkPrefix = prefix
	}
}

// WithChecksumVerification makes the Converter reject 90-tryte legacy addresses with a wrong checksum.
func WithChecksumVerification(verify bool) Option {
	return func(c *Converter) {
		c.verifyChecksum = verify
	}
}
