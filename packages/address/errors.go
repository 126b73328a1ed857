package address

import "github.com/cockroachdb/errors"

var (
	// ErrParseBech32 is returned if a string is not a well formed bech32 address.
	ErrParseBech32 = errors.New("failed to parse bech32 address")
	// ErrUnknownNetworkPrefix is returned if the human readable part of an address belongs to no known network.
	ErrUnknownNetworkPrefix = errors.New("unknown network prefix")
	// ErrUnsupportedAddressType is returned if an address is not of the Ed25519 kind.
	ErrUnsupportedAddressType = errors.New("unsupported address type")
	// ErrInvalidLength is returned if a digest does not have the size of an address.
	ErrInvalidLength = errors.New("invalid address length")
)
