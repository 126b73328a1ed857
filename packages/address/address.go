// Package address implements the bech32 encoded addresses of the new ledger.
package address

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// region AddressType //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Ed25519AddressType represents an Address that is the BLAKE2b-256 hash of an Ed25519 public key.
	Ed25519AddressType AddressType = 0

	// AliasAddressType represents the ID of an alias output.
	AliasAddressType AddressType = 8

	// NFTAddressType represents the ID of an NFT output.
	NFTAddressType AddressType = 16
)

// AddressType represents the type of the Address and is serialized as the first byte of every Address.
type AddressType byte

// String returns a human readable representation of the AddressType.
func (a AddressType) String() string {
	switch a {
	case Ed25519AddressType:
		return "Ed25519Address"
	case AliasAddressType:
		return "AliasAddress"
	case NFTAddressType:
		return "NFTAddress"
	default:
		return "UnknownAddress"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NetworkPrefix ////////////////////////////////////////////////////////////////////////////////////////////////

// NetworkPrefix denotes the human readable part of a bech32 address.
type NetworkPrefix string

const (
	// PrefixMainnet is the human readable part of mainnet addresses.
	PrefixMainnet NetworkPrefix = "iota"
	// PrefixTestnet is the human readable part of testnet addresses.
	PrefixTestnet NetworkPrefix = "atoi"
)

// ParseNetworkPrefix returns the NetworkPrefix for s.
func ParseNetworkPrefix(s string) (NetworkPrefix, error) {
	switch prefix := NetworkPrefix(s); prefix {
	case PrefixMainnet, PrefixTestnet:
		return prefix, nil
	default:
		return "", errors.Errorf("%q: %w", s, ErrUnknownNetworkPrefix)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Address is the interface implemented by the address kinds that can appear inside a bech32 string.
type Address interface {
	// Type returns the AddressType of the Address.
	Type() AddressType

	// Bytes returns the serialized Address including its type byte.
	Bytes() []byte

	// Bech32 returns the bech32 encoding of the Address for the given network.
	Bech32(hrp NetworkPrefix) string

	// String returns a human readable version of the Address for debug purposes.
	String() string
}

// ParseBech32 decodes a bech32 encoded address into its network prefix and Address.
func ParseBech32(s string) (NetworkPrefix, Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Errorf("invalid bech32 string (%v): %w", err, ErrParseBech32)
	}

	prefix, err := ParseNetworkPrefix(hrp)
	if err != nil {
		return "", nil, err
	}

	addrBytes, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, errors.Errorf("invalid bech32 data (%v): %w", err, ErrParseBech32)
	}

	addr, _, err := FromBytes(addrBytes)
	if err != nil {
		return "", nil, err
	}

	return prefix, addr, nil
}

// ParseEd25519Bech32 decodes a bech32 encoded address and requires it to be an Ed25519Address.
func ParseEd25519Bech32(s string) (NetworkPrefix, Ed25519Address, error) {
	prefix, addr, err := ParseBech32(s)
	if err != nil {
		return "", Ed25519Address{}, err
	}

	ed25519Addr, ok := addr.(Ed25519Address)
	if !ok {
		return "", Ed25519Address{}, errors.Errorf("%s: %w", addr.Type(), ErrUnsupportedAddressType)
	}

	return prefix, ed25519Addr, nil
}

// FromBytes unmarshals an Address from a sequence of bytes.
func FromBytes(bytes []byte) (address Address, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if address, err = FromMarshalUtil(marshalUtil); err != nil {
		return nil, 0, err
	}
	consumedBytes = marshalUtil.ReadOffset()

	if consumedBytes != len(bytes) {
		return nil, 0, errors.Errorf("%d trailing bytes after %s: %w", len(bytes)-consumedBytes, address.Type(), ErrParseBech32)
	}

	return address, consumedBytes, nil
}

// FromMarshalUtil reads an Address from the bytes in the given MarshalUtil.
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Address, error) {
	addressType, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, errors.Errorf("failed to parse AddressType (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	marshalUtil.ReadSeek(-1)

	switch AddressType(addressType) {
	case Ed25519AddressType:
		address, err := Ed25519AddressFromMarshalUtil(marshalUtil)
		if err != nil {
			return nil, err
		}
		return address, nil
	case AliasAddressType, NFTAddressType:
		return nil, errors.Errorf("%s: %w", AddressType(addressType), ErrUnsupportedAddressType)
	default:
		return nil, errors.Errorf("unknown address type (%X): %w", addressType, ErrUnsupportedAddressType)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
