// Package converter implements the string level conversions between bech32 Ed25519 addresses and legacy
// migration addresses.
package converter

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/migration"
	"github.com/iotaledger/migration-address/packages/ternary"
)

// Converter converts addresses between the bech32 and the legacy tryte representation. It holds no mutable
// state and is safe for concurrent use.
type Converter struct {
	networkPrefix  address.NetworkPrefix
	verifyChecksum bool
}

// New creates a Converter. Without options, modern addresses are rendered with the mainnet prefix and
// checksums of legacy addresses are not verified.
func New(opts ...Option) *Converter {
	c := &Converter{
		networkPrefix: address.PrefixMainnet,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NetworkPrefix returns the prefix used when rendering modern addresses.
func (c *Converter) NetworkPrefix() address.NetworkPrefix {
	return c.networkPrefix
}

// VerifyChecksum reports whether checksums of legacy addresses are verified.
func (c *Converter) VerifyChecksum() bool {
	return c.verifyChecksum
}

// ConvertToLegacyAddress converts a bech32 Ed25519 address into a 90-tryte migration address.
func (c *Converter) ConvertToLegacyAddress(modernAddress string) (string, error) {
	legacyAddress, _, err := c.toLegacy(modernAddress)

	return legacyAddress, err
}

// ConvertToModernAddress converts an 81- or 90-tryte migration address into a bech32 Ed25519 address.
func (c *Converter) ConvertToModernAddress(legacyAddress string) (string, error) {
	modernAddress, _, err := c.toModern(legacyAddress)

	return modernAddress, err
}

// Convert converts s in the direction given by its length: inputs longer than a bech32 address can be are
// treated as legacy addresses, all others as modern ones.
func (c *Converter) Convert(s string) Result {
	return c.ConvertTo(DirectionOf(s), s)
}

// ConvertTo converts s in the given direction.
func (c *Converter) ConvertTo(direction Direction, s string) (result Result) {
	result.Input = s
	result.Direction = direction

	switch direction {
	case ToLegacy:
		result.Address, result.Ed25519Address, result.Err = c.toLegacy(s)
	case ToModern:
		result.Address, result.Ed25519Address, result.Err = c.toModern(s)
	default:
		result.Err = errors.Errorf("unknown conversion direction %q", direction)
	}

	return result
}

// IsLegacyAddress reports whether s is long enough to be a migration address.
func IsLegacyAddress(s string) bool {
	return len(strings.TrimSpace(s)) >= migration.BodyTrytesSize
}

// DirectionOf returns the direction in which s is converted by Convert.
func DirectionOf(s string) Direction {
	if IsLegacyAddress(s) {
		return ToModern
	}

	return ToLegacy
}

func (c *Converter) toLegacy(modernAddress string) (string, address.Ed25519Address, error) {
	_, ed25519Addr, err := address.ParseEd25519Bech32(strings.TrimSpace(modernAddress))
	if err != nil {
		if errors.Is(err, ErrUnsupportedAddressType) {
			return "", address.Ed25519Address{}, err
		}
		return "", address.Ed25519Address{}, errors.Errorf("%v: %w", err, ErrParse)
	}

	withChecksum, err := migration.AddChecksum(migration.EncodeAddress(ed25519Addr))
	if err != nil {
		return "", address.Ed25519Address{}, errors.WithStack(err)
	}

	return string(withChecksum), ed25519Addr, nil
}

func (c *Converter) toModern(legacyAddress string) (string, address.Ed25519Address, error) {
	trytes, err := parseLegacyAddress(legacyAddress)
	if err != nil {
		return "", address.Ed25519Address{}, err
	}

	if c.verifyChecksum && len(trytes) == migration.AddressWithChecksumTrytesSize {
		if err := migration.VerifyChecksum(trytes); err != nil {
			return "", address.Ed25519Address{}, err
		}
	}

	ed25519Addr, err := migration.DecodeAddress(trytes)
	if err != nil {
		return "", address.Ed25519Address{}, err
	}

	return ed25519Addr.Bech32(c.networkPrefix), ed25519Addr, nil
}

func parseLegacyAddress(s string) (trinary.Trytes, error) {
	trytes, err := ternary.ParseTrytes(s)
	if err != nil {
		return "", errors.Errorf("%v: %w", err, ErrParse)
	}

	switch len(trytes) {
	case migration.BodyTrytesSize, migration.AddressWithChecksumTrytesSize:
		return trytes, nil
	default:
		return "", errors.Errorf("legacy address has %d trytes instead of %d or %d: %w", len(trytes), migration.BodyTrytesSize, migration.AddressWithChecksumTrytesSize, ErrParse)
	}
}
