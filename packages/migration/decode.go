package migration

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/digest"
	"github.com/iotaledger/migration-address/packages/ternary"
)

// DecodeAddress recovers the Ed25519 address from a migration address. Only the first BodyTrytesSize trytes
// are read, so an appended checksum is ignored and not verified.
func DecodeAddress(trytes trinary.Trytes) (address.Ed25519Address, error) {
	if len(trytes) < BodyTrytesSize {
		return address.Ed25519Address{}, errors.Errorf("migration address has %d trytes instead of at least %d: %w", len(trytes), BodyTrytesSize, ErrInvalidFormat)
	}
	body := trytes[:BodyTrytesSize]

	if err := trinary.ValidTrytes(body); err != nil {
		return address.Ed25519Address{}, errors.Errorf("migration address contains invalid trytes (%v): %w", err, ErrInvalidFormat)
	}
	if body[:len(Prefix)] != Prefix {
		return address.Ed25519Address{}, errors.Errorf("migration address does not start with %s: %w", Prefix, ErrInvalidFormat)
	}
	if body[BodyTrytesSize-len(Padding):] != Padding {
		return address.Ed25519Address{}, errors.Errorf("migration address does not end with %s: %w", Padding, ErrInvalidFormat)
	}

	trits := ternary.TritsOf(body)
	payload, err := ternary.DecodeTrits(trits[payloadTritsStart:payloadTritsEnd])
	if err != nil {
		return address.Ed25519Address{}, errors.Errorf("failed to decode payload: %v: %w", err, ErrInvalidFormat)
	}

	addrBytes, hashPrefix := payload[:address.Ed25519AddressSize], payload[address.Ed25519AddressSize:]
	hash := digest.BinaryHash(addrBytes)
	if !bytes.Equal(hash[:HashPrefixSize], hashPrefix) {
		return address.Ed25519Address{}, errors.Errorf("hash prefix %x does not match address hash %x: %w", hashPrefix, hash[:HashPrefixSize], ErrIntegrityMismatch)
	}

	return address.Ed25519AddressFromDigest(addrBytes)
}
