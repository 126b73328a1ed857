package converter

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/migration"
)

var (
	// ErrParse is returned if an input string is not a well formed address of the expected representation.
	ErrParse = errors.New("failed to parse address")
	// ErrInvalidFormat is returned if a legacy address is not structured like a migration address.
	ErrInvalidFormat = migration.ErrInvalidFormat
	// ErrIntegrityMismatch is returned if the hash embedded in a migration address does not match its address.
	ErrIntegrityMismatch = migration.ErrIntegrityMismatch
	// ErrInvalidChecksum is returned if checksum verification is enabled and a legacy checksum is wrong.
	ErrInvalidChecksum = migration.ErrInvalidChecksum
	// ErrUnsupportedAddressType is returned if a bech32 address is not an Ed25519 address.
	ErrUnsupportedAddressType = address.ErrUnsupportedAddressType
)
