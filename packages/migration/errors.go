package migration

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidFormat is returned if a migration address does not have the TRANSFER...9 structure.
	ErrInvalidFormat = errors.New("invalid migration address format")
	// ErrIntegrityMismatch is returned if the embedded hash prefix does not match the decoded address.
	ErrIntegrityMismatch = errors.New("migration address hash mismatch")
	// ErrInvalidChecksum is returned if the legacy checksum of a migration address is wrong.
	ErrInvalidChecksum = errors.New("invalid migration address checksum")
)
