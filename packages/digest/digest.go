// Package digest provides the two hash constructions used by migration addresses: BLAKE2b-256 over bytes for
// integrity binding and the Kerl sponge over trits for the legacy checksum.
package digest

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/consts"
	"github.com/iotaledger/iota.go/kerl"
	"github.com/iotaledger/iota.go/trinary"
	"golang.org/x/crypto/blake2b"
)

// BinaryHashSize is the size of a BinaryHash digest in bytes.
const BinaryHashSize = blake2b.Size256

// ErrInvalidSpongeLength is returned if the sponge is fed or squeezed with a length that is not a positive
// multiple of the sponge rate.
var ErrInvalidSpongeLength = errors.New("invalid sponge length")

// BinaryHash returns the BLAKE2b-256 digest of data.
func BinaryHash(data []byte) [BinaryHashSize]byte {
	return blake2b.Sum256(data)
}

// TernarySpongeHash absorbs trits into a fresh Kerl sponge and squeezes outputLength trits.
// Both lengths must be positive multiples of consts.HashTrinarySize.
func TernarySpongeHash(trits trinary.Trits, outputLength int) (trinary.Trits, error) {
	if !validSpongeLength(len(trits)) {
		return nil, errors.Errorf("can not absorb %d trits: %w", len(trits), ErrInvalidSpongeLength)
	}
	if !validSpongeLength(outputLength) {
		return nil, errors.Errorf("can not squeeze %d trits: %w", outputLength, ErrInvalidSpongeLength)
	}

	k := kerl.NewKerl()
	if err := k.Absorb(trits); err != nil {
		return nil, errors.Errorf("failed to absorb trits: %w", err)
	}

	hash, err := k.Squeeze(outputLength)
	if err != nil {
		return nil, errors.Errorf("failed to squeeze trits: %w", err)
	}

	return hash, nil
}

func validSpongeLength(length int) bool {
	return length > 0 && length%consts.HashTrinarySize == 0
}
