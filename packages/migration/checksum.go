package migration

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/consts"
	"github.com/iotaledger/iota.go/trinary"

	"github.com/iotaledger/migration-address/packages/digest"
	"github.com/iotaledger/migration-address/packages/ternary"
)

// AddChecksum appends the 9-tryte legacy checksum to an 81-tryte migration address.
func AddChecksum(body trinary.Trytes) (trinary.Trytes, error) {
	checksum, err := computeChecksum(body)
	if err != nil {
		return "", err
	}

	return body + checksum, nil
}

// VerifyChecksum checks the trailing checksum of a 90-tryte migration address.
// DecodeAddress never calls it; callers that want checksum enforcement have to do so explicitly.
func VerifyChecksum(trytes trinary.Trytes) error {
	if len(trytes) != AddressWithChecksumTrytesSize {
		return errors.Errorf("address has %d trytes instead of %d: %w", len(trytes), AddressWithChecksumTrytesSize, ErrInvalidFormat)
	}

	expected, err := computeChecksum(trytes[:BodyTrytesSize])
	if err != nil {
		return err
	}
	if actual := trytes[BodyTrytesSize:]; actual != expected {
		return errors.Errorf("checksum %s does not match %s: %w", actual, expected, ErrInvalidChecksum)
	}

	return nil
}

func computeChecksum(body trinary.Trytes) (trinary.Trytes, error) {
	if len(body) != BodyTrytesSize {
		return "", errors.Errorf("address has %d trytes instead of %d: %w", len(body), BodyTrytesSize, ErrInvalidFormat)
	}
	if err := trinary.ValidTrytes(body); err != nil {
		return "", errors.Errorf("address contains invalid trytes (%v): %w", err, ErrInvalidFormat)
	}

	// the sponge consumes exactly one block, the 3 padding trits are never absorbed
	padded := append(ternary.TritsOf(body), 0, 0, 0)
	hash, err := digest.TernarySpongeHash(padded[:consts.HashTrinarySize], consts.HashTrinarySize)
	if err != nil {
		return "", errors.Errorf("failed to hash address: %w", err)
	}

	hashTrytes, err := ternary.TrytesOf(hash)
	if err != nil {
		return "", err
	}

	return hashTrytes[consts.HashTrytesSize-ChecksumTrytesSize:], nil
}
