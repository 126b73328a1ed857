package ternary

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/consts"
	"github.com/iotaledger/iota.go/trinary"
)

// ParseTrytes parses a tryte string. Surrounding whitespace is dropped; the remaining characters must all be
// part of the tryte alphabet.
func ParseTrytes(s string) (trinary.Trytes, error) {
	trytes := trinary.Trytes(strings.TrimSpace(s))
	if err := trinary.ValidTrytes(trytes); err != nil {
		return "", errors.Errorf("invalid tryte string %q (%v): %w", s, err, ErrInvalidTrytes)
	}

	return trytes, nil
}

// TritsOf returns the trits of already validated trytes.
func TritsOf(trytes trinary.Trytes) trinary.Trits {
	return trinary.MustTrytesToTrits(trytes)
}

// TrytesOf returns the trytes of trits whose length is a multiple of 3.
func TrytesOf(trits trinary.Trits) (trinary.Trytes, error) {
	if len(trits)%consts.TritsPerTryte != 0 {
		return "", errors.Errorf("%d trits do not form whole trytes: %w", len(trits), ErrInvalidLength)
	}

	trytes, err := trinary.TritsToTrytes(trits)
	if err != nil {
		return "", errors.Errorf("failed to convert trits (%v): %w", err, ErrInvalidTrits)
	}

	return trytes, nil
}
