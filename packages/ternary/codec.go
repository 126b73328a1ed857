// Package ternary wraps the byte<->trit transcoding and the tryte string handling used by legacy addresses.
package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/encoding/b1t6"
	"github.com/iotaledger/iota.go/trinary"
)

// TritsPerByte is the width of the trit group that encodes a single byte.
const TritsPerByte = 6

// TrytesPerByte is the width of the tryte group that encodes a single byte.
const TrytesPerByte = 2

// EncodedTritsLen returns the trit-length of the encoding of n bytes.
func EncodedTritsLen(n int) int {
	return b1t6.EncodedLen(n)
}

// EncodeBytes encodes src into its balanced ternary representation using 6 trits per byte.
func EncodeBytes(src []byte) trinary.Trits {
	dst := make(trinary.Trits, b1t6.EncodedLen(len(src)))
	b1t6.Encode(dst, src)

	return dst
}

// EncodeToTrytes encodes src into trytes using 2 trytes per byte.
func EncodeToTrytes(src []byte) trinary.Trytes {
	return b1t6.EncodeToTrytes(src)
}

// DecodeTrits recovers the bytes encoded in src. The length of src must be a multiple of TritsPerByte.
func DecodeTrits(src trinary.Trits) ([]byte, error) {
	if len(src)%TritsPerByte != 0 {
		return nil, errors.Errorf("%d trits can not be decoded: %w", len(src), ErrInvalidLength)
	}

	dst := make([]byte, b1t6.DecodedLen(len(src)))
	n, err := b1t6.Decode(dst, src)
	if err != nil {
		return nil, errors.Errorf("failed to decode trits (%v): %w", err, ErrInvalidTrits)
	}

	return dst[:n], nil
}

// DecodeTrytes recovers the bytes encoded in trytes. The length of trytes must be even.
func DecodeTrytes(trytes trinary.Trytes) ([]byte, error) {
	if len(trytes)%TrytesPerByte != 0 {
		return nil, errors.Errorf("%d trytes can not be decoded: %w", len(trytes), ErrInvalidLength)
	}
	if err := trinary.ValidTrytes(trytes); err != nil {
		return nil, errors.Errorf("failed to decode trytes (%v): %w", err, ErrInvalidTrytes)
	}

	bytes, err := b1t6.DecodeTrytes(trytes)
	if err != nil {
		return nil, errors.Errorf("failed to decode trytes (%v): %w", err, ErrInvalidTrits)
	}

	return bytes, nil
}
