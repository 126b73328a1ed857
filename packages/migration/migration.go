// Package migration converts Ed25519 addresses into 81-tryte legacy migration addresses and back.
//
// A migration address has the layout
//
//	TRANSFER | b1t6(A || BLAKE2b-256(A)[:4]) | 9
//
// where A is the 32 byte Ed25519 address. The 72 trytes in the middle bind the address to a prefix of its own
// hash so that a mistyped or corrupted address is rejected on decoding. For exchange on the legacy network the
// 81 trytes are followed by the usual 9-tryte Kerl checksum.
package migration

import (
	"github.com/iotaledger/iota.go/consts"
	"github.com/iotaledger/iota.go/trinary"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/ternary"
)

const (
	// Prefix is the literal that starts every migration address.
	Prefix trinary.Trytes = "TRANSFER"

	// Padding is the tryte that terminates the body of every migration address.
	Padding trinary.Trytes = "9"

	// HashPrefixSize is the number of BLAKE2b-256 bytes appended to the address inside the payload.
	HashPrefixSize = 4

	// PayloadSize is the size of the encoded payload in bytes: the address followed by the hash prefix.
	PayloadSize = address.Ed25519AddressSize + HashPrefixSize

	// PayloadTrytesSize is the number of trytes that encode the payload.
	PayloadTrytesSize = PayloadSize * ternary.TrytesPerByte

	// BodyTrytesSize is the length of a migration address without checksum.
	BodyTrytesSize = consts.HashTrytesSize

	// ChecksumTrytesSize is the length of the legacy address checksum.
	ChecksumTrytesSize = consts.AddressChecksumTrytesSize

	// AddressWithChecksumTrytesSize is the length of a migration address with checksum.
	AddressWithChecksumTrytesSize = consts.AddressWithChecksumTrytesSize

	// payloadTritsStart is the trit offset of the payload inside the body.
	payloadTritsStart = len(Prefix) * consts.TritsPerTryte

	// payloadTritsEnd is the trit offset directly after the payload.
	payloadTritsEnd = payloadTritsStart + PayloadTrytesSize*consts.TritsPerTryte
)
