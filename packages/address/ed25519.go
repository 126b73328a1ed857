package address

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// region Ed25519Address ///////////////////////////////////////////////////////////////////////////////////////////////

// Ed25519AddressSize is the size of the digest held by an Ed25519Address.
const Ed25519AddressSize = blake2b.Size256

// Ed25519Address is the BLAKE2b-256 hash of an Ed25519 public key.
type Ed25519Address [Ed25519AddressSize]byte

// NewEd25519Address derives the Ed25519Address of the given public key.
func NewEd25519Address(publicKey []byte) Ed25519Address {
	return blake2b.Sum256(publicKey)
}

// Ed25519AddressFromDigest creates an Ed25519Address from a 32 byte digest.
func Ed25519AddressFromDigest(digest []byte) (address Ed25519Address, err error) {
	if len(digest) != Ed25519AddressSize {
		return address, errors.Errorf("digest has %d bytes instead of %d: %w", len(digest), Ed25519AddressSize, ErrInvalidLength)
	}
	copy(address[:], digest)

	return address, nil
}

// Ed25519AddressFromMarshalUtil parses an Ed25519Address including its type byte from the given MarshalUtil.
func Ed25519AddressFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (address Ed25519Address, err error) {
	addressType, err := marshalUtil.ReadByte()
	if err != nil {
		return address, errors.Errorf("failed to parse AddressType (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if AddressType(addressType) != Ed25519AddressType {
		return address, errors.Errorf("invalid AddressType (%X): %w", addressType, ErrUnsupportedAddressType)
	}

	digest, err := marshalUtil.ReadBytes(Ed25519AddressSize)
	if err != nil {
		return address, errors.Errorf("error parsing digest (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	copy(address[:], digest)

	return address, nil
}

// Type returns the AddressType of the Address.
func (e Ed25519Address) Type() AddressType {
	return Ed25519AddressType
}

// Bytes returns the type byte followed by the digest.
func (e Ed25519Address) Bytes() []byte {
	return byteutils.ConcatBytes([]byte{byte(Ed25519AddressType)}, e[:])
}

// Bech32 returns the bech32 encoding of the Address for the given network.
func (e Ed25519Address) Bech32(hrp NetworkPrefix) string {
	data, err := bech32.ConvertBits(e.Bytes(), 8, 5, true)
	if err != nil {
		panic(err)
	}

	s, err := bech32.Encode(string(hrp), data)
	if err != nil {
		panic(err)
	}

	return s
}

// Base58 returns a base58 encoded version of the serialized Address.
func (e Ed25519Address) Base58() string {
	return base58.Encode(e.Bytes())
}

// String returns a human readable version of the Address for debug purposes.
func (e Ed25519Address) String() string {
	return stringify.Struct("Ed25519Address",
		stringify.StructField("Digest", e[:]),
		stringify.StructField("Bech32", e.Bech32(PrefixMainnet)),
	)
}

// code contract (make sure the type implements all required methods)
var _ Address = Ed25519Address{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
