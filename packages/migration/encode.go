package migration

import (
	"strings"

	"github.com/iotaledger/iota.go/trinary"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/digest"
	"github.com/iotaledger/migration-address/packages/ternary"
)

// EncodeAddress returns the 81-tryte migration address of addr.
func EncodeAddress(addr address.Ed25519Address) trinary.Trytes {
	hash := digest.BinaryHash(addr[:])

	payload := make([]byte, 0, PayloadSize)
	payload = append(payload, addr[:]...)
	payload = append(payload, hash[:HashPrefixSize]...)

	var body strings.Builder
	body.Grow(BodyTrytesSize)
	body.WriteString(string(Prefix))
	body.WriteString(string(ternary.EncodeToTrytes(payload)))
	body.WriteString(string(Padding))

	return trinary.Trytes(body.String())
}
