package converter

import (
	"github.com/iotaledger/migration-address/packages/address"
)

// Direction denotes in which representation an address is converted.
type Direction string

const (
	// ToLegacy converts a bech32 address into a migration address.
	ToLegacy Direction = "legacy"
	// ToModern converts a migration address into a bech32 address.
	ToModern Direction = "modern"
)

// Result is the outcome of converting a single input.
type Result struct {
	Input     string
	Address   string
	Direction Direction
	Err       error

	// Ed25519Address is the address both representations encode. It is only set on success.
	Ed25519Address address.Ed25519Address
}
