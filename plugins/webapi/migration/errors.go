package migration

import "github.com/cockroachdb/errors"

var (
	// ErrNoAddresses is returned for batch requests without addresses.
	ErrNoAddresses = errors.New("no addresses given")
	// ErrBatchTooLarge is returned for batch requests with more addresses than allowed.
	ErrBatchTooLarge = errors.New("too many addresses in batch")
)
