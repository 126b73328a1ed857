package ternary

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLength is returned if a trit or tryte sequence does not have a decodable length.
	ErrInvalidLength = errors.New("invalid ternary length")
	// ErrInvalidTrits is returned if trits do not form a valid byte encoding.
	ErrInvalidTrits = errors.New("invalid trits")
	// ErrInvalidTrytes is returned if a string contains characters outside of the tryte alphabet.
	ErrInvalidTrytes = errors.New("invalid trytes")
)
