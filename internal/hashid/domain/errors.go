package domain

import (
	"github.com/allisson/selfhash/internal/errors"
)

var (
	// ErrInvalidAlgorithm indicates the digest algorithm is not supported.
	ErrInvalidAlgorithm = errors.Wrap(errors.ErrInvalidInput, "invalid algorithm")

	// ErrInvalidEncoding indicates the text encoding is not supported.
	ErrInvalidEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid encoding")

	// ErrPrefixTooLong indicates the profile prefix exceeds MaxPrefixLength.
	ErrPrefixTooLong = errors.Wrap(errors.ErrInvalidInput, "prefix exceeds maximum length")

	// ErrDataTooLarge indicates the input exceeds MaxDataSize.
	ErrDataTooLarge = errors.Wrap(errors.ErrInvalidInput, "data exceeds maximum size")

	// ErrHashTooShort indicates a token is too short to hold a main hash and a checksum.
	ErrHashTooShort = errors.Wrap(errors.ErrInvalidInput, "hash is too short")

	// ErrHashTooLong indicates a token exceeds MaxHashLength.
	ErrHashTooLong = errors.Wrap(errors.ErrInvalidInput, "hash exceeds maximum length")

	// ErrRandomSource indicates random input could not be read.
	ErrRandomSource = errors.Wrap(errors.ErrUnavailable, "failed to read random bytes")
)
