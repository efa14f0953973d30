package domain

import (
	"fmt"
)

// Profile is the immutable configuration shared by generation and verification.
//
// Tokens do not describe their own checksum length: a self-validating token only verifies
// against the exact Profile (prefix, algorithm, encoding and crc length) that issued it.
type Profile struct {
	// Prefix is prepended verbatim to every main digest.
	Prefix string
	// Algorithm computes the main digest.
	Algorithm Algorithm
	// Encoding renders digests as text.
	Encoding Encoding
	// CrcLength is the number of encoded checksum characters kept. Values below 1 keep the
	// whole encoded checksum.
	CrcLength int
}

// Validate checks the prefix length, algorithm and encoding of the profile.
func (p Profile) Validate() error {
	if len(p.Prefix) > MaxPrefixLength {
		return fmt.Errorf("%w: %d bytes", ErrPrefixTooLong, len(p.Prefix))
	}
	if err := p.Algorithm.Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, p.Algorithm)
	}
	if err := p.Encoding.Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, p.Encoding)
	}
	return nil
}

// TruncatesChecksum reports whether checksums are cut to CrcLength characters.
func (p Profile) TruncatesChecksum() bool {
	return p.CrcLength >= 1
}

// ProfileInfo describes a profile together with the token lengths it produces.
type ProfileInfo struct {
	Profile
	// DigestLength is the length of a plain hash, prefix included.
	DigestLength int
	// ChecksumLength is the number of characters appended to self-validating hashes.
	ChecksumLength int
}

// Inspection is the result of splitting a self-validating hash.
type Inspection struct {
	Hash     string
	MainHash string
	Checksum string
	Valid    bool
}
