// Package service implements the self-validating hash scheme: plain hashes, checksums
// derived from them and the split rule used to verify issued tokens.
package service

import (
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// HashGenerator defines the self-validating hash operations over one immutable profile.
type HashGenerator interface {
	Profile() hashidDomain.Profile
	DigestLength() int
	ChecksumLength() int
	GenerateRandom() (string, error)
	Generate(data []byte) string
	GenerateCrc(data []byte) string
	GenerateRandomSelfValidate() (string, error)
	GenerateSelfValidate(data []byte) string
	Verify(data []byte, hash string) bool
	VerifySelfValidate(hash string) bool
	Split(hash string) (mainHash, checksum string, err error)
}
