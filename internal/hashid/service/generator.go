package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"hash"
	"io"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

var _ HashGenerator = (*Generator)(nil)

// Generator issues and verifies hash tokens for a single profile. It holds no mutable
// state and is safe for concurrent use as long as its random source is.
type Generator struct {
	profile     hashidDomain.Profile
	newDigest   func() hash.Hash
	newChecksum func() hash.Hash
	encoding    textEncoding
	random      io.Reader

	digestLength   int
	checksumLength int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRandomSource replaces crypto/rand as the source of random hash input.
func WithRandomSource(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// NewGenerator validates the profile and builds a Generator. Unsupported algorithms or
// encodings are rejected here instead of at first use.
func NewGenerator(profile hashidDomain.Profile, opts ...Option) (*Generator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	newDigest, err := digestFunc(profile.Algorithm)
	if err != nil {
		return nil, err
	}
	newChecksum, err := digestFunc(hashidDomain.ChecksumAlgorithm)
	if err != nil {
		return nil, err
	}
	encoding, err := encodingFor(profile.Encoding)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		profile:     profile,
		newDigest:   newDigest,
		newChecksum: newChecksum,
		encoding:    encoding,
		random:      rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.digestLength = len(profile.Prefix) + encoding.EncodedLen(newDigest().Size())
	g.checksumLength = encoding.EncodedLen(newChecksum().Size())
	if profile.TruncatesChecksum() && profile.CrcLength < g.checksumLength {
		g.checksumLength = profile.CrcLength
	}

	return g, nil
}

// Profile returns the configuration the generator was built with.
func (g *Generator) Profile() hashidDomain.Profile {
	return g.profile
}

// DigestLength returns the length of a plain hash, prefix included.
func (g *Generator) DigestLength() int {
	return g.digestLength
}

// ChecksumLength returns the number of checksum characters appended to self-validating
// hashes.
func (g *Generator) ChecksumLength() int {
	return g.checksumLength
}

// GenerateRandom hashes RandomDataSize fresh random bytes.
func (g *Generator) GenerateRandom() (string, error) {
	data, err := g.randomData()
	if err != nil {
		return "", err
	}
	return g.Generate(data), nil
}

// Generate returns prefix ++ encode(digest(data)).
func (g *Generator) Generate(data []byte) string {
	return g.profile.Prefix + g.encoding.EncodeToString(sum(g.newDigest, data))
}

// GenerateCrc returns the encoded checksum digest of data, cut to CrcLength characters
// when the profile truncates checksums.
func (g *Generator) GenerateCrc(data []byte) string {
	crc := g.encoding.EncodeToString(sum(g.newChecksum, data))
	if g.profile.TruncatesChecksum() && g.profile.CrcLength < len(crc) {
		return crc[:g.profile.CrcLength]
	}
	return crc
}

// GenerateRandomSelfValidate returns a self-validating hash of RandomDataSize fresh random
// bytes.
func (g *Generator) GenerateRandomSelfValidate() (string, error) {
	data, err := g.randomData()
	if err != nil {
		return "", err
	}
	return g.GenerateSelfValidate(data), nil
}

// GenerateSelfValidate returns the plain hash of data followed by the checksum of that
// hash string.
func (g *Generator) GenerateSelfValidate(data []byte) string {
	mainHash := g.Generate(data)
	return mainHash + g.GenerateCrc([]byte(mainHash))
}

// Verify reports whether hash is the plain hash of data.
func (g *Generator) Verify(data []byte, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(g.Generate(data)), []byte(hash)) == 1
}

// VerifySelfValidate reports whether the trailing checksum of hash matches the hash part
// before it. Tokens not longer than the checksum fail.
func (g *Generator) VerifySelfValidate(hash string) bool {
	mainHash, checksum, err := g.Split(hash)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.GenerateCrc([]byte(mainHash))), []byte(checksum)) == 1
}

// Split separates a self-validating hash into its main hash and checksum. The split
// point comes from the profile, not from the token.
func (g *Generator) Split(hash string) (mainHash, checksum string, err error) {
	if len(hash) <= g.checksumLength {
		return "", "", hashidDomain.ErrHashTooShort
	}
	cut := len(hash) - g.checksumLength
	return hash[:cut], hash[cut:], nil
}

func (g *Generator) randomData() ([]byte, error) {
	data := make([]byte, hashidDomain.RandomDataSize)
	if _, err := io.ReadFull(g.random, data); err != nil {
		return nil, fmt.Errorf("%w: %w", hashidDomain.ErrRandomSource, err)
	}
	return data, nil
}
