package service

import (
	"crypto/md5"  //nolint:gosec // offered for compatibility with legacy identifiers
	"crypto/sha1" //nolint:gosec // fixed checksum primitive, not used for secrecy
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

var digestConstructors = map[hashidDomain.Algorithm]func() hash.Hash{
	hashidDomain.AlgorithmMD5:        md5.New,
	hashidDomain.AlgorithmSHA1:       sha1.New,
	hashidDomain.AlgorithmSHA224:     sha256.New224,
	hashidDomain.AlgorithmSHA256:     sha256.New,
	hashidDomain.AlgorithmSHA384:     sha512.New384,
	hashidDomain.AlgorithmSHA512:     sha512.New,
	hashidDomain.AlgorithmSHA512_256: sha512.New512_256,
	hashidDomain.AlgorithmSHA3_256:   func() hash.Hash { return sha3.New256() },
	hashidDomain.AlgorithmSHA3_512:   func() hash.Hash { return sha3.New512() },
	hashidDomain.AlgorithmBLAKE2b256: func() hash.Hash { return mustBLAKE2b(blake2b.New256(nil)) },
	hashidDomain.AlgorithmBLAKE2b512: func() hash.Hash { return mustBLAKE2b(blake2b.New512(nil)) },
	hashidDomain.AlgorithmBLAKE3:     func() hash.Hash { return blake3.New(32, nil) },
}

// digestFunc returns a constructor of fresh hash states for the algorithm.
func digestFunc(algorithm hashidDomain.Algorithm) (func() hash.Hash, error) {
	newHash, ok := digestConstructors[algorithm]
	if !ok {
		return nil, hashidDomain.ErrInvalidAlgorithm
	}
	return newHash, nil
}

// mustBLAKE2b unwraps blake2b constructors, which only fail for oversized keys.
func mustBLAKE2b(h hash.Hash, err error) hash.Hash {
	if err != nil {
		panic(err)
	}
	return h
}

// sum computes the digest of data with a fresh hash state.
func sum(newHash func() hash.Hash, data []byte) []byte {
	h := newHash()
	_, _ = h.Write(data)
	return h.Sum(nil)
}
