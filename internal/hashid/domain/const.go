// Package domain defines the core types of self-validating hash identifiers.
// A Profile fixes the prefix, digest algorithm, text encoding and checksum length used to
// issue and verify tokens.
package domain

// Algorithm selects the digest primitive used to compute the main hash.
type Algorithm string

const (
	AlgorithmMD5        Algorithm = "md5"
	AlgorithmSHA1       Algorithm = "sha1"
	AlgorithmSHA224     Algorithm = "sha224"
	AlgorithmSHA256     Algorithm = "sha256"
	AlgorithmSHA384     Algorithm = "sha384"
	AlgorithmSHA512     Algorithm = "sha512"
	AlgorithmSHA512_256 Algorithm = "sha512-256"
	AlgorithmSHA3_256   Algorithm = "sha3-256"
	AlgorithmSHA3_512   Algorithm = "sha3-512"
	AlgorithmBLAKE2b256 Algorithm = "blake2b-256"
	AlgorithmBLAKE2b512 Algorithm = "blake2b-512"
	AlgorithmBLAKE3     Algorithm = "blake3"
)

// Encoding selects how raw digest bytes are rendered as text.
type Encoding string

const (
	// EncodingHex renders lowercase hexadecimal.
	EncodingHex Encoding = "hex"
	// EncodingBase64 renders standard base64 with padding.
	EncodingBase64 Encoding = "base64"
	// EncodingBase64URL renders URL-safe base64 without padding.
	EncodingBase64URL Encoding = "base64url"
	// EncodingBase32 renders the lowercase RFC 4648 alphabet without padding.
	EncodingBase32 Encoding = "base32"
)

const (
	// ChecksumAlgorithm is the fixed primitive used for checksums, independent of the
	// profile algorithm so the checksum format stays stable across algorithm changes.
	ChecksumAlgorithm = AlgorithmSHA1

	// RandomDataSize is the number of random bytes fed into random hash generation.
	RandomDataSize = 16

	// MaxDataSize is the maximum input accepted by the use case layer (64 KB).
	MaxDataSize = 65536

	// MaxPrefixLength is the longest prefix a profile may carry. With the widest digest
	// and a full checksum, issued tokens stay within MaxHashLength.
	MaxPrefixLength = 256

	// MaxHashLength is the longest token considered for verification.
	MaxHashLength = 1024
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{
	AlgorithmMD5,
	AlgorithmSHA1,
	AlgorithmSHA224,
	AlgorithmSHA256,
	AlgorithmSHA384,
	AlgorithmSHA512,
	AlgorithmSHA512_256,
	AlgorithmSHA3_256,
	AlgorithmSHA3_512,
	AlgorithmBLAKE2b256,
	AlgorithmBLAKE2b512,
	AlgorithmBLAKE3,
}

// Encodings lists every supported encoding in display order.
var Encodings = []Encoding{
	EncodingHex,
	EncodingBase64,
	EncodingBase64URL,
	EncodingBase32,
}

// Validate checks if the algorithm is supported.
func (a Algorithm) Validate() error {
	for _, supported := range Algorithms {
		if a == supported {
			return nil
		}
	}
	return ErrInvalidAlgorithm
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// Validate checks if the encoding is supported.
func (e Encoding) Validate() error {
	for _, supported := range Encodings {
		if e == supported {
			return nil
		}
	}
	return ErrInvalidEncoding
}

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	return string(e)
}
