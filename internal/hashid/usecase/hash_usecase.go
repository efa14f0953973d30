package usecase

import (
	"context"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
	hashidService "github.com/allisson/selfhash/internal/hashid/service"
)

type hashUseCase struct {
	generator hashidService.HashGenerator
}

// NewHashUseCase creates a HashUseCase backed by the given generator.
func NewHashUseCase(generator hashidService.HashGenerator) HashUseCase {
	return &hashUseCase{
		generator: generator,
	}
}

// Profile describes the active profile.
func (h *hashUseCase) Profile(ctx context.Context) *hashidDomain.ProfileInfo {
	return &hashidDomain.ProfileInfo{
		Profile:        h.generator.Profile(),
		DigestLength:   h.generator.DigestLength(),
		ChecksumLength: h.generator.ChecksumLength(),
	}
}

// Generate returns the plain hash of data.
func (h *hashUseCase) Generate(ctx context.Context, data []byte) (string, error) {
	if err := validateData(data); err != nil {
		return "", err
	}
	return h.generator.Generate(data), nil
}

// GenerateRandom returns the plain hash of fresh random bytes.
func (h *hashUseCase) GenerateRandom(ctx context.Context) (string, error) {
	return h.generator.GenerateRandom()
}

// GenerateCrc returns the checksum of data.
func (h *hashUseCase) GenerateCrc(ctx context.Context, data []byte) (string, error) {
	if err := validateData(data); err != nil {
		return "", err
	}
	return h.generator.GenerateCrc(data), nil
}

// GenerateSelfValidate returns the self-validating hash of data.
func (h *hashUseCase) GenerateSelfValidate(ctx context.Context, data []byte) (string, error) {
	if err := validateData(data); err != nil {
		return "", err
	}
	return h.generator.GenerateSelfValidate(data), nil
}

// GenerateRandomSelfValidate returns a self-validating hash of fresh random bytes.
func (h *hashUseCase) GenerateRandomSelfValidate(ctx context.Context) (string, error) {
	return h.generator.GenerateRandomSelfValidate()
}

// Verify compares hash with the plain hash of data. Oversized hashes are reported as
// not valid without hashing.
func (h *hashUseCase) Verify(ctx context.Context, data []byte, hash string) (bool, error) {
	if err := validateData(data); err != nil {
		return false, err
	}
	if len(hash) > hashidDomain.MaxHashLength {
		return false, nil
	}
	return h.generator.Verify(data, hash), nil
}

// VerifySelfValidate checks the trailing checksum of hash.
func (h *hashUseCase) VerifySelfValidate(ctx context.Context, hash string) (bool, error) {
	if len(hash) > hashidDomain.MaxHashLength {
		return false, nil
	}
	return h.generator.VerifySelfValidate(hash), nil
}

// Inspect splits hash into its main hash and checksum and verifies it.
func (h *hashUseCase) Inspect(ctx context.Context, hash string) (*hashidDomain.Inspection, error) {
	if len(hash) > hashidDomain.MaxHashLength {
		return nil, hashidDomain.ErrHashTooLong
	}

	mainHash, checksum, err := h.generator.Split(hash)
	if err != nil {
		return nil, err
	}

	return &hashidDomain.Inspection{
		Hash:     hash,
		MainHash: mainHash,
		Checksum: checksum,
		Valid:    h.generator.VerifySelfValidate(hash),
	}, nil
}
