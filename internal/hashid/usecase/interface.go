// Package usecase exposes the self-validating hash operations to transports (HTTP, CLI)
// with input limits, context propagation and metrics instrumentation.
package usecase

import (
	"context"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// HashUseCase defines the hash issuing and verification operations.
type HashUseCase interface {
	// Profile describes the active profile and the token lengths it produces.
	Profile(ctx context.Context) *hashidDomain.ProfileInfo

	// Generate returns the plain hash of data.
	Generate(ctx context.Context, data []byte) (string, error)

	// GenerateRandom returns the plain hash of fresh random bytes.
	GenerateRandom(ctx context.Context) (string, error)

	// GenerateCrc returns the checksum of data.
	GenerateCrc(ctx context.Context, data []byte) (string, error)

	// GenerateSelfValidate returns the plain hash of data followed by its checksum.
	GenerateSelfValidate(ctx context.Context, data []byte) (string, error)

	// GenerateRandomSelfValidate returns a self-validating hash of fresh random bytes.
	GenerateRandomSelfValidate(ctx context.Context) (string, error)

	// Verify reports whether hash is the plain hash of data. A mismatch is not an error.
	Verify(ctx context.Context, data []byte, hash string) (bool, error)

	// VerifySelfValidate reports whether hash carries a matching checksum. A mismatch is
	// not an error.
	VerifySelfValidate(ctx context.Context, hash string) (bool, error)

	// Inspect splits a self-validating hash into its parts and verifies it.
	// Returns ErrHashTooShort when the hash cannot hold a checksum.
	Inspect(ctx context.Context, hash string) (*hashidDomain.Inspection, error)
}
