package usecase

import (
	"context"
	"time"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
	"github.com/allisson/selfhash/internal/metrics"
)

const metricsDomain = "hashid"

// hashUseCaseWithMetrics decorates HashUseCase with metrics instrumentation.
type hashUseCaseWithMetrics struct {
	next    HashUseCase
	metrics metrics.BusinessMetrics
}

// NewHashUseCaseWithMetrics wraps a HashUseCase with metrics recording.
func NewHashUseCaseWithMetrics(useCase HashUseCase, m metrics.BusinessMetrics) HashUseCase {
	return &hashUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Profile is not instrumented.
func (h *hashUseCaseWithMetrics) Profile(ctx context.Context) *hashidDomain.ProfileInfo {
	return h.next.Profile(ctx)
}

// Generate records metrics for plain hash generation.
func (h *hashUseCaseWithMetrics) Generate(ctx context.Context, data []byte) (string, error) {
	start := time.Now()
	hash, err := h.next.Generate(ctx, data)
	h.record(ctx, "generate", start, errorStatus(err))
	return hash, err
}

// GenerateRandom records metrics for random plain hash generation.
func (h *hashUseCaseWithMetrics) GenerateRandom(ctx context.Context) (string, error) {
	start := time.Now()
	hash, err := h.next.GenerateRandom(ctx)
	h.record(ctx, "generate_random", start, errorStatus(err))
	return hash, err
}

// GenerateCrc records metrics for checksum generation.
func (h *hashUseCaseWithMetrics) GenerateCrc(ctx context.Context, data []byte) (string, error) {
	start := time.Now()
	crc, err := h.next.GenerateCrc(ctx, data)
	h.record(ctx, "generate_crc", start, errorStatus(err))
	return crc, err
}

// GenerateSelfValidate records metrics for self-validating hash generation.
func (h *hashUseCaseWithMetrics) GenerateSelfValidate(ctx context.Context, data []byte) (string, error) {
	start := time.Now()
	hash, err := h.next.GenerateSelfValidate(ctx, data)
	h.record(ctx, "generate_self_validate", start, errorStatus(err))
	return hash, err
}

// GenerateRandomSelfValidate records metrics for random self-validating hash generation.
func (h *hashUseCaseWithMetrics) GenerateRandomSelfValidate(ctx context.Context) (string, error) {
	start := time.Now()
	hash, err := h.next.GenerateRandomSelfValidate(ctx)
	h.record(ctx, "generate_random_self_validate", start, errorStatus(err))
	return hash, err
}

// Verify records metrics for plain hash verification.
func (h *hashUseCaseWithMetrics) Verify(ctx context.Context, data []byte, hash string) (bool, error) {
	start := time.Now()
	valid, err := h.next.Verify(ctx, data, hash)
	h.record(ctx, "verify", start, verifyStatus(valid, err))
	return valid, err
}

// VerifySelfValidate records metrics for self-validating hash verification.
func (h *hashUseCaseWithMetrics) VerifySelfValidate(ctx context.Context, hash string) (bool, error) {
	start := time.Now()
	valid, err := h.next.VerifySelfValidate(ctx, hash)
	h.record(ctx, "verify_self_validate", start, verifyStatus(valid, err))
	return valid, err
}

// Inspect records metrics for hash inspection.
func (h *hashUseCaseWithMetrics) Inspect(ctx context.Context, hash string) (*hashidDomain.Inspection, error) {
	start := time.Now()
	inspection, err := h.next.Inspect(ctx, hash)
	h.record(ctx, "inspect", start, errorStatus(err))
	return inspection, err
}

func (h *hashUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	h.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	h.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func errorStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// verifyStatus separates rejected tokens from failed calls.
func verifyStatus(valid bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case valid:
		return "valid"
	default:
		return "invalid"
	}
}
