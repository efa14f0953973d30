package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	hashidUseCase "github.com/allisson/selfhash/internal/hashid/usecase"
)

// GenerateOptions selects what RunGenerate hashes and how.
type GenerateOptions struct {
	Data []byte
	// HasInput is set when --data or --stdin was given, even if the input is empty.
	HasInput       bool
	Random         bool
	SelfValidating bool
	Format         string
}

// RunGenerate prints a plain or self-validating hash of the input, or of random bytes.
func RunGenerate(
	ctx context.Context,
	useCase hashidUseCase.HashUseCase,
	logger *slog.Logger,
	writer io.Writer,
	opts GenerateOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if opts.Random && (opts.HasInput || len(opts.Data) > 0) {
		return fmt.Errorf("--random cannot be combined with input data")
	}

	var (
		hash string
		err  error
	)
	switch {
	case opts.Random && opts.SelfValidating:
		hash, err = useCase.GenerateRandomSelfValidate(ctx)
	case opts.Random:
		hash, err = useCase.GenerateRandom(ctx)
	case opts.SelfValidating:
		hash, err = useCase.GenerateSelfValidate(ctx, opts.Data)
	default:
		hash, err = useCase.Generate(ctx, opts.Data)
	}
	if err != nil {
		return fmt.Errorf("failed to generate hash: %w", err)
	}

	logger.Debug("hash generated",
		slog.Bool("random", opts.Random),
		slog.Bool("self_validating", opts.SelfValidating),
	)

	if opts.Format == "json" {
		return writeJSON(writer, map[string]string{"hash": hash})
	}
	_, _ = fmt.Fprintln(writer, hash)
	return nil
}

// RunCrc prints the checksum of the input.
func RunCrc(
	ctx context.Context,
	useCase hashidUseCase.HashUseCase,
	writer io.Writer,
	data []byte,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	crc, err := useCase.GenerateCrc(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to generate checksum: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, map[string]string{"crc": crc})
	}
	_, _ = fmt.Fprintln(writer, crc)
	return nil
}
