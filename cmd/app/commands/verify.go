package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	hashidUseCase "github.com/allisson/selfhash/internal/hashid/usecase"
)

// VerifyOptions describes what RunVerify checks. Without data the hash is verified
// against its own checksum.
type VerifyOptions struct {
	Hash    string
	Data    []byte
	HasData bool
	Format  string
}

// RunVerify prints whether the hash is valid and returns ErrHashInvalid when it is not.
func RunVerify(
	ctx context.Context,
	useCase hashidUseCase.HashUseCase,
	logger *slog.Logger,
	writer io.Writer,
	opts VerifyOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if opts.Hash == "" {
		return fmt.Errorf("--hash is required")
	}

	var (
		valid bool
		err   error
	)
	if opts.HasData {
		valid, err = useCase.Verify(ctx, opts.Data, opts.Hash)
	} else {
		valid, err = useCase.VerifySelfValidate(ctx, opts.Hash)
	}
	if err != nil {
		return fmt.Errorf("failed to verify hash: %w", err)
	}

	logger.Debug("hash verified", slog.Bool("with_data", opts.HasData), slog.Bool("valid", valid))

	if opts.Format == "json" {
		if err := writeJSON(writer, map[string]bool{"valid": valid}); err != nil {
			return err
		}
	} else if valid {
		_, _ = fmt.Fprintln(writer, "valid")
	} else {
		_, _ = fmt.Fprintln(writer, "invalid")
	}

	if !valid {
		return ErrHashInvalid
	}
	return nil
}
