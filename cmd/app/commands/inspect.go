package commands

import (
	"context"
	"fmt"
	"io"

	hashidUseCase "github.com/allisson/selfhash/internal/hashid/usecase"
)

type profileOutput struct {
	Prefix         string `json:"prefix"`
	Algorithm      string `json:"algorithm"`
	Encoding       string `json:"encoding"`
	CrcLength      int    `json:"crc_length"`
	DigestLength   int    `json:"digest_length"`
	ChecksumLength int    `json:"checksum_length"`
}

type inspectionOutput struct {
	Hash     string `json:"hash"`
	MainHash string `json:"main_hash"`
	Checksum string `json:"checksum"`
	Valid    bool   `json:"valid"`
}

// RunInspect prints the active profile and, when hash is given, how it splits into main
// hash and checksum.
func RunInspect(
	ctx context.Context,
	useCase hashidUseCase.HashUseCase,
	writer io.Writer,
	hash string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	info := useCase.Profile(ctx)
	profile := profileOutput{
		Prefix:         info.Prefix,
		Algorithm:      info.Algorithm.String(),
		Encoding:       info.Encoding.String(),
		CrcLength:      info.CrcLength,
		DigestLength:   info.DigestLength,
		ChecksumLength: info.ChecksumLength,
	}

	if hash == "" {
		if format == "json" {
			return writeJSON(writer, profile)
		}
		outputProfileText(writer, profile)
		return nil
	}

	inspection, err := useCase.Inspect(ctx, hash)
	if err != nil {
		return fmt.Errorf("failed to inspect hash: %w", err)
	}
	result := inspectionOutput{
		Hash:     inspection.Hash,
		MainHash: inspection.MainHash,
		Checksum: inspection.Checksum,
		Valid:    inspection.Valid,
	}

	if format == "json" {
		return writeJSON(writer, struct {
			Profile    profileOutput    `json:"profile"`
			Inspection inspectionOutput `json:"inspection"`
		}{profile, result})
	}
	outputProfileText(writer, profile)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "Main hash:       %s\n", result.MainHash)
	_, _ = fmt.Fprintf(writer, "Checksum:        %s\n", result.Checksum)
	_, _ = fmt.Fprintf(writer, "Valid:           %t\n", result.Valid)
	return nil
}

func outputProfileText(writer io.Writer, p profileOutput) {
	_, _ = fmt.Fprintf(writer, "Prefix:          %q\n", p.Prefix)
	_, _ = fmt.Fprintf(writer, "Algorithm:       %s\n", p.Algorithm)
	_, _ = fmt.Fprintf(writer, "Encoding:        %s\n", p.Encoding)
	_, _ = fmt.Fprintf(writer, "CRC length:      %d\n", p.CrcLength)
	_, _ = fmt.Fprintf(writer, "Digest length:   %d\n", p.DigestLength)
	_, _ = fmt.Fprintf(writer, "Checksum length: %d\n", p.ChecksumLength)
}
