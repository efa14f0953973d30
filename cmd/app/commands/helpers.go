// Package commands implements the CLI commands. Each Run function takes its
// dependencies explicitly so it can be exercised with mocks.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/selfhash/internal/app"
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// ErrHashInvalid is returned by verify when the hash does not check out. main turns it
// into exit status 1.
var ErrHashInvalid = errors.New("hash is not valid")

// IOTuple holds the command input and output streams.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// ReadInput returns data as bytes, or the whole of reader when fromStdin is set. Input
// is capped one byte past the limit so oversized data is still rejected downstream.
func ReadInput(data string, fromStdin bool, reader io.Reader) ([]byte, error) {
	if !fromStdin {
		return []byte(data), nil
	}
	if data != "" {
		return nil, errors.New("--data and --stdin are mutually exclusive")
	}
	input, err := io.ReadAll(io.LimitReader(reader, hashidDomain.MaxDataSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return input, nil
}

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}

// closeContainer shuts the container down and logs any error.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
