// Package main is the selfhash command line: the HTTP server plus offline commands to
// issue, verify and inspect self-validating hashes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/selfhash/cmd/app/commands"
)

var version = "dev"

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:     "selfhash",
		Usage:    "Issue and verify self-validating hashes",
		Version:  version,
		Flags:    profileFlags(),
		Commands: getCommands(version),
	}
}

func main() {
	cmd := newRootCommand()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, commands.ErrHashInvalid) {
			os.Exit(1)
		}
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
